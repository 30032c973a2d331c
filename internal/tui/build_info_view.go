// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

func renderBuildInfo(info models.AppBuildInfo) []string {
	return append([]string{uiDivider}, strings.Split(info.String(), "\n")...)
}

func welcome(name string) []string {
	return []string{
		titleStyle.Render("Welcome to Tasks! Type help for a list of commands."),
		"Current list: " + name,
	}
}
