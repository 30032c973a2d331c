// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It loads the task file, hands the store to the terminal UI and saves it
// back when the session ends.
package client
