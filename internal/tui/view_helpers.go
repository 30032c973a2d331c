package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

const uiDivider = "--------------"

// taskLine renders the one-line listing form "id: title [Priority]".
func taskLine(task models.Task) string {
	line := fmt.Sprintf("%d: %s [%s]", task.ID, task.Title, task.Priority)
	if task.Completed {
		return completedStyle.Render(line)
	}
	return line
}

func taskDetail(task models.Task) []string {
	status := "Incomplete"
	if task.Completed {
		status = "Completed."
	}
	return []string{
		fmt.Sprintf("Task %d: %s  --  %s", task.ID, task.Title, task.Priority),
		task.Description,
		status,
	}
}

func taskListing(tasks []models.Task) []string {
	if len(tasks) == 0 {
		return []string{helpStyle.Render("No tasks.")}
	}
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, taskLine(task))
	}
	return lines
}

// splitLines keeps multi-line descriptions readable in the scrollback.
func splitLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.Split(l, "\n")...)
	}
	return out
}
