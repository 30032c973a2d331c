// Package commands turns a line typed at the REPL prompt into a [Command].
//
// Parsing is pure: it never touches the task store, so unknown or malformed
// input is reported by the caller.
package commands

import (
	"strconv"
	"strings"
)

// Kind enumerates the REPL operations.
type Kind int

const (
	Add Kind = iota + 1
	View
	ListAll
	ListCompleted
	ListUncompleted
	ListPrioritized
	PriorityList
	Complete
	Edit
	Remove
	SetPriority
	Copy
	Save
	Help
	Exit
)

// Command is a parsed REPL line. ID is set for the commands addressing a
// single task, Priority holds the raw priority token for PriorityList and
// SetPriority.
type Command struct {
	Kind     Kind
	ID       int64
	Priority string
}

type definition struct {
	kind  Kind
	name  string
	args  []string
	usage string
}

// definitions is in help order.
var definitions = []definition{
	{Add, "add", nil, "add - Adds a new task. Requires a title, a description and a priority"},
	{View, "view", []string{"id"}, "view <id> - Views the task with the entered id"},
	{ListAll, "la", nil, "la - Lists all tasks that exist"},
	{ListCompleted, "lc", nil, "lc - Lists all completed tasks"},
	{ListUncompleted, "lu", nil, "lu - Lists all uncompleted tasks"},
	{ListPrioritized, "lp", nil, "lp - Lists all tasks in order of priority"},
	{PriorityList, "pl", []string{"priority"}, "pl <priority> - Lists all tasks of the entered priority"},
	{Complete, "cpl", []string{"id"}, "cpl <id> - Completes the task with the entered id"},
	{Remove, "remove", []string{"id"}, "remove <id> - Deletes the task with the entered id"},
	{Edit, "edit", []string{"id"}, "edit <id> - Changes the title or description of a task"},
	{SetPriority, "prio", []string{"id", "priority"}, "prio <id> <priority> - Changes the priority of a task"},
	{Copy, "copy", []string{"id"}, "copy <id> - Copies the description of a task to the clipboard"},
	{Save, "save", nil, "save - Saves the task list without exiting"},
	{Exit, "exit", nil, "exit - Saves the task list and exits"},
	{Help, "help", nil, "help - Shows this help dialog"},
}

// Parse splits input on whitespace and maps it to a Command. It reports
// false for an unknown name, a wrong number of arguments or an id that is
// not a positive integer.
func Parse(input string) (Command, bool) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return Command{}, false
	}

	for _, d := range definitions {
		if d.name != parts[0] {
			continue
		}
		if len(parts)-1 != len(d.args) {
			return Command{}, false
		}

		cmd := Command{Kind: d.kind}
		for i, arg := range d.args {
			value := parts[i+1]
			switch arg {
			case "id":
				id, ok := parseID(value)
				if !ok {
					return Command{}, false
				}
				cmd.ID = id
			case "priority":
				cmd.Priority = value
			}
		}
		return cmd, true
	}

	return Command{}, false
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Usage returns the one-line help of the command kind.
func (k Kind) Usage() string {
	for _, d := range definitions {
		if d.kind == k {
			return d.usage
		}
	}
	return ""
}

// Usage returns the one-line help of the command.
func (c Command) Usage() string {
	return c.Kind.Usage()
}

// HelpLines returns the help lines of every command in display order.
func HelpLines() []string {
	lines := make([]string, 0, len(definitions)+1)
	lines = append(lines, "Available Commands:")
	for _, d := range definitions {
		lines = append(lines, d.usage)
	}
	return lines
}
