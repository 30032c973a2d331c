package models

import (
	"fmt"
	"strings"
)

// Priority is the urgency level of a task. The zero value is not a valid
// priority; use one of the declared constants.
//
// Priorities are ordered Critical > High > Medium > Low, see [Priority.Rank].
type Priority int

const (
	// Critical must be handled before anything else.
	Critical Priority = iota + 1
	// High is important but not blocking.
	High
	// Medium is the default level for tasks without an explicit priority.
	Medium
	// Low can wait.
	Low
)

// DefaultPriority is assigned to rows written by versions of the store that
// did not persist priorities.
const DefaultPriority = Medium

var priorityNames = map[Priority]string{
	Critical: "Critical",
	High:     "High",
	Medium:   "Medium",
	Low:      "Low",
}

// Priorities returns every valid priority from the most to the least urgent.
func Priorities() []Priority {
	return []Priority{Critical, High, Medium, Low}
}

// ParsePriority maps a textual token to a [Priority]. Matching ignores case
// and surrounding whitespace, so "low", "Low" and " LOW " are all [Low].
// Unknown tokens produce an error wrapping [ErrFormat].
func ParsePriority(s string) (Priority, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Priorities() {
		if strings.ToLower(priorityNames[p]) == token {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s' is not a valid priority", ErrFormat, s)
}

// String returns the canonical capitalised name, e.g. "Low".
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Valid reports whether p is one of the declared priorities.
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Rank returns the sort weight of p. Higher rank means more urgent;
// Critical has the highest rank, invalid priorities rank 0.
func (p Priority) Rank() int {
	if !p.Valid() {
		return 0
	}
	return int(Low) - int(p) + 1
}
