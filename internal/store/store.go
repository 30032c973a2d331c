// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	// DefaultDisplayName is the name every loaded store starts with. The
	// name is not part of the file format.
	DefaultDisplayName = "Initial"

	// DefaultMaxTasks bounds the number of tasks a store accepts.
	DefaultMaxTasks = 400000
)

// Store is the in-memory task collection together with its id counter and
// display name.
//
// Tasks are kept in insertion order, which is also the order they are
// written to disk. Ids are assigned from a counter that only grows, so an id
// is never handed out twice during the lifetime of a Store, even after the
// task holding it was removed.
//
// Store is not safe for concurrent use.
type Store struct {
	name     string
	tasks    []models.Task
	nextID   int64
	maxTasks int
}

// Option configures a [Store].
type Option func(*Store)

// WithMaxTasks overrides [DefaultMaxTasks]. Non-positive values are ignored.
func WithMaxTasks(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxTasks = n
		}
	}
}

// New returns an empty store whose first task will get id 1.
func New(name string, opts ...Option) *Store {
	s := &Store{
		name:     name,
		tasks:    make([]models.Task, 0),
		nextID:   1,
		maxTasks: DefaultMaxTasks,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromTasks builds a store around an already decoded task sequence. The
// next id is the maximum existing id plus one, or 1 when tasks is empty.
func FromTasks(name string, tasks []models.Task, opts ...Option) *Store {
	s := New(name, opts...)
	s.tasks = slices.Clone(tasks)
	if s.tasks == nil {
		s.tasks = make([]models.Task, 0)
	}
	var maxID int64
	for _, t := range s.tasks {
		maxID = max(maxID, t.ID)
	}
	// Wraps to a non-positive value when maxID is math.MaxInt64; Add
	// reports that as ErrIDSpaceExhausted.
	s.nextID = maxID + 1
	return s
}

// Name returns the display name.
func (s *Store) Name() string { return s.name }

// SetName replaces the display name.
func (s *Store) SetName(name string) { s.name = name }

// NextID returns the id the next added task will receive. A value below 1
// means the id space is used up.
func (s *Store) NextID() int64 { return s.nextID }

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// MaxTasks returns the capacity limit.
func (s *Store) MaxTasks() int { return s.maxTasks }

// Add appends a new uncompleted task and returns it.
func (s *Store) Add(title, description string, priority models.Priority) (models.Task, error) {
	if len(s.tasks) >= s.maxTasks {
		return models.Task{}, fmt.Errorf("%w: limit is %d", ErrCapacityReached, s.maxTasks)
	}
	if !priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}
	if s.nextID <= 0 {
		return models.Task{}, ErrIDSpaceExhausted
	}

	task := models.NewTask(s.nextID, title, description, priority)
	s.tasks = append(s.tasks, task)
	s.nextID++
	return task, nil
}

// Find returns a copy of the task with the given id.
func (s *Store) Find(id int64) (models.Task, bool) {
	pos, ok := s.position(id)
	if !ok {
		return models.Task{}, false
	}
	return s.tasks[pos], true
}

// Complete marks the task as done.
func (s *Store) Complete(id int64) error {
	pos, ok := s.position(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if s.tasks[pos].Completed {
		return fmt.Errorf("%w: %d", ErrAlreadyCompleted, id)
	}
	s.tasks[pos].Complete()
	return nil
}

// Edit replaces the title and/or description of a task. A nil pointer
// keeps the current value.
func (s *Store) Edit(id int64, title, description *string) error {
	pos, ok := s.position(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if title != nil {
		s.tasks[pos].Title = *title
	}
	if description != nil {
		s.tasks[pos].Description = *description
	}
	return nil
}

// SetPriority changes the priority of a task.
func (s *Store) SetPriority(id int64, priority models.Priority) error {
	if !priority.Valid() {
		return ErrInvalidPriority
	}
	pos, ok := s.position(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	s.tasks[pos].Priority = priority
	return nil
}

// Remove deletes a task. Its id is not reused.
func (s *Store) Remove(id int64) error {
	pos, ok := s.position(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	s.tasks = slices.Delete(s.tasks, pos, pos+1)
	return nil
}

// All returns a copy of every task in insertion order.
func (s *Store) All() []models.Task {
	return slices.Clone(s.tasks)
}

// Completed returns the completed tasks in insertion order.
func (s *Store) Completed() []models.Task {
	return s.filter(func(t models.Task) bool { return t.Completed })
}

// Uncompleted returns the open tasks in insertion order.
func (s *Store) Uncompleted() []models.Task {
	return s.filter(func(t models.Task) bool { return !t.Completed })
}

// ByPriority returns the tasks with priority p in insertion order.
func (s *Store) ByPriority(p models.Priority) []models.Task {
	return s.filter(func(t models.Task) bool { return t.Priority == p })
}

// SortedByPriority returns a copy ordered from Critical to Low. Tasks of
// equal priority keep their insertion order. The store itself is not
// reordered.
func (s *Store) SortedByPriority() []models.Task {
	sorted := slices.Clone(s.tasks)
	slices.SortStableFunc(sorted, func(a, b models.Task) int {
		return b.Priority.Rank() - a.Priority.Rank()
	})
	return sorted
}

func (s *Store) position(id int64) (int, bool) {
	pos := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	return pos, pos >= 0
}

func (s *Store) filter(keep func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
