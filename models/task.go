package models

// Task is a single record of the task store.
type Task struct {
	// ID is unique within a store and assigned monotonically starting at 1.
	ID int64
	// Title is a short non-empty label.
	Title string
	// Description is the non-empty free-form body of the task.
	Description string
	// Priority is the urgency level of the task.
	Priority Priority
	// Completed is false when the task is created.
	Completed bool
}

// NewTask builds an uncompleted task.
func NewTask(id int64, title, description string, priority Priority) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
	}
}

// Complete marks the task as done.
func (t *Task) Complete() {
	t.Completed = true
}

// TaskInput carries unvalidated user input for creating a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
}
