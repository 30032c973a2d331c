package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ListView selects which subset of the store [TaskService.List] returns.
type ListView int

const (
	// ViewAll lists every task in insertion order.
	ViewAll ListView = iota
	// ViewCompleted lists completed tasks.
	ViewCompleted
	// ViewUncompleted lists open tasks.
	ViewUncompleted
	// ViewPrioritized lists every task ordered from Critical to Low.
	ViewPrioritized
	// ViewByPriority lists the tasks of one priority.
	ViewByPriority
)

// TaskService is the use-case layer between the REPL and the in-memory
// store. Input coming from the user is validated here.
type TaskService interface {
	Add(ctx context.Context, input models.TaskInput) (models.Task, error)
	View(id int64) (models.Task, error)
	Complete(id int64) error
	// Edit replaces title and description. An empty string keeps the
	// current value.
	Edit(ctx context.Context, id int64, title, description string) (models.Task, error)
	SetPriority(id int64, token string) error
	Remove(id int64) error
	// List returns a display copy. priority is only used by ViewByPriority.
	List(view ListView, priority models.Priority) ([]models.Task, error)
	Store() *store.Store
}
