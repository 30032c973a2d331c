package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type taskService struct {
	store     *store.Store
	validator validators.Validator

	logger *logger.Logger
}

// NewTaskService wraps s. Every mutation coming from user input is checked
// by validator before it reaches the store.
func NewTaskService(s *store.Store, validator validators.Validator, log *logger.Logger) TaskService {
	return &taskService{
		store:     s,
		validator: validator,
		logger:    log.GetChildLogger("task_service"),
	}
}

func (t *taskService) Add(ctx context.Context, input models.TaskInput) (models.Task, error) {
	if err := t.validator.Validate(ctx, input); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// already validated, cannot fail
	priority, _ := models.ParsePriority(input.Priority)

	task, err := t.store.Add(strings.TrimSpace(input.Title), strings.TrimSpace(input.Description), priority)
	if err != nil {
		return models.Task{}, fmt.Errorf("error adding task: %w", err)
	}

	t.logger.Debug().Int64("id", task.ID).Int("tasks", t.store.Len()).Msg("task added")
	return task, nil
}

func (t *taskService) View(id int64) (models.Task, error) {
	task, ok := t.store.Find(id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %d", store.ErrTaskNotFound, id)
	}
	return task, nil
}

func (t *taskService) Complete(id int64) error {
	if err := t.store.Complete(id); err != nil {
		return err
	}

	t.logger.Debug().Int64("id", id).Msg("task completed")
	return nil
}

func (t *taskService) Edit(ctx context.Context, id int64, title, description string) (models.Task, error) {
	if _, ok := t.store.Find(id); !ok {
		return models.Task{}, fmt.Errorf("%w: %d", store.ErrTaskNotFound, id)
	}

	input := models.TaskInput{Title: title, Description: description}
	var fields []string
	var newTitle, newDescription *string

	if strings.TrimSpace(title) != "" {
		fields = append(fields, validators.FieldTitle)
		trimmed := strings.TrimSpace(title)
		newTitle = &trimmed
	}
	if strings.TrimSpace(description) != "" {
		fields = append(fields, validators.FieldDescription)
		trimmed := strings.TrimSpace(description)
		newDescription = &trimmed
	}

	if len(fields) > 0 {
		if err := t.validator.Validate(ctx, input, fields...); err != nil {
			return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	if err := t.store.Edit(id, newTitle, newDescription); err != nil {
		return models.Task{}, err
	}

	task, _ := t.store.Find(id)
	t.logger.Debug().Int64("id", id).Msg("task edited")
	return task, nil
}

func (t *taskService) SetPriority(id int64, token string) error {
	priority, err := models.ParsePriority(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = t.store.SetPriority(id, priority); err != nil {
		return err
	}

	t.logger.Debug().Int64("id", id).Stringer("priority", priority).Msg("task priority changed")
	return nil
}

func (t *taskService) Remove(id int64) error {
	if err := t.store.Remove(id); err != nil {
		return err
	}

	t.logger.Debug().Int64("id", id).Int("tasks", t.store.Len()).Msg("task removed")
	return nil
}

func (t *taskService) List(view ListView, priority models.Priority) ([]models.Task, error) {
	switch view {
	case ViewAll:
		return t.store.All(), nil
	case ViewCompleted:
		return t.store.Completed(), nil
	case ViewUncompleted:
		return t.store.Uncompleted(), nil
	case ViewPrioritized:
		return t.store.SortedByPriority(), nil
	case ViewByPriority:
		if !priority.Valid() {
			return nil, store.ErrInvalidPriority
		}
		return t.store.ByPriority(priority), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownListView, view)
	}
}

func (t *taskService) Store() *store.Store {
	return t.store
}
