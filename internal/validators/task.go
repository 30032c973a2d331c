package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field name constants used to restrict validation to a subset of
// [models.TaskInput] fields.
const (
	// FieldTitle targets the short label of a task.
	FieldTitle = "title"

	// FieldDescription targets the free-form body of a task.
	FieldDescription = "description"

	// FieldPriority targets the priority token typed by the user.
	FieldPriority = "priority"
)

// DefaultMaxTitleLength is used when [NewTaskValidator] receives a
// non-positive limit.
const DefaultMaxTitleLength = 23

// TaskValidator implements the Validator interface for task input.
// It accepts both models.TaskInput and *models.TaskInput.
type TaskValidator struct {
	maxTitleLength int
}

// NewTaskValidator constructs a TaskValidator that rejects titles longer
// than maxTitleLength characters.
func NewTaskValidator(maxTitleLength int) Validator {
	if maxTitleLength <= 0 {
		maxTitleLength = DefaultMaxTitleLength
	}
	return &TaskValidator{maxTitleLength: maxTitleLength}
}

// Validate dispatches on the dynamic type of obj.
//
// When no fields are given, title, description and priority are all
// checked. Returns ErrUnsupportedType for any other type and ErrUnknownField
// for an unrecognised field name.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskInput:
		return v.validateTaskInput(ctx, value, fields...)
	case *models.TaskInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTaskInput(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateTaskInput returns the first encountered validation error or nil.
func (v *TaskValidator) validateTaskInput(_ context.Context, input models.TaskInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(input.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if n := utf8.RuneCountInString(title); n > v.maxTitleLength {
				return fmt.Errorf("%w: %d characters, at most %d allowed", ErrTitleTooLong, n, v.maxTitleLength)
			}
		case FieldDescription:
			if strings.TrimSpace(input.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldPriority:
			if _, err := models.ParsePriority(input.Priority); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidPriority, input.Priority)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
