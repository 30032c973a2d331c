package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Column names in their fixed encode order.
const (
	ColumnID          = "id"
	ColumnTitle       = "title"
	ColumnDescription = "description"
	ColumnPriority    = "priority"
	ColumnCompleted   = "completed"
)

// Header is the header row written by [Encode].
var Header = []string{ColumnID, ColumnTitle, ColumnDescription, ColumnPriority, ColumnCompleted}

// requiredColumns must be present in every decoded header. The priority
// column is optional for backward compatibility.
var requiredColumns = []string{ColumnID, ColumnTitle, ColumnDescription, ColumnCompleted}

const utf8BOM = "\ufeff"

// Encode writes the header and one row per task, in slice order.
//
// It fails with an error wrapping models.ErrFormat only when a task carries
// an invalid priority, which would otherwise produce an undecodable row.
func Encode(tasks []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, task := range tasks {
		if !task.Priority.Valid() {
			return nil, fmt.Errorf("%w: task %d: invalid priority %d", models.ErrFormat, task.ID, int(task.Priority))
		}

		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.Description,
			task.Priority.String(),
			strconv.FormatBool(task.Completed),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write task %d: %w", task.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode parses a table produced by [Encode] (or by an older version of
// the store) and returns the tasks in file order.
//
// Empty input decodes to an empty, non-nil slice.
func Decode(data []byte) ([]models.Task, error) {
	data = bytes.TrimPrefix(data, []byte(utf8BOM))
	tasks := make([]models.Task, 0)
	if len(bytes.TrimSpace(data)) == 0 {
		return tasks, nil
	}

	data, restore, err := protectQuotedCR(data)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	// Every row must have as many fields as the header.
	r.FieldsPerRecord = 0

	header, err := r.Read()
	if err != nil {
		return nil, formatError(err)
	}
	restore(header)
	cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, formatError(err)
		}

		line, _ := r.FieldPos(0)
		restore(record)
		task, err := cols.task(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", models.ErrFormat, line, err)
		}
		if _, dup := seen[task.ID]; dup {
			return nil, fmt.Errorf("%w: line %d: %w: %d", models.ErrFormat, line, ErrDuplicateID, task.ID)
		}
		seen[task.ID] = struct{}{}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// columns maps each known column to its index in a record; -1 marks a
// missing optional column.
type columns struct {
	id, title, description, priority, completed int
}

func parseHeader(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case ColumnID, ColumnTitle, ColumnDescription, ColumnPriority, ColumnCompleted:
		default:
			return columns{}, fmt.Errorf("%w: header: %w: %q", models.ErrFormat, ErrUnknownColumn, name)
		}
		if _, dup := index[name]; dup {
			return columns{}, fmt.Errorf("%w: header: %w: %q", models.ErrFormat, ErrDuplicateColumn, name)
		}
		index[name] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return columns{}, fmt.Errorf("%w: header: %w: %q", models.ErrFormat, ErrMissingColumn, name)
		}
	}

	priority, ok := index[ColumnPriority]
	if !ok {
		priority = -1
	}

	return columns{
		id:          index[ColumnID],
		title:       index[ColumnTitle],
		description: index[ColumnDescription],
		priority:    priority,
		completed:   index[ColumnCompleted],
	}, nil
}

func (c columns) task(record []string) (models.Task, error) {
	id, err := strconv.ParseInt(record[c.id], 10, 64)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidID, record[c.id])
	}
	if id < 1 {
		return models.Task{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	priority := models.DefaultPriority
	if c.priority >= 0 {
		priority, err = models.ParsePriority(record[c.priority])
		if err != nil {
			return models.Task{}, err
		}
	}

	completed, err := strconv.ParseBool(record[c.completed])
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidCompleted, record[c.completed])
	}

	return models.Task{
		ID:          id,
		Title:       record[c.title],
		Description: record[c.description],
		Priority:    priority,
		Completed:   completed,
	}, nil
}

// protectQuotedCR swaps every CR inside a quoted field for a private-use
// rune absent from data, because csv.Reader folds a quoted "\r\n" into
// "\n". restore puts the CRs back into a decoded record.
func protectQuotedCR(data []byte) ([]byte, func([]string), error) {
	noop := func([]string) {}
	if bytes.IndexByte(data, '\r') < 0 {
		return data, noop, nil
	}

	placeholder, ok := unusedPrivateRune(data)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no free placeholder for carriage returns", models.ErrFormat)
	}
	marker := []byte(string(placeholder))

	out := make([]byte, 0, len(data)+len(data)/8)
	quoted, replaced := false, false
	for _, b := range data {
		switch {
		case b == '"':
			quoted = !quoted
		case b == '\r' && quoted:
			out = append(out, marker...)
			replaced = true
			continue
		}
		out = append(out, b)
	}
	if !replaced {
		return data, noop, nil
	}

	restore := func(record []string) {
		for i, field := range record {
			record[i] = strings.ReplaceAll(field, string(placeholder), "\r")
		}
	}
	return out, restore, nil
}

func unusedPrivateRune(data []byte) (rune, bool) {
	for r := rune(0xE000); r <= 0xF8FF; r++ {
		if !bytes.ContainsRune(data, r) {
			return r, true
		}
	}
	return 0, false
}

func formatError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: line %d: %w", models.ErrFormat, parseErr.Line, parseErr.Err)
	}
	return fmt.Errorf("%w: %w", models.ErrFormat, err)
}
