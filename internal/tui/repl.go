package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/commands"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type stage int

const (
	stageCommand stage = iota
	stageAddTitle
	stageAddDescription
	stageAddPriority
	stageEditTitle
	stageEditDescription
)

const maxScrollback = 1000

var prompts = map[stage]string{
	stageCommand:         "Command: ",
	stageAddTitle:        "Enter the Title: ",
	stageAddDescription:  "Enter the Description: ",
	stageAddPriority:     "Enter the Priority: ",
	stageEditTitle:       "Enter the new Title (blank keeps it): ",
	stageEditDescription: "Enter the new Description (blank keeps it): ",
}

type replModel struct {
	ctx       context.Context
	svc       service.TaskService
	validator validators.Validator
	save      Saver
	copyText  func(string) error
	buildInfo models.AppBuildInfo

	input  textinput.Model
	lines  []string
	height int
	scroll int

	stage  stage
	draft  models.TaskInput
	editID int64

	commands int
	quitting bool
}

func newReplModel(ctx context.Context, svc service.TaskService, validator validators.Validator, save Saver, buildInfo models.AppBuildInfo) replModel {
	input := textinput.New()
	input.Prompt = promptStyle.Render(prompts[stageCommand])
	input.Focus()

	return replModel{
		ctx:       ctx,
		svc:       svc,
		validator: validator,
		save:      save,
		copyText:  clipboard.WriteAll,
		buildInfo: buildInfo,
		input:     input,
		lines:     welcome(svc.Store().Name()),
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.printError(fmt.Sprintf("Unable to copy task %d: %v", msg.id, msg.err))
			return m, nil
		}
		m.print(fmt.Sprintf("Copied the description of task %d to the clipboard.", msg.id))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.esc):
			if m.stage != stageCommand {
				m.print("Cancelled.")
				m.setStage(stageCommand)
			}
			m.input.Reset()
			return m, nil
		case key.Matches(msg, keys.up):
			m.scroll = min(m.scroll+m.pageSize(), max(len(m.lines)-1, 0))
			return m, nil
		case key.Matches(msg, keys.down):
			m.scroll = max(m.scroll-m.pageSize(), 0)
			return m, nil
		case key.Matches(msg, keys.enter):
			value := m.input.Value()
			m.input.Reset()
			m.scroll = 0
			return m.submit(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	if m.quitting {
		return strings.Join(m.lines, "\n") + "\n"
	}

	visible := m.lines
	if m.scroll > 0 {
		visible = visible[:len(visible)-m.scroll]
	}
	if m.height > 1 && len(visible) > m.height-1 {
		visible = visible[len(visible)-(m.height-1):]
	}

	var b strings.Builder
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

func (m replModel) submit(value string) (tea.Model, tea.Cmd) {
	m.print(prompts[m.stage] + value)

	switch m.stage {
	case stageAddTitle:
		m.answerAddTitle(value)
	case stageAddDescription:
		m.answerAddDescription(value)
	case stageAddPriority:
		m.answerAddPriority(value)
	case stageEditTitle:
		m.answerEditTitle(value)
	case stageEditDescription:
		m.answerEditDescription(value)
	default:
		return m.runCommand(value)
	}
	return m, nil
}

func (m replModel) runCommand(value string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(value) == "" {
		return m, nil
	}

	cmd, ok := commands.Parse(value)
	if !ok {
		m.printError("Unknown command. Type help for a list of commands.")
		return m, nil
	}
	m.commands++

	switch cmd.Kind {
	case commands.Add:
		m.startAdd()
	case commands.View:
		m.view(cmd.ID)
	case commands.ListAll:
		m.list(service.ViewAll, 0)
	case commands.ListCompleted:
		m.list(service.ViewCompleted, 0)
	case commands.ListUncompleted:
		m.list(service.ViewUncompleted, 0)
	case commands.ListPrioritized:
		m.list(service.ViewPrioritized, 0)
	case commands.PriorityList:
		priority, err := models.ParsePriority(cmd.Priority)
		if err != nil {
			m.printError(fmt.Sprintf("'%s' is not a valid priority", cmd.Priority))
			return m, nil
		}
		m.list(service.ViewByPriority, priority)
	case commands.Complete:
		m.complete(cmd.ID)
	case commands.Edit:
		m.startEdit(cmd.ID)
	case commands.Remove:
		m.remove(cmd.ID)
	case commands.SetPriority:
		m.setPriority(cmd.ID, cmd.Priority)
	case commands.Copy:
		return m, m.copy(cmd.ID)
	case commands.Save:
		m.saveNow()
	case commands.Help:
		m.print(commands.HelpLines()...)
		m.print(renderBuildInfo(m.buildInfo)...)
	case commands.Exit:
		m.print(fmt.Sprintf("Thank you. %s will be saved.", m.svc.Store().Name()))
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *replModel) startAdd() {
	s := m.svc.Store()
	if s.Len() >= s.MaxTasks() {
		m.printError("Maximum number of Tasks reached. Remove some to continue.")
		return
	}
	m.draft = models.TaskInput{}
	m.print(uiDivider)
	m.setStage(stageAddTitle)
}

func (m *replModel) answerAddTitle(value string) {
	m.draft.Title = value
	if err := m.validator.Validate(m.ctx, m.draft, validators.FieldTitle); err != nil {
		m.printError(validationMessage(err))
		return
	}
	m.setStage(stageAddDescription)
}

func (m *replModel) answerAddDescription(value string) {
	m.draft.Description = value
	if err := m.validator.Validate(m.ctx, m.draft, validators.FieldDescription); err != nil {
		m.printError(validationMessage(err))
		return
	}
	m.setStage(stageAddPriority)
}

func (m *replModel) answerAddPriority(value string) {
	m.draft.Priority = value
	if err := m.validator.Validate(m.ctx, m.draft, validators.FieldPriority); err != nil {
		m.printError(fmt.Sprintf("'%s' is not a valid priority", strings.TrimSpace(value)))
		return
	}

	task, err := m.svc.Add(m.ctx, m.draft)
	m.setStage(stageCommand)
	if err != nil {
		m.printError(fmt.Sprintf("Unable to add task: %v", err))
		return
	}
	m.print(fmt.Sprintf("Created Task %d in List %s", task.ID, m.svc.Store().Name()))
}

func (m *replModel) startEdit(id int64) {
	task, err := m.svc.View(id)
	if err != nil {
		m.printError(fmt.Sprintf("Task %d not found", id))
		return
	}
	m.editID = id
	m.draft = models.TaskInput{}
	m.print(fmt.Sprintf("Editing task %d: %s", task.ID, task.Title))
	m.setStage(stageEditTitle)
}

func (m *replModel) answerEditTitle(value string) {
	if strings.TrimSpace(value) != "" {
		input := models.TaskInput{Title: value}
		if err := m.validator.Validate(m.ctx, input, validators.FieldTitle); err != nil {
			m.printError(validationMessage(err))
			return
		}
	}
	m.draft.Title = value
	m.setStage(stageEditDescription)
}

func (m *replModel) answerEditDescription(value string) {
	m.draft.Description = value
	task, err := m.svc.Edit(m.ctx, m.editID, m.draft.Title, m.draft.Description)
	m.setStage(stageCommand)
	if err != nil {
		m.printError(fmt.Sprintf("Unable to edit task %d: %v", m.editID, err))
		return
	}
	m.print(fmt.Sprintf("Task %d updated.", task.ID))
}

func (m *replModel) view(id int64) {
	task, err := m.svc.View(id)
	if err != nil {
		m.printError(fmt.Sprintf("Task %d not found", id))
		return
	}
	m.print(splitLines(taskDetail(task))...)
}

func (m *replModel) list(view service.ListView, priority models.Priority) {
	tasks, err := m.svc.List(view, priority)
	if err != nil {
		m.printError(err.Error())
		return
	}
	m.print(taskListing(tasks)...)
}

func (m *replModel) complete(id int64) {
	err := m.svc.Complete(id)
	switch {
	case err == nil:
		m.print(fmt.Sprintf("Task %d completed.", id))
	case errors.Is(err, store.ErrAlreadyCompleted):
		m.printError(fmt.Sprintf("Task %d already complete", id))
	default:
		m.printError(fmt.Sprintf("Task %d does not exist", id))
	}
}

func (m *replModel) remove(id int64) {
	if err := m.svc.Remove(id); err != nil {
		m.printError("Task not found.")
		return
	}
	m.print(fmt.Sprintf("Removed task %d.", id))
}

func (m *replModel) setPriority(id int64, token string) {
	err := m.svc.SetPriority(id, token)
	switch {
	case err == nil:
		task, _ := m.svc.View(id)
		m.print(fmt.Sprintf("Task %d priority set to %s.", id, task.Priority))
	case errors.Is(err, models.ErrFormat):
		m.printError(fmt.Sprintf("'%s' is not a valid priority", token))
	default:
		m.printError(fmt.Sprintf("Task %d does not exist", id))
	}
}

// copy reads the description now so the clipboard write never observes a
// later mutation.
func (m *replModel) copy(id int64) tea.Cmd {
	task, err := m.svc.View(id)
	if err != nil {
		m.printError(fmt.Sprintf("Task %d not found", id))
		return nil
	}
	write := m.copyText
	return func() tea.Msg {
		return copiedMsg{id: id, err: write(task.Description)}
	}
}

func (m *replModel) saveNow() {
	if m.save == nil {
		m.printError("Saving is not available.")
		return
	}
	if err := m.save(); err != nil {
		m.printError(fmt.Sprintf("Error saving: %v", err))
		return
	}
	m.print(fmt.Sprintf("%s has been saved.", m.svc.Store().Name()))
}

func (m *replModel) setStage(s stage) {
	m.stage = s
	m.input.Prompt = promptStyle.Render(prompts[s])
}

func (m *replModel) print(lines ...string) {
	m.lines = append(m.lines, lines...)
	if over := len(m.lines) - maxScrollback; over > 0 {
		m.lines = m.lines[over:]
	}
}

func (m *replModel) printError(line string) {
	m.print(errorStyle.Render(line))
}

func (m replModel) pageSize() int {
	if m.height > 2 {
		return m.height - 2
	}
	return 10
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return "Title can't be empty."
	case errors.Is(err, validators.ErrTitleTooLong):
		return "Title can't be longer than the allowed length (" + err.Error() + ")."
	case errors.Is(err, validators.ErrEmptyDescription):
		return "Description can't be empty."
	default:
		return err.Error()
	}
}
