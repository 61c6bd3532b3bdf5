// Package tui is the terminal surface of the roster: an entry form, the
// column filters and the table, each a focus zone cycled with Tab.
package tui

import (
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/services/employees"
	"github.com/UnknownOlympus/roster/internal/services/entry"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Zone int

const (
	ZoneForm Zone = iota
	ZoneFilter
	ZoneTable
	zoneCount
)

// Model is the bubbletea model of the roster screen.
type Model struct {
	staff   *employees.Staff
	metrics *metrics.Metrics
	log     *slog.Logger
	styles  Styles

	focus  Zone
	cursor int
	status string

	form, filter, edit             []textinput.Model
	formFocus, filterFocus, editAt int
}

func New(log *slog.Logger, staff *employees.Staff, metrics *metrics.Metrics) Model {
	m := Model{
		staff:   staff,
		metrics: metrics,
		log:     log,
		styles:  DefaultStyles(),
		form:    newInputs(""),
		filter:  newInputs("Filter by "),
		edit:    newInputs(""),
	}
	m.refocus()

	return m
}

func newInputs(prefix string) []textinput.Model {
	inputs := make([]textinput.Model, len(models.Fields))
	for i, field := range models.Fields {
		ti := textinput.New()
		ti.Prompt = prefix + field.Title() + ": "
		ti.Placeholder = field.Title()
		inputs[i] = ti
	}

	return inputs
}

func (m Model) Focus() Zone {
	return m.focus
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Status() string {
	return m.status
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) editing() bool {
	return m.staff.Snapshot().Edit != nil
}

// refocus gives keyboard focus to exactly one input, or none while the table is active.
func (m *Model) refocus() {
	blurAll(m.form)
	blurAll(m.filter)
	blurAll(m.edit)

	switch {
	case m.editing():
		m.edit[m.editAt].Focus()
	case m.focus == ZoneForm:
		m.form[m.formFocus].Focus()
	case m.focus == ZoneFilter:
		m.filter[m.filterFocus].Focus()
	}
}

func blurAll(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Blur()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch {
	case m.editing():
		cmd = m.updateEdit(key)
	case key.Type == tea.KeyTab:
		m.focus = (m.focus + 1) % zoneCount
	case key.Type == tea.KeyShiftTab:
		m.focus = (m.focus + zoneCount - 1) % zoneCount
	case m.focus == ZoneForm:
		cmd = m.updateForm(key)
	case m.focus == ZoneFilter:
		cmd = m.updateFilter(key)
	default:
		cmd = m.updateTable(key)
	}

	m.clampCursor()
	m.refocus()

	return m, cmd
}

func (m *Model) updateForm(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyUp:
		m.formFocus = (m.formFocus + len(m.form) - 1) % len(m.form)
		return nil
	case tea.KeyDown:
		m.formFocus = (m.formFocus + 1) % len(m.form)
		return nil
	case tea.KeyEsc:
		m.staff.ResetForm()
		m.syncForm()
		m.status = ""
		return nil
	case tea.KeyEnter:
		m.submit()
		return nil
	}

	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(key)
	m.staff.SetFormField(models.Fields[m.formFocus], m.form[m.formFocus].Value())

	return cmd
}

func (m *Model) submit() {
	event, err := m.staff.SubmitForm()
	if err != nil {
		if !errors.Is(err, entry.ErrRequiredField) {
			m.log.Error("Form submit failed", "error", err)
		}
		m.status = err.Error()
		return
	}

	m.status = ""
	m.formFocus = 0
	m.syncForm()
	m.log.Debug("Form submitted", "kind", event.Kind.String())
}

// syncForm copies the coordinator's draft into the form inputs.
func (m *Model) syncForm() {
	draft := m.staff.Snapshot().Draft
	for i, field := range models.Fields {
		m.form[i].SetValue(draft.Get(field))
		m.form[i].CursorEnd()
	}
}

func (m *Model) updateFilter(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyUp:
		m.filterFocus = (m.filterFocus + len(m.filter) - 1) % len(m.filter)
		return nil
	case tea.KeyDown, tea.KeyEnter:
		m.filterFocus = (m.filterFocus + 1) % len(m.filter)
		return nil
	}

	var cmd tea.Cmd
	m.filter[m.filterFocus], cmd = m.filter[m.filterFocus].Update(key)
	m.staff.SetFilter(models.Fields[m.filterFocus], m.filter[m.filterFocus].Value())

	return cmd
}

func (m *Model) updateTable(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "1", "2", "3":
		field := models.Fields[key.Runes[0]-'1']
		m.staff.ToggleSort(field)
	case "e":
		if m.staff.BeginEdit(m.cursor) {
			m.editAt = 0
			draft := m.staff.Snapshot().Edit.Draft
			for i, field := range models.Fields {
				m.edit[i].SetValue(draft.Get(field))
				m.edit[i].CursorEnd()
			}
		}
	case "d":
		if m.staff.Delete(m.cursor) {
			m.syncForm()
		}
	case "f":
		if m.staff.LoadIntoForm(m.cursor) {
			m.syncForm()
			m.formFocus = 0
			m.focus = ZoneForm
		}
	case "q":
		return tea.Quit
	}

	return nil
}

func (m *Model) updateEdit(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyTab:
		m.editAt = (m.editAt + 1) % len(m.edit)
		return nil
	case tea.KeyShiftTab:
		m.editAt = (m.editAt + len(m.edit) - 1) % len(m.edit)
		return nil
	case tea.KeyEnter:
		m.staff.CommitEdit()
		return nil
	case tea.KeyEsc:
		m.staff.CancelEdit()
		return nil
	}

	var cmd tea.Cmd
	m.edit[m.editAt], cmd = m.edit[m.editAt].Update(key)
	m.staff.SetDraftField(models.Fields[m.editAt], m.edit[m.editAt].Value())

	return cmd
}

// updateInputs passes non-key messages, such as cursor blinks, to every input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, inputs := range [][]textinput.Model{m.form, m.filter, m.edit} {
		for i := range inputs {
			var cmd tea.Cmd
			inputs[i], cmd = inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) clampCursor() {
	rows := len(m.staff.Rows())
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
