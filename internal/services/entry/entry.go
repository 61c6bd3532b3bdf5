package entry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/roster/internal/models"
)

// ErrRequiredField is returned by Submit when one of the draft fields is empty.
var ErrRequiredField = errors.New("required field is empty")

const (
	LabelAdd    = "Add Employee"
	LabelUpdate = "Update Employee"
)

// Mode tells whether the form creates a new record or edits the record at a store index.
type Mode struct {
	editing bool
	index   int
}

// CreateMode is the default mode of the form.
func CreateMode() Mode {
	return Mode{}
}

// EditMode binds the form to the record at the given store index.
func EditMode(index int) Mode {
	return Mode{editing: true, index: index}
}

// Editing reports the bound store index when the form is in edit mode.
func (m Mode) Editing() (int, bool) {
	return m.index, m.editing
}

type EventKind int

const (
	EventAdd EventKind = iota
	EventEdit
)

func (k EventKind) String() string {
	if k == EventEdit {
		return "edit"
	}

	return "add"
}

// Event is emitted by a successful submit. Index is meaningful for EventEdit only.
type Event struct {
	Kind     EventKind
	Index    int
	Employee models.Employee
}

// Form holds the draft of the entry form.
type Form struct {
	draft  models.Employee
	mode   Mode
	nextID IDGenerator
}

func NewForm(nextID IDGenerator) *Form {
	return &Form{nextID: nextID}
}

func (f *Form) Draft() models.Employee {
	return f.draft
}

func (f *Form) Mode() Mode {
	return f.mode
}

// SetField changes one field of the draft.
func (f *Form) SetField(field models.Field, value string) {
	f.draft = f.draft.With(field, value)
}

// BeginEdit replaces the draft wholesale, ID included, and switches the form into edit mode.
func (f *Form) BeginEdit(index int, employee models.Employee) {
	f.draft = employee
	f.mode = EditMode(index)
}

// Reset clears the draft and returns to create mode.
func (f *Form) Reset() {
	f.draft = models.Employee{}
	f.mode = CreateMode()
}

// SubmitLabel is the caption of the submit control for the current mode.
func (f *Form) SubmitLabel() string {
	if _, ok := f.mode.Editing(); ok {
		return LabelUpdate
	}

	return LabelAdd
}

// Submit validates the draft and emits an add or edit event. The form is reset
// after either kind of event; on validation failure the draft is kept.
func (f *Form) Submit() (Event, error) {
	if missing := f.draft.Missing(); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, field := range missing {
			names = append(names, string(field))
		}

		return Event{}, fmt.Errorf("%w: %s", ErrRequiredField, strings.Join(names, ", "))
	}

	var event Event
	if index, ok := f.mode.Editing(); ok {
		event = Event{Kind: EventEdit, Index: index, Employee: f.draft}
	} else {
		employee := f.draft
		employee.ID = f.nextID()
		event = Event{Kind: EventAdd, Employee: employee}
	}

	f.Reset()

	return event, nil
}
