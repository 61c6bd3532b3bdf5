package employees

import (
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/repository"
	"github.com/UnknownOlympus/roster/internal/services/entry"
	"github.com/UnknownOlympus/roster/internal/services/roster"
)

// Staff coordinates the record store, the entry form and the roster view.
// It is not safe for concurrent use.
type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
	ids     entry.IDGenerator
	form    *entry.Form
	view    *roster.View
}

// Snapshot is an immutable picture of everything a surface needs to render.
type Snapshot struct {
	Rows        []roster.Row
	Total       int
	Filter      roster.Filter
	Sort        *roster.Sort
	Edit        *roster.Edit
	Draft       models.Employee
	FormMode    entry.Mode
	SubmitLabel string
}

// Indicator returns the sort glyph for the column header of field.
func (s Snapshot) Indicator(field models.Field) string {
	if s.Sort == nil || s.Sort.Key != field {
		return ""
	}

	return s.Sort.Direction.Indicator()
}

// IsEditing reports whether row is being edited inline.
func (s Snapshot) IsEditing(row roster.Row) bool {
	return s.Edit != nil && s.Edit.Index == row.Index
}

func NewStaff(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	metrics *metrics.Metrics,
	ids entry.IDGenerator,
) *Staff {
	return &Staff{
		log:     log,
		repo:    repo,
		metrics: metrics,
		ids:     ids,
		form:    entry.NewForm(ids),
		view:    roster.NewView(),
	}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// Seed appends imported records, assigning fresh IDs to the ones that have none.
func (s *Staff) Seed(employees []models.Employee) {
	const opn = "Employee.Seed"
	log := s.initLogger(opn)

	for _, employee := range employees {
		if employee.ID == 0 {
			employee.ID = s.ids()
		}
		s.repo.Append(employee)
	}

	log.Info("Roster seeded", "count", len(employees))
}

// Snapshot renders the current state.
func (s *Staff) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:        s.view.Rows(s.repo.List()),
		Total:       s.repo.Len(),
		Filter:      s.view.Filter(),
		Draft:       s.form.Draft(),
		FormMode:    s.form.Mode(),
		SubmitLabel: s.form.SubmitLabel(),
	}
	if sort, ok := s.view.Sort(); ok {
		snap.Sort = &sort
	}
	if edit, ok := s.view.Editing(); ok {
		snap.Edit = &edit
	}

	return snap
}

// Rows returns the visible rows.
func (s *Staff) Rows() []roster.Row {
	return s.view.Rows(s.repo.List())
}

func (s *Staff) SetFormField(field models.Field, value string) {
	s.form.SetField(field, value)
}

// ResetForm abandons the draft and returns the form to create mode.
func (s *Staff) ResetForm() {
	s.form.Reset()
}

// SubmitForm submits the entry form and applies the resulting event to the store.
func (s *Staff) SubmitForm() (entry.Event, error) {
	const opn = "Employee.SubmitForm"
	log := s.initLogger(opn)

	event, err := s.form.Submit()
	if err != nil {
		s.metrics.FormSubmissions.WithLabelValues("rejected").Inc()
		log.Debug("Form submit rejected", sl.Err(err))
		return entry.Event{}, fmt.Errorf("failed to submit employee form: %w", err)
	}

	s.metrics.FormSubmissions.WithLabelValues(event.Kind.String()).Inc()

	switch event.Kind {
	case entry.EventAdd:
		s.repo.Append(event.Employee)
		log.Info("Employee added", "id", event.Employee.ID, "name", event.Employee.Name)
	case entry.EventEdit:
		if !s.repo.UpdateAt(event.Index, event.Employee) {
			log.Warn("Edited employee is no longer in the roster", "index", event.Index)
			break
		}
		log.Info("Employee updated from form", "index", event.Index, "name", event.Employee.Name)
	}

	return event, nil
}

// LoadIntoForm binds the entry form to the visible row at viewIndex.
func (s *Staff) LoadIntoForm(viewIndex int) bool {
	row, ok := s.row(viewIndex)
	if !ok {
		return false
	}
	s.form.BeginEdit(row.Index, row.Employee)

	return true
}

func (s *Staff) SetFilter(field models.Field, value string) {
	s.view.SetFilter(field, value)
}

func (s *Staff) ClearFilter() {
	s.view.ClearFilter()
}

func (s *Staff) ToggleSort(field models.Field) roster.Sort {
	s.metrics.SortToggles.WithLabelValues(string(field)).Inc()

	return s.view.ToggleSort(field)
}

// BeginEdit starts inline editing of the visible row at viewIndex.
func (s *Staff) BeginEdit(viewIndex int) bool {
	row, ok := s.row(viewIndex)
	if !ok {
		return false
	}
	s.view.BeginEdit(row)

	return true
}

func (s *Staff) SetDraftField(field models.Field, value string) bool {
	return s.view.SetDraftField(field, value)
}

// CommitEdit writes the inline draft back to the record it was taken from.
func (s *Staff) CommitEdit() bool {
	const opn = "Employee.CommitEdit"
	log := s.initLogger(opn)

	edit, ok := s.view.Editing()
	if !ok {
		return false
	}
	s.view.EndEdit()

	if !s.repo.UpdateAt(edit.Index, edit.Draft) {
		log.Warn("Edited employee is no longer in the roster", "index", edit.Index)
		return false
	}
	log.Info("Employee updated", "index", edit.Index, "name", edit.Draft.Name)

	return true
}

func (s *Staff) CancelEdit() {
	s.view.EndEdit()
}

// Delete removes the record shown at viewIndex.
func (s *Staff) Delete(viewIndex int) bool {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	row, ok := s.row(viewIndex)
	if !ok {
		return false
	}
	if !s.repo.DeleteAt(row.Index) {
		return false
	}

	s.view.Removed(row.Index)
	if idx, editing := s.form.Mode().Editing(); editing {
		switch {
		case idx == row.Index:
			s.form.Reset()
		case idx > row.Index:
			s.form.BeginEdit(idx-1, s.form.Draft())
		}
	}
	log.Info("Employee deleted", "index", row.Index, "name", row.Employee.Name)

	return true
}

func (s *Staff) row(viewIndex int) (roster.Row, bool) {
	rows := s.Rows()
	if viewIndex < 0 || viewIndex >= len(rows) {
		return roster.Row{}, false
	}

	return rows[viewIndex], true
}
