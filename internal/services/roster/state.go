package roster

import "github.com/UnknownOlympus/roster/internal/models"

// View is the table state. The zero value is unfiltered, unsorted and not editing.
type View struct {
	filter Filter
	sort   *Sort
	edit   *Edit
}

func NewView() *View {
	return &View{}
}

func (v *View) Filter() Filter {
	return v.filter
}

func (v *View) SetFilter(field models.Field, value string) {
	v.filter = v.filter.With(field, value)
}

func (v *View) ClearFilter() {
	v.filter = Filter{}
}

// Sort returns the active sort, if any.
func (v *View) Sort() (Sort, bool) {
	if v.sort == nil {
		return Sort{}, false
	}

	return *v.sort, true
}

// ToggleSort flips the direction when field is already the sort key and
// otherwise sorts ascending by field. The previous column's direction is not remembered.
func (v *View) ToggleSort(field models.Field) Sort {
	next := Sort{Key: field, Direction: Ascending}
	if v.sort != nil && v.sort.Key == field && v.sort.Direction == Ascending {
		next.Direction = Descending
	}
	v.sort = &next

	return next
}

// Indicator returns the direction glyph for field, or "" when field is not the sort key.
func (v *View) Indicator(field models.Field) string {
	if v.sort == nil || v.sort.Key != field {
		return ""
	}

	return v.sort.Direction.Indicator()
}

// Rows projects employees through the current filter and sort.
func (v *View) Rows(employees []models.Employee) []Row {
	return Apply(employees, v.filter, v.sort)
}

// Editing returns the inline edit in progress, if any.
func (v *View) Editing() (Edit, bool) {
	if v.edit == nil {
		return Edit{}, false
	}

	return *v.edit, true
}

// IsEditing reports whether row is the one being edited.
func (v *View) IsEditing(row Row) bool {
	return v.edit != nil && v.edit.Index == row.Index
}

// BeginEdit copies row into the draft. Any other edit in progress is discarded.
func (v *View) BeginEdit(row Row) {
	v.edit = &Edit{Index: row.Index, Draft: row.Employee}
}

// SetDraftField changes the draft only. It reports false when nothing is being edited.
func (v *View) SetDraftField(field models.Field, value string) bool {
	if v.edit == nil {
		return false
	}
	v.edit.Draft = v.edit.Draft.With(field, value)

	return true
}

func (v *View) EndEdit() {
	v.edit = nil
}

// Removed keeps the edit bound to the same record after the store deleted index.
func (v *View) Removed(index int) {
	switch {
	case v.edit == nil:
	case v.edit.Index == index:
		v.edit = nil
	case v.edit.Index > index:
		v.edit.Index--
	}
}
