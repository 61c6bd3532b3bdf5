// Package roster holds the transient table state of the roster: per-column
// filters, the active sort column and the row being edited inline.
package roster

import (
	"slices"
	"strings"

	"github.com/UnknownOlympus/roster/internal/models"
	"golang.org/x/text/cases"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}

	return "ascending"
}

// Indicator is the glyph shown next to the active column header.
func (d Direction) Indicator() string {
	if d == Descending {
		return "▼"
	}

	return "▲"
}

// Sort is the active sort column and its direction.
type Sort struct {
	Key       models.Field
	Direction Direction
}

// Filter holds one substring per column. Empty values match everything.
type Filter struct {
	Name       string
	Department string
	Position   string
}

func (f Filter) Get(field models.Field) string {
	return models.Employee{Name: f.Name, Department: f.Department, Position: f.Position}.Get(field)
}

func (f Filter) With(field models.Field, value string) Filter {
	e := models.Employee{Name: f.Name, Department: f.Department, Position: f.Position}.With(field, value)

	return Filter{Name: e.Name, Department: e.Department, Position: e.Position}
}

// IsZero reports whether the filter matches every record.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Row is a visible record paired with its index in the store.
type Row struct {
	Index    int
	Employee models.Employee
}

// Edit is the row being edited inline. Index is the store index of the record.
type Edit struct {
	Index int
	Draft models.Employee
}

// Apply filters employees and then sorts them. Rows keep their store index so
// that mutations never address the store by view position.
func Apply(employees []models.Employee, filter Filter, sort *Sort) []Row {
	caser := cases.Fold()

	needles := make([]string, len(models.Fields))
	for i, field := range models.Fields {
		needles[i] = caser.String(filter.Get(field))
	}

	rows := make([]Row, 0, len(employees))
	for idx, employee := range employees {
		if matches(caser, employee, needles) {
			rows = append(rows, Row{Index: idx, Employee: employee})
		}
	}

	if sort == nil {
		return rows
	}

	key, desc := sort.Key, sort.Direction == Descending
	slices.SortStableFunc(rows, func(a, b Row) int {
		c := strings.Compare(a.Employee.Get(key), b.Employee.Get(key))
		if desc {
			return -c
		}
		return c
	})

	return rows
}

func matches(caser cases.Caser, employee models.Employee, needles []string) bool {
	for i, field := range models.Fields {
		if needles[i] == "" {
			continue
		}
		if !strings.Contains(caser.String(employee.Get(field)), needles[i]) {
			return false
		}
	}

	return true
}
