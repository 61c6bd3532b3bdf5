package repository

import (
	"slices"

	"github.com/UnknownOlympus/roster/internal/models"
)

// Append adds an employee to the end of the roster.
func (r *Repository) Append(employee models.Employee) {
	r.employees = append(r.employees, employee)
	r.observe("append", true)
	r.notify()
}

// UpdateAt replaces the employee at index. Out-of-range indices are ignored
// and reported by a false result.
func (r *Repository) UpdateAt(index int, employee models.Employee) bool {
	if !r.inBounds(index) {
		r.observe("update", false)
		return false
	}

	r.employees[index] = employee
	r.observe("update", true)
	r.notify()

	return true
}

// DeleteAt removes the employee at index, shifting later records down by one.
// Out-of-range indices are ignored and reported by a false result.
func (r *Repository) DeleteAt(index int) bool {
	if !r.inBounds(index) {
		r.observe("delete", false)
		return false
	}

	r.employees = slices.Delete(r.employees, index, index+1)
	r.observe("delete", true)
	r.notify()

	return true
}

// Get returns the employee at index.
func (r *Repository) Get(index int) (models.Employee, bool) {
	if !r.inBounds(index) {
		return models.Employee{}, false
	}

	return r.employees[index], true
}

// List returns a copy of the roster in insertion order.
func (r *Repository) List() []models.Employee {
	return slices.Clone(r.employees)
}

// Len returns the number of records.
func (r *Repository) Len() int {
	return len(r.employees)
}

func (r *Repository) inBounds(index int) bool {
	return index >= 0 && index < len(r.employees)
}
