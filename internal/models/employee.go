package models

import "fmt"

// Employee represents a single roster entry.
type Employee struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// Field names one of the editable text columns of an employee.
type Field string

const (
	FieldName       Field = "name"
	FieldDepartment Field = "department"
	FieldPosition   Field = "position"
)

// Fields lists the editable columns in display order.
var Fields = []Field{FieldName, FieldDepartment, FieldPosition}

// ParseField converts a column name into a Field.
func ParseField(value string) (Field, error) {
	for _, f := range Fields {
		if string(f) == value {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown employee field %q", value)
}

// Title returns the column header for the field.
func (f Field) Title() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldDepartment:
		return "Department"
	case FieldPosition:
		return "Position"
	default:
		return string(f)
	}
}

// Get returns the value of the given field.
func (e Employee) Get(field Field) string {
	switch field {
	case FieldName:
		return e.Name
	case FieldDepartment:
		return e.Department
	case FieldPosition:
		return e.Position
	default:
		return ""
	}
}

// With returns a copy of the employee with the given field replaced.
func (e Employee) With(field Field, value string) Employee {
	switch field {
	case FieldName:
		e.Name = value
	case FieldDepartment:
		e.Department = value
	case FieldPosition:
		e.Position = value
	}

	return e
}

// Missing returns the fields that are empty, in display order.
func (e Employee) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if e.Get(f) == "" {
			missing = append(missing, f)
		}
	}

	return missing
}
