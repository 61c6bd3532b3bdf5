package models_test

import (
	"testing"

	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, f := range models.Fields {
		got, err := models.ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := models.ParseField("salary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"salary"`)
}

func TestEmployee_GetWith(t *testing.T) {
	t.Parallel()

	emp := models.Employee{ID: 7, Name: "Alice", Department: "Eng", Position: "Dev"}

	assert.Equal(t, "Alice", emp.Get(models.FieldName))
	assert.Equal(t, "Eng", emp.Get(models.FieldDepartment))
	assert.Equal(t, "Dev", emp.Get(models.FieldPosition))
	assert.Empty(t, emp.Get(models.Field("unknown")))

	changed := emp.With(models.FieldDepartment, "Sales")
	assert.Equal(t, "Sales", changed.Department)
	assert.Equal(t, "Eng", emp.Department, "With must not mutate the receiver")
	assert.Equal(t, int64(7), changed.ID)
}

func TestEmployee_Missing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.Fields, models.Employee{}.Missing())
	assert.Equal(t, []models.Field{models.FieldPosition},
		models.Employee{Name: "Carol", Department: "HR"}.Missing())
	assert.Empty(t, models.Employee{Name: "Carol", Department: "HR", Position: "Mgr"}.Missing())
}

func TestField_Title(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Name", models.FieldName.Title())
	assert.Equal(t, "Department", models.FieldDepartment.Title())
	assert.Equal(t, "Position", models.FieldPosition.Title())
}
