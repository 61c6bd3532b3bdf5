package parser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterPage = `
<html><body>
<table>
	<thead><tr><th>Name</th><th>Department</th><th>Position</th><th>Actions</th></tr></thead>
	<tbody>
		<tr>
			<td> Alice </td>
			<td>Eng</td>
			<td>Dev</td>
			<td><button>Edit</button></td>
		</tr>
		<tr>
			<td><input name="name" value="Bob"></td>
			<td><input name="department" value=" Sales "></td>
			<td><input name="position" value="Rep"></td>
		</tr>
		<tr>
			<td></td>
			<td>Ghost</td>
			<td>Nobody</td>
		</tr>
		<tr><td>Too short</td></tr>
	</tbody>
</table>
</body></html>
`

func TestParseEmployeeFromBody_Success(t *testing.T) {
	t.Parallel()

	employees, err := parser.ParseEmployeeFromBody(strings.NewReader(rosterPage))
	require.NoError(t, err)

	assert.Equal(t, []models.Employee{
		{Name: "Alice", Department: "Eng", Position: "Dev"},
		{Name: "Bob", Department: "Sales", Position: "Rep"},
	}, employees)
}

func TestParseEmployeeFromBody_NoTable(t *testing.T) {
	t.Parallel()

	_, err := parser.ParseEmployeeFromBody(strings.NewReader(`<html><body><p>empty</p></body></html>`))
	require.ErrorIs(t, err, parser.ErrNoTable)
}

func TestParseEmployeeFromBody_EmptyBody(t *testing.T) {
	t.Parallel()

	employees, err := parser.ParseEmployeeFromBody(strings.NewReader(`<table><tbody></tbody></table>`))
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestLoadSeedFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", rosterPage)

	employees, err := parser.LoadSeedFile(file.Name())
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := parser.LoadSeedFile(filepath.Join(t.TempDir(), "absent.html"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open seed file")
}
