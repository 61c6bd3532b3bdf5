package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/UnknownOlympus/roster/internal/models"
)

// ErrNoTable is returned when the document has no roster table body.
var ErrNoTable = errors.New("no roster table found")

// LoadSeedFile reads a roster HTML document from path.
func LoadSeedFile(path string) ([]models.Employee, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	return ParseEmployeeFromBody(file)
}

// ParseEmployeeFromBody extracts employees from the rows of `table tbody`.
// The first three cells of a row hold name, department and position; a cell
// holding an input contributes the input's value. Rows without a name are skipped.
func ParseEmployeeFromBody(in io.Reader) ([]models.Employee, error) {
	doc, err := goquery.NewDocumentFromReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html document: %w", err)
	}

	body := doc.Find("table tbody")
	if body.Length() == 0 {
		return nil, ErrNoTable
	}

	var employees []models.Employee

	body.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < len(models.Fields) {
			return
		}

		employee := models.Employee{}
		for i, field := range models.Fields {
			employee = employee.With(field, cellText(cells.Eq(i)))
		}

		if employee.Name == "" {
			return
		}

		employees = append(employees, employee)
	})

	return employees, nil
}

func cellText(cell *goquery.Selection) string {
	if input := cell.Find("input"); input.Length() > 0 {
		return strings.TrimSpace(input.AttrOr("value", ""))
	}

	return strings.TrimSpace(cell.Text())
}
