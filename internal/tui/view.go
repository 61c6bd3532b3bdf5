package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const columnWidth = 20

func (m Model) View() string {
	start := time.Now()
	defer func() {
		m.metrics.RenderDuration.WithLabelValues("tui").Observe(time.Since(start).Seconds())
	}()

	snap := m.staff.Snapshot()

	var form strings.Builder
	for _, input := range m.form {
		form.WriteString(input.View() + "\n")
	}
	form.WriteString("[ " + snap.SubmitLabel + " ]")
	if m.status != "" {
		form.WriteString("\n" + m.styles.Error.Render(m.status))
	}

	var filter strings.Builder
	for i, input := range m.filter {
		if i > 0 {
			filter.WriteString("\n")
		}
		filter.WriteString(input.View())
	}

	var table strings.Builder
	headers := make([]string, 0, len(models.Fields)+1)
	for _, field := range models.Fields {
		title := field.Title()
		if glyph := snap.Indicator(field); glyph != "" {
			title += " " + glyph
		}
		headers = append(headers, pad(title))
	}
	headers = append(headers, "Actions")
	table.WriteString(m.styles.Header.Render(strings.Join(headers, " ")) + "\n")

	for i, row := range snap.Rows {
		var line string
		if snap.IsEditing(row) {
			cells := make([]string, 0, len(m.edit)+1)
			for _, input := range m.edit {
				cells = append(cells, input.View())
			}
			cells = append(cells, "[enter] Update  [esc] Cancel")
			line = m.styles.Editing.Render(strings.Join(cells, " "))
		} else {
			cells := make([]string, 0, len(models.Fields)+1)
			for _, field := range models.Fields {
				cells = append(cells, pad(row.Employee.Get(field)))
			}
			cells = append(cells, "[e] Edit  [d] Delete  [f] Load")
			line = strings.Join(cells, " ")
			if m.focus == ZoneTable && i == m.cursor {
				line = m.styles.Selected.Render(line)
			}
		}
		table.WriteString(line + "\n")
	}
	table.WriteString(fmt.Sprintf("Showing %d of %d", len(snap.Rows), snap.Total))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Employee Management"),
		m.zone(ZoneForm).Render(form.String()),
		m.zone(ZoneFilter).Render(filter.String()),
		m.zone(ZoneTable).Render(table.String()),
		m.styles.Help.Render("tab/shift+tab: switch zone • 1/2/3: sort • e: edit • d: delete • f: load • q: quit"),
	)
}

func (m Model) zone(z Zone) lipgloss.Style {
	if m.focus == z {
		return m.styles.Active
	}

	return m.styles.Zone
}

// pad fits s into exactly columnWidth terminal cells.
func pad(s string) string {
	if lipgloss.Width(s) > columnWidth {
		s = ansi.Truncate(s, columnWidth, "…")
	}

	return s + strings.Repeat(" ", columnWidth-lipgloss.Width(s))
}
