package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/UnknownOlympus/roster/internal/config"
	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/parser"
	"github.com/UnknownOlympus/roster/internal/repository"
	"github.com/UnknownOlympus/roster/internal/services/employees"
	"github.com/UnknownOlympus/roster/internal/services/entry"
	"github.com/UnknownOlympus/roster/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
)

// main is the entry point of the terminal roster.
func main() {
	os.Exit(run())
}

// run starts the terminal roster and returns the process exit code.
func run() int {
	cfg := config.MustLoad()

	// The terminal belongs to the program, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.TUI.LogFile != "" {
		file, err := tea.LogToFile(cfg.TUI.LogFile, "")
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to open log file:", err)
			return 1
		}
		defer file.Close()
		out = file
	}
	logger := sl.SetupLogger(cfg.Env, out)

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	employeeRepo := repository.NewEmployeeRepository(appMetrics)
	staff := employees.NewStaff(logger, employeeRepo, appMetrics, entry.TimestampIDs(time.Now))

	if cfg.Roster.SeedFile != "" {
		seed, err := parser.LoadSeedFile(cfg.Roster.SeedFile)
		if err != nil {
			logger.Error("Failed to load roster seed", "file", cfg.Roster.SeedFile, sl.Err(err))
			fmt.Fprintln(os.Stderr, "failed to load roster seed:", err)
			return 1
		}
		staff.Seed(seed)
	}

	if _, err := tea.NewProgram(tui.New(logger, staff, appMetrics), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("Terminal roster failed", sl.Err(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	return 0
}
