package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/UnknownOlympus/roster/internal/config"
	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/parser"
	"github.com/UnknownOlympus/roster/internal/repository"
	"github.com/UnknownOlympus/roster/internal/server"
	"github.com/UnknownOlympus/roster/internal/services/employees"
	"github.com/UnknownOlympus/roster/internal/services/entry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the web roster.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := sl.SetupLogger(cfg.Env, os.Stdout)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	employeeRepo := repository.NewEmployeeRepository(appMetrics)
	staff := employees.NewStaff(logger, employeeRepo, appMetrics, entry.TimestampIDs(time.Now))

	if cfg.Roster.SeedFile != "" {
		seed, err := parser.LoadSeedFile(cfg.Roster.SeedFile)
		if err != nil {
			logger.Error("Failed to load roster seed", "file", cfg.Roster.SeedFile, sl.Err(err))
			os.Exit(1)
		}
		staff.Seed(seed)
	}

	web := server.NewWeb(logger, staff, appMetrics)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, web, cfg.Monitoring.Port, localURL(cfg.HTTP.Address))
	}()

	go func() {
		defer wgr.Done()
		srv := &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           web.Routes(),
			ReadHeaderTimeout: 5 * time.Second, //nolint:mnd // same as the monitoring server
		}
		server.Serve(ctx, logger.With(slog.String("server", "web")), srv)
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "address", cfg.HTTP.Address)

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// localURL turns a listen address such as ":8080" into a URL the health check can probe.
func localURL(address string) string {
	if len(address) > 0 && address[0] == ':' {
		address = "localhost" + address
	}

	return "http://" + address + "/"
}
