package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexanderramin/caseflow/internal/cli"
	"github.com/alexanderramin/caseflow/internal/config"
	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/httpapi"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	caseRepo := repository.NewSQLiteCaseRepo(database)
	formRepo := repository.NewSQLiteFormRepo(database)
	recRepo := repository.NewSQLiteRecommendationRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	svc := httpapi.Services{
		Cases:           service.NewCaseService(caseRepo, observers...),
		Intake:          service.NewIntakeService(caseRepo, formRepo, uow, observers...),
		Recommendations: service.NewRecommendationService(caseRepo, formRepo, recRepo),
		Progress:        service.NewProgressService(caseRepo, formRepo, observers...),
	}

	app := &cli.App{
		Cases:            svc.Cases,
		Intake:           svc.Intake,
		Recommendations:  svc.Recommendations,
		Progress:         svc.Progress,
		Import:           service.NewImportService(uow, observers...),
		DefaultViewpoint: cfg.DefaultViewpoint,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) &&
			(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	}

	app.Serve = func(ctx context.Context, addr string) error {
		serverCfg := cfg.Server
		if addr != "" {
			serverCfg.Addr = addr
		}
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		h := httpapi.New(svc, logger, httpapi.NewMetrics(reg), cfg.DefaultViewpoint)
		return httpapi.Serve(ctx, serverCfg, httpapi.NewRouter(h, reg), logger)
	}

	return cli.NewRootCmd(app).Execute()
}
