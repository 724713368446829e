// Package main is the entry point for the esglens accuracy scoring service.
// It loads the ESG company-year dataset, wires the scoring engine with its
// SQLite-backed caches, and serves summaries, exports and scorecards over
// HTTP, rescoring on a schedule when configured.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aristath/esglens/internal/config"
	"github.com/aristath/esglens/internal/database"
	"github.com/aristath/esglens/internal/modules/accuracy"
	"github.com/aristath/esglens/internal/modules/dataset"
	"github.com/aristath/esglens/internal/modules/reports"
	"github.com/aristath/esglens/internal/scheduler"
	"github.com/aristath/esglens/internal/server"
	"github.com/aristath/esglens/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting esglens")

	// Databases: datasets.db keeps ingested datasets, cache.db holds
	// generated scorecards.
	datasetsDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "datasets.db"),
		Profile: database.ProfileStandard,
		Name:    "datasets",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open datasets database")
	}
	defer datasetsDB.Close()

	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "cache.db"),
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	datasetRepo, err := dataset.NewRepository(datasetsDB.Conn(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize dataset repository")
	}

	reportRepo, err := reports.NewRepository(cacheDB.Conn(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize reports repository")
	}

	loader := dataset.NewLoader(log)
	ds, err := loader.LoadCSV(cfg.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("Failed to load dataset")
	}

	if err := datasetRepo.Save("primary", ds); err != nil {
		log.Error().Err(err).Msg("Failed to persist ingested dataset")
	}

	engine, err := accuracy.NewEngine(accuracy.DefaultConfig(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scoring engine")
	}

	// Scheduled rescoring keeps the cached scorecard fresh when the source
	// CSV is replaced in place.
	sched := scheduler.New(log)
	if cfg.RescoreSchedule != "" {
		job := reports.NewRescoreJob(loader, engine, reportRepo, cfg.DatasetPath, log)
		if err := sched.AddJob(cfg.RescoreSchedule, job); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.RescoreSchedule).Msg("Failed to register rescore job")
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := server.New(server.Config{
		Log:        log,
		Config:     cfg,
		Dataset:    ds,
		Engine:     engine,
		ReportRepo: reportRepo,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Shutdown complete")
}
