package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rakhadjo/internhub/internal/repository"
	"github.com/rakhadjo/internhub/internal/seed"
	"github.com/rakhadjo/internhub/internal/service"
	"github.com/rakhadjo/internhub/pkg/config"
	"github.com/rakhadjo/internhub/pkg/identity"
	"github.com/rakhadjo/internhub/pkg/logger"
	"github.com/rakhadjo/internhub/pkg/storage"
)

// App holds the session dependencies. Every invocation builds a fresh
// in-memory roster; nothing survives the process.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	roster     *service.RosterService
	candidates *service.CandidateService
	exports    *service.ExportService
}

var (
	seedCount int
	randSeed  int64
	app       *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "internhub",
		Short: "Intern roster tracker",
		Long:  "Track an intern roster in memory: filter, page, summarize and export the visible rows.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync() //nolint:errcheck
			}
		},
	}

	rootCmd.PersistentFlags().IntVar(&seedCount, "count", 0, "number of randomized records to seed the session with (0 = config default)")
	rootCmd.PersistentFlags().Int64Var(&randSeed, "seed", 0, "RNG seed for the session roster (0 = time-based)")

	rootCmd.AddCommand(
		listCmd(),
		summaryCmd(),
		exportCmd(),
		cleanupCmd(),
		addCmd(),
		setCmd(),
		candidatesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ids, err := identity.NewSnowflake(1, identity.InternPrefix)
	if err != nil {
		return fmt.Errorf("init id generator: %w", err)
	}

	store, err := storage.NewLocalStorage(cfg.Export.StorageDir)
	if err != nil {
		return fmt.Errorf("init export storage: %w", err)
	}

	validate := validator.New()
	roster := service.NewRosterService(repository.NewRosterRepository(), ids, validate, logr, cfg.Roster.SpeakersTarget)
	candidates := service.NewCandidateService(repository.NewCandidateRepository(), validate, logr)
	exports := service.NewExportService(store, nil, nil, cfg.Export.FilenamePrefix, cfg.Export.ResultTTL, logr)

	count := seedCount
	if count <= 0 {
		count = cfg.Roster.SeedCount
	}
	var rng *rand.Rand
	if randSeed != 0 {
		rng = rand.New(rand.NewSource(randSeed))
	}
	factory := seed.NewFactory(rng, ids, cfg.Roster.SpeakersTarget)
	roster.Seed(factory.Batch(count))

	app = &App{cfg: cfg, logger: logr, roster: roster, candidates: candidates, exports: exports}

	// Best-effort startup ping; the result never affects anything.
	health := service.NewHealthService(cfg.Health, logr)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Health.Timeout)
		defer cancel()
		_ = health.Ping(ctx)
	}()

	return nil
}
