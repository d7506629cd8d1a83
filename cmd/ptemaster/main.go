package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/ptemaster/internal/advice"
	"github.com/alexanderramin/ptemaster/internal/catalog"
	"github.com/alexanderramin/ptemaster/internal/cli"
	"github.com/alexanderramin/ptemaster/internal/cloud"
	"github.com/alexanderramin/ptemaster/internal/db"
	"github.com/alexanderramin/ptemaster/internal/llm"
	"github.com/alexanderramin/ptemaster/internal/repository"
	"github.com/alexanderramin/ptemaster/internal/service"
	"github.com/alexanderramin/ptemaster/internal/syncer"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ptemaster/ptemaster.db
	dbPath := os.Getenv("PTEMASTER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ptemaster", "ptemaster.db")
	}

	// Optional custom task catalog.
	tasks := catalog.Tasks()
	if path := os.Getenv("PTEMASTER_CATALOG"); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return err
		}
		tasks = loaded
	}

	cfg := service.TrackerConfig{
		Catalog:  tasks,
		Debounce: envDurationMs("PTEMASTER_SYNC_DEBOUNCE_MS", syncer.DefaultDebounce),
	}
	if envBool("PTEMASTER_SEED_HISTORY", true) {
		cfg.SeedHistory = catalog.SampleHistory()
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	reminderRepo := repository.NewSQLiteReminderRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	gateway := cloud.NewLocalGateway(snapshotRepo, envDurationMs("PTEMASTER_CLOUD_LATENCY_MS", 0))

	// Optional ambient logging of syncs and use cases.
	var syncObserver syncer.Observer = syncer.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if envBool("PTEMASTER_LOG", false) {
		syncObserver = syncer.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Coach: LLM-backed when enabled, static tips otherwise.
	var llmClient llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}

	app := &cli.App{
		Sessions:  service.NewSessionService(sessionRepo, envDurationMs("PTEMASTER_LOGIN_LATENCY_MS", 0), useCaseObserver),
		Tracker:   service.NewTrackerService(cfg, gateway, syncObserver),
		Reminders: service.NewReminderService(reminderRepo, uow),
		Coach:     advice.NewCoach(llmClient),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func envDurationMs(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func envBool(name string, fallback bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
