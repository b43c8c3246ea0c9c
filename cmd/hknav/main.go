package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/hknav/internal/advisor"
	"github.com/alexanderramin/hknav/internal/cli"
	"github.com/alexanderramin/hknav/internal/db"
	"github.com/alexanderramin/hknav/internal/llm"
	"github.com/alexanderramin/hknav/internal/repository"
	"github.com/alexanderramin/hknav/internal/service"
	"github.com/alexanderramin/hknav/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file next to the binary's working directory supplies keys;
	// variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Determine DB path: env var or default ~/.hknav/hknav.db
	dbPath := os.Getenv("HKNAV_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".hknav", "hknav.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	verbose, _ := strconv.ParseBool(os.Getenv("HKNAV_LOG"))
	logger := slog.New(slog.DiscardHandler)
	opts := []service.Option{}
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	// Wire the assistant only when the LLM subsystem is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client, err := llm.New(ctx, llmCfg, observer)
		if err != nil {
			return fmt.Errorf("configuring assistant: %w", err)
		}
		opts = append(opts, service.WithAdvisor(advisor.NewService(client, logger)))
	}

	store := state.NewStore(repository.NewSQLiteSliceRepo(database), logger)
	app := &cli.App{
		Nav: service.Open(ctx, store, opts...),
	}

	// Detect interactive terminal for forms, spinners and the browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
