// ABOUTME: Root command wiring configuration, logging, storage and AI.
// ABOUTME: Opens the store before each command and closes it afterwards.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/harper/neonotes/internal/ai"
	"github.com/harper/neonotes/internal/app"
	"github.com/harper/neonotes/internal/config"
	"github.com/harper/neonotes/internal/kv"
	"github.com/harper/neonotes/internal/logging"
	"github.com/harper/neonotes/internal/storage"
	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	logger    *log.Logger
	store     kv.Store
	state     *app.State
	assistant *ai.Client
)

var rootCmd = &cobra.Command{
	Use:   "neonotes",
	Short: "Share and study lecture notes",
	Long: `neonotes is a study-notes sharing app for the terminal.

Browse, upload, like and download notes, discuss them in comments, and
study them with an AI tutor backed by Gemini.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlags(cmd)

		logger = logging.New(os.Stderr, cfg.LogLevel)

		store, err = kv.Open(cmd.Context(), kv.Options{
			Backend:  cfg.Store,
			Path:     cfg.DataDir,
			RedisURL: cfg.RedisURL,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
		}

		state = app.New(storage.New(store, logger), logger)
		if err := state.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load notes: %w", err)
		}

		assistant = ai.New(ai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.AIBaseURL,
			Timeout: cfg.Timeout(),
		}, logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store, _ = flags.GetString("store")
	}
	if flags.Changed("db") {
		cfg.DataDir, _ = flags.GetString("db")
	}
	if flags.Changed("redis-url") {
		cfg.RedisURL, _ = flags.GetString("redis-url")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

// Execute runs the root command, printing any error.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	// PostRun is skipped when RunE fails.
	if cerr := closeStore(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	rootCmd.PersistentFlags().String("store", "", "storage backend (badger|redis)")
	rootCmd.PersistentFlags().String("db", "", "badger data directory")
	rootCmd.PersistentFlags().String("redis-url", "", "redis connection URL")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
}
