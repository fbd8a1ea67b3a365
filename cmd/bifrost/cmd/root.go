package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/bifrost/pkg/config"
	"github.com/ssargent/bifrost/pkg/store"
	"github.com/ssargent/bifrost/pkg/store/badgerstore"
	"github.com/ssargent/bifrost/pkg/store/pebblestore"
)

type ctxKey string

const (
	storeKey  ctxKey = "store"
	configKey ctxKey = "config"
	closerKey ctxKey = "closer"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bifrost",
	Short: "Bifrost - Ordered KV Store",
	Long: `Bifrost is an ordered key-value store with typed, order-preserving
key encoding and range scans over pluggable backends.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !commandNeedsStore(cmd.Name()) {
			return nil
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		kv, closer, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
		}

		ctx := context.WithValue(cmd.Context(), storeKey, kv)
		ctx = context.WithValue(ctx, configKey, cfg)
		if closer != nil {
			ctx = context.WithValue(ctx, closerKey, closer)
		}
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closer, ok := cmd.Context().Value(closerKey).(io.Closer); ok {
			return closer.Close()
		}
		return nil
	},
}

// commandNeedsStore reports whether a subcommand operates on an open store.
// init only writes the configuration file, and opening a backend for it
// would create data directories before any config exists.
func commandNeedsStore(name string) bool {
	switch name {
	case "init", "help", "completion":
		return false
	default:
		return true
	}
}

// resolveConfig loads the config file if one exists and applies flag
// overrides on top of it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend, _ = cmd.Flags().GetString("backend")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the configured backend. The returned closer is nil for the
// in-memory backend.
func openStore(cfg *config.Config) (store.Store, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemStore(), nil, nil
	case config.BackendPebble:
		s, err := pebblestore.Open(filepath.Join(cfg.DataDir, "pebble"))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.BackendBadger:
		s, err := badgerstore.Open(filepath.Join(cfg.DataDir, "badger"))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// storeFromContext pulls the opened store out of the command context.
func storeFromContext(cmd *cobra.Command) (store.Store, bool) {
	kv, ok := cmd.Context().Value(storeKey).(store.Store)
	return kv, ok
}

// configFromContext pulls the resolved configuration out of the command context.
func configFromContext(cmd *cobra.Command) (*config.Config, bool) {
	cfg, ok := cmd.Context().Value(configKey).(*config.Config)
	return cfg, ok
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the store")
	rootCmd.PersistentFlags().StringP("backend", "b", "", "Storage backend (memory, pebble or badger)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
}
