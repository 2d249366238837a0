package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/memmark/internal/platform"
	"github.com/aretw0/memmark/pkg/adapters/fs"
	"github.com/aretw0/memmark/pkg/catalog"
	"github.com/aretw0/memmark/pkg/core"
)

var (
	verbose     bool
	worldDir    string
	player      string
	catalogPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memmark",
	Short: "Inspect and edit item memory marks of a save",
	Long: `memmark reads and writes the per-character marks file (<player>.idr.json)
stored next to a save. Items are named by catalog entry or by type identifier.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := platform.LoadEnv()
		if err != nil {
			return err
		}
		if worldDir == "" {
			worldDir = cfg.WorldDir
		}
		if player == "" {
			player = cfg.Player
		}
		if catalogPath == "" {
			catalogPath = cfg.Catalog
		}

		level := slog.LevelInfo
		if verbose || cfg.Debug {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&worldDir, "world", "", "World folder holding the save (env MEMMARK_WORLD, default: search upwards)")
	rootCmd.PersistentFlags().StringVar(&player, "player", "", "Character name (env MEMMARK_PLAYER)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML item catalog (env MEMMARK_CATALOG)")
}

// slot resolves the save slot from flags and environment.
func slot() (core.SaveSlot, error) {
	dir := worldDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return core.SaveSlot{}, err
		}
		dir, err = platform.FindWorldRoot(wd)
		if err != nil {
			return core.SaveSlot{}, fmt.Errorf("no --world given: %w", err)
		}
	}
	if player == "" {
		return core.SaveSlot{}, fmt.Errorf("no --player given")
	}
	return core.SaveSlot{WorldDir: dir, Player: player}, nil
}

// openStore loads the marks of the selected slot.
func openStore(ctx context.Context) (*core.Store, *fs.Repository, error) {
	s, err := slot()
	if err != nil {
		return nil, nil, err
	}
	repo := fs.NewRepository(fs.Config{Slot: s, Logger: slog.Default()})
	store, err := platform.Open(ctx, s,
		platform.WithRepository(repo),
		platform.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, nil, err
	}
	return store, repo, nil
}

// lookupItem finds name in the catalog, falling back to a bare type identifier.
func lookupItem(name string) (core.Item, error) {
	c, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	return c.Lookup(name, true)
}
