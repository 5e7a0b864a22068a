package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/space-allocator/cmd/cli/commands"
	"github.com/jakechorley/space-allocator/internal/config"
	"github.com/jakechorley/space-allocator/pkg/core/registry"
	"github.com/jakechorley/space-allocator/pkg/postgres"
	"github.com/jakechorley/space-allocator/pkg/sqlite"
	"github.com/jakechorley/space-allocator/pkg/utils/logging"
	"github.com/jakechorley/space-allocator/pkg/utils/random"
)

var (
	seed int64
	app  *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Space Allocator CLI - Manage office and living space allocations",
		Long:  `A CLI tool for allocating fellows and staff to offices and living spaces, with persistence to a relational store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for random allocation decisions (0 = random)")

	rootCmd.AddCommand(addCommands()...)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCommands() []*cobra.Command {
	return []*cobra.Command{
		commands.CreateRoomCmd(app),
		commands.AddPersonCmd(app),
		commands.ReallocatePersonCmd(app),
		commands.LoadPeopleCmd(app),
		commands.PrintAllocationsCmd(app),
		commands.PrintUnallocatedCmd(app),
		commands.PrintRoomCmd(app),
		commands.SaveStateCmd(app),
		commands.LoadStateCmd(app),
		commands.InteractiveCmd(app),
	}
}

// initApp sets up logger, config, registry, and the store provider
func initApp() error {
	app.Ctx = context.Background()

	logger, err := logging.InitLogger("logs", "cli")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	logger.Debug("Loading configuration")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg

	rngSeed := seed
	if rngSeed == 0 && cfg.RandomSeed != nil {
		rngSeed = *cfg.RandomSeed
	}
	if rngSeed == 0 {
		rngSeed, err = random.NewSeed()
		if err != nil {
			return fmt.Errorf("failed to seed random source: %w", err)
		}
	}
	app.Registry = registry.New(random.NewSource(rngSeed))
	logger.Debug("Registry initialized", zap.Int64("seed", rngSeed))

	switch cfg.Backend {
	case "postgres":
		provider, err := postgres.NewProvider(app.Ctx, cfg.PostgresURL, cfg.ReservedStoreNames)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		app.Provider = provider
	default:
		app.Provider = sqlite.NewProvider(cfg.StoreDirectory, cfg.ReservedStoreNames)
	}
	logger.Info("Application initialized", zap.String("backend", cfg.Backend))

	return nil
}

func init() {
	app = &commands.AppContext{}
}
