package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mytheresa/cookbook/app/config"
	"github.com/mytheresa/cookbook/app/database"
	"github.com/mytheresa/cookbook/app/logging"
	"github.com/mytheresa/cookbook/models"
)

var (
	v       = config.New()
	cfg     *config.Config
	log     *zap.Logger
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "cookbook",
	Short: "GraphQL API for cookbook categories and ingredients",
	Long: `cookbook serves a GraphQL API over categories and the ingredients
filed under them, stored in PostgreSQL (or in memory for development).

Configuration is read from the environment and an optional .env file;
see POSTGRES_*, HTTP_ADDR, COOKBOOK_STORE, LOG_LEVEL and LOG_FORMAT.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(v)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file (ignored if missing)")
	rootCmd.PersistentFlags().String("store", config.StorePostgres, "Backing store: postgres or memory")
	bindFlag("cookbook.store", rootCmd.PersistentFlags().Lookup("store"))
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// openRepository builds the repository named by the config. The returned
// *gorm.DB is nil for the memory store.
func openRepository() (models.Repository, *gorm.DB, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return models.NewMemoryRepository(), nil, nil
	}
	db, err := database.Open(cfg.Postgres, log)
	if err != nil {
		return nil, nil, err
	}
	return models.NewCookbookRepository(db), db, nil
}
