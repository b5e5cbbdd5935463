package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	config "task-manager.com/task-manager/internal/configs"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "task-manager",
	Short:         "Personal task manager service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
}

// bootstrap loads the configuration, installs the JSON logger and opens the
// migrated database shared by every command.
func bootstrap() (config.Config, *gorm.DB, error) {
	config.LoadDotEnv()

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	db, err := config.NewDatabaseClient(cfg.DatabaseDSN)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return config.Config{}, nil, err
	}

	return cfg, db, nil
}
