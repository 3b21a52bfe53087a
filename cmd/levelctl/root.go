package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/limbo/levelup/pkg/config"
)

var envPath string

var rootCmd = &cobra.Command{
	Use:   "levelctl",
	Short: "LevelUp maintenance tool",
	Long: `levelctl manages the LevelUp database.

It applies the SQL migrations and loads the category and preset habit
catalogue from a YAML seed file.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envPath, "env", config.DefaultPath, "Path to the .env file")
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(envPath)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
