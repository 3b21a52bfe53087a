package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back SQL migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB) error {
			return goose.Up(db, migrationsDir)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB) error {
			return goose.Down(db, migrationsDir)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the status of every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB) error {
			return goose.Status(db, migrationsDir)
		})
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "./migrations", "Directory with goose SQL migrations")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func withDB(f func(db *sql.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	db, err := sql.Open("postgres", cfg.Postgres.PostgresURL())
	if err != nil {
		return fmt.Errorf("opening db: %w", err)
	}
	defer db.Close()
	if err = db.Ping(); err != nil {
		return fmt.Errorf("pinging db: %w", err)
	}
	return f(db)
}
