package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/cleanup"
)

var seedPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories and preset habits from a YAML file",
	Long: `Creates every category and preset habit listed in the seed file.
Existing categories and habits with the same description are kept, so the
command can be run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedPath, "file", "f", "./configs/seed.yaml", "Seed file")
}

type SeedFile struct {
	Categories []SeedCategory `yaml:"categories"`
}

type SeedCategory struct {
	Name   string   `yaml:"name"`
	Habits []string `yaml:"habits"`
}

type SeedStats struct {
	Categories int
	Habits     int
}

func parseSeed(r io.Reader) (*SeedFile, error) {
	var sf SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	for i, c := range sf.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("category #%d has no name", i+1)
		}
	}
	return &sf, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	service.InitValidator()
	logger := newLogger()
	f, err := os.Open(seedPath)
	if err != nil {
		return err
	}
	defer f.Close()
	sf, err := parseSeed(f)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer cleanup.CleanUp()
	pool, err := repository.NewPool(cmd.Context(), cfg.Postgres)
	if err != nil {
		return err
	}
	registry := repository.NewRegistry(pool)
	stats, err := seed(cmd.Context(), sf,
		service.NewCategoryService(registry.Categories, registry.PresetHabits, registry),
		service.NewPresetHabitService(registry.PresetHabits, registry),
		logger)
	if err != nil {
		return err
	}
	logger.Info("seeding finished", slog.Int("categories", stats.Categories), slog.Int("habits", stats.Habits))
	return nil
}

// seed creates what is missing and reports how many rows were added.
func seed(ctx context.Context, sf *SeedFile, categories service.CategoryServiceI,
	presets service.PresetHabitServiceI, logger *slog.Logger) (SeedStats, error) {
	var stats SeedStats
	actor := service.Actor{IsAdmin: true}
	for _, c := range sf.Categories {
		_, err := categories.Create(ctx, actor, service.CreateCategoryRequest{Name: c.Name})
		switch {
		case err == nil:
			stats.Categories++
		case errors.Is(err, errorvalues.ErrCategoryExists):
			logger.Debug("category already exists", slog.String("category", c.Name))
		default:
			return stats, fmt.Errorf("creating category %q: %w", c.Name, err)
		}

		existing, err := categories.PresetHabits(ctx, c.Name)
		if err != nil {
			return stats, fmt.Errorf("listing habits of %q: %w", c.Name, err)
		}
		known := make(map[string]struct{}, len(existing))
		for _, h := range existing {
			known[h.Description] = struct{}{}
		}
		for _, desc := range c.Habits {
			if _, ok := known[desc]; ok {
				continue
			}
			name := c.Name
			if _, err = presets.Create(ctx, actor, service.CreatePresetHabitRequest{
				Description:  desc,
				CategoryName: &name,
			}); err != nil {
				return stats, fmt.Errorf("creating habit %q: %w", desc, err)
			}
			known[desc] = struct{}{}
			stats.Habits++
		}
	}
	return stats, nil
}
