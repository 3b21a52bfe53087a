package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/internal/service/mocks"
	"github.com/limbo/levelup/pkg/entity"
)

const seedYAML = `
categories:
  - name: Health
    habits:
      - Drink 8 glasses of water
      - Walk 10000 steps
  - name: Mindfulness
    habits:
      - Meditate for 10 minutes
`

func TestParseSeed(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		sf, err := parseSeed(strings.NewReader(seedYAML))
		require.NoError(t, err)
		require.Len(t, sf.Categories, 2)
		assert.Equal(t, "Health", sf.Categories[0].Name)
		assert.Equal(t, []string{"Meditate for 10 minutes"}, sf.Categories[1].Habits)
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := parseSeed(strings.NewReader("categories:\n  - title: Health\n"))
		assert.Error(t, err)
	})
	t.Run("category without name", func(t *testing.T) {
		_, err := parseSeed(strings.NewReader("categories:\n  - habits: [Run]\n"))
		assert.ErrorContains(t, err, "has no name")
	})
}

func TestSeed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sf, err := parseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	t.Run("creates missing rows only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		categories := mocks.NewMockCategoryServiceI(ctrl)
		presets := mocks.NewMockPresetHabitServiceI(ctrl)

		categories.EXPECT().Create(gomock.Any(), service.Actor{IsAdmin: true}, service.CreateCategoryRequest{Name: "Health"}).
			Return(nil, errorvalues.ErrCategoryExists)
		categories.EXPECT().PresetHabits(gomock.Any(), "Health").
			Return([]*entity.PresetHabit{{ID: uuid.New(), Description: "Walk 10000 steps"}}, nil)
		categories.EXPECT().Create(gomock.Any(), gomock.Any(), service.CreateCategoryRequest{Name: "Mindfulness"}).
			Return(&entity.Category{Name: "Mindfulness"}, nil)
		categories.EXPECT().PresetHabits(gomock.Any(), "Mindfulness").Return(nil, nil)

		var created []string
		presets.EXPECT().Create(gomock.Any(), service.Actor{IsAdmin: true}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Actor, req service.CreatePresetHabitRequest) (*entity.PresetHabit, error) {
				created = append(created, *req.CategoryName+"/"+req.Description)
				return &entity.PresetHabit{ID: uuid.New(), Description: req.Description, CategoryName: req.CategoryName}, nil
			}).Times(2)

		stats, err := seed(context.Background(), sf, categories, presets, logger)
		require.NoError(t, err)
		assert.Equal(t, SeedStats{Categories: 1, Habits: 2}, stats)
		assert.Equal(t, []string{"Health/Drink 8 glasses of water", "Mindfulness/Meditate for 10 minutes"}, created)
	})
	t.Run("stops on storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		categories := mocks.NewMockCategoryServiceI(ctrl)
		presets := mocks.NewMockPresetHabitServiceI(ctrl)
		categories.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conn refused"))

		_, err := seed(context.Background(), sf, categories, presets, logger)
		assert.ErrorContains(t, err, `creating category "Health"`)
	})
}

func TestRootCmdHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})
	require.NoError(t, rootCmd.Execute())
	for _, sub := range []string{"migrate", "seed"} {
		assert.Contains(t, buf.String(), sub)
	}
}
