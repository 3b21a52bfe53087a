package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository"
	repomocks "github.com/limbo/levelup/internal/repository/mocks"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/entity"
)

var admin = service.Actor{ID: uuid.New(), IsAdmin: true}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	newService := func(t *testing.T) (*service.CategoryService, *repomocks.MockCategoriesRepositoryI, *repomocks.MockPresetHabitsRepositoryI, *repomocks.MockGatewayI) {
		ctrl := gomock.NewController(t)
		categories := repomocks.NewMockCategoriesRepositoryI(ctrl)
		presets := repomocks.NewMockPresetHabitsRepositoryI(ctrl)
		gateway := repomocks.NewMockGatewayI(ctrl)
		return service.NewCategoryService(categories, presets, gateway), categories, presets, gateway
	}

	t.Run("create by admin", func(t *testing.T) {
		cs, categories, _, _ := newService(t)
		categories.EXPECT().Create(gomock.Any(), "Health").Return(&entity.Category{Name: "Health"}, nil)
		c, err := cs.Create(ctx, admin, service.CreateCategoryRequest{Name: "Health"})
		require.NoError(t, err)
		assert.Equal(t, "Health", c.Name)
	})
	t.Run("create by user", func(t *testing.T) {
		cs, _, _, _ := newService(t)
		_, err := cs.Create(ctx, service.Actor{ID: uuid.New()}, service.CreateCategoryRequest{Name: "Health"})
		assert.ErrorIs(t, err, errorvalues.ErrAdminRequired)
	})
	t.Run("duplicate", func(t *testing.T) {
		cs, categories, _, _ := newService(t)
		categories.EXPECT().Create(gomock.Any(), "Health").Return(nil, errorvalues.ErrCategoryExists)
		_, err := cs.Create(ctx, admin, service.CreateCategoryRequest{Name: "Health"})
		assert.ErrorIs(t, err, errorvalues.ErrCategoryExists)
	})
	t.Run("habits of missing category", func(t *testing.T) {
		cs, categories, _, _ := newService(t)
		categories.EXPECT().Get(gomock.Any(), "Nope").Return(nil, errorvalues.ErrCategoryNotFound)
		_, err := cs.PresetHabits(ctx, "Nope")
		assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
	})
	t.Run("habits of category", func(t *testing.T) {
		cs, categories, presets, _ := newService(t)
		habits := []*entity.PresetHabit{{ID: uuid.New(), Description: "Walk"}}
		categories.EXPECT().Get(gomock.Any(), "Health").Return(&entity.Category{Name: "Health"}, nil)
		presets.EXPECT().ListByCategory(gomock.Any(), "Health").Return(habits, nil)
		res, err := cs.PresetHabits(ctx, "Health")
		require.NoError(t, err)
		assert.Equal(t, habits, res)
	})
	t.Run("delete missing", func(t *testing.T) {
		cs, _, _, gateway := newService(t)
		gateway.EXPECT().Delete(gomock.Any(), repository.KindCategory, "Health").Return(false, nil)
		assert.ErrorIs(t, cs.Delete(ctx, admin, "Health"), errorvalues.ErrCategoryNotFound)
	})
}

func TestPresetHabitService(t *testing.T) {
	ctx := context.Background()
	newService := func(t *testing.T) (*service.PresetHabitService, *repomocks.MockPresetHabitsRepositoryI, *repomocks.MockGatewayI) {
		ctrl := gomock.NewController(t)
		presets := repomocks.NewMockPresetHabitsRepositoryI(ctrl)
		gateway := repomocks.NewMockGatewayI(ctrl)
		return service.NewPresetHabitService(presets, gateway), presets, gateway
	}

	t.Run("create draws reward", func(t *testing.T) {
		ps, presets, _ := newService(t)
		category := "Health"
		presets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		habit, err := ps.Create(ctx, admin, service.CreatePresetHabitRequest{Description: "Walk 10k steps", CategoryName: &category})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, habit.XPReward, entity.MinXPReward)
		assert.LessOrEqual(t, habit.XPReward, entity.MaxXPReward)
		assert.Equal(t, &category, habit.CategoryName)
	})
	t.Run("create with unknown category", func(t *testing.T) {
		ps, presets, _ := newService(t)
		presets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrCategoryNotFound)
		_, err := ps.Create(ctx, admin, service.CreatePresetHabitRequest{Description: "Walk", CategoryName: ptr("Nope")})
		assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
	})
	t.Run("description too long", func(t *testing.T) {
		ps, _, _ := newService(t)
		_, err := ps.Create(ctx, admin, service.CreatePresetHabitRequest{Description: strings.Repeat("a", 301)})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("update by user", func(t *testing.T) {
		ps, _, _ := newService(t)
		_, err := ps.Update(ctx, service.Actor{ID: uuid.New()}, uuid.New(), entity.PresetHabitPatch{Description: ptr("x")})
		assert.ErrorIs(t, err, errorvalues.ErrAdminRequired)
	})
	t.Run("update", func(t *testing.T) {
		ps, presets, _ := newService(t)
		id := uuid.New()
		patch := entity.PresetHabitPatch{Description: ptr("Run")}
		presets.EXPECT().Patch(gomock.Any(), id, patch).Return(&entity.PresetHabit{ID: id, Description: "Run"}, nil)
		habit, err := ps.Update(ctx, admin, id, patch)
		require.NoError(t, err)
		assert.Equal(t, "Run", habit.Description)
	})
	t.Run("delete", func(t *testing.T) {
		ps, _, gateway := newService(t)
		id := uuid.New()
		gateway.EXPECT().Delete(gomock.Any(), repository.KindPresetHabit, id).Return(true, nil)
		assert.NoError(t, ps.Delete(ctx, admin, id))
	})
}

func TestCustomHabitService(t *testing.T) {
	ctx := context.Background()
	owner := service.Actor{ID: uuid.New()}
	newService := func(t *testing.T) (*service.CustomHabitService, *repomocks.MockCustomHabitsRepositoryI, *repomocks.MockGatewayI) {
		ctrl := gomock.NewController(t)
		customs := repomocks.NewMockCustomHabitsRepositoryI(ctrl)
		gateway := repomocks.NewMockGatewayI(ctrl)
		return service.NewCustomHabitService(customs, gateway), customs, gateway
	}

	t.Run("create owned by actor", func(t *testing.T) {
		cs, customs, _ := newService(t)
		customs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		habit, err := cs.Create(ctx, owner, service.CreateCustomHabitRequest{Description: "Meditate"})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, habit.HabitOwnerID)
		assert.GreaterOrEqual(t, habit.XPReward, entity.MinXPReward)
	})
	t.Run("list all requires admin", func(t *testing.T) {
		cs, _, _ := newService(t)
		_, err := cs.List(ctx, owner)
		assert.ErrorIs(t, err, errorvalues.ErrAdminRequired)
	})
	t.Run("update foreign habit", func(t *testing.T) {
		cs, customs, _ := newService(t)
		id := uuid.New()
		customs.EXPECT().GetByID(gomock.Any(), id).Return(&entity.CustomHabit{ID: id, HabitOwnerID: uuid.New()}, nil)
		_, err := cs.Update(ctx, owner, id, entity.CustomHabitPatch{Description: ptr("x")})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("delete own habit", func(t *testing.T) {
		cs, customs, gateway := newService(t)
		id := uuid.New()
		customs.EXPECT().GetByID(gomock.Any(), id).Return(&entity.CustomHabit{ID: id, HabitOwnerID: owner.ID}, nil)
		gateway.EXPECT().Delete(gomock.Any(), repository.KindCustomHabit, id).Return(true, nil)
		assert.NoError(t, cs.Delete(ctx, owner, id))
	})
	t.Run("delete missing habit", func(t *testing.T) {
		cs, customs, _ := newService(t)
		id := uuid.New()
		customs.EXPECT().GetByID(gomock.Any(), id).Return(nil, errorvalues.ErrCustomHabitNotFound)
		assert.ErrorIs(t, cs.Delete(ctx, owner, id), errorvalues.ErrCustomHabitNotFound)
	})
}
