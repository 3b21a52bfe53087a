package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

type PresetHabitService struct {
	presets  repository.PresetHabitsRepositoryI
	gateway  repository.GatewayI
	validate *validator.Validate
	reward   func() int
}

func NewPresetHabitService(presets repository.PresetHabitsRepositoryI, gateway repository.GatewayI) *PresetHabitService {
	return &PresetHabitService{
		presets:  presets,
		gateway:  gateway,
		validate: InitValidator(),
		reward:   entity.RandomXPReward,
	}
}

func (ps *PresetHabitService) Create(ctx context.Context, actor Actor, req CreatePresetHabitRequest) (*entity.PresetHabit, error) {
	if !actor.IsAdmin {
		return nil, errorvalues.ErrAdminRequired
	}
	if err := validateStruct(ps.validate, req); err != nil {
		return nil, err
	}
	habit := &entity.PresetHabit{
		Description:  req.Description,
		CategoryName: req.CategoryName,
		XPReward:     ps.reward(),
	}
	if err := ps.presets.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("creating preset habit: %w", err)
	}
	return habit, nil
}

func (ps *PresetHabitService) Get(ctx context.Context, id uuid.UUID) (*entity.PresetHabit, error) {
	habit, err := ps.presets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting preset habit: %w", err)
	}
	return habit, nil
}

func (ps *PresetHabitService) List(ctx context.Context) ([]*entity.PresetHabit, error) {
	habits, err := ps.presets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing preset habits: %w", err)
	}
	return habits, nil
}

func (ps *PresetHabitService) Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.PresetHabitPatch) (*entity.PresetHabit, error) {
	if !actor.IsAdmin {
		return nil, errorvalues.ErrAdminRequired
	}
	if patch.IsEmpty() {
		return nil, errorvalues.ErrEmptyPatch
	}
	if err := validateStruct(ps.validate, patch); err != nil {
		return nil, err
	}
	habit, err := ps.presets.Patch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating preset habit: %w", err)
	}
	return habit, nil
}

// Delete removes the habit from every list holding it.
func (ps *PresetHabitService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin {
		return errorvalues.ErrAdminRequired
	}
	deleted, err := ps.gateway.Delete(ctx, repository.KindPresetHabit, id)
	if err != nil {
		return fmt.Errorf("deleting preset habit: %w", err)
	}
	if !deleted {
		return errorvalues.ErrPresetHabitNotFound
	}
	return nil
}
