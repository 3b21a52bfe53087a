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

type CustomHabitService struct {
	customs  repository.CustomHabitsRepositoryI
	gateway  repository.GatewayI
	validate *validator.Validate
	reward   func() int
}

func NewCustomHabitService(customs repository.CustomHabitsRepositoryI, gateway repository.GatewayI) *CustomHabitService {
	return &CustomHabitService{
		customs:  customs,
		gateway:  gateway,
		validate: InitValidator(),
		reward:   entity.RandomXPReward,
	}
}

func (cs *CustomHabitService) Create(ctx context.Context, actor Actor, req CreateCustomHabitRequest) (*entity.CustomHabit, error) {
	if err := validateStruct(cs.validate, req); err != nil {
		return nil, err
	}
	habit := &entity.CustomHabit{
		Description:  req.Description,
		HabitOwnerID: actor.ID,
		XPReward:     cs.reward(),
	}
	if err := cs.customs.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("creating custom habit: %w", err)
	}
	return habit, nil
}

func (cs *CustomHabitService) Get(ctx context.Context, id uuid.UUID) (*entity.CustomHabit, error) {
	habit, err := cs.customs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting custom habit: %w", err)
	}
	return habit, nil
}

func (cs *CustomHabitService) List(ctx context.Context, actor Actor) ([]*entity.CustomHabit, error) {
	if !actor.IsAdmin {
		return nil, errorvalues.ErrAdminRequired
	}
	habits, err := cs.customs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing custom habits: %w", err)
	}
	return habits, nil
}

func (cs *CustomHabitService) ListOwn(ctx context.Context, actor Actor) ([]*entity.CustomHabit, error) {
	habits, err := cs.customs.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing user's custom habits: %w", err)
	}
	return habits, nil
}

func (cs *CustomHabitService) Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.CustomHabitPatch) (*entity.CustomHabit, error) {
	if err := cs.checkOwner(ctx, actor, id); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, errorvalues.ErrEmptyPatch
	}
	if err := validateStruct(cs.validate, patch); err != nil {
		return nil, err
	}
	habit, err := cs.customs.Patch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating custom habit: %w", err)
	}
	return habit, nil
}

func (cs *CustomHabitService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := cs.checkOwner(ctx, actor, id); err != nil {
		return err
	}
	deleted, err := cs.gateway.Delete(ctx, repository.KindCustomHabit, id)
	if err != nil {
		return fmt.Errorf("deleting custom habit: %w", err)
	}
	if !deleted {
		return errorvalues.ErrCustomHabitNotFound
	}
	return nil
}

func (cs *CustomHabitService) checkOwner(ctx context.Context, actor Actor, id uuid.UUID) error {
	habit, err := cs.customs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("getting custom habit: %w", err)
	}
	if !actor.CanManage(habit.HabitOwnerID) {
		return errorvalues.ErrWrongOwner
	}
	return nil
}
