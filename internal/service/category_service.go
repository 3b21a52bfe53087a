package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

type CategoryService struct {
	categories repository.CategoriesRepositoryI
	presets    repository.PresetHabitsRepositoryI
	gateway    repository.GatewayI
	validate   *validator.Validate
}

func NewCategoryService(categories repository.CategoriesRepositoryI, presets repository.PresetHabitsRepositoryI,
	gateway repository.GatewayI) *CategoryService {
	return &CategoryService{
		categories: categories,
		presets:    presets,
		gateway:    gateway,
		validate:   InitValidator(),
	}
}

func (cs *CategoryService) Create(ctx context.Context, actor Actor, req CreateCategoryRequest) (*entity.Category, error) {
	if !actor.IsAdmin {
		return nil, errorvalues.ErrAdminRequired
	}
	if err := validateStruct(cs.validate, req); err != nil {
		return nil, err
	}
	c, err := cs.categories.Create(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return c, nil
}

func (cs *CategoryService) Get(ctx context.Context, name string) (*entity.Category, error) {
	c, err := cs.categories.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

func (cs *CategoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := cs.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

func (cs *CategoryService) PresetHabits(ctx context.Context, name string) ([]*entity.PresetHabit, error) {
	if _, err := cs.categories.Get(ctx, name); err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	habits, err := cs.presets.ListByCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("listing category habits: %w", err)
	}
	return habits, nil
}

// Delete removes the category. Its habits stay, without a category.
func (cs *CategoryService) Delete(ctx context.Context, actor Actor, name string) error {
	if !actor.IsAdmin {
		return errorvalues.ErrAdminRequired
	}
	deleted, err := cs.gateway.Delete(ctx, repository.KindCategory, name)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if !deleted {
		return errorvalues.ErrCategoryNotFound
	}
	return nil
}
