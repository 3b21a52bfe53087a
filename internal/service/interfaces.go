package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/levelup/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// CanManage reports whether the actor may modify resources owned by owner.
func (a Actor) CanManage(owner uuid.UUID) bool {
	return a.IsAdmin || a.ID == owner
}

type RegisterRequest struct {
	Email    string `validate:"required,email,max=128"`
	Username string `validate:"required,alphanum_underscore,min=3,max=128"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateCategoryRequest struct {
	Name string `validate:"required,min=1,max=128"`
}

type CreatePresetHabitRequest struct {
	Description  string  `validate:"required,max=300"`
	CategoryName *string `validate:"omitempty,min=1,max=128"`
}

type CreateCustomHabitRequest struct {
	Description string `validate:"required,max=200"`
}

type CreateHabitListRequest struct {
	Name string `validate:"required,max=200"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// Session is the outcome of a successful login.
type Session struct {
	User  *entity.User       `json:"user"`
	Login entity.LoginResult `json:"login"`
}

// CompletionResult describes a completed habit and the updated list owner.
type CompletionResult struct {
	entity.Completion
	Item  *entity.HabitListItem `json:"item"`
	Owner *entity.User          `json:"user"`
}

// Publisher broadcasts domain events. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any)
}

type UserServiceI interface {
	// Validates request, creates user with starting stats
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Checks credentials, then runs the daily penalty and streak check and stores its outcome
	Login(ctx context.Context, email, password string) (*Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context, pagination PaginationOpts) ([]*entity.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.User, error)
	// Self or admin only
	Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.UserPatch) (*entity.User, error)
	// Admin only
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type CategoryServiceI interface {
	Create(ctx context.Context, actor Actor, req CreateCategoryRequest) (*entity.Category, error)
	Get(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	PresetHabits(ctx context.Context, name string) ([]*entity.PresetHabit, error)
	Delete(ctx context.Context, actor Actor, name string) error
}

type PresetHabitServiceI interface {
	Create(ctx context.Context, actor Actor, req CreatePresetHabitRequest) (*entity.PresetHabit, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.PresetHabit, error)
	List(ctx context.Context) ([]*entity.PresetHabit, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.PresetHabitPatch) (*entity.PresetHabit, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type CustomHabitServiceI interface {
	Create(ctx context.Context, actor Actor, req CreateCustomHabitRequest) (*entity.CustomHabit, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.CustomHabit, error)
	// Admin only
	List(ctx context.Context, actor Actor) ([]*entity.CustomHabit, error)
	ListOwn(ctx context.Context, actor Actor) ([]*entity.CustomHabit, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.CustomHabitPatch) (*entity.CustomHabit, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type HabitListServiceI interface {
	Create(ctx context.Context, actor Actor, req CreateHabitListRequest) (*entity.HabitList, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.HabitListView, error)
	// Admin only
	List(ctx context.Context, actor Actor) ([]*entity.HabitList, error)
	ListOwn(ctx context.Context, actor Actor) ([]*entity.HabitList, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.HabitListPatch) (*entity.HabitList, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	// Adds habits skipping ones already in the list. Returns only new items
	AddPresetHabits(ctx context.Context, actor Actor, listID uuid.UUID, habitIDs []uuid.UUID) ([]*entity.HabitListItem, error)
	AddCustomHabits(ctx context.Context, actor Actor, listID uuid.UUID, habitIDs []uuid.UUID) ([]*entity.HabitListItem, error)
	PresetHabits(ctx context.Context, listID uuid.UUID) ([]*entity.PresetHabit, error)
	CustomHabits(ctx context.Context, listID uuid.UUID) ([]*entity.CustomHabit, error)
	Items(ctx context.Context, listID uuid.UUID) ([]entity.HabitDetails, error)
	CompletePresetHabit(ctx context.Context, actor Actor, listID, habitID uuid.UUID) (*CompletionResult, error)
	CompleteCustomHabit(ctx context.Context, actor Actor, listID, habitID uuid.UUID) (*CompletionResult, error)
}
