package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/levelup/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. Fills ID and timestamps of the given user
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Lists users ordered by creation. Requires pagination params provided
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// Users with the highest level first, ties broken by current xp
	Leaderboard(ctx context.Context, limit int) ([]*entity.User, error)
	// Applies only non-nil fields of the update
	Patch(ctx context.Context, uid uuid.UUID, upd UserUpdate) (*entity.User, error)
	// Persists progression, vitality, stats and streak state
	UpdateProgress(ctx context.Context, user *entity.User) error
}

type CategoriesRepositoryI interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	Get(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}

type PresetHabitsRepositoryI interface {
	// Creates preset habit. Category must exist if set
	Create(ctx context.Context, habit *entity.PresetHabit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PresetHabit, error)
	List(ctx context.Context) ([]*entity.PresetHabit, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.PresetHabit, error)
	Patch(ctx context.Context, id uuid.UUID, patch entity.PresetHabitPatch) (*entity.PresetHabit, error)
}

type CustomHabitsRepositoryI interface {
	Create(ctx context.Context, habit *entity.CustomHabit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomHabit, error)
	List(ctx context.Context) ([]*entity.CustomHabit, error)
	ListByOwner(ctx context.Context, uid uuid.UUID) ([]*entity.CustomHabit, error)
	Patch(ctx context.Context, id uuid.UUID, patch entity.CustomHabitPatch) (*entity.CustomHabit, error)
}

type HabitListsRepositoryI interface {
	Create(ctx context.Context, list *entity.HabitList) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitList, error)
	List(ctx context.Context) ([]*entity.HabitList, error)
	ListByOwner(ctx context.Context, uid uuid.UUID) ([]*entity.HabitList, error)
	Patch(ctx context.Context, id uuid.UUID, patch entity.HabitListPatch) (*entity.HabitList, error)
	// Deletes list with all of its items in one transaction
	Delete(ctx context.Context, id uuid.UUID) error
	// Adds habit to list. Returns false when the habit is already in the list
	AddItem(ctx context.Context, listID uuid.UUID, kind entity.HabitKind, habitID uuid.UUID) (*entity.HabitListItem, bool, error)
	FindItem(ctx context.Context, listID uuid.UUID, kind entity.HabitKind, habitID uuid.UUID) (*entity.HabitListItem, error)
	// Items of the list in insertion order
	Items(ctx context.Context, listID uuid.UUID) ([]*entity.HabitListItem, error)
	// Items joined with habit descriptions
	Details(ctx context.Context, listID uuid.UUID) ([]entity.HabitDetails, error)
	// Every list of the owner with its items, for the login sweep
	ListsWithItems(ctx context.Context, uid uuid.UUID) ([]entity.ListItems, error)
	// Stores a completed item, the list counter and the owner in one transaction.
	// Fails with ErrHabitAlreadyCompleted if the item was completed concurrently
	SaveCompletion(ctx context.Context, list *entity.HabitList, item *entity.HabitListItem, owner *entity.User) error
}

// GatewayI gives kind-keyed access for operations that are the same for every entity
type GatewayI interface {
	Exists(ctx context.Context, kind Kind, id any) (bool, error)
	Delete(ctx context.Context, kind Kind, id any) (bool, error)
}

// UserUpdate is a user patch with the password already hashed
type UserUpdate struct {
	Email        *string
	Username     *string
	PasswordHash *string
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// executor is satisfied by both a connection and a transaction
type executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}
