package repository

import (
	"context"
	"errors"
	"fmt"

	errorvalues "github.com/limbo/levelup/internal/error_values"
)

// Kind enumerates every persisted entity. Operations keyed by kind resolve
// table and key through this closed set only.
type Kind int

const (
	KindUser Kind = iota + 1
	KindCategory
	KindPresetHabit
	KindCustomHabit
	KindHabitList
	KindHabitListItem
)

type kindMeta struct {
	name     string
	table    string
	key      string
	notFound error
}

var kinds = map[Kind]kindMeta{
	KindUser:          {name: "user", table: "users", key: "id", notFound: errorvalues.ErrUserNotFound},
	KindCategory:      {name: "category", table: "categories", key: "name", notFound: errorvalues.ErrCategoryNotFound},
	KindPresetHabit:   {name: "preset_habit", table: "preset_habits", key: "id", notFound: errorvalues.ErrPresetHabitNotFound},
	KindCustomHabit:   {name: "custom_habit", table: "custom_habits", key: "id", notFound: errorvalues.ErrCustomHabitNotFound},
	KindHabitList:     {name: "habit_list", table: "habit_lists", key: "id", notFound: errorvalues.ErrHabitListNotFound},
	KindHabitListItem: {name: "habit_list_item", table: "habit_list_items", key: "id", notFound: errorvalues.ErrHabitNotInList},
}

func (k Kind) String() string {
	if m, ok := kinds[k]; ok {
		return m.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// NotFound is the sentinel reported when an entity of this kind is absent.
func (k Kind) NotFound() error {
	if m, ok := kinds[k]; ok {
		return m.notFound
	}
	return errors.New("unknown entity kind")
}

// Registry holds the typed repositories and implements kind-keyed
// existence checks and deletion.
type Registry struct {
	conn PgConnection

	Users        *UsersRepository
	Categories   *CategoriesRepository
	PresetHabits *PresetHabitsRepository
	CustomHabits *CustomHabitsRepository
	HabitLists   *HabitListsRepository
}

func NewRegistry(conn PgConnection) *Registry {
	return &Registry{
		conn:         conn,
		Users:        NewUsersRepo(conn),
		Categories:   NewCategoriesRepo(conn),
		PresetHabits: NewPresetHabitsRepo(conn),
		CustomHabits: NewCustomHabitsRepo(conn),
		HabitLists:   NewHabitListsRepo(conn),
	}
}

func (r *Registry) Exists(ctx context.Context, kind Kind, id any) (bool, error) {
	m, ok := kinds[kind]
	if !ok {
		return false, fmt.Errorf("exists: unknown entity kind %d", int(kind))
	}
	var exists bool
	row := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM `+m.table+` WHERE `+m.key+` = $1);`, id)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("inspecting if %s exists error: %w", m.name, err)
	}
	return exists, nil
}

// Delete removes the entity and reports whether a row was deleted.
// Dependent rows are removed by the schema's ON DELETE rules.
func (r *Registry) Delete(ctx context.Context, kind Kind, id any) (bool, error) {
	m, ok := kinds[kind]
	if !ok {
		return false, fmt.Errorf("delete: unknown entity kind %d", int(kind))
	}
	ct, err := r.conn.Exec(ctx, `DELETE FROM `+m.table+` WHERE `+m.key+` = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("deleting %s error: %w", m.name, err)
	}
	return ct.RowsAffected() > 0, nil
}
