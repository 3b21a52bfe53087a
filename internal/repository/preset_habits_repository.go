package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/entity"
)

const presetHabitColumns = `id, description, category_name, xp_reward, created_at, updated_at`

type PresetHabitsRepository struct {
	conn PgConnection
}

func NewPresetHabitsRepo(conn PgConnection) *PresetHabitsRepository {
	return &PresetHabitsRepository{
		conn: conn,
	}
}

func scanPresetHabit(row rowScanner) (*entity.PresetHabit, error) {
	var h entity.PresetHabit
	if err := row.Scan(&h.ID, &h.Description, &h.CategoryName, &h.XPReward, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}

func (pr *PresetHabitsRepository) Create(ctx context.Context, habit *entity.PresetHabit) error {
	if habit == nil {
		return errors.New("preset habit is nil")
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO preset_habits (description, category_name, xp_reward)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;`,
		habit.Description, habit.CategoryName, habit.XPReward)
	if err := row.Scan(&habit.ID, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrCategoryNotFound
		}
		return errors.New("creating preset habit error: " + err.Error())
	}
	return nil
}

func (pr *PresetHabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PresetHabit, error) {
	habit, err := scanPresetHabit(pr.conn.QueryRow(ctx, `SELECT `+presetHabitColumns+` FROM preset_habits WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPresetHabitNotFound
		}
		return nil, errors.New("getting preset habit error: " + err.Error())
	}
	return habit, nil
}

func (pr *PresetHabitsRepository) List(ctx context.Context) ([]*entity.PresetHabit, error) {
	rows, err := pr.conn.Query(ctx, `SELECT `+presetHabitColumns+` FROM preset_habits ORDER BY created_at, id;`)
	if err != nil {
		return nil, errors.New("listing preset habits error: " + err.Error())
	}
	return collectPresetHabits(rows)
}

func (pr *PresetHabitsRepository) ListByCategory(ctx context.Context, category string) ([]*entity.PresetHabit, error) {
	rows, err := pr.conn.Query(ctx, `SELECT `+presetHabitColumns+` FROM preset_habits WHERE category_name = $1 ORDER BY created_at, id;`, category)
	if err != nil {
		return nil, errors.New("listing preset habits by category error: " + err.Error())
	}
	return collectPresetHabits(rows)
}

func collectPresetHabits(rows pgx.Rows) ([]*entity.PresetHabit, error) {
	defer rows.Close()
	habits := make([]*entity.PresetHabit, 0)
	for rows.Next() {
		h, err := scanPresetHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling preset habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning preset habits: " + err.Error())
	}
	return habits, nil
}

func (pr *PresetHabitsRepository) Patch(ctx context.Context, id uuid.UUID, patch entity.PresetHabitPatch) (*entity.PresetHabit, error) {
	if patch.IsEmpty() {
		return nil, errorvalues.ErrEmptyPatch
	}
	q := psql.Update("preset_habits").Set("updated_at", squirrel.Expr("NOW()"))
	if patch.Description != nil {
		q = q.Set("description", *patch.Description)
	}
	if patch.CategoryName != nil {
		q = q.Set("category_name", *patch.CategoryName)
	}
	sql, args, err := q.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + presetHabitColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building preset habit update: %w", err)
	}
	habit, err := scanPresetHabit(pr.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, errorvalues.ErrPresetHabitNotFound
		case pgErrCode(err) == pgForeignKeyViolation:
			return nil, errorvalues.ErrCategoryNotFound
		}
		return nil, errors.New("updating preset habit error: " + err.Error())
	}
	return habit, nil
}
