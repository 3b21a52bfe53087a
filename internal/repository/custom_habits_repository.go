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

const customHabitColumns = `id, description, habit_owner_id, xp_reward, created_at, updated_at`

type CustomHabitsRepository struct {
	conn PgConnection
}

func NewCustomHabitsRepo(conn PgConnection) *CustomHabitsRepository {
	return &CustomHabitsRepository{
		conn: conn,
	}
}

func scanCustomHabit(row rowScanner) (*entity.CustomHabit, error) {
	var h entity.CustomHabit
	if err := row.Scan(&h.ID, &h.Description, &h.HabitOwnerID, &h.XPReward, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}

func (cr *CustomHabitsRepository) Create(ctx context.Context, habit *entity.CustomHabit) error {
	if habit == nil {
		return errors.New("custom habit is nil")
	}
	row := cr.conn.QueryRow(ctx, `INSERT INTO custom_habits (description, habit_owner_id, xp_reward)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;`,
		habit.Description, habit.HabitOwnerID, habit.XPReward)
	if err := row.Scan(&habit.ID, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating custom habit error: " + err.Error())
	}
	return nil
}

func (cr *CustomHabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomHabit, error) {
	habit, err := scanCustomHabit(cr.conn.QueryRow(ctx, `SELECT `+customHabitColumns+` FROM custom_habits WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCustomHabitNotFound
		}
		return nil, errors.New("getting custom habit error: " + err.Error())
	}
	return habit, nil
}

func (cr *CustomHabitsRepository) List(ctx context.Context) ([]*entity.CustomHabit, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+customHabitColumns+` FROM custom_habits ORDER BY created_at, id;`)
	if err != nil {
		return nil, errors.New("listing custom habits error: " + err.Error())
	}
	return collectCustomHabits(rows)
}

func (cr *CustomHabitsRepository) ListByOwner(ctx context.Context, uid uuid.UUID) ([]*entity.CustomHabit, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+customHabitColumns+` FROM custom_habits WHERE habit_owner_id = $1 ORDER BY created_at, id;`, uid)
	if err != nil {
		return nil, errors.New("listing user's custom habits error: " + err.Error())
	}
	return collectCustomHabits(rows)
}

func collectCustomHabits(rows pgx.Rows) ([]*entity.CustomHabit, error) {
	defer rows.Close()
	habits := make([]*entity.CustomHabit, 0)
	for rows.Next() {
		h, err := scanCustomHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling custom habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning custom habits: " + err.Error())
	}
	return habits, nil
}

func (cr *CustomHabitsRepository) Patch(ctx context.Context, id uuid.UUID, patch entity.CustomHabitPatch) (*entity.CustomHabit, error) {
	if patch.IsEmpty() {
		return nil, errorvalues.ErrEmptyPatch
	}
	sql, args, err := psql.Update("custom_habits").
		Set("updated_at", squirrel.Expr("NOW()")).
		Set("description", *patch.Description).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + customHabitColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building custom habit update: %w", err)
	}
	habit, err := scanCustomHabit(cr.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCustomHabitNotFound
		}
		return nil, errors.New("updating custom habit error: " + err.Error())
	}
	return habit, nil
}
