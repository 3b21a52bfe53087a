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

const userColumns = `id, email, username, password_hash, is_admin, level, current_xp, xp_to_next_level, habits_completed,
	max_hp, hp, strength, vitality, dexterity, intelligence, luck, streak, last_login, total_login_count, created_at, updated_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.Level, &u.CurrentXP, &u.XPToNextLevel,
		&u.HabitsCompleted, &u.MaxHP, &u.HP, &u.Strength, &u.Vitality, &u.Dexterity, &u.Intelligence, &u.Luck,
		&u.Streak, &u.LastLogin, &u.TotalLoginCount, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (email, username, password_hash, is_admin, level, current_xp, xp_to_next_level,
		habits_completed, max_hp, hp, strength, vitality, dexterity, intelligence, luck, streak, total_login_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at;`,
		user.Email, user.Username, user.PasswordHash, user.IsAdmin, user.Level, user.CurrentXP, user.XPToNextLevel,
		user.HabitsCompleted, user.MaxHP, user.HP, user.Strength, user.Vitality, user.Dexterity, user.Intelligence,
		user.Luck, user.Streak, user.TotalLoginCount,
	)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	return collectUsers(rows)
}

func (ur *UsersRepository) Leaderboard(ctx context.Context, limit int) ([]*entity.User, error) {
	sql, args, err := psql.Select(userColumns).
		From("users").
		OrderBy("level DESC", "current_xp DESC", "username").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building leaderboard query: %w", err)
	}
	rows, err := ur.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]*entity.User, error) {
	defer rows.Close()
	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errors.New("unmarshalling user error: " + err.Error())
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning users: " + err.Error())
	}
	return users, nil
}

func (ur *UsersRepository) Patch(ctx context.Context, uid uuid.UUID, upd UserUpdate) (*entity.User, error) {
	if upd.Email == nil && upd.Username == nil && upd.PasswordHash == nil {
		return nil, errorvalues.ErrEmptyPatch
	}
	q := psql.Update("users").Set("updated_at", squirrel.Expr("NOW()"))
	if upd.Email != nil {
		q = q.Set("email", *upd.Email)
	}
	if upd.Username != nil {
		q = q.Set("username", *upd.Username)
	}
	if upd.PasswordHash != nil {
		q = q.Set("password_hash", *upd.PasswordHash)
	}
	sql, args, err := q.Where(squirrel.Eq{"id": uid}).Suffix("RETURNING " + userColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building user update: %w", err)
	}
	user, err := scanUser(ur.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, errorvalues.ErrUserNotFound
		case pgErrCode(err) == pgUniqueViolation:
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("updating user error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpdateProgress(ctx context.Context, user *entity.User) error {
	return updateProgress(ctx, ur.conn, user)
}

func updateProgress(ctx context.Context, exec executor, user *entity.User) error {
	ct, err := exec.Exec(ctx, `UPDATE users SET level = $1, current_xp = $2, xp_to_next_level = $3, habits_completed = $4,
		max_hp = $5, hp = $6, strength = $7, vitality = $8, dexterity = $9, intelligence = $10, luck = $11,
		streak = $12, last_login = $13, total_login_count = $14, updated_at = NOW() WHERE id = $15;`,
		user.Level, user.CurrentXP, user.XPToNextLevel, user.HabitsCompleted,
		user.MaxHP, user.HP, user.Strength, user.Vitality, user.Dexterity, user.Intelligence, user.Luck,
		user.Streak, user.LastLogin, user.TotalLoginCount, user.ID,
	)
	if err != nil {
		return errors.New("updating user progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
