package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

var userColumns = []string{"id", "email", "username", "password_hash", "is_admin", "level", "current_xp", "xp_to_next_level",
	"habits_completed", "max_hp", "hp", "strength", "vitality", "dexterity", "intelligence", "luck", "streak", "last_login",
	"total_login_count", "created_at", "updated_at"}

func testUser() *entity.User {
	u := entity.NewUser("test@mail.com", "test_user", "test_password_hash")
	u.ID = uuid.New()
	u.CreatedAt = time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	u.UpdatedAt = u.CreatedAt
	return u
}

func userRows(users ...*entity.User) *pgxmock.Rows {
	rows := pgxmock.NewRows(userColumns)
	for _, u := range users {
		rows.AddRow(u.ID, u.Email, u.Username, u.PasswordHash, u.IsAdmin, u.Level, u.CurrentXP, u.XPToNextLevel,
			u.HabitsCompleted, u.MaxHP, u.HP, u.Strength, u.Vitality, u.Dexterity, u.Intelligence, u.Luck, u.Streak,
			u.LastLogin, u.TotalLoginCount, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO users (email, username, password_hash`)
	id, created := uuid.New(), time.Now()
	t.Run("successfully created", func(t *testing.T) {
		user := entity.NewUser("test@mail.com", "test_user", "hash")
		conn.ExpectQuery(query).
			WithArgs(user.Email, user.Username, user.PasswordHash, false, 1, 0, 100, 0, 50, 50, 5, 5, 3, 3, 1, 0, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, created, created))
		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, created, user.CreatedAt)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.Create(ctx, entity.NewUser("test@mail.com", "test_user", "hash"))
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, entity.NewUser("test@mail.com", "test_user", "hash"))
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUserByEmail(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	user := testUser()
	login := time.Date(2024, time.February, 2, 12, 0, 0, 0, time.UTC)
	user.LastLogin = &login
	query := regexp.QuoteMeta(`FROM users WHERE email = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email).WillReturnRows(userRows(user))
		result, err := repo.FindByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, *user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Email).WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.Error(t, err)
	})
}

func TestFindUserByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	user := testUser()
	query := regexp.QuoteMeta(`FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.ID).WillReturnRows(userRows(user))
		result, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, *user, *result)
		assert.Nil(t, result.LastLogin)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestListUsers(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	first, second := testUser(), testUser()
	second.Email, second.Username = "second@mail.com", "second_user"
	query := regexp.QuoteMeta(`FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2;`)
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(10, 0).WillReturnRows(userRows(first, second))
		result, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, []*entity.User{first, second}, result)
	})
	t.Run("empty", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(10, 20).WillReturnRows(userRows())
		result, err := repo.List(ctx, 10, 20)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(10, 0).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx, 10, 0)
		assert.Error(t, err)
	})
}

func TestLeaderboard(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	leader := testUser()
	leader.Level = 4
	conn.ExpectQuery(regexp.QuoteMeta(`FROM users ORDER BY level DESC, current_xp DESC, username LIMIT 5`)).
		WillReturnRows(userRows(leader))
	result, err := repo.Leaderboard(ctx, 5)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 4, result[0].Level)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestPatchUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	user := testUser()
	email := "new@mail.com"
	query := regexp.QuoteMeta(`UPDATE users SET updated_at = NOW(), email = $1 WHERE id = $2 RETURNING id, email`)
	t.Run("updated", func(t *testing.T) {
		patched := *user
		patched.Email = email
		conn.ExpectQuery(query).WithArgs(email, user.ID).WillReturnRows(userRows(&patched))
		result, err := repo.Patch(ctx, user.ID, repository.UserUpdate{Email: &email})
		require.NoError(t, err)
		assert.Equal(t, email, result.Email)
		assert.Equal(t, user.Username, result.Username)
	})
	t.Run("only given fields are set", func(t *testing.T) {
		name, hash := "renamed", "new_hash"
		conn.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET updated_at = NOW(), username = $1, password_hash = $2 WHERE id = $3`)).
			WithArgs(name, hash, user.ID).
			WillReturnRows(userRows(user))
		_, err := repo.Patch(ctx, user.ID, repository.UserUpdate{Username: &name, PasswordHash: &hash})
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(email, user.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Patch(ctx, user.ID, repository.UserUpdate{Email: &email})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("taken email", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(email, user.ID).WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Patch(ctx, user.ID, repository.UserUpdate{Email: &email})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("empty patch", func(t *testing.T) {
		_, err := repo.Patch(ctx, user.ID, repository.UserUpdate{})
		assert.ErrorIs(t, err, errorvalues.ErrEmptyPatch)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateProgress(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	user := testUser()
	query := regexp.QuoteMeta(`UPDATE users SET level = $1, current_xp = $2`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Level, user.CurrentXP, user.XPToNextLevel, user.HabitsCompleted, user.MaxHP, user.HP,
				user.Strength, user.Vitality, user.Dexterity, user.Intelligence, user.Luck, user.Streak, user.LastLogin,
				user.TotalLoginCount, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateProgress(ctx, user))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.UpdateProgress(ctx, user), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.UpdateProgress(ctx, user))
	})
}
