package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/notify"
	"github.com/limbo/levelup/internal/repository"
	repomocks "github.com/limbo/levelup/internal/repository/mocks"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/internal/service/mocks"
	"github.com/limbo/levelup/pkg/entity"
)

var nyc, _ = time.LoadLocation("America/New_York")

func eastern(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, nyc)
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type userServiceDeps struct {
	users   *repomocks.MockUsersRepositoryI
	lists   *repomocks.MockHabitListsRepositoryI
	gateway *repomocks.MockGatewayI
	pub     *mocks.MockPublisher
}

func newUserService(t *testing.T, now time.Time) (*service.UserService, userServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := userServiceDeps{
		users:   repomocks.NewMockUsersRepositoryI(ctrl),
		lists:   repomocks.NewMockHabitListsRepositoryI(ctrl),
		gateway: repomocks.NewMockGatewayI(ctrl),
		pub:     mocks.NewMockPublisher(ctrl),
	}
	us := service.NewUserService(deps.users, deps.lists, deps.gateway, deps.pub).
		WithClock(func() time.Time { return now })
	return us, deps
}

func hashedUser(t *testing.T, password string) *entity.User {
	hash, err := service.Hash(password)
	require.NoError(t, err)
	u := entity.NewUser("hero@mail.com", "hero", hash)
	u.ID = uuid.New()
	return u
}

func TestRegister(t *testing.T) {
	testCases := []struct {
		Desc        string
		Req         *service.RegisterRequest
		MockPrep    func(d userServiceDeps)
		ExpectedErr error
	}{
		{
			Desc: "created",
			Req:  &service.RegisterRequest{Email: "hero@mail.com", Username: "hero_1", Password: "password123"},
			MockPrep: func(d userServiceDeps) {
				d.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
					u.ID = uuid.New()
					return nil
				})
			},
		},
		{
			Desc:        "bad email",
			Req:         &service.RegisterRequest{Email: "hero", Username: "hero_1", Password: "password123"},
			MockPrep:    func(d userServiceDeps) {},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Desc:        "username starts with digit",
			Req:         &service.RegisterRequest{Email: "hero@mail.com", Username: "1hero", Password: "password123"},
			MockPrep:    func(d userServiceDeps) {},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Desc:        "short password",
			Req:         &service.RegisterRequest{Email: "hero@mail.com", Username: "hero", Password: "short"},
			MockPrep:    func(d userServiceDeps) {},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Desc: "already exists",
			Req:  &service.RegisterRequest{Email: "hero@mail.com", Username: "hero", Password: "password123"},
			MockPrep: func(d userServiceDeps) {
				d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
			},
			ExpectedErr: errorvalues.ErrUserExists,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			us, deps := newUserService(t, time.Now())
			tc.MockPrep(deps)
			user, err := us.Register(context.Background(), tc.Req)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, user.Level)
			assert.Equal(t, 50, user.HP)
			assert.Equal(t, 100, user.XPToNextLevel)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tc.Req.Password)))
		})
	}
}

func TestLogin(t *testing.T) {
	now := eastern(2024, time.May, 2, 9)
	t.Run("extends streak and stores progress", func(t *testing.T) {
		us, deps := newUserService(t, now)
		user := hashedUser(t, "password123")
		user.Streak = 3
		yesterday := eastern(2024, time.May, 1, 20)
		user.LastLogin = &yesterday

		deps.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		deps.lists.EXPECT().ListsWithItems(gomock.Any(), user.ID).Return(nil, nil)
		deps.users.EXPECT().UpdateProgress(gomock.Any(), user).Return(nil)
		deps.pub.EXPECT().Publish(gomock.Any(), notify.TopicUserUpdate, notify.UserUpdate{UserID: user.ID, UserData: user})

		session, err := us.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)
		assert.Equal(t, 4, session.User.Streak)
		assert.True(t, session.Login.StreakExtended)
		assert.Equal(t, 1, session.User.TotalLoginCount)
		assert.True(t, session.Login.Sweep.Applied)
		assert.Zero(t, session.Login.Sweep.MissedHabits)
	})
	t.Run("penalizes missed habits after deadline", func(t *testing.T) {
		late := eastern(2024, time.May, 2, 23)
		us, deps := newUserService(t, late)
		user := hashedUser(t, "password123")
		lastLogin := eastern(2024, time.May, 1, 10)
		user.LastLogin = &lastLogin
		list := &entity.HabitList{ID: uuid.New(), ListOwnerID: user.ID}
		items := []*entity.HabitListItem{
			{ID: uuid.New(), HabitListID: list.ID},
			{ID: uuid.New(), HabitListID: list.ID, HabitIsCompleted: true},
		}

		deps.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		deps.lists.EXPECT().ListsWithItems(gomock.Any(), user.ID).
			Return([]entity.ListItems{{List: list, Items: items}}, nil)
		deps.users.EXPECT().UpdateProgress(gomock.Any(), user).Return(nil)
		deps.pub.EXPECT().Publish(gomock.Any(), notify.TopicUserUpdate, gomock.Any())

		session, err := us.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)
		assert.True(t, session.Login.Sweep.Applied)
		assert.Equal(t, 1, session.Login.Sweep.MissedHabits)
		assert.Equal(t, 25, session.User.HP)
		assert.Equal(t, 2, session.User.Streak)
	})
	t.Run("unknown email", func(t *testing.T) {
		us, deps := newUserService(t, now)
		deps.users.EXPECT().FindByEmail(gomock.Any(), "ghost@mail.com").Return(nil, errorvalues.ErrUserNotFound)
		_, err := us.Login(context.Background(), "ghost@mail.com", "password123")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("wrong password", func(t *testing.T) {
		us, deps := newUserService(t, now)
		user := hashedUser(t, "password123")
		deps.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		_, err := us.Login(context.Background(), user.Email, "password124")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("progress not saved", func(t *testing.T) {
		us, deps := newUserService(t, now)
		user := hashedUser(t, "password123")
		deps.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		deps.lists.EXPECT().ListsWithItems(gomock.Any(), user.ID).Return(nil, nil)
		deps.users.EXPECT().UpdateProgress(gomock.Any(), user).Return(errors.New("conn reset"))
		_, err := us.Login(context.Background(), user.Email, "password123")
		assert.Error(t, err)
	})
}

func TestLeaderboardLimits(t *testing.T) {
	us, deps := newUserService(t, time.Now())
	gomock.InOrder(
		deps.users.EXPECT().Leaderboard(gomock.Any(), service.DefaultLeaderboardSize).Return(nil, nil),
		deps.users.EXPECT().Leaderboard(gomock.Any(), service.MaxLeaderboardSize).Return(nil, nil),
		deps.users.EXPECT().Leaderboard(gomock.Any(), 7).Return(nil, nil),
	)
	for _, limit := range []int{0, 1000, 7} {
		_, err := us.Leaderboard(context.Background(), limit)
		assert.NoError(t, err)
	}
}

func TestUpdateUser(t *testing.T) {
	self := uuid.New()
	name := "new_name"
	password := "new_password"
	testCases := []struct {
		Desc        string
		Actor       service.Actor
		Patch       entity.UserPatch
		MockPrep    func(d userServiceDeps)
		ExpectedErr error
	}{
		{
			Desc:  "self update with password",
			Actor: service.Actor{ID: self},
			Patch: entity.UserPatch{Username: &name, Password: &password},
			MockPrep: func(d userServiceDeps) {
				d.users.EXPECT().Patch(gomock.Any(), self, gomock.Any()).
					DoAndReturn(func(_ context.Context, id uuid.UUID, upd repository.UserUpdate) (*entity.User, error) {
						if upd.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*upd.PasswordHash), []byte(password)) != nil {
							return nil, errors.New("password is not hashed")
						}
						return &entity.User{ID: id, Username: *upd.Username}, nil
					})
				d.pub.EXPECT().Publish(gomock.Any(), notify.TopicUserUpdate, gomock.Any())
			},
		},
		{
			Desc:  "admin updates other user",
			Actor: service.Actor{ID: uuid.New(), IsAdmin: true},
			Patch: entity.UserPatch{Username: &name},
			MockPrep: func(d userServiceDeps) {
				d.users.EXPECT().Patch(gomock.Any(), self, repository.UserUpdate{Username: &name}).
					Return(&entity.User{ID: self, Username: name}, nil)
				d.pub.EXPECT().Publish(gomock.Any(), notify.TopicUserUpdate, gomock.Any())
			},
		},
		{
			Desc:        "other user",
			Actor:       service.Actor{ID: uuid.New()},
			Patch:       entity.UserPatch{Username: &name},
			MockPrep:    func(d userServiceDeps) {},
			ExpectedErr: errorvalues.ErrWrongOwner,
		},
		{
			Desc:        "empty patch",
			Actor:       service.Actor{ID: self},
			MockPrep:    func(d userServiceDeps) {},
			ExpectedErr: errorvalues.ErrEmptyPatch,
		},
		{
			Desc:        "invalid username",
			Actor:       service.Actor{ID: self},
			Patch:       entity.UserPatch{Username: ptr("no spaces allowed")},
			MockPrep:    func(d userServiceDeps) {},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Desc:  "username taken",
			Actor: service.Actor{ID: self},
			Patch: entity.UserPatch{Username: &name},
			MockPrep: func(d userServiceDeps) {
				d.users.EXPECT().Patch(gomock.Any(), self, gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			ExpectedErr: errorvalues.ErrUserExists,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			us, deps := newUserService(t, time.Now())
			tc.MockPrep(deps)
			user, err := us.Update(context.Background(), tc.Actor, self, tc.Patch)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, name, user.Username)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	id := uuid.New()
	t.Run("admin", func(t *testing.T) {
		us, deps := newUserService(t, time.Now())
		deps.gateway.EXPECT().Delete(gomock.Any(), repository.KindUser, id).Return(true, nil)
		assert.NoError(t, us.Delete(context.Background(), service.Actor{ID: uuid.New(), IsAdmin: true}, id))
	})
	t.Run("missing user", func(t *testing.T) {
		us, deps := newUserService(t, time.Now())
		deps.gateway.EXPECT().Delete(gomock.Any(), repository.KindUser, id).Return(false, nil)
		err := us.Delete(context.Background(), service.Actor{IsAdmin: true}, id)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("not admin", func(t *testing.T) {
		us, _ := newUserService(t, time.Now())
		err := us.Delete(context.Background(), service.Actor{ID: id}, id)
		assert.ErrorIs(t, err, errorvalues.ErrAdminRequired)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	dbCfg := setupServiceTestDB(t)
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbCfg.ConnString())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	registry := repository.NewRegistry(pool)
	us := service.NewUserService(registry.Users, registry.HabitLists, registry, notify.Nop{})
	email := "test_user@mail.com"
	password := "test_password"
	var user *entity.User
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Email:    email,
			Username: "test_user",
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, "test_user", user.Username)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Email:    email,
			Username: "other_user",
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		session, err := us.Login(ctx, email, password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, session.User.ID)
		assert.Equal(t, 1, session.User.Streak)
		assert.Equal(t, 1, session.User.TotalLoginCount)

		stored, err := us.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.TotalLoginCount)
		assert.NotNil(t, stored.LastLogin)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "nobody@mail.com", "bbbbbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.Delete(ctx, service.Actor{IsAdmin: true}, user.ID)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.Delete(ctx, service.Actor{IsAdmin: true}, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupServiceTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("levelup"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
