package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/notify"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)

type UserService struct {
	users    repository.UsersRepositoryI
	lists    repository.HabitListsRepositoryI
	gateway  repository.GatewayI
	pub      Publisher
	validate *validator.Validate
	now      func() time.Time
}

func NewUserService(users repository.UsersRepositoryI, lists repository.HabitListsRepositoryI,
	gateway repository.GatewayI, pub Publisher) *UserService {
	return &UserService{
		users:    users,
		lists:    lists,
		gateway:  gateway,
		pub:      pub,
		validate: InitValidator(),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for deadline and streak checks.
func (us *UserService) WithClock(now func() time.Time) *UserService {
	us.now = now
	return us
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(us.validate, req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := entity.NewUser(req.Email, req.Username, passwordHash)
	if err = us.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := us.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	lists, err := us.lists.ListsWithItems(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("loading habit lists for daily check: %w", err)
	}
	login := user.CheckDailyStreak(us.now(), lists)
	if err = us.users.UpdateProgress(ctx, user); err != nil {
		return nil, fmt.Errorf("saving daily check: %w", err)
	}
	us.pub.Publish(ctx, notify.TopicUserUpdate, notify.UserUpdate{UserID: user.ID, UserData: user})
	return &Session{User: user, Login: login}, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (us *UserService) List(ctx context.Context, pagination PaginationOpts) ([]*entity.User, error) {
	users, err := us.users.List(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (us *UserService) Leaderboard(ctx context.Context, limit int) ([]*entity.User, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	limit = min(limit, MaxLeaderboardSize)
	users, err := us.users.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("getting leaderboard: %w", err)
	}
	return users, nil
}

func (us *UserService) Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	if !actor.CanManage(id) {
		return nil, errorvalues.ErrWrongOwner
	}
	if patch.IsEmpty() {
		return nil, errorvalues.ErrEmptyPatch
	}
	if err := validateStruct(us.validate, patch); err != nil {
		return nil, err
	}
	upd := repository.UserUpdate{
		Email:    patch.Email,
		Username: patch.Username,
	}
	if patch.Password != nil {
		hash, err := Hash(*patch.Password)
		if err != nil {
			return nil, errors.New("hashing password error: " + err.Error())
		}
		upd.PasswordHash = &hash
	}
	user, err := us.users.Patch(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	us.pub.Publish(ctx, notify.TopicUserUpdate, notify.UserUpdate{UserID: user.ID, UserData: user})
	return user, nil
}

func (us *UserService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin {
		return errorvalues.ErrAdminRequired
	}
	deleted, err := us.gateway.Delete(ctx, repository.KindUser, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if !deleted {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
