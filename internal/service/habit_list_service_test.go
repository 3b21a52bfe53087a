package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/notify"
	repomocks "github.com/limbo/levelup/internal/repository/mocks"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/internal/service/mocks"
	"github.com/limbo/levelup/pkg/entity"
)

type habitListDeps struct {
	lists   *repomocks.MockHabitListsRepositoryI
	presets *repomocks.MockPresetHabitsRepositoryI
	customs *repomocks.MockCustomHabitsRepositoryI
	users   *repomocks.MockUsersRepositoryI
	pub     *mocks.MockPublisher
}

func newHabitListService(t *testing.T, now time.Time) (*service.HabitListService, habitListDeps) {
	ctrl := gomock.NewController(t)
	deps := habitListDeps{
		lists:   repomocks.NewMockHabitListsRepositoryI(ctrl),
		presets: repomocks.NewMockPresetHabitsRepositoryI(ctrl),
		customs: repomocks.NewMockCustomHabitsRepositoryI(ctrl),
		users:   repomocks.NewMockUsersRepositoryI(ctrl),
		pub:     mocks.NewMockPublisher(ctrl),
	}
	hs := service.NewHabitListService(deps.lists, deps.presets, deps.customs, deps.users, deps.pub).
		WithClock(func() time.Time { return now })
	return hs, deps
}

func TestCreateHabitList(t *testing.T) {
	owner := uuid.New()
	t.Run("created and announced", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		deps.lists.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *entity.HabitList) error {
			l.ID = uuid.New()
			return nil
		})
		deps.pub.EXPECT().Publish(gomock.Any(), notify.TopicHabitListCreated, gomock.Any())

		list, err := hs.Create(context.Background(), service.Actor{ID: owner}, service.CreateHabitListRequest{Name: "Morning"})
		require.NoError(t, err)
		assert.Equal(t, owner, list.ListOwnerID)
		assert.Equal(t, "Morning", list.Name)
	})
	t.Run("empty name", func(t *testing.T) {
		hs, _ := newHabitListService(t, time.Now())
		_, err := hs.Create(context.Background(), service.Actor{ID: owner}, service.CreateHabitListRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestCompleteHabit(t *testing.T) {
	now := eastern(2024, time.May, 2, 10)
	ownerID := uuid.New()
	habitID := uuid.New()

	type fixture struct {
		list  *entity.HabitList
		item  *entity.HabitListItem
		owner *entity.User
	}
	newFixture := func(itemCreated time.Time) fixture {
		owner := entity.NewUser("hero@mail.com", "hero", "hash")
		owner.ID = ownerID
		owner.HP = 20
		list := &entity.HabitList{ID: uuid.New(), ListOwnerID: ownerID}
		item := &entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, PresetHabitID: &habitID, CreatedAt: itemCreated}
		return fixture{list: list, item: item, owner: owner}
	}

	testCases := []struct {
		Desc          string
		Actor         service.Actor
		ItemCreated   time.Time
		MockPrep      func(d habitListDeps, f fixture)
		ExpectedErr   error
		ExpectedLate  bool
		ExpectedXP    int
		ExpectedHP    int
		ExpectedLevel int
	}{
		{
			Desc:        "on time",
			Actor:       service.Actor{ID: ownerID},
			ItemCreated: eastern(2024, time.May, 2, 8),
			MockPrep: func(d habitListDeps, f fixture) {
				d.lists.EXPECT().GetByID(gomock.Any(), f.list.ID).Return(f.list, nil)
				d.lists.EXPECT().FindItem(gomock.Any(), f.list.ID, entity.HabitKindPreset, habitID).Return(f.item, nil)
				d.presets.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.PresetHabit{ID: habitID, XPReward: 80}, nil)
				d.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(f.owner, nil)
				d.lists.EXPECT().SaveCompletion(gomock.Any(), f.list, f.item, f.owner).Return(nil)
				d.pub.EXPECT().Publish(gomock.Any(), notify.TopicUserUpdate, notify.UserUpdate{UserID: ownerID, UserData: f.owner})
				d.lists.EXPECT().Details(gomock.Any(), f.list.ID).Return(nil, nil)
				d.pub.EXPECT().Publish(gomock.Any(), notify.TopicHabitListUpdate, gomock.Any())
			},
			ExpectedXP:    80,
			ExpectedHP:    35,
			ExpectedLevel: 1,
		},
		{
			Desc:        "late by admin",
			Actor:       service.Actor{ID: uuid.New(), IsAdmin: true},
			ItemCreated: eastern(2024, time.May, 1, 8),
			MockPrep: func(d habitListDeps, f fixture) {
				d.lists.EXPECT().GetByID(gomock.Any(), f.list.ID).Return(f.list, nil)
				d.lists.EXPECT().FindItem(gomock.Any(), f.list.ID, entity.HabitKindPreset, habitID).Return(f.item, nil)
				d.presets.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.PresetHabit{ID: habitID, XPReward: 99}, nil)
				d.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(f.owner, nil)
				d.lists.EXPECT().SaveCompletion(gomock.Any(), f.list, f.item, f.owner).Return(nil)
				d.pub.EXPECT().Publish(gomock.Any(), notify.TopicUserUpdate, gomock.Any())
				d.lists.EXPECT().Details(gomock.Any(), f.list.ID).Return(nil, nil)
				d.pub.EXPECT().Publish(gomock.Any(), notify.TopicHabitListUpdate, gomock.Any())
			},
			ExpectedLate:  true,
			ExpectedXP:    49,
			ExpectedHP:    20,
			ExpectedLevel: 1,
		},
		{
			Desc:        "not owner",
			Actor:       service.Actor{ID: uuid.New()},
			ItemCreated: now,
			MockPrep: func(d habitListDeps, f fixture) {
				d.lists.EXPECT().GetByID(gomock.Any(), f.list.ID).Return(f.list, nil)
			},
			ExpectedErr: errorvalues.ErrWrongOwner,
		},
		{
			Desc:        "list not found",
			Actor:       service.Actor{ID: ownerID},
			ItemCreated: now,
			MockPrep: func(d habitListDeps, f fixture) {
				d.lists.EXPECT().GetByID(gomock.Any(), f.list.ID).Return(nil, errorvalues.ErrHabitListNotFound)
			},
			ExpectedErr: errorvalues.ErrHabitListNotFound,
		},
		{
			Desc:        "habit not in list",
			Actor:       service.Actor{ID: ownerID},
			ItemCreated: now,
			MockPrep: func(d habitListDeps, f fixture) {
				d.lists.EXPECT().GetByID(gomock.Any(), f.list.ID).Return(f.list, nil)
				d.lists.EXPECT().FindItem(gomock.Any(), f.list.ID, entity.HabitKindPreset, habitID).Return(nil, errorvalues.ErrHabitNotInList)
			},
			ExpectedErr: errorvalues.ErrHabitNotInList,
		},
		{
			Desc:        "already completed",
			Actor:       service.Actor{ID: ownerID},
			ItemCreated: now,
			MockPrep: func(d habitListDeps, f fixture) {
				f.item.HabitIsCompleted = true
				d.lists.EXPECT().GetByID(gomock.Any(), f.list.ID).Return(f.list, nil)
				d.lists.EXPECT().FindItem(gomock.Any(), f.list.ID, entity.HabitKindPreset, habitID).Return(f.item, nil)
				d.presets.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.PresetHabit{ID: habitID, XPReward: 80}, nil)
				d.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(f.owner, nil)
			},
			ExpectedErr: errorvalues.ErrHabitAlreadyCompleted,
		},
		{
			Desc:        "completed concurrently",
			Actor:       service.Actor{ID: ownerID},
			ItemCreated: now,
			MockPrep: func(d habitListDeps, f fixture) {
				d.lists.EXPECT().GetByID(gomock.Any(), f.list.ID).Return(f.list, nil)
				d.lists.EXPECT().FindItem(gomock.Any(), f.list.ID, entity.HabitKindPreset, habitID).Return(f.item, nil)
				d.presets.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.PresetHabit{ID: habitID, XPReward: 80}, nil)
				d.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(f.owner, nil)
				d.lists.EXPECT().SaveCompletion(gomock.Any(), f.list, f.item, f.owner).Return(errorvalues.ErrHabitAlreadyCompleted)
			},
			ExpectedErr: errorvalues.ErrHabitAlreadyCompleted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			hs, deps := newHabitListService(t, now)
			f := newFixture(tc.ItemCreated)
			tc.MockPrep(deps, f)

			res, err := hs.CompletePresetHabit(context.Background(), tc.Actor, f.list.ID, habitID)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedLate, res.Late)
			assert.Equal(t, tc.ExpectedXP, res.XPAwarded)
			assert.Equal(t, tc.ExpectedXP, res.Owner.CurrentXP)
			assert.Equal(t, tc.ExpectedHP, res.Owner.HP)
			assert.Equal(t, tc.ExpectedLevel, res.Owner.Level)
			assert.True(t, res.Item.HabitIsCompleted)
			assert.Equal(t, 1, f.list.CompletedHabits)
		})
	}
}

func TestCompleteCustomHabitUsesHabitReward(t *testing.T) {
	now := eastern(2024, time.May, 2, 10)
	owner := entity.NewUser("hero@mail.com", "hero", "hash")
	owner.ID = uuid.New()
	owner.CurrentXP = 60
	habitID := uuid.New()
	list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner.ID}
	item := &entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, CustomHabitID: &habitID, CreatedAt: now}

	hs, deps := newHabitListService(t, now)
	deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
	deps.lists.EXPECT().FindItem(gomock.Any(), list.ID, entity.HabitKindCustom, habitID).Return(item, nil)
	deps.customs.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.CustomHabit{ID: habitID, HabitOwnerID: owner.ID, XPReward: 75}, nil)
	deps.users.EXPECT().FindByID(gomock.Any(), owner.ID).Return(owner, nil)
	deps.lists.EXPECT().SaveCompletion(gomock.Any(), list, item, owner).Return(nil)
	deps.pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	deps.lists.EXPECT().Details(gomock.Any(), list.ID).Return(nil, nil)

	res, err := hs.CompleteCustomHabit(context.Background(), service.Actor{ID: owner.ID}, list.ID, habitID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.LevelsGained)
	assert.Equal(t, 2, owner.Level)
	assert.Equal(t, 35, owner.CurrentXP)
	assert.Equal(t, 150, owner.XPToNextLevel)
}

func TestAddPresetHabitsSkipsExisting(t *testing.T) {
	owner := uuid.New()
	list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner}
	fresh, existing := uuid.New(), uuid.New()

	hs, deps := newHabitListService(t, time.Now())
	deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
	deps.presets.EXPECT().GetByID(gomock.Any(), fresh).Return(&entity.PresetHabit{ID: fresh}, nil)
	deps.presets.EXPECT().GetByID(gomock.Any(), existing).Return(&entity.PresetHabit{ID: existing}, nil)
	deps.lists.EXPECT().AddItem(gomock.Any(), list.ID, entity.HabitKindPreset, fresh).
		Return(&entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, PresetHabitID: &fresh}, true, nil)
	deps.lists.EXPECT().AddItem(gomock.Any(), list.ID, entity.HabitKindPreset, existing).
		Return(&entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, PresetHabitID: &existing}, false, nil)
	deps.lists.EXPECT().Details(gomock.Any(), list.ID).Return(nil, nil)
	deps.pub.EXPECT().Publish(gomock.Any(), notify.TopicHabitListUpdate, gomock.Any())

	added, err := hs.AddPresetHabits(context.Background(), service.Actor{ID: owner}, list.ID, []uuid.UUID{fresh, existing})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, fresh, added[0].HabitID())
}

func TestAddPresetHabitsUnknownHabit(t *testing.T) {
	owner := uuid.New()
	list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner}
	missing := uuid.New()

	hs, deps := newHabitListService(t, time.Now())
	deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
	deps.presets.EXPECT().GetByID(gomock.Any(), missing).Return(nil, errorvalues.ErrPresetHabitNotFound)

	_, err := hs.AddPresetHabits(context.Background(), service.Actor{ID: owner}, list.ID, []uuid.UUID{missing})
	assert.ErrorIs(t, err, errorvalues.ErrPresetHabitNotFound)
}

func TestAddCustomHabitsOwnership(t *testing.T) {
	owner := uuid.New()
	list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner}
	habitID := uuid.New()
	foreign := &entity.CustomHabit{ID: habitID, HabitOwnerID: uuid.New()}

	t.Run("foreign habit", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
		deps.customs.EXPECT().GetByID(gomock.Any(), habitID).Return(foreign, nil)
		_, err := hs.AddCustomHabits(context.Background(), service.Actor{ID: owner}, list.ID, []uuid.UUID{habitID})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("admin may add any habit", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
		deps.customs.EXPECT().GetByID(gomock.Any(), habitID).Return(foreign, nil)
		deps.lists.EXPECT().AddItem(gomock.Any(), list.ID, entity.HabitKindCustom, habitID).
			Return(&entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, CustomHabitID: &habitID}, true, nil)
		deps.lists.EXPECT().Details(gomock.Any(), list.ID).Return(nil, nil)
		deps.pub.EXPECT().Publish(gomock.Any(), notify.TopicHabitListUpdate, gomock.Any())
		added, err := hs.AddCustomHabits(context.Background(), service.Actor{ID: uuid.New(), IsAdmin: true}, list.ID, []uuid.UUID{habitID})
		require.NoError(t, err)
		assert.Len(t, added, 1)
	})
	t.Run("someone else's list", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
		_, err := hs.AddCustomHabits(context.Background(), service.Actor{ID: uuid.New()}, list.ID, []uuid.UUID{habitID})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestPresetHabitsOfListSkipsDeleted(t *testing.T) {
	list := &entity.HabitList{ID: uuid.New()}
	kept, gone, custom := uuid.New(), uuid.New(), uuid.New()
	items := []*entity.HabitListItem{
		{PresetHabitID: &kept},
		{CustomHabitID: &custom},
		{PresetHabitID: &gone},
	}

	hs, deps := newHabitListService(t, time.Now())
	deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
	deps.lists.EXPECT().Items(gomock.Any(), list.ID).Return(items, nil)
	deps.presets.EXPECT().GetByID(gomock.Any(), kept).Return(&entity.PresetHabit{ID: kept}, nil)
	deps.presets.EXPECT().GetByID(gomock.Any(), gone).Return(nil, errorvalues.ErrPresetHabitNotFound)

	habits, err := hs.PresetHabits(context.Background(), list.ID)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, kept, habits[0].ID)
}

func TestHabitListAccess(t *testing.T) {
	owner := uuid.New()
	list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner}
	name := "Evening"

	t.Run("list all requires admin", func(t *testing.T) {
		hs, _ := newHabitListService(t, time.Now())
		_, err := hs.List(context.Background(), service.Actor{ID: owner})
		assert.ErrorIs(t, err, errorvalues.ErrAdminRequired)
	})
	t.Run("update by stranger", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
		_, err := hs.Update(context.Background(), service.Actor{ID: uuid.New()}, list.ID, entity.HabitListPatch{Name: &name})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("empty update", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
		_, err := hs.Update(context.Background(), service.Actor{ID: owner}, list.ID, entity.HabitListPatch{})
		assert.ErrorIs(t, err, errorvalues.ErrEmptyPatch)
	})
	t.Run("delete by owner", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
		deps.lists.EXPECT().Delete(gomock.Any(), list.ID).Return(nil)
		assert.NoError(t, hs.Delete(context.Background(), service.Actor{ID: owner}, list.ID))
	})
	t.Run("get returns habits", func(t *testing.T) {
		hs, deps := newHabitListService(t, time.Now())
		details := []entity.HabitDetails{{ID: uuid.New(), Description: "Read", Type: entity.HabitKindPreset}}
		deps.lists.EXPECT().GetByID(gomock.Any(), list.ID).Return(list, nil)
		deps.lists.EXPECT().Details(gomock.Any(), list.ID).Return(details, nil)
		view, err := hs.Get(context.Background(), list.ID)
		require.NoError(t, err)
		assert.Equal(t, list.ID, view.ID)
		assert.Equal(t, details, view.Habits)
	})
}
