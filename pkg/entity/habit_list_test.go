package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteItem(t *testing.T) {
	now := eastern(2024, time.February, 7, 10)
	testCases := []struct {
		Desc            string
		CreatedAt       time.Time
		Reward          int
		StartHP         int
		ExpectedLate    bool
		ExpectedXP      int
		ExpectedHP      int
		ExpectedLevel   int
		ExpectedRecover int
	}{
		{
			Desc:         "created yesterday, completed after deadline",
			CreatedAt:    eastern(2024, time.February, 6, 9),
			Reward:       100,
			StartHP:      30,
			ExpectedLate: true,
			ExpectedXP:   50,
			ExpectedHP:   30,
		},
		{
			Desc:         "odd reward is floored",
			CreatedAt:    eastern(2024, time.February, 1, 9),
			Reward:       75,
			StartHP:      50,
			ExpectedLate: true,
			ExpectedXP:   37,
			ExpectedHP:   50,
		},
		{
			Desc:            "created today",
			CreatedAt:       eastern(2024, time.February, 7, 8),
			Reward:          90,
			StartHP:         30,
			ExpectedXP:      90,
			ExpectedHP:      45,
			ExpectedRecover: 15,
		},
		{
			Desc:            "hp recovery is capped",
			CreatedAt:       eastern(2024, time.February, 7, 0),
			Reward:          80,
			StartHP:         45,
			ExpectedXP:      80,
			ExpectedHP:      50,
			ExpectedRecover: 5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			owner := entity.NewUser("a@b.c", "user", "hash")
			owner.HP = tc.StartHP
			list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner.ID}
			item := &entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, CreatedAt: tc.CreatedAt}

			res, err := list.CompleteItem(item, tc.Reward, owner, now)
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedLate, res.Late)
			assert.Equal(t, tc.ExpectedLate, item.IsLate)
			assert.True(t, item.HabitIsCompleted)
			assert.Equal(t, 1, list.CompletedHabits)
			assert.Equal(t, tc.ExpectedXP, res.XPAwarded)
			assert.Equal(t, tc.ExpectedXP, owner.CurrentXP)
			assert.Equal(t, tc.ExpectedHP, owner.HP)
			assert.Equal(t, tc.ExpectedRecover, res.HPRecovered)
			assert.Equal(t, 1, owner.HabitsCompleted)
		})
	}
}

func TestCompleteItemTwice(t *testing.T) {
	now := eastern(2024, time.February, 7, 10)
	owner := entity.NewUser("a@b.c", "user", "hash")
	list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner.ID}
	item := &entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, CreatedAt: now.Add(-time.Hour)}

	_, err := list.CompleteItem(item, 100, owner, now)
	require.NoError(t, err)
	snapshotUser, snapshotList, snapshotItem := *owner, *list, *item

	_, err = list.CompleteItem(item, 100, owner, now.Add(time.Minute))
	assert.ErrorIs(t, err, errorvalues.ErrHabitAlreadyCompleted)
	assert.Equal(t, snapshotUser, *owner)
	assert.Equal(t, snapshotList, *list)
	assert.Equal(t, snapshotItem, *item)
}

func TestCompleteItemLevelsUp(t *testing.T) {
	now := eastern(2024, time.February, 7, 10)
	owner := entity.NewUser("a@b.c", "user", "hash")
	owner.CurrentXP = 90
	owner.HP = 10
	list := &entity.HabitList{ID: uuid.New(), ListOwnerID: owner.ID}
	item := &entity.HabitListItem{ID: uuid.New(), HabitListID: list.ID, CreatedAt: now}

	res, err := list.CompleteItem(item, 100, owner, now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.LevelsGained)
	assert.Equal(t, 2, owner.Level)
	assert.Equal(t, 90, owner.CurrentXP)
	assert.Equal(t, 60, owner.MaxHP)
	assert.Equal(t, 25, owner.HP)
}

func TestPenalizeIncompleteIgnoresForeignItems(t *testing.T) {
	owner := entity.NewUser("a@b.c", "user", "hash")
	list := &entity.HabitList{ID: uuid.New()}
	items := []*entity.HabitListItem{
		{HabitListID: uuid.New()},
		{HabitListID: list.ID},
	}
	missed, lost, zero := list.PenalizeIncomplete(owner, items)
	assert.Equal(t, 1, missed)
	assert.Equal(t, 25, lost)
	assert.False(t, zero)
}

func TestRandomXPReward(t *testing.T) {
	for i := 0; i < 500; i++ {
		r := entity.RandomXPReward()
		assert.GreaterOrEqual(t, r, entity.MinXPReward)
		assert.LessOrEqual(t, r, entity.MaxXPReward)
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, entity.DaysBetween(eastern(2024, time.March, 9, 1), eastern(2024, time.March, 9, 23)))
	// Crosses the spring DST switch.
	assert.Equal(t, 1, entity.DaysBetween(eastern(2024, time.March, 9, 23), eastern(2024, time.March, 10, 23)))
	assert.Equal(t, 3, entity.DaysBetween(eastern(2024, time.March, 9, 12), eastern(2024, time.March, 12, 1)))
	assert.Equal(t, -2, entity.DaysBetween(eastern(2024, time.March, 12, 1), eastern(2024, time.March, 10, 5)))
	// 03:00 UTC is still the previous day in New York.
	utc := time.Date(2024, time.July, 2, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, entity.DaysBetween(utc, eastern(2024, time.July, 2, 12)))
}
