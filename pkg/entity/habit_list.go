package entity

import (
	"time"

	errorvalues "github.com/limbo/levelup/internal/error_values"
)

type Completion struct {
	Late         bool `json:"late"`
	XPAwarded    int  `json:"xp_awarded"`
	HPRecovered  int  `json:"hp_recovered"`
	LevelsGained int  `json:"levels_gained"`
}

// CompleteItem marks item as done and rewards the list owner. Items created
// before today's deadline and still open once it passed are completed late:
// half XP and no HP recovery.
func (l *HabitList) CompleteItem(item *HabitListItem, xpReward int, owner *User, now time.Time) (Completion, error) {
	if item.HabitIsCompleted {
		return Completion{}, errorvalues.ErrHabitAlreadyCompleted
	}
	deadline := DailyDeadline(now)
	if item.CreatedAt.Before(deadline) && now.After(deadline) {
		item.IsLate = true
	}

	item.HabitIsCompleted = true
	item.UpdatedAt = now
	l.CompletedHabits++
	l.UpdatedAt = now

	var res Completion
	res.Late = item.IsLate
	if item.IsLate {
		res.XPAwarded = xpReward / 2
		res.LevelsGained = owner.GainXP(res.XPAwarded)
		return res, nil
	}
	res.XPAwarded = xpReward
	res.LevelsGained = owner.GainXP(xpReward)
	res.HPRecovered = owner.RecoverHP(DefaultHPRecovery)
	return res, nil
}

// PenalizeIncomplete charges owner for every open item of the list. It
// reports how many items were open, the HP lost and whether HP was at zero
// after any of the penalties.
func (l *HabitList) PenalizeIncomplete(owner *User, items []*HabitListItem) (missed, hpLost int, hpZero bool) {
	for _, item := range items {
		if item.HabitListID != l.ID || item.HabitIsCompleted {
			continue
		}
		missed++
		hpLost += owner.LoseHP(DefaultHPPenalty)
		if owner.HP == 0 {
			hpZero = true
		}
	}
	return missed, hpLost, hpZero
}
