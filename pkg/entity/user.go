package entity

import "time"

const (
	DefaultHPRecovery = 15
	DefaultHPPenalty  = 25
	DefaultXPPenalty  = 50
)

// Stat growth applied on every level up.
const (
	levelUpMaxHP        = 10
	levelUpStrength     = 5
	levelUpVitality     = 5
	levelUpDexterity    = 3
	levelUpIntelligence = 3
	levelUpLuck         = 1
)

// XPToNextLevel is the XP needed to leave the given level.
func XPToNextLevel(level int) int {
	return 100 + (level-1)*50
}

// GainXP credits a completed habit and resolves any level ups.
// Returns the number of levels gained.
func (u *User) GainXP(amount int) int {
	u.CurrentXP += amount
	u.HabitsCompleted++
	return u.LevelUpCheck()
}

func (u *User) LevelUpCheck() int {
	levels := 0
	for u.XPToNextLevel > 0 && u.CurrentXP >= u.XPToNextLevel {
		u.LevelUp()
		levels++
	}
	return levels
}

func (u *User) LevelUp() {
	u.CurrentXP -= u.XPToNextLevel
	u.Level++
	u.MaxHP += levelUpMaxHP
	u.Strength += levelUpStrength
	u.Vitality += levelUpVitality
	u.Dexterity += levelUpDexterity
	u.Intelligence += levelUpIntelligence
	u.Luck += levelUpLuck
	u.XPToNextLevel = XPToNextLevel(u.Level)
}

// RecoverHP heals up to MaxHP and returns the amount actually recovered.
func (u *User) RecoverHP(points int) int {
	before := u.HP
	u.HP = min(u.HP+points, u.MaxHP)
	return u.HP - before
}

// LoseHP returns the amount actually lost.
func (u *User) LoseHP(points int) int {
	before := u.HP
	u.HP = max(u.HP-points, 0)
	return before - u.HP
}

// LoseXP never takes CurrentXP below zero and never drops a level.
func (u *User) LoseXP(points int) int {
	before := u.CurrentXP
	u.CurrentXP = max(u.CurrentXP-points, 0)
	return before - u.CurrentXP
}

// ListItems is a habit list loaded together with its items.
type ListItems struct {
	List  *HabitList
	Items []*HabitListItem
}

type SweepResult struct {
	Applied       bool `json:"applied"`
	MissedHabits  int  `json:"missed_habits"`
	HPLost        int  `json:"hp_lost"`
	XPLost        int  `json:"xp_lost"`
	HPReachedZero bool `json:"hp_reached_zero"`
}

// CheckIncompleteHabits penalizes every habit left incomplete across the
// given lists. It runs at most once per calendar day: LastLogin on today's
// date marks the sweep as done. The flat XP penalty applies once per sweep
// when HP hits zero, however many habits were missed.
func (u *User) CheckIncompleteHabits(now time.Time, lists []ListItems) SweepResult {
	var res SweepResult
	if !now.After(DailyDeadline(now)) {
		return res
	}
	if u.LastLogin != nil && !CalendarDay(*u.LastLogin).Before(CalendarDay(now)) {
		return res
	}
	res.Applied = true
	for _, l := range lists {
		if l.List == nil {
			continue
		}
		missed, lost, zero := l.List.PenalizeIncomplete(u, l.Items)
		res.MissedHabits += missed
		res.HPLost += lost
		res.HPReachedZero = res.HPReachedZero || zero
	}
	if res.HPReachedZero {
		res.XPLost = u.LoseXP(DefaultXPPenalty)
	}
	checked := now
	u.LastLogin = &checked
	return res
}

type LoginResult struct {
	Sweep          SweepResult `json:"sweep"`
	StreakBefore   int         `json:"streak_before"`
	StreakAfter    int         `json:"streak_after"`
	StreakExtended bool        `json:"streak_extended"`
	StreakReset    bool        `json:"streak_reset"`
}

// CheckDailyStreak is run once per login. The incomplete-habit sweep runs
// first; the streak is then computed from the login recorded before this
// call, so the sweep's own LastLogin marker does not count as a login.
func (u *User) CheckDailyStreak(now time.Time, lists []ListItems) LoginResult {
	previous := u.LastLogin
	res := LoginResult{StreakBefore: u.Streak}
	res.Sweep = u.CheckIncompleteHabits(now, lists)

	switch {
	case previous == nil:
		u.Streak = 1
	default:
		days := DaysBetween(*previous, now)
		switch {
		case days == 1:
			u.Streak++
			res.StreakExtended = true
		case days > 1:
			u.Streak = 1
			res.StreakReset = res.StreakBefore > 1
		}
	}
	if u.Streak < 1 {
		u.Streak = 1
	}

	login := now
	u.LastLogin = &login
	u.TotalLoginCount++
	res.StreakAfter = u.Streak
	return res
}
