package entity

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	MinXPReward = 75
	MaxXPReward = 100
)

type User struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Username        string     `json:"username"`
	PasswordHash    string     `json:"-"`
	IsAdmin         bool       `json:"is_admin"`
	Level           int        `json:"level"`
	CurrentXP       int        `json:"current_xp"`
	XPToNextLevel   int        `json:"xp_to_next_level"`
	HabitsCompleted int        `json:"habits_completed"`
	MaxHP           int        `json:"max_hp"`
	HP              int        `json:"hp"`
	Strength        int        `json:"strength"`
	Vitality        int        `json:"vitality"`
	Dexterity       int        `json:"dexterity"`
	Intelligence    int        `json:"intelligence"`
	Luck            int        `json:"luck"`
	Streak          int        `json:"streak"`
	LastLogin       *time.Time `json:"last_login"`
	TotalLoginCount int        `json:"total_login_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewUser returns a level 1 character with starting stats.
func NewUser(email, username, passwordHash string) *User {
	return &User{
		Email:         email,
		Username:      username,
		PasswordHash:  passwordHash,
		Level:         1,
		XPToNextLevel: XPToNextLevel(1),
		MaxHP:         50,
		HP:            50,
		Strength:      5,
		Vitality:      5,
		Dexterity:     3,
		Intelligence:  3,
		Luck:          1,
	}
}

type Category struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type PresetHabit struct {
	ID           uuid.UUID `json:"id"`
	Description  string    `json:"description"`
	CategoryName *string   `json:"category_name"`
	XPReward     int       `json:"xp_reward"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CustomHabit struct {
	ID           uuid.UUID `json:"id"`
	Description  string    `json:"description"`
	HabitOwnerID uuid.UUID `json:"habit_owner_id"`
	XPReward     int       `json:"xp_reward"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type HabitList struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	ListOwnerID     uuid.UUID `json:"list_owner_id"`
	CompletedHabits int       `json:"completed_habits"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type HabitKind string

const (
	HabitKindPreset HabitKind = "preset"
	HabitKindCustom HabitKind = "custom"
)

// HabitListItem references exactly one of PresetHabitID or CustomHabitID.
type HabitListItem struct {
	ID               uuid.UUID  `json:"id"`
	HabitListID      uuid.UUID  `json:"habit_list_id"`
	PresetHabitID    *uuid.UUID `json:"preset_habit_id"`
	CustomHabitID    *uuid.UUID `json:"custom_habit_id"`
	HabitIsCompleted bool       `json:"habit_is_completed"`
	IsLate           bool       `json:"is_late"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (item *HabitListItem) Kind() HabitKind {
	if item.PresetHabitID != nil {
		return HabitKindPreset
	}
	return HabitKindCustom
}

func (item *HabitListItem) HabitID() uuid.UUID {
	if item.PresetHabitID != nil {
		return *item.PresetHabitID
	}
	if item.CustomHabitID != nil {
		return *item.CustomHabitID
	}
	return uuid.Nil
}

// HabitDetails is a list item joined with the description of its habit.
type HabitDetails struct {
	ID          uuid.UUID `json:"id"`
	HabitID     uuid.UUID `json:"habit_id"`
	Description string    `json:"description"`
	Type        HabitKind `json:"type"`
	Completed   bool      `json:"habit_is_completed"`
	IsLate      bool      `json:"is_late"`
}

// RandomXPReward draws the fixed reward of a newly created habit.
func RandomXPReward() int {
	return MinXPReward + rand.IntN(MaxXPReward-MinXPReward+1)
}

// HabitListView is a list together with the habits it holds.
type HabitListView struct {
	*HabitList
	Habits []HabitDetails `json:"habits"`
}
