// Package notify pushes domain events to connected WebSocket clients,
// optionally fanning them out across instances through Redis.
package notify

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/limbo/levelup/pkg/entity"
)

const (
	TopicHabitListCreated = "habit_list_created"
	TopicHabitListUpdate  = "habit_list_update"
	TopicUserUpdate       = "user_update"
)

type UserUpdate struct {
	UserID   uuid.UUID    `json:"user_id"`
	UserData *entity.User `json:"user_data"`
}

type HabitListUpdate struct {
	HabitListID   uuid.UUID             `json:"habit_list_id"`
	HabitListData *entity.HabitListView `json:"habit_list_data"`
}

// Envelope is the frame every subscriber receives.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func encode(topic string, payload any) ([]byte, error) {
	return sonic.ConfigDefault.Marshal(Envelope{Event: topic, Data: payload})
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) {}
