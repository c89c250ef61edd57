package event

import (
	"tagcast/domain"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	ChatID() domain.ChatID
}

type SubscriptionAdded struct {
	ID   uuid.UUID
	Chat domain.ChatID
	Tag  domain.Tag
	User domain.Subscriber
	At   time.Time
}

func (e SubscriptionAdded) ChatID() domain.ChatID { return e.Chat }

type SubscriptionRemoved struct {
	ID   uuid.UUID
	Chat domain.ChatID
	Tag  domain.Tag
	User domain.Subscriber
	At   time.Time
}

func (e SubscriptionRemoved) ChatID() domain.ChatID { return e.Chat }

// StateChanged carries the full post-mutation snapshot of a chat so the
// persistence worker can store it without touching the live registry.
type StateChanged struct {
	Chat     domain.ChatID
	Snapshot domain.Snapshot
	At       time.Time
}

func (e StateChanged) ChatID() domain.ChatID { return e.Chat }
