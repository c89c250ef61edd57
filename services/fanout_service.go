//go:generate go run go.uber.org/mock/mockgen -source=fanout_service.go -destination=../mocks/mock_fanout_service.go -package=mocks
package services

import (
	"log/slog"
	"strings"
	"tagcast/domain"
	"tagcast/runtime"
)

type IFanoutService interface {
	Notify(cmd domain.FreeformMessage) string
}

// FanoutService turns a tagged freeform message into the mention line to
// send back. One mention token per (tag, subscriber) pair: tag order outer,
// subscription order inner. A subscriber reached through two tags of the
// same message is mentioned twice; that is the product behavior, not an
// oversight.
type FanoutService struct {
	log    *slog.Logger
	store  *runtime.Store
	render func(domain.Subscriber) string
}

func NewFanoutService(log *slog.Logger, store *runtime.Store, render func(domain.Subscriber) string) *FanoutService {
	return &FanoutService{log: log, store: store, render: render}
}

// Notify returns the mention line for the message's hashtags, or an empty
// string when no subscriber is reached (silence, not an error).
func (s *FanoutService) Notify(cmd domain.FreeformMessage) string {
	registry := s.store.Chat(cmd.Chat)

	var mentions []string
	for _, tag := range cmd.Hashtags {
		for _, subscriber := range registry.SubscribersOf(tag) {
			mentions = append(mentions, s.render(subscriber))
		}
	}
	if len(mentions) == 0 {
		return ""
	}
	return strings.Join(mentions, " ")
}
