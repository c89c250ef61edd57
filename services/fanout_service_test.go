package services

import (
	"fmt"
	"log/slog"
	"tagcast/domain"
	"tagcast/runtime"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newFanout(t *testing.T) (*FanoutService, *runtime.Store) {
	t.Helper()
	store := runtime.NewStore()
	render := func(s domain.Subscriber) string { return fmt.Sprintf("@%s", s.Name) }
	return NewFanoutService(logs.GetLoggerFromLevel(slog.LevelDebug), store, render), store
}

func TestFanoutService_No_Dedup_Across_Tags(t *testing.T) {
	req := require.New(t)
	service, store := newFanout(t)
	alice := domain.Subscriber{ID: 1, Name: "alice"}
	bob := domain.Subscriber{ID: 2, Name: "bob"}

	// Given #a -> [alice] and #b -> [alice, bob]
	store.Chat(chat).Subscribe("#a", alice)
	store.Chat(chat).Subscribe("#b", alice)
	store.Chat(chat).Subscribe("#b", bob)

	// When a message carries both tags
	reply := service.Notify(domain.FreeformMessage{Chat: chat, Hashtags: []domain.Tag{"#a", "#b"}})

	// Then alice is mentioned twice: once per tag, in nested order
	req.Equal("@alice @alice @bob", reply)
}

func TestFanoutService_Silence_When_No_Subscriber_Reached(t *testing.T) {
	req := require.New(t)
	service, store := newFanout(t)

	// No tags at all
	req.Empty(service.Notify(domain.FreeformMessage{Chat: chat}))

	// Tags with zero subscribers
	req.Empty(service.Notify(domain.FreeformMessage{Chat: chat, Hashtags: []domain.Tag{"#ghost"}}))

	// A populated tag in another chat does not leak over
	store.Chat(chat + 1).Subscribe("#go", domain.Subscriber{ID: 1, Name: "alice"})
	req.Empty(service.Notify(domain.FreeformMessage{Chat: chat, Hashtags: []domain.Tag{"#go"}}))
}

func TestFanoutService_Duplicate_Hashtags_Are_Processed_As_Given(t *testing.T) {
	req := require.New(t)
	service, store := newFanout(t)
	store.Chat(chat).Subscribe("#go", domain.Subscriber{ID: 1, Name: "alice"})

	// The extractor does not guarantee dedup; fan-out must not either
	reply := service.Notify(domain.FreeformMessage{Chat: chat, Hashtags: []domain.Tag{"#go", "#go"}})
	req.Equal("@alice @alice", reply)
}
