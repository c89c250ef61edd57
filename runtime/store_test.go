package runtime

import (
	"tagcast/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_Chat_Creates_Empty_Registry_On_First_Reference(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	registry := store.Chat(42)
	req.Empty(registry.AllTags())

	// Same chat id always resolves to the same registry
	registry.Subscribe("#go", domain.Subscriber{ID: 1, Name: "alice"})
	req.Equal([]domain.Tag{"#go"}, store.Chat(42).AllTags())
}

func TestStore_Chats_Are_Independent(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	alice := domain.Subscriber{ID: 1, Name: "alice"}

	store.Chat(1).Subscribe("#go", alice)
	store.Chat(2).Subscribe("#rust", alice)

	req.Equal([]domain.Tag{"#go"}, store.Chat(1).AllTags())
	req.Equal([]domain.Tag{"#rust"}, store.Chat(2).AllTags())
}

func TestStore_Hydrate_Restores_Persisted_Chats(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	store.Hydrate(map[domain.ChatID]domain.Snapshot{
		7: {Tags: []domain.TagState{
			{Tag: "#go", Subscribers: []domain.Subscriber{{ID: 1, Name: "alice"}}},
			{Tag: "#rust", Subscribers: []domain.Subscriber{{ID: 2, Name: "bob"}}},
		}},
	})

	req.Equal([]domain.Tag{"#go", "#rust"}, store.Chat(7).AllTags())
	req.Equal([]domain.Subscriber{{ID: 1, Name: "alice"}}, store.Chat(7).SubscribersOf("#go"))
	req.Len(store.ChatIDs(), 1)
}
