package repositories

import (
	"log/slog"
	"tagcast/domain"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{Tags: []domain.TagState{
		{Tag: "#b", Subscribers: []domain.Subscriber{{ID: 2, Name: "bob"}}},
		{Tag: "#a", Subscribers: []domain.Subscriber{
			{ID: 1, Name: "alice"},
			{ID: 2, Name: "bob"},
		}},
	}}
}

func Test_Save_And_Load_Chat_Round_Trip(t *testing.T) {
	req := require.New(t)
	repository := NewChatStateRepository(openTestDB(t), slog.Default())
	snapshot := sampleSnapshot()

	req.NoError(repository.SaveChat(42, snapshot))

	loaded, found, err := repository.LoadChat(42)
	req.NoError(err)
	req.True(found)

	// Tag order, subscriber order and names all survive the round trip
	req.Equal(snapshot, loaded)
}

func Test_Load_Missing_Chat(t *testing.T) {
	req := require.New(t)
	repository := NewChatStateRepository(openTestDB(t), slog.Default())

	_, found, err := repository.LoadChat(42)
	req.NoError(err)
	req.False(found)
}

func Test_Save_Overwrites_Previous_Snapshot(t *testing.T) {
	req := require.New(t)
	repository := NewChatStateRepository(openTestDB(t), slog.Default())

	req.NoError(repository.SaveChat(42, sampleSnapshot()))
	smaller := domain.Snapshot{Tags: []domain.TagState{
		{Tag: "#a", Subscribers: []domain.Subscriber{{ID: 1, Name: "alice"}}},
	}}
	req.NoError(repository.SaveChat(42, smaller))

	loaded, found, err := repository.LoadChat(42)
	req.NoError(err)
	req.True(found)
	req.Equal(smaller, loaded)
}

func Test_LoadAll_Returns_Every_Persisted_Chat(t *testing.T) {
	req := require.New(t)
	repository := NewChatStateRepository(openTestDB(t), slog.Default())

	first := sampleSnapshot()
	second := domain.Snapshot{Tags: []domain.TagState{
		{Tag: "#x", Subscribers: []domain.Subscriber{{ID: 9, Name: "zoe"}}},
	}}
	req.NoError(repository.SaveChat(1, first))
	req.NoError(repository.SaveChat(2, second))

	snapshots, err := repository.LoadAll()
	req.NoError(err)
	req.Len(snapshots, 2)
	req.Equal(first, snapshots[1])
	req.Equal(second, snapshots[2])
}
