package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"tagcast/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const chatKeyPrefix = "chat:"

// ChatStateRepository persists one snapshot blob per chat in BadgerDB.
// The key is "chat:{chat_id}"; the value is a JSON document keeping tag
// and subscriber order, so a load reproduces the registry exactly.
type ChatStateRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChatStateRepository(db *badger.DB, log *slog.Logger) ChatStateRepository {
	return ChatStateRepository{db: db, log: log}
}

// DiskChatState is the stored representation of one chat's subscriptions.
type DiskChatState struct {
	Tags []DiskTagState `json:"tags"`
}

type DiskTagState struct {
	Tag         string           `json:"tag"`
	Subscribers []DiskSubscriber `json:"subscribers"`
}

type DiskSubscriber struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r ChatStateRepository) SaveChat(chat domain.ChatID, snapshot domain.Snapshot) error {
	bytes, err := json.Marshal(fromSnapshot(snapshot))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chatKey(chat), bytes)
	})
}

func (r ChatStateRepository) LoadChat(chat domain.ChatID) (domain.Snapshot, bool, error) {
	var disk DiskChatState
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chatKey(chat))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	return toSnapshot(disk), true, nil
}

// LoadAll scans the "chat:" prefix and returns every persisted snapshot,
// keyed by chat id. Entries with a malformed key are logged and skipped
// instead of failing the whole startup hydration.
func (r ChatStateRepository) LoadAll() (map[domain.ChatID]domain.Snapshot, error) {
	snapshots := make(map[domain.ChatID]domain.Snapshot)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(chatKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			chat, err := parseChatKey(string(item.Key()))
			if err != nil {
				r.log.Warn("Skipping malformed chat key", "key", string(item.Key()), "error", err)
				continue
			}
			err = item.Value(func(val []byte) error {
				var disk DiskChatState
				if err := json.Unmarshal(val, &disk); err != nil {
					return err
				}
				snapshots[chat] = toSnapshot(disk)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func chatKey(chat domain.ChatID) []byte {
	return []byte(fmt.Sprintf("%s%d", chatKeyPrefix, chat))
}

func parseChatKey(key string) (domain.ChatID, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(key, chatKeyPrefix), 10, 64)
	return domain.ChatID(id), err
}

func fromSnapshot(snapshot domain.Snapshot) DiskChatState {
	return DiskChatState{
		Tags: lo.Map(snapshot.Tags, func(state domain.TagState, _ int) DiskTagState {
			return DiskTagState{
				Tag: string(state.Tag),
				Subscribers: lo.Map(state.Subscribers, func(s domain.Subscriber, _ int) DiskSubscriber {
					return DiskSubscriber{ID: int64(s.ID), Name: s.Name}
				}),
			}
		}),
	}
}

func toSnapshot(disk DiskChatState) domain.Snapshot {
	return domain.Snapshot{
		Tags: lo.Map(disk.Tags, func(state DiskTagState, _ int) domain.TagState {
			return domain.TagState{
				Tag: domain.Tag(state.Tag),
				Subscribers: lo.Map(state.Subscribers, func(s DiskSubscriber, _ int) domain.Subscriber {
					return domain.Subscriber{ID: domain.UserID(s.ID), Name: s.Name}
				}),
			}
		}),
	}
}
