//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"tagcast/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IEntityExtractor yields the hashtag and mention spans of a raw message.
// Hashtag order follows message order; duplicates are not removed.
type IEntityExtractor interface {
	Hashtags(text string) []domain.Tag
	Mentions(text string) []domain.Mention
}

// IChatStateRepository is the durable storage boundary.
// The stored format is opaque to the core; snapshots must round-trip
// with tag and subscriber order intact.
type IChatStateRepository interface {
	SaveChat(chat domain.ChatID, snapshot domain.Snapshot) error
	LoadChat(chat domain.ChatID) (domain.Snapshot, bool, error)
	LoadAll() (map[domain.ChatID]domain.Snapshot, error)
}

// Replier sends a reply string into the originating chat.
type Replier interface {
	Reply(ctx context.Context, chat domain.ChatID, text string) error
}
