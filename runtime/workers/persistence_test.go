package workers

import (
	"context"
	"fmt"
	"log/slog"
	"tagcast/domain"
	"tagcast/domain/event"
	"tagcast/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func snapshotOf(tag domain.Tag) domain.Snapshot {
	return domain.Snapshot{Tags: []domain.TagState{
		{Tag: tag, Subscribers: []domain.Subscriber{{ID: 1, Name: "alice"}}},
	}}
}

func TestPersistenceWorker_Saves_Queued_Snapshots(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	events := make(chan event.DomainEvent, 4)
	worker := NewPersistenceWorker(slog.Default(), repository, events)

	saved := make(chan domain.ChatID, 1)
	repository.EXPECT().
		SaveChat(domain.ChatID(7), snapshotOf("#go")).
		DoAndReturn(func(chat domain.ChatID, _ domain.Snapshot) error {
			saved <- chat
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	events <- event.StateChanged{Chat: 7, Snapshot: snapshotOf("#go")}

	select {
	case chat := <-saved:
		req.Equal(domain.ChatID(7), chat)
	case <-time.After(time.Second):
		req.FailNow("snapshot was never saved")
	}
}

func TestPersistenceWorker_Drains_Queue_On_Shutdown(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	events := make(chan event.DomainEvent, 4)
	worker := NewPersistenceWorker(slog.Default(), repository, events)

	// Given snapshots still queued when the context is already canceled
	events <- event.StateChanged{Chat: 1, Snapshot: snapshotOf("#a")}
	events <- event.StateChanged{Chat: 2, Snapshot: snapshotOf("#b")}

	repository.EXPECT().SaveChat(domain.ChatID(1), gomock.Any()).Return(nil)
	repository.EXPECT().SaveChat(domain.ChatID(2), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Then Run flushes them before returning
	req.NoError(worker.Run(ctx))
}

func TestPersistenceWorker_A_Failed_Save_Is_Not_Fatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	events := make(chan event.DomainEvent, 4)
	worker := NewPersistenceWorker(slog.Default(), repository, events)

	// First save fails, the worker keeps going and saves the next one
	repository.EXPECT().SaveChat(domain.ChatID(1), gomock.Any()).Return(fmt.Errorf("disk gone"))
	repository.EXPECT().SaveChat(domain.ChatID(2), gomock.Any()).Return(nil)

	events <- event.StateChanged{Chat: 1, Snapshot: snapshotOf("#a")}
	events <- event.StateChanged{Chat: 2, Snapshot: snapshotOf("#b")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.NoError(worker.Run(ctx))
}

func TestPersistenceWorker_Audit_Events_Do_Not_Touch_Storage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	events := make(chan event.DomainEvent, 4)
	worker := NewPersistenceWorker(slog.Default(), repository, events)

	// Given per-tag audit events queued around a single snapshot
	events <- event.SubscriptionAdded{Chat: 1, Tag: "#go", User: domain.Subscriber{ID: 1, Name: "alice"}}
	events <- event.StateChanged{Chat: 1, Snapshot: snapshotOf("#go")}
	events <- event.SubscriptionRemoved{Chat: 1, Tag: "#go", User: domain.Subscriber{ID: 1, Name: "alice"}}

	// Then only the snapshot reaches the repository
	repository.EXPECT().SaveChat(domain.ChatID(1), snapshotOf("#go")).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.NoError(worker.Run(ctx))
}
