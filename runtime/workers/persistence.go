package workers

import (
	"context"
	"log/slog"
	"tagcast/contract"
	"tagcast/domain/event"
)

// PersistenceWorker drains the domain event queue: StateChanged snapshots
// are written to durable storage, per-tag subscription events are logged
// as an audit trail. It runs behind a buffered channel so no
// registry lock is ever held across storage I/O and reply latency stays
// decoupled from disk latency.
//
// A failed save is logged and dropped: the in-memory registry is the
// authority for the running process, persistence is best-effort durability.
type PersistenceWorker struct {
	log        *slog.Logger
	repository contract.IChatStateRepository
	events     <-chan event.DomainEvent
}

func NewPersistenceWorker(
	log *slog.Logger,
	repository contract.IChatStateRepository,
	events <-chan event.DomainEvent,
) *PersistenceWorker {
	return &PersistenceWorker{log: log, repository: repository, events: events}
}

func (w *PersistenceWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return nil
		case evt := <-w.events:
			w.consume(evt)
		}
	}
}

// drain flushes whatever is still queued at shutdown without blocking.
func (w *PersistenceWorker) drain() {
	for {
		select {
		case evt := <-w.events:
			w.consume(evt)
		default:
			return
		}
	}
}

func (w *PersistenceWorker) consume(evt event.DomainEvent) {
	switch e := evt.(type) {
	case event.StateChanged:
		if err := w.repository.SaveChat(e.Chat, e.Snapshot); err != nil {
			w.log.Error("Chat state save failed, in-memory state stays authoritative",
				"chat", e.Chat, "error", err)
		}
	case event.SubscriptionAdded:
		w.log.Debug("Subscription added", "chat", e.Chat, "tag", e.Tag, "user", e.User.ID)
	case event.SubscriptionRemoved:
		w.log.Debug("Subscription removed", "chat", e.Chat, "tag", e.Tag, "user", e.User.ID)
	}
}
