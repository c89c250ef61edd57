package runtime

import (
	"sync"
	"tagcast/domain"
	"tagcast/errors"
)

// Registry owns one chat's tag -> subscriber mapping.
// Tags keep their insertion order; each tag's subscribers keep their
// subscription order. A tag key exists iff it has at least one subscriber.
//
// Registry is safe for concurrent use. Different chats hold different
// Registry values and never contend with each other.
type Registry struct {
	mu       sync.RWMutex
	tagOrder []domain.Tag
	tags     map[domain.Tag][]domain.Subscriber
}

func NewRegistry() *Registry {
	return &Registry{tags: make(map[domain.Tag][]domain.Subscriber)}
}

// Subscribe inserts the user into the tag's subscriber set.
// Re-subscribing is not an error: the user keeps their original position
// and only the stored display name is refreshed.
func (r *Registry) Subscribe(tag domain.Tag, user domain.Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subscribers, ok := r.tags[tag]
	if !ok {
		r.tagOrder = append(r.tagOrder, tag)
	}

	for i, s := range subscribers {
		if s.ID == user.ID {
			subscribers[i].Name = user.Name
			return
		}
	}
	r.tags[tag] = append(subscribers, user)
}

// Unsubscribe removes the user from the tag's subscriber set.
// If the set becomes empty, the tag entry is removed entirely so that
// no empty sets linger in the mapping.
func (r *Registry) Unsubscribe(tag domain.Tag, userID domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subscribers, ok := r.tags[tag]
	if !ok {
		return errors.ErrNotSubscribed
	}

	for i, s := range subscribers {
		if s.ID == userID {
			r.tags[tag] = append(subscribers[:i:i], subscribers[i+1:]...)
			if len(r.tags[tag]) == 0 {
				delete(r.tags, tag)
				r.dropFromOrder(tag)
			}
			return nil
		}
	}
	return errors.ErrNotSubscribed
}

// SubscribersOf returns the tag's subscribers in subscription order.
// The result is a copy; an absent tag yields an empty list.
func (r *Registry) SubscribersOf(tag domain.Tag) []domain.Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subscribers := r.tags[tag]
	out := make([]domain.Subscriber, len(subscribers))
	copy(out, subscribers)
	return out
}

// TagsOfUser returns every tag the user subscribes to, in tag insertion order.
func (r *Registry) TagsOfUser(userID domain.UserID) []domain.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Tag
	for _, tag := range r.tagOrder {
		for _, s := range r.tags[tag] {
			if s.ID == userID {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}

// TagsOfName is the display-name variant of TagsOfUser, used when no
// numeric identity is available (a bare handle with no account behind it).
func (r *Registry) TagsOfName(name string) []domain.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Tag
	for _, tag := range r.tagOrder {
		for _, s := range r.tags[tag] {
			if s.Name == name {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}

// AllTags returns every tag with at least one subscriber, in insertion order.
func (r *Registry) AllTags() []domain.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Tag, len(r.tagOrder))
	copy(out, r.tagOrder)
	return out
}

// Snapshot copies the full registry state for persistence.
// It never shares slices with the live registry.
func (r *Registry) Snapshot() domain.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := domain.Snapshot{Tags: make([]domain.TagState, 0, len(r.tagOrder))}
	for _, tag := range r.tagOrder {
		subscribers := make([]domain.Subscriber, len(r.tags[tag]))
		copy(subscribers, r.tags[tag])
		snapshot.Tags = append(snapshot.Tags, domain.TagState{Tag: tag, Subscribers: subscribers})
	}
	return snapshot
}

// Restore replaces the registry state with the snapshot's.
// Empty tag states are skipped so the "no empty sets" invariant holds
// even against a hand-edited store.
func (r *Registry) Restore(snapshot domain.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tagOrder = nil
	r.tags = make(map[domain.Tag][]domain.Subscriber, len(snapshot.Tags))
	for _, state := range snapshot.Tags {
		if len(state.Subscribers) == 0 {
			continue
		}
		subscribers := make([]domain.Subscriber, len(state.Subscribers))
		copy(subscribers, state.Subscribers)
		r.tagOrder = append(r.tagOrder, state.Tag)
		r.tags[state.Tag] = subscribers
	}
}

func (r *Registry) dropFromOrder(tag domain.Tag) {
	for i, t := range r.tagOrder {
		if t == tag {
			r.tagOrder = append(r.tagOrder[:i:i], r.tagOrder[i+1:]...)
			return
		}
	}
}
