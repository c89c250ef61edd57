//go:generate go run go.uber.org/mock/mockgen -source=subscription_service.go -destination=../mocks/mock_subscription_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"tagcast/contract"
	"tagcast/domain"
	"tagcast/domain/event"
	"tagcast/errors"
	"tagcast/runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

// tagBatch is the validation shape for subscribe/unsubscribe arguments.
// Every tag must be a #-prefixed token with at least one character after
// the marker.
type tagBatch struct {
	Tags []string `validate:"required,min=1,dive,startswith=#,min=2"`
}

type ISubscriptionService interface {
	Subscribe(cmd domain.SubscribeCommand) (string, error)
	Unsubscribe(cmd domain.UnsubscribeCommand) (string, error)
	ListSelf(cmd domain.ListSelfCommand) string
	ListAll(cmd domain.ListAllCommand) string
	Info(cmd domain.InfoCommand) (string, error)
}

// SubscriptionService validates the user-facing commands and executes them
// against the per-chat registries. Every mutation publishes a StateChanged
// snapshot for the persistence worker; storage never blocks the reply.
type SubscriptionService struct {
	log        *slog.Logger
	store      *runtime.Store
	repository contract.IChatStateRepository
	events     chan<- event.DomainEvent
}

func NewSubscriptionService(
	log *slog.Logger,
	store *runtime.Store,
	repository contract.IChatStateRepository,
	events chan<- event.DomainEvent,
) *SubscriptionService {
	return &SubscriptionService{log: log, store: store, repository: repository, events: events}
}

func (s *SubscriptionService) Subscribe(cmd domain.SubscribeCommand) (string, error) {
	if err := validateTags(cmd.Tags); err != nil {
		return "", err
	}

	registry := s.store.Chat(cmd.Chat)
	now := time.Now().UTC()
	for _, tag := range cmd.Tags {
		registry.Subscribe(tag, cmd.User)
		s.publish(event.SubscriptionAdded{ID: uuid.New(), Chat: cmd.Chat, Tag: tag, User: cmd.User, At: now})
	}
	s.publishState(cmd.Chat, registry)

	return joinPrefixed("+", cmd.Tags), nil
}

// Unsubscribe removes the user from every given tag. Tags the user was not
// subscribed to are skipped and reported back rather than aborting the
// whole batch.
func (s *SubscriptionService) Unsubscribe(cmd domain.UnsubscribeCommand) (string, error) {
	if err := validateTags(cmd.Tags); err != nil {
		return "", err
	}

	registry := s.store.Chat(cmd.Chat)
	now := time.Now().UTC()
	var removed, skipped []domain.Tag
	for _, tag := range cmd.Tags {
		if err := registry.Unsubscribe(tag, cmd.User.ID); err != nil {
			skipped = append(skipped, tag)
			continue
		}
		removed = append(removed, tag)
		s.publish(event.SubscriptionRemoved{ID: uuid.New(), Chat: cmd.Chat, Tag: tag, User: cmd.User, At: now})
	}

	if len(removed) > 0 {
		s.publishState(cmd.Chat, registry)
	}
	if len(removed) == 0 {
		return "", fmt.Errorf("%w: %s", errors.ErrNotSubscribed, joinTags(skipped))
	}

	reply := joinPrefixed("-", removed)
	if len(skipped) > 0 {
		reply += fmt.Sprintf(" (not subscribed: %s)", joinTags(skipped))
	}
	return reply, nil
}

func (s *SubscriptionService) ListSelf(cmd domain.ListSelfCommand) string {
	tags := s.store.Chat(cmd.Chat).TagsOfUser(cmd.User.ID)
	if len(tags) == 0 {
		return fmt.Sprintf("no subscriptions for %s", cmd.User.Name)
	}
	return fmt.Sprintf("subscriptions of %s: %s", cmd.User.Name, joinTags(tags))
}

// ListAll returns an empty reply for an empty chat, which the dispatcher
// treats as "send nothing".
func (s *SubscriptionService) ListAll(cmd domain.ListAllCommand) string {
	tags := s.store.Chat(cmd.Chat).AllTags()
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("chat tags: %s", joinTags(tags))
}

// Info resolves its single argument with a fixed precedence: a mention
// resolved to a real account wins over a hashtag, which wins over treating
// the raw argument as a literal display name.
func (s *SubscriptionService) Info(cmd domain.InfoCommand) (string, error) {
	if len(cmd.Args) == 0 {
		return "", errors.ErrMissingArgument
	}
	if len(cmd.Args) > 1 {
		return "", errors.ErrTooManyArguments
	}

	registry := s.store.Chat(cmd.Chat)

	for _, mention := range cmd.Mentions {
		if user, ok := mention.(domain.ResolvedUser); ok {
			return renderTagsOf(user.Name, registry.TagsOfUser(user.ID)), nil
		}
	}

	if len(cmd.Hashtags) > 0 {
		tag := cmd.Hashtags[0]
		subscribers := registry.SubscribersOf(tag)
		if len(subscribers) == 0 {
			return fmt.Sprintf("no subscribers for %s", tag), nil
		}
		names := lo.Map(subscribers, func(s domain.Subscriber, _ int) string { return s.Name })
		return fmt.Sprintf("subscribers of %s: %s", tag, strings.Join(names, " ")), nil
	}

	name := strings.TrimPrefix(cmd.Args[0], "@")
	return renderTagsOf(name, registry.TagsOfName(name)), nil
}

// publish queues a per-tag audit event. The audit stream is informational,
// so a full queue drops the event instead of blocking the user operation.
func (s *SubscriptionService) publish(evt event.DomainEvent) {
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Event queue full, dropping audit event", "chat", evt.ChatID())
	}
}

// publishState hands the post-mutation snapshot to the persistence queue.
// A full queue falls back to a synchronous save so durability does not
// silently degrade; the in-memory registry stays authoritative either way.
func (s *SubscriptionService) publishState(chat domain.ChatID, registry *runtime.Registry) {
	evt := event.StateChanged{Chat: chat, Snapshot: registry.Snapshot(), At: time.Now().UTC()}
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Persistence queue full, saving synchronously", "chat", chat)
		if err := s.repository.SaveChat(chat, evt.Snapshot); err != nil {
			s.log.Error("Synchronous save failed", "chat", chat, "error", err)
		}
	}
}

func validateTags(tags []domain.Tag) error {
	if len(tags) == 0 {
		return errors.ErrNoTagsGiven
	}
	batch := tagBatch{Tags: lo.Map(tags, func(t domain.Tag, _ int) string { return string(t) })}
	if err := validate.Struct(batch); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidTagFormat, err)
	}
	return nil
}

func renderTagsOf(name string, tags []domain.Tag) string {
	if len(tags) == 0 {
		return fmt.Sprintf("no subscriptions for %s", name)
	}
	return fmt.Sprintf("subscriptions of %s: %s", name, joinTags(tags))
}

func joinTags(tags []domain.Tag) string {
	return strings.Join(lo.Map(tags, func(t domain.Tag, _ int) string { return string(t) }), " ")
}

func joinPrefixed(prefix string, tags []domain.Tag) string {
	return strings.Join(lo.Map(tags, func(t domain.Tag, _ int) string { return prefix + string(t) }), " ")
}
