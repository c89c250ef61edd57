package platform

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"tagcast/contract"
	"tagcast/domain"
	"tagcast/errors"
	"tagcast/services"
)

// Dispatcher routes one inbound update at a time to the core services and
// sends the resulting reply, if any, back through the Replier.
//
// A single misbehaving handler must never take the dispatch loop down:
// panics are recovered and reported into the chat as a diagnostic, and
// user-input errors become friendly replies instead of propagating.
type Dispatcher struct {
	log           *slog.Logger
	subscriptions services.ISubscriptionService
	fanout        services.IFanoutService
	extractor     contract.IEntityExtractor
	replier       contract.Replier
}

func NewDispatcher(
	log *slog.Logger,
	subscriptions services.ISubscriptionService,
	fanout services.IFanoutService,
	extractor contract.IEntityExtractor,
	replier contract.Replier,
) *Dispatcher {
	return &Dispatcher{
		log:           log,
		subscriptions: subscriptions,
		fanout:        fanout,
		extractor:     extractor,
		replier:       replier,
	}
}

// Dispatch handles one update end to end. An empty reply means silence.
func (d *Dispatcher) Dispatch(ctx context.Context, update Update) {
	reply := d.handle(update)
	if reply == "" {
		return
	}
	if err := d.replier.Reply(ctx, update.Chat, reply); err != nil {
		d.log.Error("Reply failed", "chat", update.Chat, "update", update.ID, "error", err)
	}
}

func (d *Dispatcher) handle(update Update) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Handler panicked", "update", update.ID, "panic", r)
			reply = fmt.Sprintf("something went wrong handling that: %v", r)
		}
	}()

	text := update.Text
	if text == "" {
		text = update.Caption
	}

	switch update.Kind {
	case KindSubscribe:
		out, err := d.subscriptions.Subscribe(domain.SubscribeCommand{
			Chat: update.Chat,
			User: update.Sender,
			Tags: d.commandTags(update, text),
		})
		return d.render(out, err)

	case KindUnsubscribe:
		out, err := d.subscriptions.Unsubscribe(domain.UnsubscribeCommand{
			Chat: update.Chat,
			User: update.Sender,
			Tags: d.commandTags(update, text),
		})
		return d.render(out, err)

	case KindListSelf:
		return d.subscriptions.ListSelf(domain.ListSelfCommand{Chat: update.Chat, User: update.Sender})

	case KindListAll:
		return d.subscriptions.ListAll(domain.ListAllCommand{Chat: update.Chat})

	case KindInfo:
		mentions := update.Mentions
		if len(mentions) == 0 {
			mentions = d.extractor.Mentions(text)
		}
		out, err := d.subscriptions.Info(domain.InfoCommand{
			Chat:     update.Chat,
			Args:     update.Args,
			Mentions: mentions,
			Hashtags: d.extractor.Hashtags(text),
		})
		return d.render(out, err)

	default:
		return d.fanout.Notify(domain.FreeformMessage{
			Chat:     update.Chat,
			Sender:   update.Sender,
			Hashtags: d.extractor.Hashtags(text),
		})
	}
}

// commandTags prefers the explicit command arguments so that malformed
// tokens still reach validation; a bare command falls back to the hashtag
// spans of the message.
func (d *Dispatcher) commandTags(update Update, text string) []domain.Tag {
	if len(update.Args) > 0 {
		tags := make([]domain.Tag, 0, len(update.Args))
		for _, arg := range update.Args {
			tags = append(tags, domain.Tag(arg))
		}
		return tags
	}
	return d.extractor.Hashtags(text)
}

func (d *Dispatcher) render(out string, err error) string {
	if err == nil {
		return out
	}
	switch {
	case goerrors.Is(err, errors.ErrNoTagsGiven):
		return "give me at least one tag"
	case goerrors.Is(err, errors.ErrInvalidTagFormat):
		return "sorry, tags must start with #"
	case goerrors.Is(err, errors.ErrMissingArgument):
		return "tell me a user or a tag to look up"
	case goerrors.Is(err, errors.ErrTooManyArguments):
		return "one thing at a time, please"
	default:
		return err.Error()
	}
}
