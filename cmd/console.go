package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"tagcast/domain"
	"tagcast/platform"

	"github.com/google/uuid"
)

// ConsoleSource feeds updates to the dispatcher from stdin so the engine
// can be driven locally. The real platform transport is wired from the
// outside; this source stands in for it during development.
//
// Lines starting with a known /command become command updates, everything
// else is a freeform message.
type ConsoleSource struct {
	log        *slog.Logger
	dispatcher *platform.Dispatcher
	chat       domain.ChatID
	sender     domain.Subscriber
}

func NewConsoleSource(log *slog.Logger, dispatcher *platform.Dispatcher, chat domain.ChatID, sender domain.Subscriber) *ConsoleSource {
	return &ConsoleSource{log: log, dispatcher: dispatcher, chat: chat, sender: sender}
}

func (c *ConsoleSource) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.dispatcher.Dispatch(ctx, c.parse(line))
		if ctx.Err() != nil {
			return nil
		}
	}
	return scanner.Err()
}

func (c *ConsoleSource) parse(line string) platform.Update {
	update := platform.Update{
		ID:     uuid.New(),
		Chat:   c.chat,
		Sender: c.sender,
		Text:   line,
	}

	if !strings.HasPrefix(line, "/") {
		return update
	}

	fields := strings.Fields(line)
	update.Args = fields[1:]
	switch fields[0] {
	case "/sub":
		update.Kind = platform.KindSubscribe
	case "/unsub":
		update.Kind = platform.KindUnsubscribe
	case "/subs":
		update.Kind = platform.KindListSelf
	case "/tags":
		update.Kind = platform.KindListAll
	case "/info":
		update.Kind = platform.KindInfo
	default:
		// Unknown command words fall through as plain text.
		c.log.Debug("Unknown command, treating as freeform", "word", fields[0])
		update.Args = nil
	}
	return update
}

// consoleReplier prints replies where a platform client would see them.
type consoleReplier struct{}

func (consoleReplier) Reply(_ context.Context, chat domain.ChatID, text string) error {
	_, err := fmt.Printf("[chat %d] %s\n", chat, text)
	return err
}
