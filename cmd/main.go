package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"tagcast/domain"
	"tagcast/domain/event"
	"tagcast/platform"
	"tagcast/repositories"
	"tagcast/runtime"
	"tagcast/runtime/workers"
	"tagcast/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting so deferred cleanups always execute.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Hydrate the registries from prior state
	repository := repositories.NewChatStateRepository(db, log)
	store := runtime.NewStore()
	snapshots, err := repository.LoadAll()
	if err != nil {
		return fmt.Errorf("chat state hydration failed: %w", err)
	}
	store.Hydrate(snapshots)
	log.Info(fmt.Sprintf("%d chats hydrated from disk", len(snapshots)))

	// 4. Core services & dispatcher
	events := make(chan event.DomainEvent, config.BufferSize)
	subscriptions := services.NewSubscriptionService(log, store, repository, events)
	fanout := services.NewFanoutService(log, store, platform.MentionMarkdown)
	dispatcher := platform.NewDispatcher(log, subscriptions, fanout, platform.NewExtractor(), consoleReplier{})

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewPersistenceWorker(log, repository, events))
	sup.Add(workers.NewHeartbeatWorker(log, store, config.HeartbeatInterval))

	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	// 7. Foreground input loop
	source := NewConsoleSource(log, dispatcher, domain.ChatID(config.ConsoleChat),
		domain.Subscriber{ID: domain.UserID(config.ConsoleUser), Name: config.ConsoleUserName})
	errChan := make(chan error, 1)
	go func() {
		errChan <- source.Run(ctx)
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("console source error: %w", err)
		}
		log.Info("Input closed, shutting down...")
	}

	// 9. Final Cleanup: stop workers and let the persistence queue drain
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
