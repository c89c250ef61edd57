package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"tagcast/contract"
	"tagcast/domain"
	"tagcast/domain/event"
	"tagcast/platform"
	"tagcast/repositories"
	"tagcast/runtime"
	"tagcast/runtime/workers"
	"tagcast/services"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseSuite wires a full in-process engine: dispatcher -> services ->
// registries -> badger, with the persistence worker running supervised.
// No platform transport is involved; updates are injected directly.
type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Step prints a colorized header so scenario logs read as a script.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Engine is one running instance of the whole stack over a badger dir.
type Engine struct {
	Dispatcher *platform.Dispatcher
	Store      *runtime.Store
	Replies    *RecordingReplier

	db      *badger.DB
	cancel  context.CancelFunc
	supDone chan struct{}
}

// StartEngine boots the stack on the given directory. Booting twice on the
// same directory simulates a process restart, including state hydration.
func (s *BaseSuite) StartEngine(dir string) *Engine {
	log := logs.GetLoggerFromLevel(slog.LevelWarn)

	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	repository := repositories.NewChatStateRepository(db, log)
	store := runtime.NewStore()
	snapshots, err := repository.LoadAll()
	s.Require().NoError(err)
	store.Hydrate(snapshots)

	events := make(chan event.DomainEvent, s.Config.BufferSize)
	subscriptions := services.NewSubscriptionService(log, store, repository, events)
	fanout := services.NewFanoutService(log, store, platform.MentionMarkdown)
	replies := &RecordingReplier{}
	dispatcher := platform.NewDispatcher(log, subscriptions, fanout, platform.NewExtractor(), replies)

	ctx, cancel := context.WithCancel(context.Background())
	sup := workers.NewSupervisor(log, 50*time.Millisecond)
	sup.Add(workers.NewPersistenceWorker(log, repository, events))

	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	return &Engine{
		Dispatcher: dispatcher,
		Store:      store,
		Replies:    replies,
		db:         db,
		cancel:     cancel,
		supDone:    supDone,
	}
}

// Stop shuts the engine down the way the process would: cancel the
// workers, let the persistence queue drain, close the database.
func (e *Engine) Stop() {
	e.cancel()
	<-e.supDone
	_ = e.db.Close()
}

// RecordingReplier captures every reply the dispatcher sends.
type RecordingReplier struct {
	Sent []string
}

func (r *RecordingReplier) Reply(_ context.Context, _ domain.ChatID, text string) error {
	r.Sent = append(r.Sent, text)
	return nil
}

// Last returns the most recent reply, or "" if nothing was sent.
func (r *RecordingReplier) Last() string {
	if len(r.Sent) == 0 {
		return ""
	}
	return r.Sent[len(r.Sent)-1]
}

var _ contract.Replier = (*RecordingReplier)(nil)
