package workers

import (
	"context"
	"log/slog"
	"tagcast/runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHeartbeatWorker_Stops_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	worker := NewHeartbeatWorker(slog.Default(), runtime.NewStore(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Let at least one tick fire before shutting down
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.FailNow("worker did not stop on cancel")
	}
}
