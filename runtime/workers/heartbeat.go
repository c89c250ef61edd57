package workers

import (
	"context"
	"log/slog"
	"os"
	"tagcast/runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker periodically logs the bot's own vitals (RSS, CPU, OS
// status) together with the number of chats holding subscription state.
type HeartbeatWorker struct {
	log      *slog.Logger
	store    *runtime.Store
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, store *runtime.Store, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, store: store, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Heartbeat",
				"ram_bytes", rss,
				"cpu_percent", cpu,
				"pid_status", status,
				"chats", len(w.store.ChatIDs()),
			)
		}
	}
}

// selfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
