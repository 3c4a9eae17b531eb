package worker

import (
	"context"
	"log/slog"
	"time"

	"trainhub/internal/usecase/commands"
)

// PublishWorker polls the publish job queue and executes sync rounds. Each
// tick drains the queue; row locking in the claim query makes concurrent
// workers safe.
type PublishWorker struct {
	cmds     commands.PublicationCommands
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewPublishWorker(cmds commands.PublicationCommands, interval time.Duration) *PublishWorker {
	return &PublishWorker{
		cmds:     cmds,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (w *PublishWorker) Start() {
	go w.run()
}

// Stop signals the loop and waits for the in-flight job, if any, to finish.
func (w *PublishWorker) Stop(ctx context.Context) error {
	close(w.stop)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *PublishWorker) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.drain()
		}
	}
}

func (w *PublishWorker) drain() {
	ctx := context.Background()
	for {
		select {
		case <-w.stop:
			return
		default:
		}

		processed, err := w.cmds.ProcessNextJob(ctx)
		if err != nil {
			slog.Error("publish job failed", "error", err.Error())
			return
		}
		if !processed {
			return
		}
	}
}
