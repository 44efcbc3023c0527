package contact

import (
	"context"
	"time"
)

// Worker periodically redelivers queued messages until its context ends.
type Worker struct {
	svc      *Service
	interval time.Duration
}

func NewWorker(svc *Service, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = DefaultRetryInterval
	}
	return &Worker{svc: svc, interval: interval}
}

// Run blocks until ctx is done. It always returns nil; per-pass errors are logged.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.pass(ctx)
		}
	}
}

func (w *Worker) pass(ctx context.Context) {
	n, err := w.svc.Redeliver(ctx, w.interval)
	if err != nil && ctx.Err() == nil {
		w.svc.logger.Error("redelivering contact messages", "error", err)
		return
	}
	if n > 0 {
		w.svc.logger.Info("redelivered contact messages", "count", n)
	}
}
