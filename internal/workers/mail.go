package workers

import (
	"context"
	"sync"
	"time"

	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/mailer"
	"github.com/boardhive/jobboard/models"
)

// MailWorker dispatches queued outbound messages to the mail-delivery API in
// the background so that sign-up requests never wait on mail delivery.
//
// The queue is a bounded channel. Enqueue never blocks: when the queue is
// full the job is dropped and logged, which loses an activation email but
// keeps the API responsive under a mail-service outage.
type MailWorker struct {
	jobs        chan models.MailJob
	mailer      mailer.Mailer
	sendTimeout time.Duration
	logger      *logger.Logger

	mu      sync.RWMutex
	closed  bool
	drained chan struct{}
}

// NewMailWorker builds a mail dispatch worker with a queue of the given
// capacity. sendTimeout bounds each individual delivery attempt.
func NewMailWorker(m mailer.Mailer, queueSize int, sendTimeout time.Duration, log *logger.Logger) *MailWorker {
	return &MailWorker{
		jobs:        make(chan models.MailJob, queueSize),
		mailer:      m,
		sendTimeout: sendTimeout,
		logger:      log,
		drained:     make(chan struct{}),
	}
}

// Enqueue submits a message for background delivery. Returns false when the
// queue is full or the worker is already shut down; the job is dropped.
func (w *MailWorker) Enqueue(job models.MailJob) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.logger.Warn().Str("to", job.To).Msg("mail worker stopped, job dropped")
		return false
	}

	select {
	case w.jobs <- job:
		return true
	default:
		w.logger.Warn().Str("to", job.To).Msg("mail queue full, job dropped")
		return false
	}
}

// Run implements [Worker]. It starts the dispatch loop in a goroutine and
// returns immediately.
func (w *MailWorker) Run() {
	go w.dispatch()
}

// dispatch drains the queue until Shutdown closes it, then signals the
// drained channel.
func (w *MailWorker) dispatch() {
	defer close(w.drained)

	for job := range w.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), w.sendTimeout)
		if err := w.mailer.Send(ctx, job); err != nil {
			w.logger.Err(err).Str("to", job.To).Msg("outbound mail delivery failed")
		} else {
			w.logger.Info().Str("to", job.To).Msg("outbound mail delivered")
		}
		cancel()
	}
}

// Shutdown stops accepting new jobs and waits for queued jobs to drain or ctx
// to expire, whichever comes first.
func (w *MailWorker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.drained:
		return nil
	}
}
