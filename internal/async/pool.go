package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Processor is the unit of work the queue drives.
type Processor interface {
	ProcessFile(ctx context.Context, fileID uuid.UUID) error
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, fileID uuid.UUID) error

func (f ProcessorFunc) ProcessFile(ctx context.Context, fileID uuid.UUID) error {
	return f(ctx, fileID)
}

var ErrQueueFull = errors.New("extraction queue is full")
var ErrQueueClosed = errors.New("extraction queue is shut down")

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// ProcessorQueue is a bounded in-process worker pool feeding the pipeline.
// Enqueue never blocks; a full queue is reported to the caller instead.
type ProcessorQueue struct {
	processor Processor
	logger    *slog.Logger

	workers int
	size    int
	timeout time.Duration

	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(p Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		processor: p,
		logger:    logger,
		workers:   4,
		size:      256,
		timeout:   time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.mu.Unlock()

	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Shutdown stops intake and waits for in-flight jobs, up to ctx's deadline.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out with jobs in flight")
	}
}

func (q *ProcessorQueue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		start := time.Now()
		if err := q.processor.ProcessFile(ctx, job.FileID); err != nil {
			q.logger.Error("job failed", "file_id", job.FileID, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds())
		} else {
			q.logger.Info("job done", "file_id", job.FileID,
				"elapsed_ms", time.Since(start).Milliseconds())
		}
		cancel()
	}
}
