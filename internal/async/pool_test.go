package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestProcessorQueue_ProcessesEnqueuedJobs(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[uuid.UUID]bool)

	q := NewProcessorQueue(ProcessorFunc(func(ctx context.Context, id uuid.UUID) error {
		mu.Lock()
		seen[id] = true
		mu.Unlock()
		return nil
	}), nil, WithWorkers(2), WithQueueSize(8))

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		if err := q.Enqueue(context.Background(), Job{FileID: id, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		if !seen[id] {
			t.Errorf("job %s never processed", id)
		}
	}
}

func TestProcessorQueue_EnqueueAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(ProcessorFunc(func(ctx context.Context, id uuid.UUID) error {
		return nil
	}), nil, WithWorkers(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{FileID: uuid.New()})
	if !errors.Is(err, ErrQueueClosed) {
		t.Errorf("got %v, want ErrQueueClosed", err)
	}
}

func TestProcessorQueue_FullQueueIsReported(t *testing.T) {
	block := make(chan struct{})
	q := NewProcessorQueue(ProcessorFunc(func(ctx context.Context, id uuid.UUID) error {
		<-block
		return nil
	}), nil, WithWorkers(1), WithQueueSize(1))
	defer func() {
		close(block)
		q.Shutdown(context.Background())
	}()

	// First job occupies the worker, second fills the buffer; eventually a
	// subsequent enqueue must report a full queue.
	var sawFull bool
	for i := 0; i < 10; i++ {
		if err := q.Enqueue(context.Background(), Job{FileID: uuid.New()}); errors.Is(err, ErrQueueFull) {
			sawFull = true
			break
		}
	}
	if !sawFull {
		t.Error("expected ErrQueueFull once buffer and worker are saturated")
	}
}
