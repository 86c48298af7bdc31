package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"texportal_backend/platform/logger"
)

type fakeSweepQueue struct {
	err   error
	calls chan struct{}
}

func (q *fakeSweepQueue) EnqueueOverdueSweep(_ context.Context) error {
	q.calls <- struct{}{}
	return q.err
}

func waitForCall(t *testing.T, calls chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a sweep enqueue")
	}
}

func TestOverdueSweepEnqueuesImmediatelyAndOnTicks(t *testing.T) {
	queue := &fakeSweepQueue{calls: make(chan struct{}, 8)}
	sweep := NewOverdueSweep(queue, logger.New("test"), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		sweep.Run(ctx)
		close(done)
	}()

	// One sweep lands before the first tick, then the ticker takes over.
	waitForCall(t, queue.calls)
	waitForCall(t, queue.calls)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not stop on context cancel")
	}
}

func TestOverdueSweepKeepsRunningAfterEnqueueFailure(t *testing.T) {
	queue := &fakeSweepQueue{err: errors.New("queue down"), calls: make(chan struct{}, 8)}
	sweep := NewOverdueSweep(queue, logger.New("test"), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweep.Run(ctx)

	// A failed enqueue must not end the loop; the next tick retries.
	waitForCall(t, queue.calls)
	waitForCall(t, queue.calls)
	waitForCall(t, queue.calls)
}

func TestNewOverdueSweepDefaultsInterval(t *testing.T) {
	sweep := NewOverdueSweep(&fakeSweepQueue{calls: make(chan struct{}, 1)}, logger.New("test"), 0)
	if sweep.interval != defaultOverdueSweepInterval {
		t.Fatalf("interval = %v, want %v", sweep.interval, defaultOverdueSweepInterval)
	}
}

func TestOverdueSweepNilQueueIsNoop(t *testing.T) {
	sweep := NewOverdueSweep(nil, logger.New("test"), time.Millisecond)

	done := make(chan struct{})
	go func() {
		sweep.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nil queue must return immediately")
	}
}
