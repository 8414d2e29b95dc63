package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

type recordingAppender struct {
	mu   sync.Mutex
	seen map[string][]float64
	wg   sync.WaitGroup
	fail string
}

func (a *recordingAppender) AppendWeight(_ context.Context, in ports.WeightSampleInput) (*domain.Client, bool, error) {
	defer a.wg.Done()
	if in.ClientID == a.fail {
		return nil, false, errors.New("boom")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seen[in.ClientID] = append(a.seen[in.ClientID], in.Weight)
	return &domain.Client{ID: in.ClientID}, false, nil
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for workers")
	}
}

func TestDispatcher_PreservesPerClientOrder(t *testing.T) {
	app := &recordingAppender{seen: make(map[string][]float64)}
	d := NewDispatcher(4, app, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	var batch []ports.WeightSampleInput
	for i := 0; i < 20; i++ {
		batch = append(batch,
			ports.WeightSampleInput{ClientID: "alice", Weight: float64(60 + i)},
			ports.WeightSampleInput{ClientID: "bob", Weight: float64(90 - i)},
		)
	}
	app.wg.Add(len(batch))
	d.EnqueueBatch(batch)
	waitTimeout(t, &app.wg)

	app.mu.Lock()
	defer app.mu.Unlock()
	for i, w := range app.seen["alice"] {
		if w != float64(60+i) {
			t.Fatalf("alice samples out of order: %v", app.seen["alice"])
		}
	}
	for i, w := range app.seen["bob"] {
		if w != float64(90-i) {
			t.Fatalf("bob samples out of order: %v", app.seen["bob"])
		}
	}
}

func TestDispatcher_FailureDoesNotStopWorker(t *testing.T) {
	app := &recordingAppender{seen: make(map[string][]float64), fail: "broken"}
	d := NewDispatcher(1, app, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	app.wg.Add(2)
	d.Enqueue(ports.WeightSampleInput{ClientID: "broken", Weight: 1})
	d.Enqueue(ports.WeightSampleInput{ClientID: "fine", Weight: 2})
	waitTimeout(t, &app.wg)

	app.mu.Lock()
	defer app.mu.Unlock()
	if len(app.seen["fine"]) != 1 {
		t.Fatalf("worker stopped after a failure: %v", app.seen)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	first := d.shardIndex("client-123")
	for i := 0; i < 10; i++ {
		if d.shardIndex("client-123") != first {
			t.Fatalf("shard index must be deterministic")
		}
	}
}
