package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) SweepExpired() int {
	s.calls.Add(1)
	return 1
}

func TestRunSessionSweeper_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sweeper := &countingSweeper{}

	done := make(chan struct{})
	go func() {
		RunSessionSweeper(ctx, sweeper, 5*time.Millisecond, zap.NewNop())
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not run")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestRunSessionSweeper_Disabled(t *testing.T) {
	sweeper := &countingSweeper{}
	RunSessionSweeper(context.Background(), sweeper, 0, zap.NewNop())
	if sweeper.calls.Load() != 0 {
		t.Error("disabled sweeper ran")
	}
}
