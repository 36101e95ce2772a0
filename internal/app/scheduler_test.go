package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) SweepIdle(time.Duration) int {
	c.calls.Add(1)
	return 1
}

func TestSchedulerSweepsUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, 40*time.Millisecond, zap.NewNop())
	assert.Equal(t, 10*time.Millisecond, s.interval)

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
}

func TestSchedulerIntervalIsCapped(t *testing.T) {
	s := NewScheduler(&countingSweeper{}, 48*time.Hour, zap.NewNop())
	assert.Equal(t, time.Hour, s.interval)
}
