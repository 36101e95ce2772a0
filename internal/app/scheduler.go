package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// IdleSweeper удаляет сессии, неактивные дольше ttl, и возвращает их количество
type IdleSweeper interface {
	SweepIdle(ttl time.Duration) int
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	sessions IdleSweeper
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик. Сессии проверяются раз в ttl/4, но не реже раза в час
func NewScheduler(sessions IdleSweeper, ttl time.Duration, logger *zap.Logger) *Scheduler {
	interval := ttl / 4
	if interval <= 0 || interval > time.Hour {
		interval = time.Hour
	}
	return &Scheduler{
		sessions: sessions,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler",
		zap.Duration("session_ttl", s.ttl),
		zap.Duration("interval", s.interval))

	go s.runSessionSweepTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runSessionSweepTask периодически удаляет брошенные визарды
func (s *Scheduler) runSessionSweepTask(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopChan:
			s.logger.Info("Session sweep task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Session sweep task cancelled")
			return
		}
	}
}

func (s *Scheduler) sweep() {
	removed := s.sessions.SweepIdle(s.ttl)
	if removed > 0 {
		s.logger.Info("Idle sessions removed", zap.Int("count", removed))
	}
}
