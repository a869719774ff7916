package reminders

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrNonPositiveInterval = errors.New("reminder interval must be positive")

// Scheduler runs a scan right away and then once per interval, until Stop is called or the
// context is canceled.
type Scheduler struct {
	scanner  *Scanner
	interval time.Duration
	logger   *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewScheduler(scanner *Scanner, interval time.Duration, logger *zap.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, ErrNonPositiveInterval
	}

	return &Scheduler{
		scanner:  scanner,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("starting reminder scheduler", zap.Duration("interval", s.interval))

	go s.run(ctx)
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("stopping reminder scheduler")
		close(s.stopChan)
	})
}

// Done is closed once the scheduler loop has exited.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.scan(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scan(ctx)
		case <-s.stopChan:
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ctx.Done():
			s.logger.Info("reminder scheduler canceled")
			return
		}
	}
}

func (s *Scheduler) scan(ctx context.Context) {
	if _, err := s.scanner.Scan(ctx); err != nil {
		s.logger.Error("reminder scan failed", zap.Error(err))
	}
}
