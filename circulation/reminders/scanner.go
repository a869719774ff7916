package reminders

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/features/query/dueloans"
)

// DueLoansHandler is satisfied by dueloans.QueryHandler and by its observable wrapper.
type DueLoansHandler interface {
	Handle(ctx context.Context, query dueloans.Query) (dueloans.DueLoans, error)
}

// ScanReport summarizes one scan.
type ScanReport struct {
	AsOf      time.Time
	Notices   int
	Delivered int
	Failed    int
}

type Scanner struct {
	dueLoans DueLoansHandler
	sink     Sink
	logger   *zap.Logger
	now      func() time.Time
}

type ScannerOption func(*Scanner)

// WithClock replaces time.Now as the source of the scan date.
func WithClock(now func() time.Time) ScannerOption {
	return func(s *Scanner) {
		s.now = now
	}
}

func NewScanner(dueLoans DueLoansHandler, sink Sink, logger *zap.Logger, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		dueLoans: dueLoans,
		sink:     sink,
		logger:   logger,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan delivers one notice per due or overdue loan. Failed deliveries do not stop the scan;
// their errors are joined and returned together with the report.
func (s *Scanner) Scan(ctx context.Context) (ScanReport, error) {
	asOf := s.now()
	report := ScanReport{AsOf: asOf}

	due, err := s.dueLoans.Handle(ctx, dueloans.BuildQuery(asOf))
	if err != nil {
		return report, err
	}

	var deliveryErrs []error

	for _, loan := range due.Loans {
		if ctx.Err() != nil {
			return report, errors.Join(append(deliveryErrs, ctx.Err())...)
		}

		report.Notices++

		if err := s.sink.Deliver(ctx, NoticeFrom(loan)); err != nil {
			report.Failed++
			deliveryErrs = append(deliveryErrs, err)

			continue
		}

		report.Delivered++
	}

	s.logger.Info("reminder scan completed",
		zap.Time("as_of", asOf),
		zap.Int("notices", report.Notices),
		zap.Int("delivered", report.Delivered),
		zap.Int("failed", report.Failed),
		zap.Uint("sequence", due.SequenceNumber),
	)

	return report, errors.Join(deliveryErrs...)
}
