package reminders

import (
	"context"

	"go.uber.org/zap"
)

type Sink interface {
	Deliver(ctx context.Context, notice Notice) error
}

// LogSink writes every notice as one structured log line.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) LogSink {
	return LogSink{logger: logger}
}

func (s LogSink) Deliver(_ context.Context, notice Notice) error {
	fields := []zap.Field{
		zap.String("kind", string(notice.Kind)),
		zap.String("loan_id", notice.LoanID),
		zap.String("member_id", notice.MemberID),
		zap.String("copy_id", notice.CopyID),
		zap.Time("due_at", notice.DueAt),
		zap.Int("days_remaining", notice.DaysRemaining),
		zap.Int("days_overdue", notice.DaysOverdue),
		zap.Stringer("severity", notice.Severity),
		zap.String("accrued_penalty", notice.AccruedPenalty.StringFixed(2)),
	}

	if notice.Kind == NoticeOverdue {
		s.logger.Warn("loan overdue", fields...)
		return nil
	}

	s.logger.Info("loan due soon", fields...)

	return nil
}
