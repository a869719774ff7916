package paypenalty

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/core"
)

const commandType = "PayPenalty"

type Command struct {
	LoanID     uuid.UUID
	Amount     decimal.Decimal
	PaymentRef string
	OccurredAt core.OccurredAtTS
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(loanID uuid.UUID, amount decimal.Decimal, paymentRef string, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		Amount:     amount,
		PaymentRef: paymentRef,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
