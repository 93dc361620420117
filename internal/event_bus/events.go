package event_bus

import (
	"time"

	"github.com/centavo/centavo/pkg/money"
)

const (
	TransactionRecordedEvent      EventType = "transaction.recorded"
	FixedExpenseMaterializedEvent EventType = "fixedexpense.materialized"
	DebtPaidOffEvent              EventType = "debt.paidoff"
)

type TransactionRecorded struct {
	Id         int
	Date       time.Time
	Amount     money.Cents
	Type       string
	CategoryId *int
}

type FixedExpenseMaterialized struct {
	FixedExpenseId int
	TransactionId  int
	DueDate        time.Time
}

type DebtPaidOff struct {
	DebtId int
	Name   string
}
