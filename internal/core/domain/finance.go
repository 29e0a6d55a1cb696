package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	// TransactionInvestment is auto-posted from a test's invested amount.
	TransactionInvestment TransactionType = "investment"
	// TransactionRevenue is auto-posted from a test's return value, or
	// entered manually.
	TransactionRevenue TransactionType = "revenue"
	// TransactionExpense is always entered manually.
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionInvestment, TransactionRevenue, TransactionExpense:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry. TestID links auto-posted
// entries back to the originating test; it is nil for manual entries.
type Transaction struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	TestID      *uuid.UUID
}

// AutoPostings builds the ledger entries a new test generates: an
// investment transaction for its invested amount and a revenue transaction
// for its return, each linked back to the test. Non-positive amounts post
// nothing, so a planned test with no money attached stays out of the log.
func AutoPostings(test Test, now time.Time) []Transaction {
	var postings []Transaction
	if test.InvestedAmount.IsPositive() {
		postings = append(postings, Transaction{
			ID:          uuid.New(),
			WorkspaceID: test.WorkspaceID,
			Type:        TransactionInvestment,
			Amount:      test.InvestedAmount,
			Description: fmt.Sprintf("Investment - %s", test.ProductName),
			Date:        now,
			TestID:      &test.ID,
		})
	}
	if test.ReturnValue.IsPositive() {
		postings = append(postings, Transaction{
			ID:          uuid.New(),
			WorkspaceID: test.WorkspaceID,
			Type:        TransactionRevenue,
			Amount:      test.ReturnValue,
			Description: fmt.Sprintf("Revenue - %s", test.ProductName),
			Date:        now,
			TestID:      &test.ID,
		})
	}
	return postings
}

// Ledger is the per-workspace financial record. TotalInvestment,
// TotalRevenue and NetProfit are derived from the current test set;
// CurrentBalance additionally carries manual expense/revenue adjustments.
type Ledger struct {
	WorkspaceID     uuid.UUID
	InitialCapital  decimal.Decimal
	CurrentBalance  decimal.Decimal
	TotalInvestment decimal.Decimal
	TotalRevenue    decimal.Decimal
	NetProfit       decimal.Decimal
	Transactions    []Transaction
}

// Recompute folds the full test set into the derived ledger fields. It is a
// full recomputation rather than a delta so stale in-memory state cannot
// diverge permanently under concurrent editors.
func (l *Ledger) Recompute(tests []Test) {
	invested := decimal.Zero
	revenue := decimal.Zero
	for _, t := range tests {
		invested = invested.Add(t.InvestedAmount)
		revenue = revenue.Add(t.ReturnValue)
	}
	l.TotalInvestment = invested
	l.TotalRevenue = revenue
	l.NetProfit = revenue.Sub(invested)
	l.CurrentBalance = l.InitialCapital.Add(l.NetProfit)
}

// Apply advances the balance by a manual transaction. Campaign-derived
// totals are untouched; only expense and revenue entries move the balance.
func (l *Ledger) Apply(tx Transaction) {
	switch tx.Type {
	case TransactionExpense:
		l.CurrentBalance = l.CurrentBalance.Sub(tx.Amount)
	case TransactionRevenue:
		l.CurrentBalance = l.CurrentBalance.Add(tx.Amount)
	}
}

// SetCapital replaces the baseline capital and rebases the balance on the
// current net profit.
func (l *Ledger) SetCapital(capital decimal.Decimal) {
	l.InitialCapital = capital
	l.CurrentBalance = capital.Add(l.NetProfit)
}
