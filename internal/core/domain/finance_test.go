package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestAutoPostings(t *testing.T) {
	now := time.Now().UTC()
	test := Test{
		ID:             uuid.New(),
		WorkspaceID:    uuid.New(),
		ProductName:    "Creatine",
		InvestedAmount: decimal.NewFromInt(100),
		ReturnValue:    decimal.NewFromInt(150),
	}

	postings := AutoPostings(test, now)
	if len(postings) != 2 {
		t.Fatalf("got %d postings, want 2", len(postings))
	}
	inv, rev := postings[0], postings[1]
	if inv.Type != TransactionInvestment || !inv.Amount.Equal(test.InvestedAmount) {
		t.Fatalf("first posting = %+v, want the investment", inv)
	}
	if inv.Description != "Investment - Creatine" {
		t.Fatalf("investment description = %q", inv.Description)
	}
	if rev.Type != TransactionRevenue || !rev.Amount.Equal(test.ReturnValue) {
		t.Fatalf("second posting = %+v, want the revenue", rev)
	}
	if rev.Description != "Revenue - Creatine" {
		t.Fatalf("revenue description = %q", rev.Description)
	}
	for _, p := range postings {
		if p.TestID == nil || *p.TestID != test.ID {
			t.Fatal("postings must link back to the test")
		}
		if p.WorkspaceID != test.WorkspaceID || !p.Date.Equal(now) {
			t.Fatalf("posting %+v not stamped with workspace and time", p)
		}
	}
}

func TestAutoPostingsSkipsNonPositive(t *testing.T) {
	now := time.Now().UTC()

	if got := AutoPostings(Test{ProductName: "Dry run"}, now); len(got) != 0 {
		t.Fatalf("zero amounts should post nothing, got %v", got)
	}

	onlyInvested := Test{
		ID:             uuid.New(),
		ProductName:    "Early",
		InvestedAmount: decimal.NewFromInt(40),
	}
	got := AutoPostings(onlyInvested, now)
	if len(got) != 1 || got[0].Type != TransactionInvestment {
		t.Fatalf("no-return test should post only the investment, got %v", got)
	}
}

func TestLedgerRecompute(t *testing.T) {
	l := Ledger{InitialCapital: decimal.NewFromInt(1000)}

	l.Recompute([]Test{
		{InvestedAmount: decimal.NewFromInt(100), ReturnValue: decimal.NewFromInt(150)},
		{InvestedAmount: decimal.NewFromInt(200), ReturnValue: decimal.NewFromInt(180)},
	})

	if !l.TotalInvestment.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("TotalInvestment = %s, want 300", l.TotalInvestment)
	}
	if !l.TotalRevenue.Equal(decimal.NewFromInt(330)) {
		t.Fatalf("TotalRevenue = %s, want 330", l.TotalRevenue)
	}
	if !l.NetProfit.Equal(l.TotalRevenue.Sub(l.TotalInvestment)) {
		t.Fatalf("NetProfit = %s, want revenue minus investment", l.NetProfit)
	}
	if !l.CurrentBalance.Equal(decimal.NewFromInt(1030)) {
		t.Fatalf("CurrentBalance = %s, want 1030", l.CurrentBalance)
	}
}

// TestLedgerRecomputeReplaces ensures a recompute is a full fold, not a
// delta: stale totals from a previous state are overwritten.
func TestLedgerRecomputeReplaces(t *testing.T) {
	l := Ledger{
		InitialCapital:  decimal.NewFromInt(500),
		TotalInvestment: decimal.NewFromInt(9999),
		TotalRevenue:    decimal.NewFromInt(9999),
		NetProfit:       decimal.NewFromInt(9999),
	}

	l.Recompute(nil)

	if !l.TotalInvestment.IsZero() || !l.TotalRevenue.IsZero() || !l.NetProfit.IsZero() {
		t.Fatalf("empty test set should zero the derived fields, got %+v", l)
	}
	if !l.CurrentBalance.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("CurrentBalance = %s, want 500", l.CurrentBalance)
	}
}

func TestLedgerApply(t *testing.T) {
	l := Ledger{CurrentBalance: decimal.NewFromInt(1000)}

	l.Apply(Transaction{Type: TransactionExpense, Amount: decimal.NewFromInt(200)})
	if !l.CurrentBalance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("balance after expense = %s, want 800", l.CurrentBalance)
	}

	l.Apply(Transaction{Type: TransactionRevenue, Amount: decimal.NewFromInt(50)})
	if !l.CurrentBalance.Equal(decimal.NewFromInt(850)) {
		t.Fatalf("balance after revenue = %s, want 850", l.CurrentBalance)
	}

	// Investment entries are campaign-derived, Apply ignores them.
	l.Apply(Transaction{Type: TransactionInvestment, Amount: decimal.NewFromInt(100)})
	if !l.CurrentBalance.Equal(decimal.NewFromInt(850)) {
		t.Fatalf("balance after investment = %s, want 850", l.CurrentBalance)
	}
}

func TestLedgerSetCapital(t *testing.T) {
	l := Ledger{
		InitialCapital: decimal.NewFromInt(1000),
		NetProfit:      decimal.NewFromInt(250),
		CurrentBalance: decimal.NewFromInt(1250),
	}

	l.SetCapital(decimal.NewFromInt(2000))

	if !l.InitialCapital.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("InitialCapital = %s, want 2000", l.InitialCapital)
	}
	if !l.CurrentBalance.Equal(decimal.NewFromInt(2250)) {
		t.Fatalf("CurrentBalance = %s, want 2250", l.CurrentBalance)
	}
}

func TestPermissionSetNormalize(t *testing.T) {
	p := PermissionSet{FullAccess: true, EditTests: true, ViewOnly: true}

	got := p.Normalize()

	if !got.FullAccess {
		t.Fatal("Normalize should keep full access")
	}
	if got.EditTests || got.ViewOnly {
		t.Fatalf("Normalize should clear granular flags, got %+v", got)
	}

	granular := PermissionSet{EditTests: true, EditFinancial: true}
	if got := granular.Normalize(); got != granular {
		t.Fatalf("Normalize without full access should be identity, got %+v", got)
	}
}

func TestGrantCanEdit(t *testing.T) {
	owner := Grant{IsOwner: true}
	for _, r := range []Resource{ResourceTests, ResourceOffers, ResourceFinancial, ResourceMembers} {
		if !owner.CanEdit(r) {
			t.Fatalf("owner should edit %s", r)
		}
	}

	full := Grant{Permissions: PermissionSet{FullAccess: true}}
	if !full.CanEdit(ResourceMembers) {
		t.Fatal("full access should edit members")
	}

	viewer := Grant{Permissions: PermissionSet{ViewOnly: true}}
	for _, r := range []Resource{ResourceTests, ResourceOffers, ResourceFinancial, ResourceMembers} {
		if viewer.CanEdit(r) {
			t.Fatalf("view-only should not edit %s", r)
		}
	}
	if !viewer.CanView() {
		t.Fatal("viewing is never gated")
	}

	editor := Grant{Permissions: PermissionSet{EditTests: true}}
	if !editor.CanEdit(ResourceTests) {
		t.Fatal("edit-tests flag should allow editing tests")
	}
	if editor.CanEdit(ResourceFinancial) {
		t.Fatal("edit-tests flag should not allow editing finances")
	}
}
