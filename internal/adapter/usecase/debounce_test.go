package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tracklab/internal/core/domain"
)

// recordingSave collects every persisted snapshot.
type recordingSave struct {
	mu    sync.Mutex
	saved []domain.Ledger
}

func (r *recordingSave) save(ctx context.Context, ledger *domain.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, *ledger)
	return nil
}

func (r *recordingSave) snapshot() []domain.Ledger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Ledger(nil), r.saved...)
}

// TestLedgerWriterCoalesces ensures a burst of schedules for one workspace
// collapses into a single write carrying the newest state.
func TestLedgerWriterCoalesces(t *testing.T) {
	rec := &recordingSave{}
	w := newLedgerWriter(30*time.Millisecond, rec.save, discardLogger())
	workspaceID := uuid.New()

	for i := int64(1); i <= 3; i++ {
		w.Schedule(domain.Ledger{
			WorkspaceID:    workspaceID,
			CurrentBalance: decimal.NewFromInt(i * 100),
		})
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(rec.snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	saved := rec.snapshot()
	if len(saved) != 1 {
		t.Fatalf("got %d writes, want 1", len(saved))
	}
	if !saved[0].CurrentBalance.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("persisted balance = %s, want the latest 300", saved[0].CurrentBalance)
	}
}

func TestLedgerWriterCancel(t *testing.T) {
	rec := &recordingSave{}
	w := newLedgerWriter(20*time.Millisecond, rec.save, discardLogger())
	workspaceID := uuid.New()

	w.Schedule(domain.Ledger{WorkspaceID: workspaceID})
	w.Cancel(workspaceID)

	time.Sleep(100 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("cancelled write still fired %d times", len(got))
	}
}

func TestLedgerWriterFlush(t *testing.T) {
	rec := &recordingSave{}
	w := newLedgerWriter(time.Hour, rec.save, discardLogger())

	a, b := uuid.New(), uuid.New()
	w.Schedule(domain.Ledger{WorkspaceID: a, CurrentBalance: decimal.NewFromInt(1)})
	w.Schedule(domain.Ledger{WorkspaceID: b, CurrentBalance: decimal.NewFromInt(2)})

	w.Flush(context.Background())

	if got := rec.snapshot(); len(got) != 2 {
		t.Fatalf("flush wrote %d snapshots, want 2", len(got))
	}

	// Flushed entries are gone; a second flush is a no-op.
	w.Flush(context.Background())
	if got := rec.snapshot(); len(got) != 2 {
		t.Fatalf("second flush wrote again, total %d", len(got))
	}
}

// TestLedgerWriterPerWorkspace ensures debouncing is keyed per workspace, not
// global.
func TestLedgerWriterPerWorkspace(t *testing.T) {
	rec := &recordingSave{}
	w := newLedgerWriter(30*time.Millisecond, rec.save, discardLogger())

	a, b := uuid.New(), uuid.New()
	w.Schedule(domain.Ledger{WorkspaceID: a})
	w.Schedule(domain.Ledger{WorkspaceID: b})

	deadline := time.Now().Add(2 * time.Second)
	for len(rec.snapshot()) < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if got := rec.snapshot(); len(got) != 2 {
		t.Fatalf("got %d writes, want one per workspace", len(got))
	}
}
