package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tracklab/internal/core/domain"
)

// saveFunc persists a ledger snapshot.
type saveFunc func(ctx context.Context, ledger *domain.Ledger) error

// ledgerWriter coalesces rapid ledger recomputations into one store write
// per workspace. Each Schedule cancels the workspace's pending timer and
// rearms it with the newest snapshot, so only the latest state is persisted.
// Write failures are logged, never surfaced: the in-memory state stays
// authoritative for the session.
type ledgerWriter struct {
	delay   time.Duration
	timeout time.Duration
	save    saveFunc
	logger  *slog.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]*pendingWrite
}

type pendingWrite struct {
	timer  *time.Timer
	ledger domain.Ledger
}

func newLedgerWriter(delay time.Duration, save saveFunc, logger *slog.Logger) *ledgerWriter {
	return &ledgerWriter{
		delay:   delay,
		timeout: 10 * time.Second,
		save:    save,
		logger:  logger,
		pending: make(map[uuid.UUID]*pendingWrite),
	}
}

// Schedule records the snapshot and (re)arms the delayed write for its
// workspace.
func (w *ledgerWriter) Schedule(ledger domain.Ledger) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if p, ok := w.pending[ledger.WorkspaceID]; ok {
		p.timer.Stop()
	}
	p := &pendingWrite{ledger: ledger}
	p.timer = time.AfterFunc(w.delay, func() { w.fire(ledger.WorkspaceID) })
	w.pending[ledger.WorkspaceID] = p
}

// Cancel drops any pending write for the workspace. Used when the caller has
// just persisted the ledger synchronously and a stale delayed write would
// only overwrite it with older state.
func (w *ledgerWriter) Cancel(workspaceID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.pending[workspaceID]; ok {
		p.timer.Stop()
		delete(w.pending, workspaceID)
	}
}

// Flush fires every pending write immediately. Called on shutdown.
func (w *ledgerWriter) Flush(ctx context.Context) {
	w.mu.Lock()
	snapshots := make([]domain.Ledger, 0, len(w.pending))
	for id, p := range w.pending {
		p.timer.Stop()
		snapshots = append(snapshots, p.ledger)
		delete(w.pending, id)
	}
	w.mu.Unlock()

	for i := range snapshots {
		if err := w.save(ctx, &snapshots[i]); err != nil {
			w.logger.Error("ledger flush failed",
				slog.String("workspace_id", snapshots[i].WorkspaceID.String()),
				slog.Any("error", err))
		}
	}
}

func (w *ledgerWriter) fire(workspaceID uuid.UUID) {
	w.mu.Lock()
	p, ok := w.pending[workspaceID]
	if ok {
		delete(w.pending, workspaceID)
	}
	w.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	if err := w.save(ctx, &p.ledger); err != nil {
		w.logger.Error("debounced ledger write failed",
			slog.String("workspace_id", workspaceID.String()),
			slog.Any("error", err))
	}
}
