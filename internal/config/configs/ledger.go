package configs

import "time"

// Ledger configures the financial reconciliation engine.
type Ledger struct {
	// Debounce is the quiet period before a recomputed ledger snapshot is
	// persisted. Rapid successive edits within the window coalesce into a
	// single write.
	Debounce time.Duration `env:"DEBOUNCE" envDefault:"400ms"`
}
