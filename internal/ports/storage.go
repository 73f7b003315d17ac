// Package ports defines the driven-port interfaces between the caltrack
// core and its infrastructure adapters, following hexagonal architecture
// principles: the interactive core talks to storage and feedback through
// these contracts, never to the adapters directly.
package ports

import "github.com/Hambart471/caltrack/internal/domain"

// RecordStore owns the daily goals and the per-date food records, plus
// their flat-file persistence. It is accessed by a single thread of
// control; implementations need no locking.
type RecordStore interface {
	// Record returns the record for the given date, creating an empty one
	// on first access. It never reports "not found" — lazy creation is the
	// contract, and the only way records come into existence.
	Record(date domain.Date) *domain.DailyRecord

	// AllRecords returns all records in insertion order. Only persistence
	// and export consume the global enumeration.
	AllRecords() []*domain.DailyRecord

	// Goals returns the current daily goals.
	Goals() domain.Goals

	// SetGoals replaces the daily goals. No validation is applied.
	SetGoals(g domain.Goals)

	// Load reads the persisted store. A missing file is not an error: it
	// marks the store first-run and returns false. Malformed numeric
	// fields load as zero without aborting.
	Load() bool

	// Save rewrites the persisted store in full. A false return means the
	// destination was unwritable; in-memory state stays authoritative.
	Save() bool

	// FirstRun reports whether Load found no persisted store.
	FirstRun() bool
}
