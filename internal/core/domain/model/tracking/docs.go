// Package tracking contains the Event value object recorded for every
// successful lifecycle transition. The ledger owning these events is
// append-only: entries are never mutated or removed, and per tracking
// number they are ordered by timestamp.
package tracking
