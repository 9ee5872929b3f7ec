package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Every lifecycle transition runs inside a unit of work so that the parcel
// status, the resource occupancy, the tracking event, and (on delivery) the
// billing record change together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ParcelRepository() ParcelRepository

	// ResourceRepository returns a ResourceRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ResourceRepository() ResourceRepository

	// TrackingLedger returns a TrackingLedger instance bound to the current transaction.
	// The ledger will use the transaction started by Begin().
	TrackingLedger() TrackingLedger

	// BillingLedger returns a BillingLedger instance bound to the current transaction.
	// The ledger will use the transaction started by Begin().
	BillingLedger() BillingLedger
}
