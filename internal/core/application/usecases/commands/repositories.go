// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ResourceRepoFactory provides access to the resource repository within a transaction.
	ResourceRepoFactory interface {
		ResourceRepository() ports.ResourceRepository
	}

	// TrackingLedgerFactory provides access to the tracking ledger within a transaction.
	TrackingLedgerFactory interface {
		TrackingLedger() ports.TrackingLedger
	}

	// BillingLedgerFactory provides access to the billing ledger within a transaction.
	BillingLedgerFactory interface {
		BillingLedger() ports.BillingLedger
	}

	// ParcelUoW manages transactions for intake operations.
	// Used by commands that create the parcel and its first tracking event
	// but touch no capacity resource.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		TrackingLedgerFactory
	}

	// ParcelUoWFactory creates new intake unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW manages transactions across the parcel, the capacity resources,
	// and both ledgers. Used for lifecycle transitions, where the status
	// change, the occupancy change, the tracking event, and (on delivery)
	// the billing record must land together or not at all.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   parcelRepo := uow.ParcelRepository()
	//   resourceRepo := uow.ResourceRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ParcelRepoFactory
		ResourceRepoFactory
		TrackingLedgerFactory
		BillingLedgerFactory
	}

	// UoWFactory creates new unit of work instances for lifecycle transitions.
	UoWFactory interface {
		Create() UoW
	}
)
