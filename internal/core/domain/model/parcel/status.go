package parcel

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle transition is attempted
// from a non-adjacent status or by a role that is not authorized for it.
// All transition violations unwrap to this sentinel.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the custody state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the correct delivery workflow.
//
// State transitions:
//
//	Created ──> InWarehouse ──> InTransit ──> OutForDelivery ──> Delivered
//
// Delivered is terminal: no outgoing transitions exist, and repeated
// delivery confirmation is rejected.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status assigned at intake.
	// Parcels in this status have been priced but occupy no resources yet.
	StatusCreated

	// StatusInWarehouse indicates the parcel occupies a warehouse slot.
	StatusInWarehouse

	// StatusInTransit indicates the parcel has left storage for the sorting stage.
	// No capacity resource is occupied in this status.
	StatusInTransit

	// StatusOutForDelivery indicates the parcel occupies a vehicle slot.
	StatusOutForDelivery

	// StatusDelivered indicates the parcel reached its destination and billing
	// has been settled. This is a final state with no further transitions.
	StatusDelivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusCreated:        "Created",
		StatusInWarehouse:    "InWarehouse",
		StatusInTransit:      "InTransit",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:        "Created",
		StatusInWarehouse:    "InWarehouse",
		StatusInTransit:      "InTransit",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, InWarehouse, InTransit, OutForDelivery, Delivered.
// StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// Store transitions the status to InWarehouse.
//
// Valid transitions:
//   - Created -> InWarehouse
//
// Returns (0, error) wrapping ErrInvalidTransition for any other source status.
func (s Status) Store() (Status, error) {
	if s != StatusCreated {
		return 0, s.invalidTransitionTo(StatusInWarehouse)
	}
	return StatusInWarehouse, nil
}

// Dispatch transitions the status to InTransit.
//
// Valid transitions:
//   - InWarehouse -> InTransit
//
// Returns (0, error) wrapping ErrInvalidTransition for any other source status.
func (s Status) Dispatch() (Status, error) {
	if s != StatusInWarehouse {
		return 0, s.invalidTransitionTo(StatusInTransit)
	}
	return StatusInTransit, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - InTransit -> OutForDelivery
//
// Returns (0, error) wrapping ErrInvalidTransition for any other source status.
func (s Status) StartDelivery() (Status, error) {
	if s != StatusInTransit {
		return 0, s.invalidTransitionTo(StatusOutForDelivery)
	}
	return StatusOutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
//
// Delivered -> Delivered is rejected like any other illegal transition, so a
// repeated delivery confirmation fails before any billing is attempted.
func (s Status) Deliver() (Status, error) {
	if s != StatusOutForDelivery {
		return 0, s.invalidTransitionTo(StatusDelivered)
	}
	return StatusDelivered, nil
}

func (s Status) invalidTransitionTo(target Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.String(), target.String())
}
