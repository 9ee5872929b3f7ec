package capacity

import (
	"errors"
	"fmt"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrCapacityExceeded indicates that the resource is full and cannot admit
	// another parcel. The occupancy is left unchanged.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrAlreadyAdmitted indicates that the parcel already occupies a slot in
	// this resource; admitting the same tracking number twice is a conflict.
	ErrAlreadyAdmitted = errors.New("parcel already admitted to this resource")

	// ErrNotAdmitted indicates that the parcel does not occupy a slot in this
	// resource, either because it was never admitted or was already released.
	ErrNotAdmitted = errors.New("parcel not admitted to this resource")

	// ErrResourceIsNotConstructed indicates that the Resource was not
	// properly initialized through a constructor function.
	ErrResourceIsNotConstructed = errors.New("Resource must be created via NewResource constructor")
)

// Kind distinguishes the two capacity-bounded resources in a running system.
type Kind int

const (
	// KindUnknown represents an invalid or undefined resource kind.
	KindUnknown Kind = iota

	// KindWarehouse is the storage facility holding parcels between intake and dispatch.
	KindWarehouse

	// KindVehicle is the delivery vehicle carrying parcels out for delivery.
	KindVehicle
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:   "unknown",
		KindWarehouse: "warehouse",
		KindVehicle:   "vehicle",
	}
}

// KindFromString parses a resource kind from its wire representation.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("resource kind is invalid",
		fmt.Errorf("%q is not a valid resource kind", s))
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != KindWarehouse && k != KindVehicle {
		return errs.NewValueIsInvalidErrorWithCause("resource kind is invalid",
			fmt.Errorf("%d is not a valid resource kind", k))
	}
	return nil
}

// String returns the wire name of the resource kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Resource is a bounded pool of slots that parcels occupy and release during
// their lifecycle. Two instances exist in a running system: one warehouse and
// one vehicle. A parcel occupies at most one slot in at most one resource at
// a time; the lifecycle rules keep the warehouse and vehicle sets mutually
// exclusive for any given parcel.
//
// The entity is shared mutable state across all parcels using the resource,
// so Admit and Release are internally synchronized: two parcels contending
// for the last slot resolve to exactly one admission.
//
// Key business rules:
//   - |occupied| never exceeds capacity
//   - Admitting a tracking number that is already present is a conflict
//   - Releasing a tracking number that is not present is a not-found error
//   - Rejections are immediate; there is no queueing for a free slot
type Resource struct {
	// id uniquely identifies the resource
	id kernel.UUID

	// kind distinguishes warehouse from vehicle
	kind Kind

	// name is a human-readable identifier for the resource
	name string

	// capacity is the maximum number of parcels held at once
	capacity int

	// mu guards occupied against concurrent Admit/Release calls
	mu sync.Mutex

	// occupied is the set of tracking numbers currently holding a slot
	occupied map[kernel.UUID]struct{}

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewResource creates a new empty Resource with the specified parameters.
//
// The constructor validates all input parameters and ensures the entity is in
// a consistent state before returning. All validation errors are aggregated
// and returned as a single error.
func NewResource(id kernel.UUID, kind Kind, name string, capacity int) (*Resource, error) {
	resource := &Resource{
		occupied: make(map[kernel.UUID]struct{}),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resource.setID(id),
		resource.setKind(kind),
		resource.setName(name),
		resource.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return resource, nil
}

// RestoreResource reconstructs a Resource from persistent storage, including
// the set of tracking numbers occupying slots at the time of persistence.
//
// Restoration fails if the persisted occupancy exceeds the capacity or
// contains duplicate tracking numbers.
func RestoreResource(
	id kernel.UUID,
	kind Kind,
	name string,
	capacity int,
	occupied []kernel.UUID,
) (*Resource, error) {
	resource, err := NewResource(id, kind, name, capacity)
	if err != nil {
		return nil, err
	}

	if len(occupied) > capacity {
		return nil, fmt.Errorf("%w: %d parcels restored into capacity %d",
			ErrCapacityExceeded, len(occupied), capacity)
	}

	for _, trackingNumber := range occupied {
		if idErr := trackingNumber.Validate(); idErr != nil {
			return nil, idErr
		}
		if _, dup := resource.occupied[trackingNumber]; dup {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyAdmitted, trackingNumber)
		}
		resource.occupied[trackingNumber] = struct{}{}
	}

	return resource, nil
}

// Validate checks if the Resource entity was properly constructed.
func (r *Resource) Validate() error {
	if r == nil {
		return ErrResourceIsNotConstructed
	}
	return r.guard.Validate(ErrResourceIsNotConstructed)
}

// IsEqual compares two resources by their unique identifiers.
func (r *Resource) IsEqual(other *Resource) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the unique identifier of the resource.
func (r *Resource) ID() kernel.UUID {
	return r.id
}

// Kind returns whether this resource is the warehouse or the vehicle.
func (r *Resource) Kind() Kind {
	return r.kind
}

// Name returns the human-readable name of the resource.
func (r *Resource) Name() string {
	return r.name
}

// Capacity returns the maximum number of parcels this resource holds at once.
func (r *Resource) Capacity() int {
	return r.capacity
}

// Admit places a parcel into a free slot.
//
// Fails with ErrCapacityExceeded when the resource is full and with
// ErrAlreadyAdmitted when the tracking number already occupies a slot.
// On failure the occupancy is unchanged.
func (r *Resource) Admit(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.occupied[trackingNumber]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyAdmitted, trackingNumber)
	}

	if len(r.occupied) == r.capacity {
		return fmt.Errorf("%w: %s is full (%d/%d)", ErrCapacityExceeded, r.name, len(r.occupied), r.capacity)
	}

	r.occupied[trackingNumber] = struct{}{}
	return nil
}

// Release frees the slot held by a parcel.
//
// Fails with ErrNotAdmitted when the tracking number does not occupy a slot.
func (r *Resource) Release(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.occupied[trackingNumber]; !ok {
		return fmt.Errorf("%w: %s", ErrNotAdmitted, trackingNumber)
	}

	delete(r.occupied, trackingNumber)
	return nil
}

// Holds reports whether the given parcel currently occupies a slot.
func (r *Resource) Holds(trackingNumber kernel.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.occupied[trackingNumber]
	return ok
}

// Occupancy returns a snapshot of (occupied count, capacity).
func (r *Resource) Occupancy() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.occupied), r.capacity
}

// Occupied returns a copy of the tracking numbers currently holding slots.
// The order is unspecified.
func (r *Resource) Occupied() []kernel.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	occupied := make([]kernel.UUID, 0, len(r.occupied))
	for trackingNumber := range r.occupied {
		occupied = append(occupied, trackingNumber)
	}
	return occupied
}

func (r *Resource) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Resource) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Resource) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	r.name = name
	return nil
}

func (r *Resource) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	r.capacity = capacity
	return nil
}
