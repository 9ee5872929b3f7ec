package capacity_test

import (
	"sync"
	"testing"

	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	t.Run("should create valid resource with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		resource, err := capacity.NewResource(id, capacity.KindWarehouse, "Taipei Transfer Center", 50)

		require.NoError(t, err)
		assert.NotNil(t, resource)
		require.NoError(t, resource.Validate())
		assert.True(t, resource.ID().IsEqual(id))
		assert.Equal(t, capacity.KindWarehouse, resource.Kind())
		assert.Equal(t, "Taipei Transfer Center", resource.Name())
		assert.Equal(t, 50, resource.Capacity())

		occupied, cap := resource.Occupancy()
		assert.Equal(t, 0, occupied)
		assert.Equal(t, 50, cap)
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		resource, err := capacity.NewResource(invalidID, capacity.KindVehicle, "TRUCK-A1", 20)

		require.Error(t, err)
		assert.Nil(t, resource)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unknown kind", func(t *testing.T) {
		resource, err := capacity.NewResource(kernel.NewUUID(), capacity.KindUnknown, "TRUCK-A1", 20)

		require.Error(t, err)
		assert.Nil(t, resource)
		assert.Contains(t, err.Error(), "resource kind is invalid")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		resource, err := capacity.NewResource(kernel.NewUUID(), capacity.KindVehicle, "", 20)

		require.Error(t, err)
		assert.Nil(t, resource)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should fail with non-positive capacity", func(t *testing.T) {
		for _, cap := range []int{0, -5} {
			resource, err := capacity.NewResource(kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", cap)

			require.Error(t, err)
			assert.Nil(t, resource)
			assert.Contains(t, err.Error(), "capacity is invalid")
		}
	})
}

func TestRestoreResource(t *testing.T) {
	t.Run("should restore resource with persisted occupancy", func(t *testing.T) {
		p1 := kernel.NewUUID()
		p2 := kernel.NewUUID()

		resource, err := capacity.RestoreResource(
			kernel.NewUUID(), capacity.KindWarehouse, "Taipei Transfer Center", 50,
			[]kernel.UUID{p1, p2})

		require.NoError(t, err)
		assert.True(t, resource.Holds(p1))
		assert.True(t, resource.Holds(p2))

		occupied, _ := resource.Occupancy()
		assert.Equal(t, 2, occupied)
	})

	t.Run("should fail when occupancy exceeds capacity", func(t *testing.T) {
		resource, err := capacity.RestoreResource(
			kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", 1,
			[]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()})

		require.Error(t, err)
		assert.Nil(t, resource)
		require.ErrorIs(t, err, capacity.ErrCapacityExceeded)
	})

	t.Run("should fail on duplicate tracking numbers", func(t *testing.T) {
		p := kernel.NewUUID()

		resource, err := capacity.RestoreResource(
			kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", 5,
			[]kernel.UUID{p, p})

		require.Error(t, err)
		assert.Nil(t, resource)
		require.ErrorIs(t, err, capacity.ErrAlreadyAdmitted)
	})
}

func TestResource_Validate(t *testing.T) {
	t.Run("should fail validation for nil resource", func(t *testing.T) {
		var resource *capacity.Resource

		err := resource.Validate()

		require.Error(t, err)
		assert.Equal(t, capacity.ErrResourceIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value resource", func(t *testing.T) {
		var resource capacity.Resource

		err := resource.Validate()

		require.Error(t, err)
		assert.Equal(t, capacity.ErrResourceIsNotConstructed, err)
	})
}

func TestResource_Admit(t *testing.T) {
	t.Run("should admit parcel into free slot", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", 2)
		trackingNumber := kernel.NewUUID()

		err := resource.Admit(trackingNumber)

		require.NoError(t, err)
		assert.True(t, resource.Holds(trackingNumber))

		occupied, _ := resource.Occupancy()
		assert.Equal(t, 1, occupied)
	})

	t.Run("should reject admission when full", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", 1)
		require.NoError(t, resource.Admit(kernel.NewUUID()))

		rejected := kernel.NewUUID()
		err := resource.Admit(rejected)

		require.Error(t, err)
		require.ErrorIs(t, err, capacity.ErrCapacityExceeded)
		assert.Contains(t, err.Error(), "TRUCK-A1 is full (1/1)")
		assert.False(t, resource.Holds(rejected))

		occupied, _ := resource.Occupancy()
		assert.Equal(t, 1, occupied)
	})

	t.Run("should reject duplicate admission", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", 5)
		trackingNumber := kernel.NewUUID()
		require.NoError(t, resource.Admit(trackingNumber))

		err := resource.Admit(trackingNumber)

		require.Error(t, err)
		require.ErrorIs(t, err, capacity.ErrAlreadyAdmitted)

		occupied, _ := resource.Occupancy()
		assert.Equal(t, 1, occupied)
	})

	t.Run("should report conflict before capacity when full and duplicate", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", 1)
		trackingNumber := kernel.NewUUID()
		require.NoError(t, resource.Admit(trackingNumber))

		err := resource.Admit(trackingNumber)

		require.ErrorIs(t, err, capacity.ErrAlreadyAdmitted)
	})

	t.Run("should reject invalid tracking number", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", 5)
		var invalidID kernel.UUID

		err := resource.Admit(invalidID)

		require.Error(t, err)
	})
}

func TestResource_Release(t *testing.T) {
	t.Run("should release admitted parcel", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", 5)
		trackingNumber := kernel.NewUUID()
		require.NoError(t, resource.Admit(trackingNumber))

		err := resource.Release(trackingNumber)

		require.NoError(t, err)
		assert.False(t, resource.Holds(trackingNumber))

		occupied, _ := resource.Occupancy()
		assert.Equal(t, 0, occupied)
	})

	t.Run("should fail releasing parcel that is not admitted", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", 5)

		err := resource.Release(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, capacity.ErrNotAdmitted)
	})

	t.Run("should fail releasing the same parcel twice", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", 5)
		trackingNumber := kernel.NewUUID()
		require.NoError(t, resource.Admit(trackingNumber))
		require.NoError(t, resource.Release(trackingNumber))

		err := resource.Release(trackingNumber)

		require.Error(t, err)
		require.ErrorIs(t, err, capacity.ErrNotAdmitted)
	})

	t.Run("should free the slot for another parcel", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", 1)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, resource.Admit(first))
		require.ErrorIs(t, resource.Admit(second), capacity.ErrCapacityExceeded)
		require.NoError(t, resource.Release(first))

		err := resource.Admit(second)

		require.NoError(t, err)
		assert.True(t, resource.Holds(second))
	})
}

func TestResource_Occupied(t *testing.T) {
	t.Run("should return a snapshot copy", func(t *testing.T) {
		resource, _ := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", 5)
		trackingNumber := kernel.NewUUID()
		require.NoError(t, resource.Admit(trackingNumber))

		occupied := resource.Occupied()

		require.Len(t, occupied, 1)
		assert.True(t, occupied[0].IsEqual(trackingNumber))
	})
}

func TestResource_ConcurrentAdmission(t *testing.T) {
	t.Run("should admit exactly capacity parcels under contention", func(t *testing.T) {
		const workers = 50
		const cap = 10

		resource, err := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "WH-001", cap)
		require.NoError(t, err)

		var wg sync.WaitGroup
		results := make(chan error, workers)

		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- resource.Admit(kernel.NewUUID())
			}()
		}
		wg.Wait()
		close(results)

		admitted := 0
		rejected := 0
		for err := range results {
			if err == nil {
				admitted++
			} else {
				require.ErrorIs(t, err, capacity.ErrCapacityExceeded)
				rejected++
			}
		}

		assert.Equal(t, cap, admitted)
		assert.Equal(t, workers-cap, rejected)

		occupied, _ := resource.Occupancy()
		assert.Equal(t, cap, occupied)
	})

	t.Run("should resolve two parcels contending for the last slot to one admission", func(t *testing.T) {
		resource, err := capacity.NewResource(kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", 1)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errors := make([]error, 2)
		for i := range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errors[i] = resource.Admit(kernel.NewUUID())
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errors {
			if err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded)

		occupied, _ := resource.Occupancy()
		assert.Equal(t, 1, occupied)
	})
}
