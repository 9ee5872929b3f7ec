package parcel_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(parcel.StatusUnknown))
		assert.Equal(t, 1, int(parcel.StatusCreated))
		assert.Equal(t, 2, int(parcel.StatusInWarehouse))
		assert.Equal(t, 3, int(parcel.StatusInTransit))
		assert.Equal(t, 4, int(parcel.StatusOutForDelivery))
		assert.Equal(t, 5, int(parcel.StatusDelivered))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []parcel.Status{
			parcel.StatusUnknown,
			parcel.StatusCreated,
			parcel.StatusInWarehouse,
			parcel.StatusInTransit,
			parcel.StatusOutForDelivery,
			parcel.StatusDelivered,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []parcel.Status{
			parcel.StatusCreated,
			parcel.StatusInWarehouse,
			parcel.StatusInTransit,
			parcel.StatusOutForDelivery,
			parcel.StatusDelivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []parcel.Status{
			parcel.StatusUnknown,
			parcel.Status(-1),
			parcel.Status(6),
			parcel.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				require.ErrorIs(t, err, parcel.ErrInvalidTransition)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   parcel.Status
			expected string
		}{
			{parcel.StatusCreated, "Created"},
			{parcel.StatusInWarehouse, "InWarehouse"},
			{parcel.StatusInTransit, "InTransit"},
			{parcel.StatusOutForDelivery, "OutForDelivery"},
			{parcel.StatusDelivered, "Delivered"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []parcel.Status{
			parcel.StatusUnknown,
			parcel.Status(-1),
			parcel.Status(6),
			parcel.Status(100),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestStatus_Store(t *testing.T) {
	t.Run("should allow transition from Created to InWarehouse", func(t *testing.T) {
		newStatus, err := parcel.StatusCreated.Store()

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInWarehouse, newStatus)
	})

	t.Run("should reject transition from any other status", func(t *testing.T) {
		invalidSources := []parcel.Status{
			parcel.StatusUnknown,
			parcel.StatusInWarehouse,
			parcel.StatusInTransit,
			parcel.StatusOutForDelivery,
			parcel.StatusDelivered,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Store()

				require.Error(t, err)
				assert.Equal(t, parcel.Status(0), newStatus)
				require.ErrorIs(t, err, parcel.ErrInvalidTransition)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s -> InWarehouse", status.String()))
			})
		}
	})
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("should allow transition from InWarehouse to InTransit", func(t *testing.T) {
		newStatus, err := parcel.StatusInWarehouse.Dispatch()

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInTransit, newStatus)
	})

	t.Run("should reject transition from any other status", func(t *testing.T) {
		invalidSources := []parcel.Status{
			parcel.StatusUnknown,
			parcel.StatusCreated,
			parcel.StatusInTransit,
			parcel.StatusOutForDelivery,
			parcel.StatusDelivered,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Dispatch()

				require.Error(t, err)
				assert.Equal(t, parcel.Status(0), newStatus)
				require.ErrorIs(t, err, parcel.ErrInvalidTransition)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s -> InTransit", status.String()))
			})
		}
	})
}

func TestStatus_StartDelivery(t *testing.T) {
	t.Run("should allow transition from InTransit to OutForDelivery", func(t *testing.T) {
		newStatus, err := parcel.StatusInTransit.StartDelivery()

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusOutForDelivery, newStatus)
	})

	t.Run("should reject transition from any other status", func(t *testing.T) {
		invalidSources := []parcel.Status{
			parcel.StatusUnknown,
			parcel.StatusCreated,
			parcel.StatusInWarehouse,
			parcel.StatusOutForDelivery,
			parcel.StatusDelivered,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.StartDelivery()

				require.Error(t, err)
				assert.Equal(t, parcel.Status(0), newStatus)
				require.ErrorIs(t, err, parcel.ErrInvalidTransition)
			})
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should allow transition from OutForDelivery to Delivered", func(t *testing.T) {
		newStatus, err := parcel.StatusOutForDelivery.Deliver()

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusDelivered, newStatus)
	})

	t.Run("should reject repeated delivery", func(t *testing.T) {
		newStatus, err := parcel.StatusDelivered.Deliver()

		require.Error(t, err)
		assert.Equal(t, parcel.Status(0), newStatus)
		require.ErrorIs(t, err, parcel.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "Delivered -> Delivered")
	})

	t.Run("should reject transition from any other status", func(t *testing.T) {
		invalidSources := []parcel.Status{
			parcel.StatusUnknown,
			parcel.StatusCreated,
			parcel.StatusInWarehouse,
			parcel.StatusInTransit,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Deliver()

				require.Error(t, err)
				assert.Equal(t, parcel.Status(0), newStatus)
				require.ErrorIs(t, err, parcel.ErrInvalidTransition)
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Delivered as terminal", func(t *testing.T) {
		assert.True(t, parcel.StatusDelivered.IsTerminal())
	})

	t.Run("should report every other status as non-terminal", func(t *testing.T) {
		nonTerminal := []parcel.Status{
			parcel.StatusUnknown,
			parcel.StatusCreated,
			parcel.StatusInWarehouse,
			parcel.StatusInTransit,
			parcel.StatusOutForDelivery,
		}

		for _, status := range nonTerminal {
			assert.False(t, status.IsTerminal(), "status %s should not be terminal", status.String())
		}
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow the full custody workflow", func(t *testing.T) {
		// Created -> InWarehouse -> InTransit -> OutForDelivery -> Delivered
		status := parcel.StatusCreated

		status, err := status.Store()
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInWarehouse, status)

		status, err = status.Dispatch()
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInTransit, status)

		status, err = status.StartDelivery()
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusOutForDelivery, status)

		status, err = status.Deliver()
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusDelivered, status)
		assert.True(t, status.IsTerminal())
	})

	t.Run("should prevent skipping stages", func(t *testing.T) {
		// Created -> InTransit (skipping the warehouse) must fail
		_, err := parcel.StatusCreated.Dispatch()
		require.Error(t, err)

		// Created -> OutForDelivery must fail
		_, err = parcel.StatusCreated.StartDelivery()
		require.Error(t, err)

		// InWarehouse -> Delivered must fail
		_, err = parcel.StatusInWarehouse.Deliver()
		require.Error(t, err)
	})

	t.Run("should prevent moving backwards", func(t *testing.T) {
		// InTransit -> InWarehouse must fail
		_, err := parcel.StatusInTransit.Store()
		require.Error(t, err)

		// Delivered admits no transitions at all
		_, err = parcel.StatusDelivered.Store()
		require.Error(t, err)
		_, err = parcel.StatusDelivered.Dispatch()
		require.Error(t, err)
		_, err = parcel.StatusDelivered.StartDelivery()
		require.Error(t, err)
		_, err = parcel.StatusDelivered.Deliver()
		require.Error(t, err)
	})
}

func TestStatus_Immutability(t *testing.T) {
	t.Run("should not modify original status during transitions", func(t *testing.T) {
		originalStatus := parcel.StatusCreated

		newStatus, err := originalStatus.Store()
		require.NoError(t, err)

		assert.Equal(t, parcel.StatusCreated, originalStatus)
		assert.Equal(t, parcel.StatusInWarehouse, newStatus)
	})

	t.Run("should not modify original status on failed transitions", func(t *testing.T) {
		originalStatus := parcel.StatusDelivered

		_, err := originalStatus.Deliver()
		require.Error(t, err)

		assert.Equal(t, parcel.StatusDelivered, originalStatus)
	})
}
