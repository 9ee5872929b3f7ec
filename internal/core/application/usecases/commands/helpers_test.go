package commands_test

import (
	"log/slog"
	"testing"

	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/lock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testLock() *lock.KeyedMutex {
	return &lock.KeyedMutex{}
}

func restoredParcel(t *testing.T, trackingNumber kernel.UUID, status parcel.Status) *parcel.Parcel {
	t.Helper()

	customer, err := parcel.NewCustomer(kernel.NewUUID(), "Chen Wei", "", "", parcel.CustomerTypeContract)
	require.NoError(t, err)

	aggregate, err := parcel.RestoreParcel(
		trackingNumber, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "books",
		parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
		customer, "100 Main St", parcel.BillingPreferenceMonthly,
		decimal.NewFromInt(115), status)
	require.NoError(t, err)
	return aggregate
}

func testWarehouse(t *testing.T, capacityLimit int, occupied ...kernel.UUID) *capacity.Resource {
	t.Helper()

	resource, err := capacity.RestoreResource(
		kernel.NewUUID(), capacity.KindWarehouse, "Taipei Transfer Center", capacityLimit, occupied)
	require.NoError(t, err)
	return resource
}

func testVehicle(t *testing.T, capacityLimit int, occupied ...kernel.UUID) *capacity.Resource {
	t.Helper()

	resource, err := capacity.RestoreResource(
		kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", capacityLimit, occupied)
	require.NoError(t, err)
	return resource
}
