package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, trackingNumber kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllInStatus(ctx context.Context, status parcel.Status) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockResourceRepository struct{ mock.Mock }

func (m *MockResourceRepository) Add(ctx context.Context, aggregate *capacity.Resource) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockResourceRepository) Update(ctx context.Context, aggregate *capacity.Resource) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockResourceRepository) GetByKind(ctx context.Context, kind capacity.Kind) (*capacity.Resource, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*capacity.Resource), args.Error(1)
}

type MockTrackingLedger struct{ mock.Mock }

func (m *MockTrackingLedger) Append(ctx context.Context, event tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingLedger) GetByTrackingNumber(ctx context.Context,
	trackingNumber kernel.UUID,
) ([]tracking.Event, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.Event), args.Error(1)
}

type MockBillingLedger struct{ mock.Mock }

func (m *MockBillingLedger) Add(ctx context.Context, record billing.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockBillingLedger) GetByTrackingNumber(ctx context.Context,
	trackingNumber kernel.UUID,
) (billing.Record, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(billing.Record), args.Error(1)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockParcelUoW) TrackingLedger() ports.TrackingLedger {
	args := m.Called()
	return args.Get(0).(ports.TrackingLedger)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) ResourceRepository() ports.ResourceRepository {
	args := m.Called()
	return args.Get(0).(ports.ResourceRepository)
}

func (m *MockUoW) TrackingLedger() ports.TrackingLedger {
	args := m.Called()
	return args.Get(0).(ports.TrackingLedger)
}

func (m *MockUoW) BillingLedger() ports.BillingLedger {
	args := m.Called()
	return args.Get(0).(ports.BillingLedger)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
