package postgres_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/billingrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/resourcerepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/lock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LifecycleIntegrationTestSuite drives a parcel through every lifecycle stage
// using the real command handlers against a real PostgreSQL database.
type LifecycleIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	createHandler   commands.CreateParcelCommandHandler
	storeHandler    commands.StoreParcelCommandHandler
	dispatchHandler commands.DispatchParcelCommandHandler
	startHandler    commands.StartDeliveryCommandHandler
	confirmHandler  commands.ConfirmDeliveryCommandHandler
}

type funcParcelUoWFactory func() commands.ParcelUoW

func (f funcParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW {
	return f()
}

// SetupSuite initializes PostgreSQL container and wires the command handlers
// exactly as the composition root does.
func (suite *LifecycleIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&resourcerepo.ResourceDTO{},
		&resourcerepo.OccupancyDTO{},
		&trackingrepo.EventDTO{},
		&billingrepo.RecordDTO{},
	)
	suite.Require().NoError(err)

	factory := postgres_adapter.NewGormUnitOfWorkFactory(db)
	var parcelUoWFactory commands.ParcelUoWFactory = funcParcelUoWFactory(func() commands.ParcelUoW {
		return factory.Create()
	})
	var uowFactory commands.UoWFactory = funcUoWFactory(func() commands.UoW {
		return factory.Create()
	})

	tariff, err := services.NewDefaultTariff()
	suite.Require().NoError(err)

	parcelLock := &lock.KeyedMutex{}
	logger := slog.New(slog.DiscardHandler)

	suite.createHandler = commands.NewCreateParcelCommandHandler(parcelUoWFactory, tariff)
	suite.storeHandler = commands.NewStoreParcelCommandHandler(uowFactory, parcelLock)
	suite.dispatchHandler = commands.NewDispatchParcelCommandHandler(uowFactory, parcelLock)
	suite.startHandler = commands.NewStartDeliveryCommandHandler(uowFactory, parcelLock)
	suite.confirmHandler = commands.NewConfirmDeliveryCommandHandler(uowFactory, parcelLock, logger)
}

// SetupTest ensures clean database state and seeds the warehouse and vehicle.
func (suite *LifecycleIntegrationTestSuite) SetupTest() {
	ctx := context.Background()

	err := suite.db.Exec(
		"TRUNCATE TABLE parcels, resources, resource_occupancy, tracking_events, billing_records").Error
	suite.Require().NoError(err)

	warehouse, err := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "Taipei Transfer Center", 50)
	suite.Require().NoError(err)
	vehicle, err := capacity.NewResource(kernel.NewUUID(), capacity.KindVehicle, "TRUCK-A1", 20)
	suite.Require().NoError(err)

	factory := postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
	uow := factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ResourceRepository().Add(ctx, warehouse))
	suite.Require().NoError(uow.ResourceRepository().Add(ctx, vehicle))
	suite.Require().NoError(uow.Commit(ctx))
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *LifecycleIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestFullLifecycle_CreatedToDelivered drives one parcel from intake to its
// terminal status and verifies the resulting tracking history, billing, and
// occupancy state.
func (suite *LifecycleIntegrationTestSuite) TestFullLifecycle_CreatedToDelivered() {
	ctx := context.Background()
	trackingNumber := suite.createParcel(ctx)

	base := time.Now()
	suite.store(ctx, trackingNumber, base.Add(time.Minute))
	suite.dispatch(ctx, trackingNumber, base.Add(2*time.Minute))
	suite.startDelivery(ctx, trackingNumber, base.Add(3*time.Minute))
	suite.confirmDelivery(ctx, trackingNumber, base.Add(4*time.Minute))

	factory := postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
	uow := factory.Create()

	delivered, err := uow.ParcelRepository().Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusDelivered, delivered.Status())

	history, err := uow.TrackingLedger().GetByTrackingNumber(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Require().Len(history, 5, "Every stage should leave a tracking event")
	suite.Equal("created", history[0].StatusDescription())
	suite.Equal("delivered", history[4].StatusDescription())

	record, err := uow.BillingLedger().GetByTrackingNumber(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.True(record.Amount().Equal(delivered.BillingCost()),
		"Settlement amount should match the cost fixed at creation")

	warehouse, err := uow.ResourceRepository().GetByKind(ctx, capacity.KindWarehouse)
	suite.Require().NoError(err)
	suite.False(warehouse.Holds(trackingNumber), "Warehouse slot should be released")

	vehicle, err := uow.ResourceRepository().GetByKind(ctx, capacity.KindVehicle)
	suite.Require().NoError(err)
	suite.False(vehicle.Holds(trackingNumber), "Vehicle slot should be released")
}

// TestFullLifecycle_RepeatedConfirmationRejected verifies the terminal status
// rejects a second confirmation and no second settlement is written.
func (suite *LifecycleIntegrationTestSuite) TestFullLifecycle_RepeatedConfirmationRejected() {
	ctx := context.Background()
	trackingNumber := suite.createParcel(ctx)

	base := time.Now()
	suite.store(ctx, trackingNumber, base.Add(time.Minute))
	suite.dispatch(ctx, trackingNumber, base.Add(2*time.Minute))
	suite.startDelivery(ctx, trackingNumber, base.Add(3*time.Minute))
	suite.confirmDelivery(ctx, trackingNumber, base.Add(4*time.Minute))

	command, err := commands.NewConfirmDeliveryCommand(trackingNumber, kernel.RoleDriver, base.Add(5*time.Minute))
	suite.Require().NoError(err)

	err = suite.confirmHandler.Handle(ctx, command)
	suite.Require().ErrorIs(err, parcel.ErrInvalidTransition,
		"Second confirmation should fail as an invalid transition")

	var count int64
	err = suite.db.Model(&billingrepo.RecordDTO{}).
		Where("tracking_number = ?", trackingNumber.Bytes()).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count, "Exactly one settlement should exist")
}

// TestFullLifecycle_SkippedStageRejected verifies a parcel cannot go out for
// delivery straight from intake.
func (suite *LifecycleIntegrationTestSuite) TestFullLifecycle_SkippedStageRejected() {
	ctx := context.Background()
	trackingNumber := suite.createParcel(ctx)

	command, err := commands.NewStartDeliveryCommand(trackingNumber, kernel.RoleDriver, time.Now())
	suite.Require().NoError(err)

	err = suite.startHandler.Handle(ctx, command)
	suite.Require().ErrorIs(err, parcel.ErrInvalidTransition)

	factory := postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
	uow := factory.Create()
	persisted, err := uow.ParcelRepository().Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusCreated, persisted.Status(), "Failed transition should leave the parcel unchanged")

	vehicle, err := uow.ResourceRepository().GetByKind(ctx, capacity.KindVehicle)
	suite.Require().NoError(err)
	suite.False(vehicle.Holds(trackingNumber), "Failed transition should not keep the vehicle slot")
}

// TestStoreParcel_LastSlotContention fires two concurrent storage transitions
// at a single-slot warehouse. Exactly one parcel may win the slot; the loser
// is rejected and neither admission may be lost.
func (suite *LifecycleIntegrationTestSuite) TestStoreParcel_LastSlotContention() {
	ctx := context.Background()

	// Replace the default warehouse with a single-slot one.
	err := suite.db.Exec("TRUNCATE TABLE resources, resource_occupancy").Error
	suite.Require().NoError(err)

	warehouse, err := capacity.NewResource(kernel.NewUUID(), capacity.KindWarehouse, "Taipei Transfer Center", 1)
	suite.Require().NoError(err)

	factory := postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
	uow := factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ResourceRepository().Add(ctx, warehouse))
	suite.Require().NoError(uow.Commit(ctx))

	first := suite.createParcel(ctx)
	second := suite.createParcel(ctx)

	type storeResult struct {
		trackingNumber kernel.UUID
		err            error
	}
	resultCh := make(chan storeResult, 2)

	var wg sync.WaitGroup
	for _, trackingNumber := range []kernel.UUID{first, second} {
		wg.Add(1)
		go func(tn kernel.UUID) {
			defer wg.Done()
			command, cmdErr := commands.NewStoreParcelCommand(tn, kernel.RoleWarehouse, time.Time{})
			if cmdErr != nil {
				resultCh <- storeResult{trackingNumber: tn, err: cmdErr}
				return
			}
			resultCh <- storeResult{trackingNumber: tn, err: suite.storeHandler.Handle(ctx, command)}
		}(trackingNumber)
	}
	wg.Wait()
	close(resultCh)

	results := make(map[kernel.UUID]error, 2)
	for result := range resultCh {
		results[result.trackingNumber] = result.err
	}

	var winner, loser kernel.UUID
	switch {
	case results[first] == nil:
		winner, loser = first, second
	default:
		winner, loser = second, first
	}
	suite.Require().NoError(results[winner], "Exactly one transition should win the slot")
	suite.Require().ErrorIs(results[loser], capacity.ErrCapacityExceeded,
		"The losing transition should be rejected, not queued")

	verify := factory.Create()
	persisted, err := verify.ResourceRepository().GetByKind(ctx, capacity.KindWarehouse)
	suite.Require().NoError(err)

	occupied, capacityLimit := persisted.Occupancy()
	suite.Equal(1, occupied, "No admission may be lost and none may exceed capacity")
	suite.Equal(1, capacityLimit)
	suite.True(persisted.Holds(winner))
	suite.False(persisted.Holds(loser))

	winnerParcel, err := verify.ParcelRepository().Get(ctx, winner)
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusInWarehouse, winnerParcel.Status())

	loserParcel, err := verify.ParcelRepository().Get(ctx, loser)
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusCreated, loserParcel.Status())
}

func (suite *LifecycleIntegrationTestSuite) createParcel(ctx context.Context) kernel.UUID {
	trackingNumber := kernel.NewUUID()

	command, err := commands.NewCreateParcelCommand(
		trackingNumber,
		kernel.RoleCustomerService,
		"Lin Mei",
		1.0,
		"30x20x10",
		decimal.NewFromInt(500),
		"ceramic teapot",
		parcel.KindSmallBox,
		parcel.ServiceLevelStandard,
		nil,
		12.5,
		kernel.NewUUID(),
		"Chen Wei",
		"+886-2-1234-5678",
		"chen.wei@example.com",
		parcel.CustomerTypeContract,
		"100 Zhongshan Rd, Taipei",
		parcel.BillingPreferenceMonthly,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.createHandler.Handle(ctx, command))
	return trackingNumber
}

func (suite *LifecycleIntegrationTestSuite) store(
	ctx context.Context, trackingNumber kernel.UUID, occurredAt time.Time,
) {
	command, err := commands.NewStoreParcelCommand(trackingNumber, kernel.RoleWarehouse, occurredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.storeHandler.Handle(ctx, command))
}

func (suite *LifecycleIntegrationTestSuite) dispatch(
	ctx context.Context, trackingNumber kernel.UUID, occurredAt time.Time,
) {
	command, err := commands.NewDispatchParcelCommand(trackingNumber, kernel.RoleWarehouse, occurredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dispatchHandler.Handle(ctx, command))
}

func (suite *LifecycleIntegrationTestSuite) startDelivery(
	ctx context.Context, trackingNumber kernel.UUID, occurredAt time.Time,
) {
	command, err := commands.NewStartDeliveryCommand(trackingNumber, kernel.RoleDriver, occurredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.startHandler.Handle(ctx, command))
}

func (suite *LifecycleIntegrationTestSuite) confirmDelivery(
	ctx context.Context, trackingNumber kernel.UUID, occurredAt time.Time,
) {
	command, err := commands.NewConfirmDeliveryCommand(trackingNumber, kernel.RoleDriver, occurredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.confirmHandler.Handle(ctx, command))
}

func TestLifecycleIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleIntegrationTestSuite))
}
