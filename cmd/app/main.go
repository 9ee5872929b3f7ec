package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/billingrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/resourcerepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	seedResources(&app, configs, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		WarehouseName:     goDotEnvVariable("WAREHOUSE_NAME"),
		WarehouseCapacity: goDotEnvVariable("WAREHOUSE_CAPACITY"),
		VehicleName:       goDotEnvVariable("VEHICLE_NAME"),
		VehicleCapacity:   goDotEnvVariable("VEHICLE_CAPACITY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&resourcerepo.ResourceDTO{},
		&resourcerepo.OccupancyDTO{},
		&trackingrepo.EventDTO{},
		&billingrepo.RecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedResources creates the warehouse and the vehicle on first start.
// Existing resources are left untouched so occupancy survives restarts.
func seedResources(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	uowFactory := app.CreateUnitOfWorkFactory()

	seedResource(uowFactory, capacity.KindWarehouse, configs.WarehouseName, configs.WarehouseCapacity, logger)
	seedResource(uowFactory, capacity.KindVehicle, configs.VehicleName, configs.VehicleCapacity, logger)
}

func seedResource(uowFactory commands.UoWFactory, kind capacity.Kind,
	name string, capacityValue string, logger *slog.Logger,
) {
	ctx := context.Background()

	capacityLimit, err := strconv.Atoi(capacityValue)
	if err != nil {
		log.Fatalf("Invalid capacity for %s: %v", kind, err)
	}

	uow := uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		log.Fatalf("Failed to begin seeding transaction: %v", err)
	}
	defer uow.Rollback(ctx)

	_, err = uow.ResourceRepository().GetByKind(ctx, kind)
	if err == nil {
		return
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		log.Fatalf("Failed to look up %s: %v", kind, err)
	}

	resource, err := capacity.NewResource(kernel.NewUUID(), kind, name, capacityLimit)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", kind, err)
	}

	if err = uow.ResourceRepository().Add(ctx, resource); err != nil {
		log.Fatalf("Failed to seed %s: %v", kind, err)
	}
	if err = uow.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit seeding transaction: %v", err)
	}

	logger.Info("Seeded resource",
		slog.String("kind", kind.String()),
		slog.String("name", name),
		slog.Int("capacity", capacityLimit),
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateStoreParcelCommandHandler(),
		app.CreateDispatchParcelCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateGetTrackingHistoryQueryHandler(),
		app.CreateListBillingRecordsQueryHandler(),
		app.CreateGetOccupancyQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
