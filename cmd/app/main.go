package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	_ "dispatch/docs"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/jobrepo"
	"dispatch/internal/adapters/out/postgres/syncrepo"
	"dispatch/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		FleetServiceURL:     goDotEnvVariable("FLEET_SERVICE_URL"),
		DriverServiceURL:    goDotEnvVariable("DRIVER_SERVICE_URL"),
		RegistryTimeout:     goDotEnvVariable("REGISTRY_TIMEOUT"),
		DefaultVehicleType:  goDotEnvVariable("DEFAULT_VEHICLE_TYPE"),
		DefaultLicenseClass: goDotEnvVariable("DEFAULT_LICENSE_CLASS"),
	}
	if config.DefaultVehicleType == "" {
		config.DefaultVehicleType = "Truck"
	}
	if config.DefaultLicenseClass == "" {
		config.DefaultLicenseClass = "Heavy"
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&jobrepo.JobDTO{}, &syncrepo.TaskDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateJobCommandHandler(),
		app.CreateUpdateJobCommandHandler(),
		app.CreateDeleteJobCommandHandler(),
		app.CreateMarkArrivalCommandHandler(),
		app.CreateMarkStopCommandHandler(),
		app.CreateRaiseEmergencyCommandHandler(),
		app.CreateGetAllJobsQueryHandler(),
		app.CreateGetJobQueryHandler(),
		configs.DefaultVehicleType,
		configs.DefaultLicenseClass,
	)

	servers.RegisterHandlers(e, server)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
