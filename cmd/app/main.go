package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"frete/cmd"
	httpin "frete/internal/adapters/in/http"
	"frete/internal/adapters/out/postgres/accountrepo"
	"frete/internal/adapters/out/postgres/shipmentrepo"
	"frete/internal/adapters/out/postgres/vehiclerepo"
	"frete/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)
	startJobs(&app)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		TokenTTL:   parseTokenTTL(goDotEnvVariable("TOKEN_TTL")),
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

func parseTokenTTL(raw string) time.Duration {
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid TOKEN_TTL %q: %v", raw, err)
	}
	return ttl
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&accountrepo.UserDTO{},
		&accountrepo.ClientDTO{},
		&accountrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreatePendingBacklogQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateAcceptShipmentCommandHandler(),
		app.CreateRejectShipmentCommandHandler(),
		app.CreateRemoveShipmentCommandHandler(),
		app.CreateCreateVehicleCommandHandler(),
		app.CreateLoginQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateListAvailableShipmentsQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
	)

	auth := httpin.AuthMiddleware(app.TokenSigner(), app.CreateResolveActorQueryHandler())
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
