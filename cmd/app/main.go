package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"dispatch/cmd"
	dispatch_http "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateRunAssignmentsCommandHandler(),
		configs.AutoAssignSchedule,
		configs.AutoAssignMaxOrders,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:            envOrDefault("HTTP_PORT", "8080"),
		DBHost:              envOrDefault("DB_HOST", "localhost"),
		DBPort:              envOrDefault("DB_PORT", "5432"),
		DBUser:              envOrDefault("DB_USER", "postgres"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              envOrDefault("DB_NAME", "dispatch"),
		DBSslMode:           envOrDefault("DB_SSLMODE", "disable"),
		AutoAssignSchedule:  os.Getenv("AUTO_ASSIGN_SCHEDULE"),
		AutoAssignMaxOrders: envIntOrDefault("AUTO_ASSIGN_MAX_ORDERS", 0),
	}

	// Flag overrides for the values an operator most often changes ad hoc.
	port := pflag.String("port", config.HTTPPort, "HTTP listen port")
	schedule := pflag.String("auto-assign-schedule", config.AutoAssignSchedule,
		"cron schedule for the background assignment sweep (empty disables)")
	pflag.Parse()

	config.HTTPPort = *port
	config.AutoAssignSchedule = *schedule
	return config
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}

// openDatabase connects through the lib/pq driver so storage errors carry
// SQLSTATE codes the postgres adapter can classify.
func openDatabase(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        configs.DSN(),
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&routerepo.RouteDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := dispatch_http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateUpdateDriverHoursCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateRunAssignmentsCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllDriversQueryHandler(),
		app.CreateGetAllAssignmentsQueryHandler(),
		app.CreateGetAllRoutesQueryHandler(),
		app.CreateGetDashboardStatsQueryHandler(),
		app.GormDB(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
