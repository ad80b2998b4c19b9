package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/api"
	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/mongo/catalog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs)

	mongoClient, err := catalog.Connect(ctx, configs.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	publisher, err := kafka.NewPublisher(configs.KafkaBrokers(), configs.KafkaOrderChangedTopic)
	if err != nil {
		log.Fatalf("failed to create kafka publisher: %v", err)
	}
	defer func() { _ = publisher.Close() }()

	deliveryFee, err := configs.DeliveryFeeAmount()
	if err != nil {
		log.Fatal(err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		catalog.NewMongoProductCatalog(mongoClient.Database(configs.MongoDatabase)),
		publisher,
		deliveryFee,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs)
}

func getConfigs() cmd.Config {
	loadDotEnv(".env")

	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		MongoURI:               os.Getenv("MONGO_URI"),
		MongoDatabase:          os.Getenv("MONGO_DATABASE"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		OutboxRelaySchedule:    os.Getenv("OUTBOX_RELAY_SCHEDULE"),
		DeliveryFee:            os.Getenv("DELIVERY_FEE"),
	}
	return config
}

// loadDotEnv reads path if it exists. Variables already set in the
// environment win.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Fatalf("Error loading %s file: %v", path, err)
	}
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	metrics := httpin.NewMetrics()
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", metrics.Handler())

	doc, err := api.GetSwagger()
	if err != nil {
		e.Logger.Fatal(err)
	}
	validator, err := httpin.OpenAPIValidator(doc)
	if err != nil {
		e.Logger.Fatal(err)
	}
	if err := httpin.RegisterSwaggerUI(e, doc); err != nil {
		e.Logger.Fatal(err)
	}
	auth, err := httpin.NewTokenAuthenticator(configs.JWTSecret)
	if err != nil {
		e.Logger.Fatal(err)
	}

	httpin.RegisterHandlers(e, app.CreateHTTPServer(), auth, validator)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
