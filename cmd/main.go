package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/aimasteryhub/backend/internal/handlers"
	appjwt "github.com/aimasteryhub/backend/internal/jwt"
	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/middlewares"
	"github.com/aimasteryhub/backend/internal/repositories"
	"github.com/aimasteryhub/backend/internal/services"
	"github.com/aimasteryhub/backend/internal/store"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title AI Mastery Hub API
// @version 1.0.0
// @description Backend for the AI learning hub: auth, daily AI info, quizzes, prompts, glossary, progress tracking and activity logs
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		adminUsername, adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		jwtSecretKey, jwtExpSecond,
		adminUsername, adminPassword,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, Redis, Kafka, JWT, and bootstrap configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminUsername, adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; an empty broker disables the audit fan-out
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "activity-logs")

	// JWT config; sessions default to 30 days
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "2592000")); err != nil {
		return
	}

	// Bootstrap accounts
	adminUsername = getEnv("ADMIN_USERNAME", "admin")
	adminPassword = getEnv("ADMIN_PASSWORD", "admin123")

	return
}

// run initializes the logger, Redis, Kafka, and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminUsername, adminPassword string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	docStore := store.NewRedisStore(rdb,
		store.WithUniqueField(repositories.UsersCollection, "username"),
	)

	// Kafka writer for the audit fan-out; nil when no broker is configured
	var kafkaWriter *kafka.Writer
	if kafkaBroker != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		logger.Log.Infof("Kafka fan-out enabled: %s topic %s", kafkaBroker, kafkaTopic)
	}

	// Initialize JWT service
	jwt := appjwt.New(
		appjwt.WithSecretKey(jwtSecretKey),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(docStore)
	userWriteRepo := repositories.NewUserWriteRepository(docStore)
	activityLogRepo := repositories.NewActivityLogRepository(docStore)
	aiInfoRepo := repositories.NewAIInfoRepository(docStore)
	quizRepo := repositories.NewQuizRepository(docStore)
	promptRepo := repositories.NewPromptRepository(docStore)
	termRepo := repositories.NewTermRepository(docStore)
	baseContentRepo := repositories.NewBaseContentRepository(docStore)
	progressRepo := repositories.NewProgressRepository(docStore)

	// Initialize services
	activityService := services.NewActivityService(activityLogRepo, nilableWriter(kafkaWriter))
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt, activityService)
	usersService := services.NewUsersService(userReadRepo, userWriteRepo, activityService)
	aiInfoService := services.NewAIInfoService(aiInfoRepo, activityService)
	quizService := services.NewQuizService(quizRepo, activityService)
	promptService := services.NewPromptService(promptRepo)
	termService := services.NewTermService(termRepo)
	baseContentService := services.NewBaseContentService(baseContentRepo)
	progressService := services.NewProgressService(progressRepo)
	systemService := services.NewSystemService(docStore)

	// Seed bootstrap accounts
	if err := services.SeedUsers(ctx, userReadRepo, userWriteRepo, adminUsername, adminPassword); err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMiddleware := middlewares.AuthMiddleware(jwt, authService)
	adminMiddleware := middlewares.AdminMiddleware()

	// Public routes
	r.Get("/", handlers.NewRootHandler(buildVersion))
	r.Get("/health", handlers.NewHealthHandler(systemService))
	r.Post("/api/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/api/ai-info", handlers.NewListAIInfoDatesHandler(aiInfoService))
	r.Get("/api/ai-info/{date}", handlers.NewGetAIInfoHandler(aiInfoService))
	r.Get("/api/quiz/topics", handlers.NewListQuizTopicsHandler(quizService))
	r.Get("/api/quiz/{topic}", handlers.NewGetQuizByTopicHandler(quizService))
	r.Get("/api/prompts", handlers.NewListPromptsHandler(promptService))
	r.Get("/api/terms", handlers.NewListTermsHandler(termService))
	r.Get("/api/base-content", handlers.NewListBaseContentHandler(baseContentService))
	r.Get("/api/progress/{session_id}", handlers.NewGetProgressHandler(progressService))
	r.Get("/api/progress/{session_id}/stats", handlers.NewProgressStatsHandler(progressService))
	r.Post("/api/progress", handlers.NewCreateProgressHandler(progressService))

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/auth/me", handlers.NewMeHandler())
		r.Post("/api/logs", handlers.NewCreateLogHandler(activityService))
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(adminMiddleware)
		r.Get("/api/users", handlers.NewListUsersHandler(usersService))
		r.Put("/api/users/{id}/role", handlers.NewUpdateUserRoleHandler(usersService))
		r.Delete("/api/users/{id}", handlers.NewDeleteUserHandler(usersService))
		r.Get("/api/logs", handlers.NewQueryLogsHandler(activityService))
		r.Get("/api/logs/stats", handlers.NewLogStatsHandler(activityService))
		r.Delete("/api/logs", handlers.NewClearLogsHandler(activityService))
		r.Post("/api/ai-info", handlers.NewCreateAIInfoHandler(aiInfoService))
		r.Delete("/api/ai-info/{date}", handlers.NewDeleteAIInfoHandler(aiInfoService))
		r.Post("/api/quiz", handlers.NewCreateQuizHandler(quizService))
		r.Put("/api/quiz/{id}", handlers.NewUpdateQuizHandler(quizService))
		r.Delete("/api/quiz/{id}", handlers.NewDeleteQuizHandler(quizService))
		r.Post("/api/prompts", handlers.NewCreatePromptHandler(promptService))
		r.Put("/api/prompts/{id}", handlers.NewUpdatePromptHandler(promptService))
		r.Delete("/api/prompts/{id}", handlers.NewDeletePromptHandler(promptService))
		r.Post("/api/terms", handlers.NewCreateTermHandler(termService))
		r.Post("/api/base-content", handlers.NewCreateBaseContentHandler(baseContentService))
		r.Get("/api/admin/stats", handlers.NewAdminStatsHandler(systemService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// nilableWriter keeps a nil *kafka.Writer from becoming a non-nil interface.
func nilableWriter(w *kafka.Writer) services.KafkaWriter {
	if w == nil {
		return nil
	}
	return w
}
