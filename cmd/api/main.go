package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/mikiasgoitom/DailyWish/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/DailyWish/internal/handler/http"
	redisclient "github.com/mikiasgoitom/DailyWish/internal/infrastructure/cache"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/catalog"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/config"
	database "github.com/mikiasgoitom/DailyWish/internal/infrastructure/database"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/logger"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/repository/sqlite"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/store"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/validator"
	"github.com/mikiasgoitom/DailyWish/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewAppLogger("daily-wish", appConfig.GetLogLevel())

	wishes, err := catalog.Load(appConfig.GetWishesFile())
	if err != nil {
		appLogger.Fatalf("Failed to load wish catalog: %v", err)
	}

	ctx := context.Background()
	kvStore, closeStore, err := openStore(ctx, appConfig)
	if err != nil {
		appLogger.Fatalf("Failed to open %s store: %v", appConfig.GetStoreBackend(), err)
	}
	appLogger.Infof("Using %s store with %d wishes", appConfig.GetStoreBackend(), wishes.Len())

	// Register custom validators
	validator.RegisterCustomValidators()
	appValidator := validator.NewValidator()

	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// Dependency Injection: Usecases
	wishUsecase := usecase.NewWishUsecase(wishes, kvStore, appValidator, appLogger, appConfig.GetLocation(), appConfig.GetVoteKeyTTL())

	// Initialize Gin router
	gin.DefaultWriter = appLogger.Logrus().Writer()
	router := gin.New()
	router.Use(gin.Recovery())
	appRouter := handlerHttp.NewRouter(wishUsecase, appLogger, appConfig, appMetrics, promhttp.Handler())
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Infof("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := multierr.Combine(srv.Shutdown(shutdownCtx), closeStore()); err != nil {
		appLogger.Errorf("Shutdown finished with errors: %v", err)
		os.Exit(1)
	}
	appLogger.Infof("Server stopped")
}

// openStore connects the configured vote store. The returned func releases it.
func openStore(ctx context.Context, cfg usecasecontract.IConfigProvider) (contract.IKeyValueStore, func() error, error) {
	switch cfg.GetStoreBackend() {
	case config.StoreBackendMemory:
		s := store.NewMemoryStore()
		return s, s.Close, nil

	case config.StoreBackendRedis:
		if cfg.GetRedisURL() == "" {
			return nil, nil, errors.New("REDIS_URL environment variable not set")
		}
		rdb, err := redisclient.NewRedisFromURL(ctx, cfg.GetRedisURL())
		if err != nil {
			return nil, nil, err
		}
		s := store.NewRedisStore(rdb)
		return s, s.Close, nil

	case config.StoreBackendMongo:
		if cfg.GetMongoURI() == "" {
			return nil, nil, errors.New("MONGODB_URI environment variable not set")
		}
		mongoClient, err := database.NewMongoDBClient(cfg.GetMongoURI())
		if err != nil {
			return nil, nil, err
		}
		repo := mongodb.NewKeyValueRepository(mongoClient.Client.Database(cfg.GetMongoDBName()))
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, nil, multierr.Append(err, mongoClient.Disconnect())
		}
		return repo, func() error { return multierr.Append(repo.Close(), mongoClient.Disconnect()) }, nil

	case config.StoreBackendSQLite:
		db, err := database.OpenSQLite(cfg.GetSQLitePath())
		if err != nil {
			return nil, nil, err
		}
		repo, err := sqlite.NewKeyValueRepository(ctx, db)
		if err != nil {
			return nil, nil, multierr.Append(err, db.Close())
		}
		return repo, repo.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.GetStoreBackend())
}
