package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/DailyWish/internal/handler/http/middleware"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/uuidgen"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

type Router struct {
	frameHandler   *FrameHandler
	imageHandler   *ImageHandler
	apiHandler     *WishAPIHandler
	wishUsecase    usecasecontract.IWishUseCase
	logger         usecasecontract.IAppLogger
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	ratePerSecond  float64
}

func NewRouter(wishUsecase usecasecontract.IWishUseCase, logger usecasecontract.IAppLogger, config usecasecontract.IConfigProvider, m *metrics.Metrics, metricsHandler http.Handler) *Router {
	return &Router{
		frameHandler:   NewFrameHandler(wishUsecase, logger, m, config.GetAppBaseURL()),
		imageHandler:   NewImageHandler(logger, config.GetOGCacheMaxAge()),
		apiHandler:     NewWishAPIHandler(wishUsecase, logger),
		wishUsecase:    wishUsecase,
		logger:         logger,
		metrics:        m,
		metricsHandler: metricsHandler,
		ratePerSecond:  config.GetRateLimitPerSecond(),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		ErrorHandler(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	router.NoRoute(func(c *gin.Context) {
		ErrorHandler(c, http.StatusNotFound, "Not found")
	})

	// frames are fetched and posted to from any client origin
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.RequestID(uuidgen.NewGenerator(), r.logger))
	router.Use(middleware.RequestLogger(r.logger))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.ratePerSecond)))

	router.GET("/health", func(c *gin.Context) {
		SuccessHandler(c, http.StatusOK, gin.H{"status": "ok", "wishes": r.wishUsecase.CatalogSize()})
	})
	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	// Frame routes
	api := router.Group("/api")
	{
		api.GET("/wish", r.frameHandler.ServeFrame)
		api.POST("/wish", r.frameHandler.ServeFrame)
		api.POST("/vote", r.frameHandler.CastVote)
		api.GET("/og", r.imageHandler.ServeImage)
	}

	// JSON API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/wishes/today", r.apiHandler.GetToday)
		v1.GET("/votes/:date/:index", r.apiHandler.GetTally)
	}
}
