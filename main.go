package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/config"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/handler"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/middleware"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/pkg/cache"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/pkg/database"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	database.Seed(db)

	// Redis backs the availability cache and the release-once guard. The
	// ledger runs without it, straight against Postgres.
	var stockCache service.StockCache
	redisCache, err := cache.NewStockCache(cfg.RedisAddr)
	if err != nil {
		log.Printf("redis unavailable, running without stock cache: %v", err)
	} else {
		stockCache = redisCache
		defer redisCache.Close()
	}

	var publisher service.Publisher
	mqPublisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, running without notifications: %v", err)
	} else {
		publisher = mqPublisher
		defer mqPublisher.Close()
	}

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	tierRepo := repository.NewTierRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Services
	ledger := service.NewAvailabilityLedger(tierRepo, stockCache)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, tierRepo, userRepo, catalogRepo, ledger, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, artistRepo, eventRepo, publisher)
	eventSvc := service.NewEventService(eventRepo, tierRepo, bookingRepo, catalogRepo)
	tierSvc := service.NewTierService(tierRepo, eventRepo, purchaseRepo, catalogRepo, ledger)
	artistSvc := service.NewArtistService(artistRepo, bookingRepo, catalogRepo)
	userSvc := service.NewUserService(userRepo, purchaseRepo, catalogRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = dto.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "boleteria"})
	})

	api := e.Group("/api/v1")
	auth := middleware.RequireAuth(cfg.JWTSecret)

	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"))
	handler.NewUserHandler(userSvc).RegisterRoutes(api.Group("/usuarios"))
	handler.NewCatalogHandler(catalogSvc).RegisterRoutes(api)
	handler.NewEventHandler(eventSvc).RegisterRoutes(api.Group("/eventos"))
	handler.NewTierHandler(tierSvc, ledger).RegisterRoutes(api.Group("/localidad-detalles"))
	handler.NewArtistHandler(artistSvc).RegisterRoutes(api.Group("/artistas"))
	handler.NewPurchaseHandler(purchaseSvc).RegisterRoutes(api.Group("/compras", auth))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api.Group("/artista-eventos", auth))

	log.Printf("Boleteria API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
