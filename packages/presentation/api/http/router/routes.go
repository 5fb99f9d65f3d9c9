package router

import (
	"net/http"

	"registry/packages/common/config"
	"registry/packages/common/logger"
	BusinessEntity "registry/packages/presentation/api/http/controllers/businessentity"
	Entity "registry/packages/presentation/api/http/controllers/entity"
	Location "registry/packages/presentation/api/http/controllers/location"
	LocationType "registry/packages/presentation/api/http/controllers/locationtype"
	MW "registry/packages/presentation/api/http/middleware"
	"registry/packages/presentation/api/http/request"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var log = logger.NewSource("ROUTER", logger.Default)

// i could just explicitly pass empty string in routes when i need it
// but it looks really awful, shitty and not obvious
const rootPath = ""

func Create() *echo.Echo {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn: config.Secret.SentryDSN,
		EnableTracing: true,
		TracesSampleRate: config.Sentry.TraceSampleRate,
		Debug: config.Debug.Enabled,
		ServerName: config.App.ServiceID,
		AttachStacktrace: true,
	}); err != nil {
		panic("Sentry initialization failed: " + err.Error())
	}

	router := echo.New()

    router.HideBanner = true
    router.HidePort = true

    router.HTTPErrorHandler = handleHttpError
    router.JSONSerializer = serializer{}
    router.Binder = &binder{}

    cors := middleware.CORSConfig{
        Skipper:      middleware.DefaultSkipper,
        AllowOrigins: config.HTTP.AllowedOrigins,
        AllowCredentials: true,
        AllowMethods: []string{
            http.MethodGet,
            http.MethodHead,
            http.MethodPut,
            http.MethodPatch,
            http.MethodPost,
            http.MethodDelete,
        },
    }

	router.Use(MW.SecurityHeaders)
	router.Use(middleware.BodyLimit("1M"))
	if config.HTTP.Secured {
		router.Use(middleware.HTTPSRedirect())
	}
    router.Use(middleware.CORSWithConfig(cors))
	router.Use(middleware.RequestID())
	router.Use(request.Middleware)
	router.Use(sentryecho.New(sentryecho.Options{
		Repanic: true,
	}))

    if config.Debug.Enabled {
        router.Use(middleware.Logger())
    }

	limiter := MW.NewRateLimiter()

	apiV1 := router.Group(
		"/v1",
		MW.Sensivity(MW.DefaultEndpoint),
		limiter.Max10reqPerSecond(),
	)

	// Drops are destructive and rare, so they get a tighter limit
	dropMiddlewares := []echo.MiddlewareFunc{
		MW.Sensivity(MW.SensitiveEndpoint),
		limiter.Max1reqPerSecond(),
	}

    entityGroup := apiV1.Group("/entities", MW.NoCache)

    entityGroup.POST(rootPath, Entity.Create)
    entityGroup.GET("/search", Entity.Search)
    entityGroup.GET("/:id", Entity.GetByID)
    entityGroup.PUT("/:id", Entity.Update)
    entityGroup.DELETE("/:id", Entity.SoftDelete)
    entityGroup.PUT("/:id/restore", Entity.Restore)
    entityGroup.DELETE("/:id/drop", Entity.Drop, dropMiddlewares...)

    businessEntityGroup := apiV1.Group("/business-entities", MW.NoCache)

    businessEntityGroup.POST(rootPath, BusinessEntity.Create)
    businessEntityGroup.GET("/search", BusinessEntity.Search)
    businessEntityGroup.GET("/:id", BusinessEntity.GetByID)
    businessEntityGroup.PUT("/:id", BusinessEntity.Update)
    businessEntityGroup.DELETE("/:id", BusinessEntity.SoftDelete)
    businessEntityGroup.PUT("/:id/restore", BusinessEntity.Restore)
    businessEntityGroup.DELETE("/:id/drop", BusinessEntity.Drop, dropMiddlewares...)

    locationGroup := apiV1.Group("/locations", MW.NoCache)

    locationGroup.POST(rootPath, Location.Create)
    locationGroup.GET("/search", Location.Search)
    locationGroup.GET("/:id", Location.GetByID)
    locationGroup.PUT("/:id", Location.Update)
    locationGroup.DELETE("/:id", Location.SoftDelete)
    locationGroup.PUT("/:id/restore", Location.Restore)
    locationGroup.DELETE("/:id/drop", Location.Drop, dropMiddlewares...)

    locationTypeGroup := apiV1.Group("/location-types")

    locationTypeGroup.POST(rootPath, LocationType.Create)
    locationTypeGroup.GET("/search", LocationType.Search)
    locationTypeGroup.GET("/:id", LocationType.GetByID)
    locationTypeGroup.PUT("/:id", LocationType.Update)
    locationTypeGroup.DELETE("/:id", LocationType.Drop, dropMiddlewares...)

	log.Info("Routes registered", nil)

    return router
}
