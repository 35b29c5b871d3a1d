// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/open-hangar/aeroledger/internal/http_server/controller"
	mid "github.com/open-hangar/aeroledger/internal/http_server/middleware"
	impl "github.com/open-hangar/aeroledger/internal/http_server/service"
	. "github.com/open-hangar/aeroledger/internal/interfaces"
	"github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 15", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 15
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	jwtConfig := echojwt.Config{
		SigningKey:    []byte(httpConfig.JWT.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	}

	jwtMiddleware := echojwt.WithConfig(jwtConfig)

	emailService := impl.NewEmailService(logger, httpConfig.Email)
	impl.InitValidator(httpConfig.Limits)

	operations := applicationContent.Operations()

	ledgerService := impl.NewSimulatedLedgerService(logger)
	userService := impl.NewUserService(httpConfig, operations.UserOperation())
	logbookService := impl.NewLogbookService(logger, operations.LogbookOperation(), ledgerService)
	fleetService := impl.NewFleetService(logger, httpConfig, operations, emailService, ledgerService)
	marketService := impl.NewSimulatedMarketService(operations.AircraftOperation())
	partsService := impl.NewPartsService(logger, httpConfig.Parts)

	userController := controller.NewUserHandler(logger, userService)
	logbookController := controller.NewLogbookHandler(logger, logbookService)
	fleetController := controller.NewFleetHandler(logger, fleetService)
	ledgerController := controller.NewLedgerHandler(logger, ledgerService)
	marketController := controller.NewMarketHandler(logger, marketService)
	partsController := controller.NewPartsHandler(logger, partsService)

	apiGroup := e.Group("/api")
	apiGroup.POST("/sessions", userController.UserLogin)
	apiGroup.POST("/users", userController.UserRegister)
	apiGroup.GET("/profile", userController.GetCurrentUserProfile, jwtMiddleware)

	logbookGroup := apiGroup.Group("/logbook")
	logbookGroup.GET("/entries", logbookController.GetEntries)
	logbookGroup.GET("/entries/:id", logbookController.GetEntry)
	logbookGroup.POST("/entries", logbookController.AddEntry, jwtMiddleware)
	logbookGroup.PATCH("/entries/:id", logbookController.UpdateEntry, jwtMiddleware)
	logbookGroup.DELETE("/entries/:id", logbookController.DeleteEntry, jwtMiddleware)
	logbookGroup.GET("/stats", logbookController.GetFlightStats)

	fleetGroup := apiGroup.Group("/fleet")
	fleetGroup.GET("/aircraft", fleetController.GetAircraft)
	fleetGroup.GET("/aircraft/:id", fleetController.GetAircraftById)
	fleetGroup.POST("/aircraft", fleetController.AddAircraft, jwtMiddleware)
	fleetGroup.PUT("/aircraft/:id", fleetController.UpdateAircraft, jwtMiddleware)
	fleetGroup.DELETE("/aircraft/:id", fleetController.DeleteAircraft, jwtMiddleware)
	fleetGroup.GET("/maintenance", fleetController.GetMaintenanceItems)
	fleetGroup.POST("/maintenance", fleetController.AddMaintenanceItem, jwtMiddleware)
	fleetGroup.PATCH("/maintenance/:id", fleetController.UpdateMaintenanceItem, jwtMiddleware)
	fleetGroup.DELETE("/maintenance/:id", fleetController.DeleteMaintenanceItem, jwtMiddleware)
	fleetGroup.POST("/maintenance/reminders", fleetController.SendMaintenanceReminders, jwtMiddleware)
	fleetGroup.GET("/orders", fleetController.GetPartOrders)
	fleetGroup.POST("/orders", fleetController.AddPartOrder, jwtMiddleware)
	fleetGroup.PUT("/orders/:id/status", fleetController.UpdatePartOrderStatus, jwtMiddleware)
	fleetGroup.GET("/suppliers", fleetController.GetSuppliers)
	fleetGroup.GET("/sensors", fleetController.GetSensorData)

	ledgerGroup := apiGroup.Group("/ledger")
	ledgerGroup.GET("/transactions", ledgerController.GetTransactions)
	ledgerGroup.GET("/logbook/:id", ledgerController.GetOnChainLogbook)
	ledgerGroup.GET("/contract", ledgerController.GetContractInfo)

	marketGroup := apiGroup.Group("/market")
	marketGroup.GET("/analysis/:id", marketController.GetMarketAnalysis)
	marketGroup.GET("/report", marketController.GetMarketReport)

	partsGroup := apiGroup.Group("/parts")
	partsGroup.GET("", partsController.SearchParts)
	partsGroup.GET("/quotes", partsController.GetPartQuotes)

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
