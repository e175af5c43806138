package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/carparts/carparts-api/docs"
	"github.com/carparts/carparts-api/internal/api/handler"
	"github.com/carparts/carparts-api/internal/api/middleware"
	"github.com/carparts/carparts-api/internal/core/ports"
	"github.com/carparts/carparts-api/internal/core/service"
)

// Dependencies carries everything the router needs to build the service
// graph. Mongo and Redis are only used by the readiness probe and may be nil.
type Dependencies struct {
	Parts    ports.PartRepository
	Orders   ports.OrderRepository
	Users    ports.UserRepository
	Payments ports.PaymentRepository
	// RoleCache is optional; nil disables role caching.
	RoleCache       ports.RoleCache
	PaymentProvider ports.PaymentIntentProvider

	JWTSecret string
	TokenTTL  time.Duration
	Currency  string

	Logger zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client

	// EnableMetrics mounts the HTTP metrics middleware and GET /metrics on
	// the default Prometheus registry. Only one router per process may
	// enable it.
	EnableMetrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())
	if deps.EnableMetrics {
		e.Use(echoprometheus.NewMiddleware("carparts"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Services ---
	partService := service.NewPartService(deps.Parts, deps.Logger)
	orderService := service.NewOrderService(deps.Orders, deps.Payments, deps.Logger)
	userService := service.NewUserService(deps.Users, deps.RoleCache, deps.JWTSecret, deps.TokenTTL, deps.Logger)
	paymentService := service.NewPaymentService(deps.PaymentProvider, deps.Currency, deps.Logger)

	// --- Handlers ---
	partHandler := handler.NewPartHandler(partService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	verifyToken := middleware.VerifyToken(deps.JWTSecret)
	verifyAdmin := middleware.VerifyAdmin(userService)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, verifyToken)

	// --- Parts ---
	e.GET("/part", partHandler.List)
	e.GET("/part/:id", partHandler.Get)
	e.POST("/part", partHandler.Create, verifyToken, verifyAdmin)
	e.DELETE("/part/:id", partHandler.Delete, verifyToken, verifyAdmin)
	e.PUT("/part/:id", partHandler.UpdateQuantity)

	// --- Orders ---
	e.GET("/ordered", orderHandler.List)
	e.PATCH("/ordered/:id", orderHandler.MarkPaid, verifyToken)
	e.GET("/ordered/:id", orderHandler.Get, verifyToken)
	e.POST("/ordered", orderHandler.Create)

	// --- Users ---
	e.GET("/user", userHandler.List, verifyToken)
	e.GET("/admin/:email", userHandler.CheckAdmin)
	e.PUT("/user/admin/:email", userHandler.Promote, verifyToken, verifyAdmin)
	e.PUT("/user/:email", userHandler.Login)

	// --- Greeting, docs and health probes (no auth required) ---
	e.GET("/", handler.Home)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}

// requestLogger emits one structured entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
