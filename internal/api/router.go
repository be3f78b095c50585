package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/api/handler"
	"github.com/taxpro/office-api/internal/api/middleware"
	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// Services bundles the application services the router mounts.
type Services struct {
	Auth     ports.AuthService
	Returns  ports.ReturnService
	Users    ports.UserService
	Billing  ports.BillingService
	Activity ports.ActivityService
	Overview ports.OverviewService
	Customer ports.CustomerService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taxpro"))

	authMW := middleware.Auth(jwtSecret)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RolePreparer, domain.RoleReviewer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/verify-otp", authHandler.VerifyOTP)
	e.GET("/auth/session", authHandler.Session, authMW)
	e.POST("/auth/role", authHandler.SwitchRole, authMW)
	e.POST("/auth/logout", authHandler.Logout, authMW)

	// --- Domain routes ---
	v1 := e.Group("/v1", authMW)

	returnHandler := handler.NewReturnHandler(svc.Returns)
	v1.GET("/returns", returnHandler.List)
	v1.POST("/returns", returnHandler.Create)
	v1.GET("/returns/stats", returnHandler.StatusCounts)
	v1.GET("/returns/:id", returnHandler.Get)
	v1.PATCH("/returns/:id", returnHandler.Update)
	v1.POST("/returns/:id/documents", returnHandler.AddDocument)
	v1.POST("/returns/:id/comments", returnHandler.AddComment)

	userHandler := handler.NewUserHandler(svc.Users)
	v1.GET("/users", userHandler.List, adminOnly)
	v1.POST("/users", userHandler.Create, adminOnly)
	v1.GET("/users/:id", userHandler.Get, adminOnly)
	v1.PATCH("/users/:id", userHandler.Update, adminOnly)

	billingHandler := handler.NewBillingHandler(svc.Billing)
	v1.GET("/invoices", billingHandler.List)
	v1.POST("/invoices", billingHandler.Create, staffOnly)
	v1.GET("/invoices/revenue", billingHandler.Revenue)
	v1.GET("/invoices/stats", billingHandler.StatusCounts)
	v1.GET("/invoices/:id", billingHandler.Get)
	v1.POST("/invoices/:id/pay", billingHandler.Pay)

	activityHandler := handler.NewActivityHandler(svc.Activity)
	v1.GET("/activity", activityHandler.List)
	v1.GET("/activity/summary", activityHandler.Summary)

	overviewHandler := handler.NewOverviewHandler(svc.Overview)
	v1.GET("/overview", overviewHandler.Stats)

	customerHandler := handler.NewCustomerHandler(svc.Customer)
	v1.GET("/customers", customerHandler.List, staffOnly)
	v1.GET("/customers/:id", customerHandler.Get, staffOnly)
	v1.GET("/customers/:id/payments", customerHandler.CustomerPayments, staffOnly)
	v1.PATCH("/customers/:id/status", customerHandler.UpdateStatus, staffOnly)
	v1.PATCH("/customers/:id/pricing", customerHandler.UpdatePricing, staffOnly)
	v1.GET("/payments", customerHandler.ListPayments, staffOnly)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
