package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autoforge/dealership-api/internal/config"
	"github.com/autoforge/dealership-api/internal/domain/entity"
	domainRepo "github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/internal/presentation/http/handler"
	"github.com/autoforge/dealership-api/internal/presentation/http/middleware"
	"github.com/autoforge/dealership-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Dealer       *handler.DealerHandler
	Vehicle      *handler.VehicleHandler
	Quote        *handler.QuoteHandler
	Contract     *handler.ContractHandler
	Order        *handler.OrderHandler
	Catalog      *handler.CatalogHandler
	DefectReport *handler.DefectReportHandler
	User         *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Uploaded defect attachments are served straight from local storage
	router.Static(deps.Cfg.Storage.BaseURL, deps.Cfg.Storage.Path)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dealers
	registerDealerRoutes(protected, h)

	// Vehicles
	registerVehicleRoutes(protected, h)

	// Quotes
	registerQuoteRoutes(protected, h, deps)

	// Contracts
	registerContractRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Catalogs
	registerCatalogRoutes(protected, h)

	// Defect reports
	registerDefectReportRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerDealerRoutes(protected *gin.RouterGroup, h *Handlers) {
	dealers := protected.Group("/dealers")
	{
		dealers.GET("", h.Dealer.List)
		dealers.POST("", h.Dealer.Create)
		dealers.GET("/:id", h.Dealer.Get)
		dealers.PUT("/:id", h.Dealer.Update)
		dealers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Dealer.Delete)
	}
}

func registerVehicleRoutes(protected *gin.RouterGroup, h *Handlers) {
	vehicles := protected.Group("/vehicles")
	{
		vehicles.GET("", h.Vehicle.List)
		vehicles.POST("", h.Vehicle.Create)
		vehicles.GET("/:id", h.Vehicle.Get)
		vehicles.PUT("/:id", h.Vehicle.Update)
		vehicles.PUT("/:id/status", h.Vehicle.UpdateStatus)
		vehicles.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Vehicle.Delete)
	}
}

func registerQuoteRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotes := protected.Group("/quotes")
	{
		quotes.GET("", h.Quote.List)
		quotes.POST("", h.Quote.Create)
		quotes.POST("/preview", h.Quote.Preview)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PUT("/:id", h.Quote.Update)
		quotes.POST("/:id/reject", h.Quote.Reject)
		quotes.POST("/:id/revert", h.Quote.Revert)
		// Conversion uses idempotency middleware to prevent duplicate contracts
		quotes.POST("/:id/convert", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Contract.Convert)
		quotes.DELETE("/:id", h.Quote.Delete)
	}
}

func registerContractRoutes(protected *gin.RouterGroup, h *Handlers) {
	contracts := protected.Group("/contracts")
	{
		contracts.GET("", h.Contract.List)
		contracts.GET("/:id", h.Contract.Get)
		contracts.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Contract.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Order.Delete)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	catalogs := protected.Group("/catalogs")
	{
		catalogs.GET("", h.Catalog.ListAll)
		catalogs.POST("", middleware.RequireRole(entity.RoleAdmin), h.Catalog.Create)
		catalogs.PUT("/items/:id", middleware.RequireRole(entity.RoleAdmin), h.Catalog.Update)
		catalogs.DELETE("/items/:id", middleware.RequireRole(entity.RoleAdmin), h.Catalog.Delete)
		catalogs.GET("/:kind", h.Catalog.ListByKind)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/role", h.User.UpdateRole)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerDefectReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/defect-reports")
	{
		reports.GET("", h.DefectReport.List)
		reports.POST("", h.DefectReport.Create)
		reports.GET("/:id", h.DefectReport.Get)
		reports.PUT("/:id/status", h.DefectReport.UpdateStatus)
		reports.POST("/:id/attachments", h.DefectReport.AddAttachment)
		reports.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.DefectReport.Delete)
	}
}
