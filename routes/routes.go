package routes

import (
	"net/http"
	"time"

	userRepo "tripdesk/database/repository/user"
	"tripdesk/handlers"
	"tripdesk/middleware"
	"tripdesk/models"
	"tripdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the endpoint handlers and the repository the auth
// middleware validates tokens against.
type Handlers struct {
	UserRepo userRepo.UserRepository

	Auth      *handlers.AuthHandler
	Quote     *handlers.QuoteHandler
	Catalog   *handlers.CatalogHandler
	Provider  *handlers.ProviderHandler
	Image     *handlers.ImageHandler
	Admin     *handlers.AdminHandler
	Dashboard *handlers.DashboardHandler
}

// SetupRouter builds the gin engine with the full route table.
func SetupRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("web/templates/*.tmpl")

	registerOpsRoutes(r)
	registerAuthRoutes(r, h)
	registerQuoteRoutes(r, h)
	registerCatalogRoutes(r, h)
	registerProviderRoutes(r, h)
	registerAdminRoutes(r, h)
	registerDashboardRoutes(r, h)
	return r
}

func registerOpsRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAuthRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", h.Auth.RegisterHandler)
		api.POST("/login", h.Auth.LoginHandler)
		api.POST("/oauth/:provider", h.Auth.SocialSignInHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(h.UserRepo))
		protected.POST("/logout", h.Auth.LogoutHandler)
		protected.GET("/me", h.Auth.GetProfileHandler)
		protected.PUT("/password", h.Auth.UpdatePasswordHandler)
	}
}

func registerQuoteRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/quotes")
	api.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	api.Use(middleware.AuditMiddleware(h.Admin.AuditService))
	{
		api.POST("", h.Quote.CreateQuoteHandler)
		api.GET("", h.Quote.ListQuotesHandler)
		api.GET("/:id", h.Quote.GetQuoteHandler)
		api.PUT("/:id", h.Quote.UpdateQuoteHandler)
		api.POST("/:id/status", h.Quote.TransitionQuoteHandler)
		api.DELETE("/:id", h.Quote.DeleteQuoteHandler)
	}
}

func registerCatalogRoutes(r *gin.Engine, h *Handlers) {
	services := r.Group("/api/services")
	services.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	services.Use(middleware.AuditMiddleware(h.Admin.AuditService))
	{
		services.POST("", h.Catalog.CreateServiceHandler)
		services.GET("", h.Catalog.ListServicesHandler)
		services.GET("/:id", h.Catalog.GetServiceHandler)
		services.PUT("/:id", h.Catalog.UpdateServiceHandler)
		services.DELETE("/:id", h.Catalog.DeleteServiceHandler)
	}

	vehicleTypes := r.Group("/api/vehicle-types")
	vehicleTypes.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	vehicleTypes.Use(middleware.AuditMiddleware(h.Admin.AuditService))
	{
		vehicleTypes.POST("", h.Catalog.CreateVehicleTypeHandler)
		vehicleTypes.GET("", h.Catalog.ListVehicleTypesHandler)
		vehicleTypes.GET("/:id", h.Catalog.GetVehicleTypeHandler)
		vehicleTypes.PUT("/:id", h.Catalog.UpdateVehicleTypeHandler)
		vehicleTypes.DELETE("/:id", h.Catalog.DeleteVehicleTypeHandler)
	}

	vehicles := r.Group("/api/vehicles")
	vehicles.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	vehicles.Use(middleware.AuditMiddleware(h.Admin.AuditService))
	{
		vehicles.POST("", h.Catalog.CreateVehicleHandler)
		vehicles.GET("", h.Catalog.ListVehiclesHandler)
		vehicles.GET("/:id", h.Catalog.GetVehicleHandler)
		vehicles.PUT("/:id", h.Catalog.UpdateVehicleHandler)
		vehicles.DELETE("/:id", h.Catalog.DeleteVehicleHandler)
	}
}

func registerProviderRoutes(r *gin.Engine, h *Handlers) {
	providers := r.Group("/api/providers")
	providers.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	providers.Use(middleware.AuditMiddleware(h.Admin.AuditService))
	{
		providers.POST("", h.Provider.CreateProviderHandler)
		providers.GET("", h.Provider.ListProvidersHandler)
		providers.GET("/:id", h.Provider.GetProviderHandler)
		providers.PUT("/:id", h.Provider.UpdateProviderHandler)
		providers.DELETE("/:id", h.Provider.DeleteProviderHandler)
		providers.GET("/:id/experiences", h.Provider.ListProviderExperiencesHandler)
	}

	experiences := r.Group("/api/experiences")
	experiences.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	experiences.Use(middleware.AuditMiddleware(h.Admin.AuditService))
	{
		experiences.POST("", h.Provider.CreateExperienceHandler)
		experiences.GET("", h.Provider.ListExperiencesHandler)
		experiences.GET("/:id", h.Provider.GetExperienceHandler)
		experiences.PUT("/:id", h.Provider.UpdateExperienceHandler)
		experiences.DELETE("/:id", h.Provider.DeleteExperienceHandler)

		experiences.POST("/:id/images", h.Image.UploadImageHandler)
		experiences.GET("/:id/images", h.Image.ListImagesHandler)
		experiences.PUT("/:id/images/:imageId/primary", h.Image.SetPrimaryImageHandler)
		experiences.DELETE("/:id/images/:imageId", h.Image.DeleteImageHandler)
	}
}

func registerAdminRoutes(r *gin.Engine, h *Handlers) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.Use(middleware.AuditMiddleware(h.Admin.AuditService))
	{
		admin.GET("/users", h.Admin.ListUsersHandler)
		admin.PUT("/users/:id", h.Admin.UpdateUserHandler)
		admin.DELETE("/users/:id", h.Admin.DeactivateUserHandler)
		admin.GET("/audit", h.Admin.ListAuditHandler)
	}
}

func registerDashboardRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/api/dashboard", middleware.JWTAuthMiddleware(h.UserRepo), h.Dashboard.SummaryHandler)
	r.GET("/admin", middleware.JWTAuthMiddleware(h.UserRepo), h.Dashboard.PageHandler)
}
