package handlers

import (
	"github.com/agrolink/agrolink-backend/cmd/docs"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/middleware"
	"github.com/agrolink/agrolink-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: authentication, signup metadata, navigation decisions
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, services)
	registerMetaRoutes(r)
	registerNavigationRoutes(r, services)

	// Protected API routes behind bearer-token auth
	setupProtectedRoutes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes configures the authenticated /api group. The inner
// gated group additionally requires a completed farm profile.
func setupProtectedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(api, services.User)
	registerProfileRoutes(api, services.Profile)

	gated := api.Group("", middleware.ProfileGate(services.User))
	registerWeatherRoutes(gated, services.Weather)
	registerChatRoutes(gated, services.Chat)
	registerSustainabilityRoutes(gated, services.Sustainability)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
