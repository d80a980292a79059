package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ntereshin/eventform-gateway/internal/config"
	"github.com/ntereshin/eventform-gateway/internal/http/handlers"
	"github.com/ntereshin/eventform-gateway/internal/http/middleware"
	"github.com/ntereshin/eventform-gateway/internal/identity"
)

func SetupRouter(
	cfg *config.Config,
	formHandler *handlers.FormHandler,
	proposalHandler *handlers.ProposalHandler,
	catalogHandler *handlers.CatalogHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *identity.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))

	r.GET("/health", healthHandler.Health)

	// Все маршруты шлюза требуют bearer токен университетского аккаунта.
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(tokenManager))
	{
		api.GET("/me", authHandler.Me)
		api.POST("/auth/signout", authHandler.SignOut)

		api.GET("/catalog", catalogHandler.Options)

		// Сессии формы
		api.POST("/form", formHandler.Open)
		api.POST("/form/edit/:proposalId", formHandler.OpenEdit)
		api.GET("/form/:sessionId", middleware.UUIDValidator("sessionId"), formHandler.Get)
		api.PATCH("/form/:sessionId/fields", middleware.UUIDValidator("sessionId"), formHandler.UpdateField)
		api.POST("/form/:sessionId/edit", middleware.UUIDValidator("sessionId"), formHandler.StartEdit)
		api.POST("/form/:sessionId/cancel", middleware.UUIDValidator("sessionId"), formHandler.Cancel)
		api.POST("/form/:sessionId/submit", middleware.UUIDValidator("sessionId"), formHandler.Submit)
		api.DELETE("/form/:sessionId", middleware.UUIDValidator("sessionId"), formHandler.Discard)

		// Заявки
		api.GET("/proposals", proposalHandler.List)
		api.GET("/proposals/:id", proposalHandler.Get)
		api.DELETE("/proposals/:id", proposalHandler.Delete)
	}

	return r
}
