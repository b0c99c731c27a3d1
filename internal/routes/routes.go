package routes

import (
	"amora_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route under /api. The auth
// middleware is handed down so each handler attaches it to its own
// protected group.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	auth gin.HandlerFunc,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.InterestHandler.RegisterRoutes(api)

		appHandlers.ProfileHandler.RegisterRoutes(api, auth)
		appHandlers.DiscoveryHandler.RegisterRoutes(api, auth)
		appHandlers.SwipeHandler.RegisterRoutes(api, auth)
		appHandlers.MatchHandler.RegisterRoutes(api, auth)
		appHandlers.MessageHandler.RegisterRoutes(api, auth)
		appHandlers.ModerationHandler.RegisterRoutes(api, auth)
		appHandlers.PhotoHandler.RegisterRoutes(api, auth)
		appHandlers.VerificationHandler.RegisterRoutes(api, auth)
	}
}
