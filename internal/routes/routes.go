package routes

import (
	"adboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, mw *handlers.Middlewares) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, mw)
		appHandlers.AdHandler.RegisterRoutes(api, mw)
		appHandlers.UserHandler.RegisterRoutes(api, mw)
	}
}
