package handlers

import "github.com/gin-gonic/gin"

// Middlewares carries the auth middleware chain handed to each handler's
// RegisterRoutes: identity resolution, the activation gate and the admin
// check — always applied in that order.
type Middlewares struct {
	Resolve gin.HandlerFunc
	Active  gin.HandlerFunc
	Admin   gin.HandlerFunc
}

// AppHandlers groups all HTTP handlers for wiring.
type AppHandlers struct {
	AuthHandler *AuthHandler
	AdHandler   *AdHandler
	UserHandler *UserHandler
}
