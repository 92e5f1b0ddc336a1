package handlers

import (
	"net/http"

	"adboard_backend/internal/middleware"
	"adboard_backend/internal/services"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes mounts the user management endpoints. Listing is
// admin-only; update and delete are self-or-admin, enforced in the service.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, mw *Middlewares) {
	users := rg.Group("/users")
	users.Use(mw.Resolve)
	{
		users.GET("", mw.Admin, h.List)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.userService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authorized, no token"))
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.Update(db, actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authorized, no token"))
		return
	}

	db := h.GetDB(c)

	if err := h.userService.Delete(db, actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
