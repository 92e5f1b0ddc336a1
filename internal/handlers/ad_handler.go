package handlers

import (
	"net/http"

	"adboard_backend/internal/middleware"
	"adboard_backend/internal/services"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	*BaseHandler
	adService services.AdService
}

func NewAdHandler(base *BaseHandler, adService services.AdService) *AdHandler {
	return &AdHandler{
		BaseHandler: base,
		adService:   adService,
	}
}

// RegisterRoutes mounts the ad endpoints. Reads are open; writes go through
// identity resolution and the activation gate, ownership is checked in the
// service.
func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup, mw *Middlewares) {
	ads := rg.Group("/ad")
	{
		ads.GET("", h.List)

		protected := ads.Group("")
		protected.Use(mw.Resolve, mw.Active)
		{
			protected.POST("", h.Create)
			protected.PUT("/:id", h.Update)
			protected.DELETE("/:id", h.Delete)
		}
	}
}

func (h *AdHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	ads, err := h.adService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authorized, no token"))
		return
	}

	var req dto.CreateAdRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	ad, err := h.adService.Create(db, actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ad)
}

func (h *AdHandler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authorized, no token"))
		return
	}

	var req dto.UpdateAdRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	ad, err := h.adService.Update(db, actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ad)
}

func (h *AdHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authorized, no token"))
		return
	}

	db := h.GetDB(c)

	if err := h.adService.Delete(db, actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad deleted"})
}
