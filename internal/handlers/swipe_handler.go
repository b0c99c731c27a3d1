package handlers

import (
	"net/http"

	"amora_backend/internal/services"
	"amora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	*BaseHandler
	swipeService services.SwipeService
}

func NewSwipeHandler(base *BaseHandler, swipeService services.SwipeService) *SwipeHandler {
	return &SwipeHandler{
		BaseHandler:  base,
		swipeService: swipeService,
	}
}

func (h *SwipeHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	swipe := r.Group("/swipe")
	swipe.Use(auth)
	{
		swipe.POST("", h.Swipe)
	}
}

func (h *SwipeHandler) Swipe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	var req dto.SwipeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.swipeService.Swipe(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
