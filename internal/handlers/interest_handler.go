package handlers

import (
	"net/http"

	"amora_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	*BaseHandler
	interestService services.InterestService
}

func NewInterestHandler(base *BaseHandler, interestService services.InterestService) *InterestHandler {
	return &InterestHandler{
		BaseHandler:     base,
		interestService: interestService,
	}
}

// Interests are reference data; the list is public.
func (h *InterestHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/interests", h.ListActive)
}

func (h *InterestHandler) ListActive(c *gin.Context) {
	db := h.GetDB(c)

	interests, err := h.interestService.ListActive(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interests)
}
