package handlers

import (
	"net/http"

	"amora_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	*BaseHandler
	discoveryService services.DiscoveryService
}

func NewDiscoveryHandler(base *BaseHandler, discoveryService services.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{
		BaseHandler:      base,
		discoveryService: discoveryService,
	}
}

func (h *DiscoveryHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	discovery := r.Group("/discovery")
	discovery.Use(auth)
	{
		discovery.GET("", h.Discover)
	}
}

func (h *DiscoveryHandler) Discover(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	limit := ParseQueryInt(c, "limit", 0)

	candidates, err := h.discoveryService.Discover(db, userID, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}
