package handlers

import (
	"net/http"

	"amora_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	*BaseHandler
	matchService services.MatchService
}

func NewMatchHandler(base *BaseHandler, matchService services.MatchService) *MatchHandler {
	return &MatchHandler{
		BaseHandler:  base,
		matchService: matchService,
	}
}

func (h *MatchHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	matches := r.Group("/matches")
	matches.Use(auth)
	{
		matches.GET("", h.ListMyMatches)
	}
}

func (h *MatchHandler) ListMyMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	matches, err := h.matchService.ListMyMatches(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
