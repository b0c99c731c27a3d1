package handlers

import (
	"net/http"

	"amora_backend/internal/services"
	"amora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	*BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(base *BaseHandler, moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:       base,
		moderationService: moderationService,
	}
}

func (h *ModerationHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	block := r.Group("/block")
	block.Use(auth)
	{
		block.POST("", h.Block)
		block.DELETE("/:blockedId", h.Unblock)
	}

	report := r.Group("/report")
	report.Use(auth)
	{
		report.POST("", h.Report)
	}
}

func (h *ModerationHandler) Block(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	var req dto.BlockRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	block, err := h.moderationService.Block(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *ModerationHandler) Unblock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	blockedID := c.Param("blockedId")

	if err := h.moderationService.Unblock(db, userID, blockedID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ModerationHandler) Report(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	var req dto.ReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	report, err := h.moderationService.Report(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}
