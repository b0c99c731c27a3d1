package handlers

import (
	"net/http"

	"amora_backend/internal/services"
	"amora_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewVerificationHandler(base *BaseHandler, verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		BaseHandler:         base,
		verificationService: verificationService,
	}
}

func (h *VerificationHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	upload := r.Group("/upload")
	upload.Use(auth)
	{
		upload.POST("/verification", h.Upload)
	}

	verifications := r.Group("/verifications")
	verifications.Use(auth)
	{
		verifications.GET("", h.ListMine)
	}
}

func (h *VerificationHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	header, err := c.FormFile("document")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("verification", "No file uploaded"))
		return
	}

	verificationType := c.PostForm("verification_type")
	if verificationType == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("verification", "Verification type is required"))
		return
	}

	result, err := h.verificationService.Upload(c.Request.Context(), db, userID, header, verificationType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *VerificationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	verifications, err := h.verificationService.ListMine(c.Request.Context(), db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifications)
}
