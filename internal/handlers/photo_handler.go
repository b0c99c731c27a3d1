package handlers

import (
	"net/http"
	"strconv"

	"amora_backend/internal/services"
	"amora_backend/internal/services/dto"
	"amora_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	*BaseHandler
	photoService services.PhotoService
}

func NewPhotoHandler(base *BaseHandler, photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		BaseHandler:  base,
		photoService: photoService,
	}
}

func (h *PhotoHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	upload := r.Group("/upload")
	upload.Use(auth)
	{
		upload.POST("/profile-photo", h.Upload)
	}

	photos := r.Group("/profile-photos")
	photos.Use(auth)
	{
		photos.GET("", h.ListMine)
		photos.DELETE("/:photoId", h.Delete)
	}
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	header, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("photo", "No file uploaded"))
		return
	}

	opts := dto.PhotoUploadOptions{
		IsProfile: c.PostForm("is_profile") == "true",
	}
	if position, err := strconv.Atoi(c.PostForm("order")); err == nil {
		opts.Position = position
	}

	result, err := h.photoService.Upload(c.Request.Context(), db, userID, header, opts)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PhotoHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	photos, err := h.photoService.ListMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, photos)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	photoID := c.Param("photoId")

	if err := h.photoService.Delete(c.Request.Context(), db, userID, photoID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Photo deleted successfully"})
}
