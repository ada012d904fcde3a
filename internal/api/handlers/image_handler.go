package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/application"
)

type ImageHandler struct {
	svc *application.ImageService
}

func NewImageHandler(svc *application.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// ServeImage godoc
// @Summary Stream a ticket image
// @Tags images
// @Produce octet-stream
// @Security BearerAuth
// @Param key path string true "Object key, e.g. tickets/<uuid>.png"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse "Image not found"
// @Router /images/{key} [get]
func (h *ImageHandler) ServeImage(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	rc, info, err := h.svc.Open(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Cache-Control", "private, max-age=86400")
	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, rc, nil)
}
