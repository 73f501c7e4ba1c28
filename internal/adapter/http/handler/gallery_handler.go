package handler

import (
	"strconv"

	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"
	"chatmint-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// GalleryHandler serves the signed-in wallet's registered assets.
type GalleryHandler struct {
	svc ports.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(svc ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// List handles GET /api/v1/gallery.
func (h *GalleryHandler) List(c *gin.Context) {
	wallet, ok := requireWallet(c)
	if !ok {
		return
	}

	items, err := h.svc.List(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.GalleryResponse{Items: items, Total: len(items)})
}

// Delete handles DELETE /api/v1/gallery/:id.
func (h *GalleryHandler) Delete(c *gin.Context) {
	wallet, ok := requireWallet(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("Invalid asset id"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), wallet, id); err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.svc.List(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.GalleryResponse{Items: items, Total: len(items)})
}
