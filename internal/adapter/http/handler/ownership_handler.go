package handler

import (
	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"
	"chatmint-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// OwnershipHandler exposes the co-owner builder for the signed-in wallet.
type OwnershipHandler struct {
	builder ports.AllocationBuilder
}

// NewOwnershipHandler creates a new OwnershipHandler.
func NewOwnershipHandler(builder ports.AllocationBuilder) *OwnershipHandler {
	return &OwnershipHandler{builder: builder}
}

// GetDraft handles GET /api/v1/ownership/draft.
func (h *OwnershipHandler) GetDraft(c *gin.Context) {
	h.respond(c, func(w domain.WalletAddress) (*domain.OwnershipDraft, error) {
		return h.builder.GetDraft(c.Request.Context(), w)
	})
}

// SetPercentage handles PUT /api/v1/ownership/draft/percentage.
func (h *OwnershipHandler) SetPercentage(c *gin.Context) {
	var req dto.PercentageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	h.respond(c, func(w domain.WalletAddress) (*domain.OwnershipDraft, error) {
		return h.builder.SetDraftPercentage(c.Request.Context(), w, req.Percentage)
	})
}

// SetWallet handles PUT /api/v1/ownership/draft/wallet.
func (h *OwnershipHandler) SetWallet(c *gin.Context) {
	var req dto.WalletInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	h.respond(c, func(w domain.WalletAddress) (*domain.OwnershipDraft, error) {
		return h.builder.SetDraftWallet(c.Request.Context(), w, req.WalletAddress)
	})
}

// Commit handles POST /api/v1/ownership/draft/commit.
func (h *OwnershipHandler) Commit(c *gin.Context) {
	h.respond(c, func(w domain.WalletAddress) (*domain.OwnershipDraft, error) {
		return h.builder.CommitDraft(c.Request.Context(), w)
	})
}

// RemoveCoOwner handles DELETE /api/v1/ownership/draft/co-owners/:address.
func (h *OwnershipHandler) RemoveCoOwner(c *gin.Context) {
	h.respond(c, func(w domain.WalletAddress) (*domain.OwnershipDraft, error) {
		return h.builder.RemoveCoOwner(c.Request.Context(), w, c.Param("address"))
	})
}

// Discard handles DELETE /api/v1/ownership/draft and returns the fresh
// empty draft.
func (h *OwnershipHandler) Discard(c *gin.Context) {
	h.respond(c, func(w domain.WalletAddress) (*domain.OwnershipDraft, error) {
		if err := h.builder.Discard(c.Request.Context(), w); err != nil {
			return nil, err
		}
		return h.builder.GetDraft(c.Request.Context(), w)
	})
}

func (h *OwnershipHandler) respond(c *gin.Context, op func(domain.WalletAddress) (*domain.OwnershipDraft, error)) {
	wallet, ok := requireWallet(c)
	if !ok {
		return
	}
	draft, err := op(wallet)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDraftResponse(draft))
}
