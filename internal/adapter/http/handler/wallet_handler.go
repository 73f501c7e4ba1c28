package handler

import (
	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/adapter/http/middleware"
	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"
	"chatmint-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet sign-in.
type WalletHandler struct {
	authSvc ports.WalletAuthService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(authSvc ports.WalletAuthService) *WalletHandler {
	return &WalletHandler{authSvc: authSvc}
}

// Challenge handles POST /api/v1/wallet/challenge.
func (h *WalletHandler) Challenge(c *gin.Context) {
	var req dto.WalletChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ch, err := h.authSvc.Challenge(c.Request.Context(), req.Address, req.ChainID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletChallengeResponse{
		Address:   ch.Address.String(),
		Message:   ch.Message,
		ExpiresAt: ch.ExpiresAt.Unix(),
	})
}

// Verify handles POST /api/v1/wallet/verify.
func (h *WalletHandler) Verify(c *gin.Context) {
	var req dto.WalletVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	session, err := h.authSvc.Verify(c.Request.Context(), ports.WalletVerifyRequest{
		Address:   req.Address,
		ChainID:   req.ChainID,
		Signature: req.Signature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// for the audit log
	c.Set(middleware.CtxWallet, session.Address)

	response.OK(c, dto.WalletSessionResponse{
		Address: session.Address.String(),
		Token:   session.Token,
		Expiry:  session.ExpiresAt.Unix(),
	})
}

// requireWallet returns the signed-in wallet or writes AUTH_003.
func requireWallet(c *gin.Context) (domain.WalletAddress, bool) {
	w, ok := middleware.Wallet(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return domain.WalletAddress{}, false
	}
	return w, true
}
