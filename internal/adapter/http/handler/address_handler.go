package handler

import (
	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/core/domain"
	"chatmint-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// ValidateAddress handles GET /api/v1/addresses/:address.
func ValidateAddress(c *gin.Context) {
	w, err := domain.ParseWalletAddress(c.Param("address"))
	if err != nil {
		response.OK(c, dto.AddressResponse{Valid: false})
		return
	}
	response.OK(c, dto.AddressResponse{Valid: true, Address: w.String()})
}
