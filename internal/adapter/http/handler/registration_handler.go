package handler

import (
	"io"
	"net/http"

	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/adapter/http/middleware"
	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"
	"chatmint-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles IP asset registration.
type RegistrationHandler struct {
	svc ports.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(svc ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Register handles POST /api/v1/registrations (multipart/form-data).
func (h *RegistrationHandler) Register(c *gin.Context) {
	wallet, ok := requireWallet(c)
	if !ok {
		return
	}

	var form dto.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&form)

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("Please select an image"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, apperror.Validation("Could not read the uploaded image"))
		return
	}
	defer f.Close()
	image, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, apperror.Validation("Could not read the uploaded image"))
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(image)
	}

	result, err := h.svc.Register(c.Request.Context(), ports.RegisterAssetRequest{
		Owner: wallet,
		Metadata: domain.AssetMetadata{
			Name:              form.Name,
			Description:       form.Description,
			Creator:           form.Creator,
			Traits:            domain.SplitTraits(form.Traits),
			MintLicenseTokens: form.MintLicenseTokens,
			ImageFilename:     fh.Filename,
			ImageContentType:  contentType,
			Image:             image,
		},
		OwnershipAcknowledged: form.OwnershipAcknowledged,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, result.Record.AssetID)

	response.Created(c, dto.RegistrationResponse{
		Record:      result.Record,
		ImageURL:    result.ImageURI,
		MetadataURL: result.MetadataURI,
		ExplorerURL: result.ExplorerURL,
	})
}
