package dto

import (
	"time"

	"chatmint-studio/internal/core/domain"
)

// WalletChallengeRequest is the request body for a sign-in challenge.
type WalletChallengeRequest struct {
	Address string `json:"address" binding:"required,wallet_address"`
	ChainID int64  `json:"chain_id" binding:"required,gt=0"`
}

// WalletChallengeResponse carries the message the wallet must sign.
type WalletChallengeResponse struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// WalletVerifyRequest is the request body for signature verification.
type WalletVerifyRequest struct {
	Address   string `json:"address" binding:"required,wallet_address"`
	ChainID   int64  `json:"chain_id" binding:"required,gt=0"`
	Signature string `json:"signature" binding:"required,eth_signature"`
}

// WalletSessionResponse is the response body for a successful sign-in.
type WalletSessionResponse struct {
	Address string `json:"address"`
	Token   string `json:"token"`
	Expiry  int64  `json:"expiry"` // Unix timestamp
}

// PercentageInput is the raw text of the pending co-owner percentage.
type PercentageInput struct {
	Percentage string `json:"percentage" binding:"max=32"`
}

// WalletInput is the raw text of the pending co-owner wallet.
type WalletInput struct {
	WalletAddress string `json:"wallet_address" binding:"max=128"`
}

// CoOwnerResponse is one committed co-owner share.
type CoOwnerResponse struct {
	WalletAddress string `json:"wallet_address"`
	BasisPoints   int    `json:"basis_points"`
	Percent       string `json:"percent"`
}

// PendingResponse mirrors what the user has typed so far.
type PendingResponse struct {
	PercentageText    string  `json:"percentage_text"`
	WalletAddressText string  `json:"wallet_address_text"`
	ValidatedAddress  *string `json:"validated_address"`
}

// DraftResponse is the ownership builder state.
type DraftResponse struct {
	PrimaryOwner             string            `json:"primary_owner"`
	PrimaryOwnerSharePercent string            `json:"primary_owner_share_percent"`
	TotalCoOwnerPercent      string            `json:"total_co_owner_percent"`
	RemainingPercent         string            `json:"remaining_percent"`
	CoOwners                 []CoOwnerResponse `json:"co_owners"`
	Pending                  PendingResponse   `json:"pending"`
	IsFrozen                 bool              `json:"is_frozen"`
	UpdatedAt                *string           `json:"updated_at,omitempty"`
}

// NewDraftResponse flattens a draft for the dashboard.
func NewDraftResponse(d *domain.OwnershipDraft) DraftResponse {
	alloc := d.Allocation
	resp := DraftResponse{
		PrimaryOwner:             alloc.PrimaryOwner().String(),
		PrimaryOwnerSharePercent: domain.FormatBasisPoints(alloc.PrimaryOwnerBasisPoints()),
		TotalCoOwnerPercent:      domain.FormatBasisPoints(alloc.TotalCoOwnerBasisPoints()),
		RemainingPercent:         domain.FormatBasisPoints(alloc.RemainingBudget()),
		CoOwners:                 make([]CoOwnerResponse, 0, len(alloc.CoOwners())),
		Pending: PendingResponse{
			PercentageText:    d.Pending.PercentageText,
			WalletAddressText: d.Pending.WalletAddressText,
		},
		IsFrozen: alloc.IsFrozen(),
	}
	for _, s := range alloc.CoOwners() {
		resp.CoOwners = append(resp.CoOwners, CoOwnerResponse{
			WalletAddress: s.WalletAddress.String(),
			BasisPoints:   int(s.BasisPoints),
			Percent:       domain.FormatBasisPoints(s.BasisPoints),
		})
	}
	if d.Pending.ValidatedAddress != nil {
		v := d.Pending.ValidatedAddress.String()
		resp.Pending.ValidatedAddress = &v
	}
	if !d.UpdatedAt.IsZero() {
		ts := d.UpdatedAt.UTC().Format(time.RFC3339)
		resp.UpdatedAt = &ts
	}
	return resp
}

// RegistrationForm is the multipart form for a registration. The image is
// read separately from the "file" part.
type RegistrationForm struct {
	Name                  string `form:"name" binding:"max=200"`
	Creator               string `form:"creator" binding:"max=200"`
	Description           string `form:"description" binding:"max=5000"`
	Traits                string `form:"traits" binding:"max=1000"`
	MintLicenseTokens     bool   `form:"mint_license_tokens"`
	OwnershipAcknowledged bool   `form:"ownership_acknowledged"`
}

// RegistrationResponse is the response body for a completed registration.
type RegistrationResponse struct {
	Record      domain.AssetRecord `json:"record"`
	ImageURL    string             `json:"image_url"`
	MetadataURL string             `json:"metadata_url"`
	ExplorerURL string             `json:"explorer_url,omitempty"`
}

// GalleryResponse lists a wallet's registered assets, oldest first.
type GalleryResponse struct {
	Items []domain.AssetRecord `json:"items"`
	Total int                  `json:"total"`
}

// ChatRequest is the request body for an ideation prompt.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the model's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// AddressResponse reports whether an address is a usable wallet.
type AddressResponse struct {
	Valid   bool   `json:"valid"`
	Address string `json:"address,omitempty"`
}
