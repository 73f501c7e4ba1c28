package service

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/pkg/apperror"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// AssembleRequest packages metadata and the current allocation for the
// registration collaborators. It has no side effects. The ownership block
// is only present when the allocation has co-owners.
func AssembleRequest(meta domain.AssetMetadata, alloc *domain.OwnershipAllocation) domain.RegistrationRequest {
	total := alloc.TotalCoOwnerBasisPoints()
	req := domain.RegistrationRequest{
		Metadata:                 meta,
		PrimaryOwner:             alloc.PrimaryOwner(),
		PrimaryOwnerSharePercent: domain.PrimaryOwnerSharePercent(total),
	}
	if !alloc.HasCoOwners() {
		return req
	}

	block := &domain.OwnershipBlock{
		IsFrozen:                  true,
		TotalOwnershipBasisPoints: int(total),
	}
	for _, s := range alloc.CoOwners() {
		block.Ownerships = append(block.Ownerships, domain.OwnershipBlockEntry{
			WalletAddress:                  s.WalletAddress.String(),
			OwnershipPercentageBasisPoints: int(s.BasisPoints),
		})
	}
	req.Ownership = block
	return req
}

// BuildMetadataDocument is the JSON published as IP and NFT metadata.
func BuildMetadataDocument(req domain.RegistrationRequest, imageURI string) domain.MetadataDocument {
	primary := req.PrimaryOwner.String()
	traits := req.Metadata.Traits
	if traits == nil {
		traits = []string{}
	}
	return domain.MetadataDocument{
		Name:               req.Metadata.Name,
		Description:        req.Metadata.Description,
		Image:              imageURI,
		Creator:            req.Metadata.Creator,
		SharePercent:       req.PrimaryOwnerSharePercent,
		Traits:             traits,
		MintLicenseTokens:  req.Metadata.MintLicenseTokens,
		PrimaryOwnerWallet: &primary,
		OwnershipData:      req.Ownership,
	}
}

// ValidateReceipt checks the registrar's acknowledgement before anything is
// frozen: the asset id must be a non-zero address and the transaction hash
// a 32-byte hex string.
func ValidateReceipt(receipt *domain.RegistrationReceipt) error {
	if receipt == nil {
		return apperror.ErrInvalidAcknowledgement("empty response")
	}
	if _, err := domain.ParseWalletAddress(receipt.AssetID); err != nil {
		return apperror.ErrInvalidAcknowledgement("asset id is not a valid address")
	}
	if !txHashPattern.MatchString(receipt.TransactionHash) {
		return apperror.ErrInvalidAcknowledgement("transaction hash is malformed")
	}
	return nil
}

// OnRegistrationSuccess freezes a copy of the allocation and builds the
// gallery record. This is the only place an allocation is frozen.
func OnRegistrationSuccess(
	req domain.RegistrationRequest,
	alloc *domain.OwnershipAllocation,
	receipt domain.RegistrationReceipt,
	imageURI, metadataURI string,
	now time.Time,
) (domain.AssetRecord, *domain.OwnershipAllocation) {
	frozen := alloc.Clone()
	frozen.Freeze()

	assetID := receipt.AssetID
	if addr, err := domain.ParseWalletAddress(assetID); err == nil {
		assetID = addr.String()
	}

	traits := req.Metadata.Traits
	if traits == nil {
		traits = []string{}
	}

	record := domain.AssetRecord{
		ID:                       domain.NewAssetID(now),
		Image:                    imageURI,
		Name:                     req.Metadata.Name,
		Description:              req.Metadata.Description,
		Traits:                   traits,
		Creator:                  req.Metadata.Creator,
		PrimaryOwnerSharePercent: req.PrimaryOwnerSharePercent,
		MetadataURI:              metadataURI,
		AssetID:                  assetID,
		TransactionHash:          receipt.TransactionHash,
	}
	if frozen.HasCoOwners() {
		record.Ownership = frozen
	}
	return record, frozen
}

// OnRegistrationFailure classifies a collaborator error. The allocation is
// not touched and no record is produced. Errors that are already
// classified pass through unchanged.
func OnRegistrationFailure(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"), strings.Contains(msg, "exceeds the balance"):
		return apperror.ErrInsufficientFunds("")
	case isNetworkError(err), strings.Contains(msg, "network"), strings.Contains(msg, "fetch failed"):
		return apperror.ErrNetwork(err)
	}
	return apperror.ErrRegistrationFailed(err)
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
