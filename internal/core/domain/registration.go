package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// OwnershipBlock is the frozen split embedded in pinned metadata.
type OwnershipBlock struct {
	IsFrozen                  bool                  `json:"is_frozen"`
	TotalOwnershipBasisPoints int                   `json:"total_ownership_basis_points"`
	Ownerships                []OwnershipBlockEntry `json:"ownerships"`
}

type OwnershipBlockEntry struct {
	WalletAddress                  string `json:"wallet_address"`
	OwnershipPercentageBasisPoints int    `json:"ownership_percentage_basis_points"`
}

// RegistrationRequest is everything the registration collaborators need,
// assembled before any of them is called.
type RegistrationRequest struct {
	Metadata                 AssetMetadata
	PrimaryOwner             WalletAddress
	PrimaryOwnerSharePercent string
	Ownership                *OwnershipBlock // nil when there are no co-owners
}

// MetadataDocument is the JSON pinned as the IP and NFT metadata.
type MetadataDocument struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Image              string          `json:"image"`
	Creator            string          `json:"creator"`
	SharePercent       string          `json:"share_percent"`
	Traits             []string        `json:"traits"`
	MintLicenseTokens  bool            `json:"mint_license_tokens"`
	PrimaryOwnerWallet *string         `json:"primary_owner_wallet"`
	OwnershipData      *OwnershipBlock `json:"ownership_data"`
}

// IPMetadata carries the metadata URIs and their keccak256 hashes.
type IPMetadata struct {
	IPMetadataURI   string
	IPMetadataHash  common.Hash
	NFTMetadataURI  string
	NFTMetadataHash common.Hash
}

// MintAndRegisterRequest is the on-chain registration call.
type MintAndRegisterRequest struct {
	SPGNFTContract  common.Address
	Recipient       common.Address
	Metadata        IPMetadata
	AllowDuplicates bool
}

// RegistrationReceipt is the registrar's acknowledgement, unvalidated.
type RegistrationReceipt struct {
	AssetID         string
	TransactionHash string
}

// RegistrationResult is returned to the caller after a successful
// registration.
type RegistrationResult struct {
	Record      AssetRecord `json:"record"`
	ImageURI    string      `json:"imageUrl"`
	MetadataURI string      `json:"metadataUrl"`
	ExplorerURL string      `json:"explorerUrl,omitempty"`
}
