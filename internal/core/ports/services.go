package ports

import (
	"context"
	"math/big"
	"time"

	"chatmint-studio/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

// --- Collaborator Ports (outbound) ---

// ContentPinner publishes content to IPFS and returns a gateway URI.
type ContentPinner interface {
	PinFile(ctx context.Context, filename string, data []byte) (string, error)
	PinJSON(ctx context.Context, name string, document any) (string, error)
}

// BalanceChecker reads an account's native balance in wei.
type BalanceChecker interface {
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}

// ChainRegistrar submits the mint-and-register transaction.
type ChainRegistrar interface {
	// Signer is the account paying for gas.
	Signer() common.Address
	MintAndRegisterIP(ctx context.Context, req domain.MintAndRegisterRequest) (*domain.RegistrationReceipt, error)
}

// ChatModel produces one reply for a prompt.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenService handles wallet session JWTs.
type TokenService interface {
	Generate(wallet domain.WalletAddress, chainID int64) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Wallet  domain.WalletAddress
	ChainID int64
}

// --- Service Ports (Business Logic) ---

// AllocationBuilder edits a wallet's ownership draft.
type AllocationBuilder interface {
	GetDraft(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error)
	SetDraftPercentage(ctx context.Context, owner domain.WalletAddress, text string) (*domain.OwnershipDraft, error)
	SetDraftWallet(ctx context.Context, owner domain.WalletAddress, text string) (*domain.OwnershipDraft, error)
	CommitDraft(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error)
	RemoveCoOwner(ctx context.Context, owner domain.WalletAddress, address string) (*domain.OwnershipDraft, error)
	Discard(ctx context.Context, owner domain.WalletAddress) error
}

// RegistrationService runs the full registration flow.
type RegistrationService interface {
	Register(ctx context.Context, req RegisterAssetRequest) (*domain.RegistrationResult, error)
}

// RegisterAssetRequest holds validated form input for a registration.
type RegisterAssetRequest struct {
	Owner                 domain.WalletAddress
	Metadata              domain.AssetMetadata
	OwnershipAcknowledged bool
}

// GalleryService lists and deletes a wallet's assets.
type GalleryService interface {
	List(ctx context.Context, owner domain.WalletAddress) ([]domain.AssetRecord, error)
	Delete(ctx context.Context, owner domain.WalletAddress, id int64) error
}

// ChatService answers ideation prompts.
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}

// WalletAuthService signs wallets in with a one-time challenge.
type WalletAuthService interface {
	Challenge(ctx context.Context, address string, chainID int64) (*WalletChallenge, error)
	Verify(ctx context.Context, req WalletVerifyRequest) (*WalletSession, error)
}

// WalletChallenge is the message the wallet must personal_sign.
type WalletChallenge struct {
	Address   domain.WalletAddress
	Message   string
	ExpiresAt time.Time
}

type WalletVerifyRequest struct {
	Address   string
	ChainID   int64
	Signature string
}

type WalletSession struct {
	Address   domain.WalletAddress
	Token     string
	ExpiresAt time.Time
}

// AuditService records audit events.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
