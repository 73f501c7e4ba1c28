package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 10 << 20

// RegistrationConfig holds chain settings for registrations.
type RegistrationConfig struct {
	SPGNFTContract common.Address
	// Recipient receives the minted NFT. Zero means the primary owner.
	Recipient     common.Address
	MinBalanceWei *big.Int
	ExplorerURL   string
}

// RegistrationServiceImpl runs image upload, metadata publish, balance
// pre-flight and the registration transaction in order. No step is
// retried and nothing is rolled back; the draft is only cleared after the
// transaction is acknowledged.
type RegistrationServiceImpl struct {
	pinner    ports.ContentPinner
	balances  ports.BalanceChecker
	registrar ports.ChainRegistrar
	gallery   ports.GalleryRepository
	drafts    ports.DraftStore
	cfg       RegistrationConfig
	log       zerolog.Logger
	now       func() time.Time
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(
	pinner ports.ContentPinner,
	balances ports.BalanceChecker,
	registrar ports.ChainRegistrar,
	gallery ports.GalleryRepository,
	drafts ports.DraftStore,
	cfg RegistrationConfig,
	log zerolog.Logger,
) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		pinner:    pinner,
		balances:  balances,
		registrar: registrar,
		gallery:   gallery,
		drafts:    drafts,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Register validates the form, publishes content and registers the asset.
func (s *RegistrationServiceImpl) Register(ctx context.Context, req ports.RegisterAssetRequest) (*domain.RegistrationResult, error) {
	if err := validateMetadata(req.Metadata); err != nil {
		return nil, err
	}
	if s.cfg.SPGNFTContract == (common.Address{}) {
		return nil, apperror.ErrCollaboratorUnavailable("Story registration", fmt.Errorf("story.spg_nft_contract is not set"))
	}
	if s.registrar == nil {
		return nil, apperror.ErrCollaboratorUnavailable("Story registration", fmt.Errorf("no signing key configured"))
	}

	alloc, draftVersion, err := s.currentAllocation(ctx, req.Owner)
	if err != nil {
		return nil, err
	}
	if alloc.HasCoOwners() && !req.OwnershipAcknowledged {
		return nil, apperror.Validation("You must acknowledge the ownership terms before registering with co-owners")
	}

	regReq := AssembleRequest(req.Metadata, alloc)

	imageURI, err := s.pinner.PinFile(ctx, req.Metadata.ImageFilename, req.Metadata.Image)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", req.Owner.String()).Msg("image upload failed")
		return nil, OnRegistrationFailure(err)
	}

	doc := BuildMetadataDocument(regReq, imageURI)
	metadataURI, err := s.pinner.PinJSON(ctx, req.Metadata.Name, doc)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", req.Owner.String()).Msg("metadata upload failed")
		return nil, OnRegistrationFailure(err)
	}

	if err := s.checkBalance(ctx); err != nil {
		return nil, err
	}

	hash := crypto.Keccak256Hash([]byte(metadataURI))
	recipient := s.cfg.Recipient
	if recipient == (common.Address{}) {
		recipient = req.Owner.Common()
	}

	receipt, err := s.registrar.MintAndRegisterIP(ctx, domain.MintAndRegisterRequest{
		SPGNFTContract: s.cfg.SPGNFTContract,
		Recipient:      recipient,
		Metadata: domain.IPMetadata{
			IPMetadataURI:   metadataURI,
			IPMetadataHash:  hash,
			NFTMetadataURI:  metadataURI,
			NFTMetadataHash: hash,
		},
		AllowDuplicates: true,
	})
	if err != nil {
		s.log.Error().Err(err).Str("wallet", req.Owner.String()).Msg("registration transaction failed")
		return nil, OnRegistrationFailure(err)
	}
	if err := ValidateReceipt(receipt); err != nil {
		s.log.Error().Err(err).Str("wallet", req.Owner.String()).Msg("registrar acknowledgement rejected")
		return nil, err
	}

	record, _ := OnRegistrationSuccess(regReq, alloc, *receipt, imageURI, metadataURI, s.now())

	// The asset is on-chain at this point, so storage failures are logged
	// and the result is still returned.
	if err := s.gallery.Append(ctx, req.Owner, record); err != nil {
		s.log.Error().Err(err).Str("wallet", req.Owner.String()).Int64("asset", record.ID).Msg("failed to save registered asset to gallery")
	}
	s.clearDraft(ctx, req.Owner, draftVersion)

	s.log.Info().
		Str("wallet", req.Owner.String()).
		Str("ip_id", record.AssetID).
		Str("tx_hash", record.TransactionHash).
		Int("co_owners", len(alloc.CoOwners())).
		Msg("asset registered successfully")

	result := &domain.RegistrationResult{
		Record:      record,
		ImageURI:    imageURI,
		MetadataURI: metadataURI,
	}
	if s.cfg.ExplorerURL != "" {
		result.ExplorerURL = s.cfg.ExplorerURL + record.TransactionHash
	}
	return result, nil
}

// currentAllocation returns the allocation to register and the UpdatedAt
// of the draft it came from, or nil when the wallet had no draft.
func (s *RegistrationServiceImpl) currentAllocation(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipAllocation, *time.Time, error) {
	d, err := s.drafts.Get(ctx, owner)
	if err != nil {
		return nil, nil, apperror.ErrStorageError(err)
	}
	if d != nil && d.Allocation != nil && d.Allocation.PrimaryOwner().Equal(owner) {
		version := d.UpdatedAt
		return d.Allocation, &version, nil
	}
	alloc, err := domain.NewOwnershipAllocation(owner)
	return alloc, nil, err
}

// clearDraft deletes the draft that was registered. A draft edited while
// the transaction was in flight, or created after registration started, is
// kept.
func (s *RegistrationServiceImpl) clearDraft(ctx context.Context, owner domain.WalletAddress, version *time.Time) {
	if version == nil {
		return
	}
	current, err := s.drafts.Get(ctx, owner)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", owner.String()).Msg("failed to reload ownership draft")
		return
	}
	if current == nil {
		return
	}
	if !current.UpdatedAt.Equal(*version) {
		s.log.Info().Str("wallet", owner.String()).Msg("ownership draft changed during registration, keeping it")
		return
	}
	if err := s.drafts.Delete(ctx, owner); err != nil {
		s.log.Warn().Err(err).Str("wallet", owner.String()).Msg("failed to clear ownership draft")
	}
}

// checkBalance is best-effort: a failed lookup is logged and the
// registration continues.
func (s *RegistrationServiceImpl) checkBalance(ctx context.Context) error {
	if s.balances == nil || s.cfg.MinBalanceWei == nil || s.cfg.MinBalanceWei.Sign() <= 0 {
		return nil
	}
	signer := s.registrar.Signer()
	balance, err := s.balances.BalanceAt(ctx, signer)
	if err != nil {
		s.log.Warn().Err(err).Str("signer", signer.Hex()).Msg("could not check signer balance")
		return nil
	}
	if balance.Cmp(s.cfg.MinBalanceWei) >= 0 {
		return nil
	}

	shortfall := new(big.Int).Sub(s.cfg.MinBalanceWei, balance)
	s.log.Warn().
		Str("signer", signer.Hex()).
		Str("balance", FormatEther(balance)).
		Str("required", FormatEther(s.cfg.MinBalanceWei)).
		Msg("signer balance below minimum")
	return apperror.ErrInsufficientFunds(FormatEther(shortfall))
}

// FormatEther renders wei as an ETH amount, e.g. 500000000000000 -> "0.0005 ETH".
func FormatEther(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -18).String() + " ETH"
}

func validateMetadata(m domain.AssetMetadata) error {
	switch {
	case len(m.Image) == 0:
		return apperror.Validation("Please select an image")
	case !strings.HasPrefix(m.ImageContentType, "image/"):
		return apperror.Validation("Please select an image file")
	case len(m.Image) > MaxImageSize:
		return apperror.Validation("Image size must be less than 10MB")
	case strings.TrimSpace(m.Name) == "":
		return apperror.Validation("Please enter a name")
	case strings.TrimSpace(m.Creator) == "":
		return apperror.Validation("Please enter the creator")
	case strings.TrimSpace(m.Description) == "":
		return apperror.Validation("Please enter a description")
	}
	return nil
}
