package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletAuthServiceImpl signs wallets in with an EIP-191 personal_sign
// challenge and issues a session token.
type WalletAuthServiceImpl struct {
	challenges      ports.ChallengeStore
	tokens          ports.TokenService
	challengeTTL    time.Duration
	expectedChainID int64
	log             zerolog.Logger
	now             func() time.Time
}

// NewWalletAuthService creates a new wallet auth service.
func NewWalletAuthService(
	challenges ports.ChallengeStore,
	tokens ports.TokenService,
	challengeTTL time.Duration,
	expectedChainID int64,
	log zerolog.Logger,
) *WalletAuthServiceImpl {
	return &WalletAuthServiceImpl{
		challenges:      challenges,
		tokens:          tokens,
		challengeTTL:    challengeTTL,
		expectedChainID: expectedChainID,
		log:             log,
		now:             time.Now,
	}
}

// Challenge issues a one-time message for the wallet to sign. A chain id
// other than the expected network is allowed but logged.
func (s *WalletAuthServiceImpl) Challenge(ctx context.Context, address string, chainID int64) (*ports.WalletChallenge, error) {
	wallet, err := domain.ParseWalletAddress(address)
	if err != nil {
		return nil, err
	}
	s.warnOnChain(wallet, chainID)

	now := s.now().UTC()
	message := ChallengeMessage(wallet, chainID, uuid.NewString(), now)
	if err := s.challenges.Save(ctx, wallet, message, s.challengeTTL); err != nil {
		return nil, apperror.ErrStorageError(err)
	}

	return &ports.WalletChallenge{
		Address:   wallet,
		Message:   message,
		ExpiresAt: now.Add(s.challengeTTL),
	}, nil
}

// Verify consumes the wallet's challenge and checks the signature against
// it. A challenge can be used once, whether or not verification succeeds.
func (s *WalletAuthServiceImpl) Verify(ctx context.Context, req ports.WalletVerifyRequest) (*ports.WalletSession, error) {
	wallet, err := domain.ParseWalletAddress(req.Address)
	if err != nil {
		return nil, err
	}

	message, err := s.challenges.Consume(ctx, wallet)
	if err != nil {
		return nil, apperror.ErrStorageError(err)
	}
	if message == "" {
		return nil, apperror.ErrChallengeExpired()
	}

	signer, err := RecoverPersonalSigner(message, req.Signature)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet.String()).Msg("signature recovery failed")
		return nil, apperror.ErrInvalidSignature()
	}
	if signer != wallet.Common() {
		s.log.Warn().Str("wallet", wallet.String()).Str("signer", signer.Hex()).Msg("signature does not match wallet")
		return nil, apperror.ErrInvalidSignature()
	}

	// The session carries the chain id the wallet signed, not the one it
	// reports now.
	chainID, ok := ChallengeChainID(message)
	if !ok {
		s.log.Warn().Str("wallet", wallet.String()).Msg("stored challenge has no chain id")
		return nil, apperror.ErrChallengeExpired()
	}
	if req.ChainID != 0 && req.ChainID != chainID {
		s.log.Warn().
			Str("wallet", wallet.String()).
			Int64("signed_chain_id", chainID).
			Int64("reported_chain_id", req.ChainID).
			Msg("wallet reported a different chain than it signed")
	}
	s.warnOnChain(wallet, chainID)

	token, expiresAt, err := s.tokens.Generate(wallet, chainID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().Str("wallet", wallet.String()).Int64("chain_id", chainID).Msg("wallet signed in")

	return &ports.WalletSession{
		Address:   wallet,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *WalletAuthServiceImpl) warnOnChain(wallet domain.WalletAddress, chainID int64) {
	if s.expectedChainID != 0 && chainID != s.expectedChainID {
		s.log.Warn().
			Str("wallet", wallet.String()).
			Int64("chain_id", chainID).
			Int64("expected_chain_id", s.expectedChainID).
			Msg("wallet connected to unexpected network")
	}
}

const challengeChainPrefix = "Chain ID: "

// ChallengeMessage is the text a wallet signs to sign in.
func ChallengeMessage(wallet domain.WalletAddress, chainID int64, nonce string, issuedAt time.Time) string {
	return fmt.Sprintf(
		"Sign in to ChatMint Studio\n\nWallet: %s\n"+challengeChainPrefix+"%d\nNonce: %s\nIssued At: %s",
		wallet.String(), chainID, nonce, issuedAt.Format(time.RFC3339),
	)
}

// ChallengeChainID reads the chain id line back out of a ChallengeMessage.
func ChallengeChainID(message string) (int64, bool) {
	for _, line := range strings.Split(message, "\n") {
		v, found := strings.CutPrefix(line, challengeChainPrefix)
		if !found {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return id, err == nil
	}
	return 0, false
}

// RecoverPersonalSigner returns the address that produced an EIP-191
// personal_sign signature over message. Both v=0/1 and v=27/28 are accepted.
func RecoverPersonalSigner(message, signatureHex string) (common.Address, error) {
	sig, err := hexutil.Decode(signatureHex)
	if err != nil {
		return common.Address{}, fmt.Errorf("decoding signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recovering public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
