package service

import (
	"errors"
	"fmt"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionLeeway absorbs clock drift between replicas.
const sessionLeeway = 30 * time.Second

// sessionClaims is the payload of a wallet session token. The subject is
// the checksummed wallet address.
type sessionClaims struct {
	ChainID int64 `json:"chain_id"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256 session tokens for signed-in wallets.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	parser *jwt.Parser
	now    func() time.Time
}

func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(sessionLeeway),
		),
		now: time.Now,
	}
}

// Generate signs a session token for a verified wallet. Each token carries
// a unique id so sessions can be told apart in logs.
func (s *JWTTokenService) Generate(wallet domain.WalletAddress, chainID int64) (string, time.Time, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.expiry)

	claims := sessionClaims{
		ChainID: chainID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   wallet.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate checks the signature, issuer and lifetime of a session token and
// returns the wallet it was issued to.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims sessionClaims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("session expired: %w", err)
	case err != nil:
		return nil, fmt.Errorf("parsing session token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("session token has no subject")
	}
	wallet, err := domain.ParseWalletAddress(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("session subject: %w", err)
	}

	return &ports.TokenClaims{Wallet: wallet, ChainID: claims.ChainID}, nil
}
