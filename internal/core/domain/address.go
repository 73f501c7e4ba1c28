package domain

import (
	"fmt"
	"strings"

	"chatmint-studio/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
)

// WalletAddress is a validated, non-zero 20-byte account identifier. Its
// string form is always the EIP-55 checksummed 0x-hex encoding.
type WalletAddress struct {
	addr common.Address
}

// ParseWalletAddress trims raw and validates it as a wallet address.
// All-lowercase and all-uppercase hex bodies are accepted and re-emitted in
// checksum casing; mixed-case input must already match its checksum.
func ParseWalletAddress(raw string) (WalletAddress, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return WalletAddress{}, apperror.ErrInvalidAddress()
	}
	if len(s) != 2+2*common.AddressLength || s[:2] != "0x" || !isHex(s[2:]) {
		return WalletAddress{}, apperror.ErrInvalidAddress()
	}

	addr := common.HexToAddress(s)
	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex() != s {
		return WalletAddress{}, apperror.ErrInvalidAddress()
	}
	if addr == (common.Address{}) {
		return WalletAddress{}, apperror.ErrInvalidAddress()
	}
	return WalletAddress{addr: addr}, nil
}

// WalletAddressFromCommon wraps an address recovered from a signature or a
// chain log. The zero address is rejected.
func WalletAddressFromCommon(addr common.Address) (WalletAddress, error) {
	if addr == (common.Address{}) {
		return WalletAddress{}, apperror.ErrInvalidAddress()
	}
	return WalletAddress{addr: addr}, nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// String returns the checksummed form.
func (a WalletAddress) String() string {
	return a.addr.Hex()
}

// Common returns the go-ethereum address.
func (a WalletAddress) Common() common.Address {
	return a.addr
}

// IsZero reports whether a is the unset value.
func (a WalletAddress) IsZero() bool {
	return a.addr == common.Address{}
}

// Equal compares addresses byte-wise, so casing never matters.
func (a WalletAddress) Equal(b WalletAddress) bool {
	return a.addr == b.addr
}

// Short renders 0x1234...abcd for log lines and user messages.
func (a WalletAddress) Short() string {
	h := a.addr.Hex()
	return h[:6] + "..." + h[len(h)-4:]
}

func (a WalletAddress) MarshalText() ([]byte, error) {
	return []byte(a.addr.Hex()), nil
}

func (a *WalletAddress) UnmarshalText(text []byte) error {
	parsed, err := ParseWalletAddress(string(text))
	if err != nil {
		return fmt.Errorf("wallet address %q: %w", string(text), err)
	}
	*a = parsed
	return nil
}
