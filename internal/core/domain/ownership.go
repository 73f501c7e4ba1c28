package domain

import (
	"encoding/json"
	"fmt"

	"chatmint-studio/pkg/apperror"
)

// BasisPoints expresses a share of ownership in hundredths of a percent.
type BasisPoints int

// MaxBasisPoints is 100%.
const MaxBasisPoints BasisPoints = 10000

// Percent renders bps as a two-decimal percentage string, e.g. 4450 -> "44.50".
func (b BasisPoints) Percent() string {
	return FormatBasisPoints(b)
}

// OwnershipShare is one co-owner's slice of an asset.
type OwnershipShare struct {
	WalletAddress WalletAddress `json:"walletAddress"`
	BasisPoints   BasisPoints   `json:"ownershipPercentage"`
}

// OwnershipAllocation splits 100% of an asset between a primary owner and
// an ordered list of co-owners. The primary owner's share is always the
// remainder and is never stored. Once frozen the allocation is read-only.
type OwnershipAllocation struct {
	primary  WalletAddress
	coOwners []OwnershipShare
	frozen   bool
}

// NewOwnershipAllocation starts an empty, unfrozen allocation.
func NewOwnershipAllocation(primary WalletAddress) (*OwnershipAllocation, error) {
	if primary.IsZero() {
		return nil, apperror.ErrInvalidAddress()
	}
	return &OwnershipAllocation{primary: primary}, nil
}

// PrimaryOwner returns the wallet that holds the remainder.
func (a *OwnershipAllocation) PrimaryOwner() WalletAddress {
	return a.primary
}

// AddShare appends a co-owner. Checks run in a fixed order and the first
// failure wins; on any error the allocation is unchanged.
func (a *OwnershipAllocation) AddShare(addr WalletAddress, bps BasisPoints) error {
	if a.frozen {
		return apperror.ErrAllocationFrozen()
	}
	if bps < 1 || bps > MaxBasisPoints {
		return apperror.ErrPercentageOutOfRange()
	}
	if addr.IsZero() {
		return apperror.ErrInvalidAddress()
	}
	if a.indexOf(addr) >= 0 {
		return apperror.ErrDuplicateAddress()
	}
	if addr.Equal(a.primary) {
		return apperror.ErrSameAsPrimaryOwner()
	}
	if a.TotalCoOwnerBasisPoints()+bps > MaxBasisPoints {
		return apperror.ErrBudgetExceeded()
	}

	a.coOwners = append(a.coOwners, OwnershipShare{WalletAddress: addr, BasisPoints: bps})
	return nil
}

// RemoveShare drops the co-owner holding addr. Removing an absent address
// is a no-op.
func (a *OwnershipAllocation) RemoveShare(addr WalletAddress) error {
	if a.frozen {
		return apperror.ErrAllocationFrozen()
	}
	i := a.indexOf(addr)
	if i < 0 {
		return nil
	}
	a.coOwners = append(a.coOwners[:i:i], a.coOwners[i+1:]...)
	return nil
}

// Freeze makes the allocation read-only. Calling it twice is harmless.
func (a *OwnershipAllocation) Freeze() {
	a.frozen = true
}

func (a *OwnershipAllocation) IsFrozen() bool {
	return a.frozen
}

func (a *OwnershipAllocation) TotalCoOwnerBasisPoints() BasisPoints {
	var total BasisPoints
	for _, s := range a.coOwners {
		total += s.BasisPoints
	}
	return total
}

// RemainingBudget is what a further co-owner could still receive.
func (a *OwnershipAllocation) RemainingBudget() BasisPoints {
	return MaxBasisPoints - a.TotalCoOwnerBasisPoints()
}

// PrimaryOwnerBasisPoints is derived from the co-owner total.
func (a *OwnershipAllocation) PrimaryOwnerBasisPoints() BasisPoints {
	return a.RemainingBudget()
}

// HasCoOwners reports whether any share has been added.
func (a *OwnershipAllocation) HasCoOwners() bool {
	return len(a.coOwners) > 0
}

// CoOwners returns a copy of the shares in insertion order.
func (a *OwnershipAllocation) CoOwners() []OwnershipShare {
	out := make([]OwnershipShare, len(a.coOwners))
	copy(out, a.coOwners)
	return out
}

// Clone returns an independent copy, frozen state included.
func (a *OwnershipAllocation) Clone() *OwnershipAllocation {
	return &OwnershipAllocation{
		primary:  a.primary,
		coOwners: a.CoOwners(),
		frozen:   a.frozen,
	}
}

func (a *OwnershipAllocation) indexOf(addr WalletAddress) int {
	for i, s := range a.coOwners {
		if s.WalletAddress.Equal(addr) {
			return i
		}
	}
	return -1
}

// ownershipWire is the persisted and transmitted shape.
type ownershipWire struct {
	PrimaryOwnerWallet string           `json:"primaryOwnerWallet"`
	IsFrozen           bool             `json:"isFrozen"`
	Ownerships         []ownershipEntry `json:"ownerships"`
}

type ownershipEntry struct {
	WalletAddress       string `json:"walletAddress"`
	OwnershipPercentage int    `json:"ownershipPercentage"`
}

func (a *OwnershipAllocation) MarshalJSON() ([]byte, error) {
	w := ownershipWire{
		PrimaryOwnerWallet: a.primary.String(),
		IsFrozen:           a.frozen,
		Ownerships:         make([]ownershipEntry, 0, len(a.coOwners)),
	}
	for _, s := range a.coOwners {
		w.Ownerships = append(w.Ownerships, ownershipEntry{
			WalletAddress:       s.WalletAddress.String(),
			OwnershipPercentage: int(s.BasisPoints),
		})
	}
	return json.Marshal(w)
}

// UnmarshalJSON rebuilds the allocation through AddShare, so data that
// breaks any allocation rule is rejected rather than trusted.
func (a *OwnershipAllocation) UnmarshalJSON(data []byte) error {
	var w ownershipWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding ownership: %w", err)
	}

	primary, err := ParseWalletAddress(w.PrimaryOwnerWallet)
	if err != nil {
		return fmt.Errorf("primary owner %q: %w", w.PrimaryOwnerWallet, err)
	}

	rebuilt := &OwnershipAllocation{primary: primary}
	for i, e := range w.Ownerships {
		addr, err := ParseWalletAddress(e.WalletAddress)
		if err != nil {
			return fmt.Errorf("ownership %d: %w", i, err)
		}
		if err := rebuilt.AddShare(addr, BasisPoints(e.OwnershipPercentage)); err != nil {
			return fmt.Errorf("ownership %d: %w", i, err)
		}
	}
	rebuilt.frozen = w.IsFrozen

	*a = *rebuilt
	return nil
}
