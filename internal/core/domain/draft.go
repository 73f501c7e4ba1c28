package domain

import "time"

// DraftCoOwner is the co-owner entry being typed in but not yet committed.
// Raw text and the parsed address are kept apart so the user sees exactly
// what they typed while the builder only trusts the validated value.
type DraftCoOwner struct {
	PercentageText    string         `json:"percentageText"`
	WalletAddressText string         `json:"walletAddressText"`
	ValidatedAddress  *WalletAddress `json:"validatedAddress"`
}

// IsEmpty reports whether nothing has been typed.
func (d DraftCoOwner) IsEmpty() bool {
	return d.PercentageText == "" && d.WalletAddressText == ""
}

// OwnershipDraft is a wallet's in-progress allocation plus its pending
// co-owner entry. It is session state only and never part of a record.
type OwnershipDraft struct {
	Allocation *OwnershipAllocation `json:"allocation"`
	Pending    DraftCoOwner         `json:"pending"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}
