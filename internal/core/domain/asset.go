package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedGallery means persisted gallery data could not be decoded.
// Stores log it and fall back to an empty collection.
var ErrMalformedGallery = errors.New("malformed gallery data")

// AssetRecord is a registered asset as kept in a wallet's gallery. It is
// created once after a successful registration and never mutated.
type AssetRecord struct {
	ID                       int64                `json:"id"` // unix millis at creation
	Image                    string               `json:"image"`
	Name                     string               `json:"name"`
	Description              string               `json:"description"`
	Traits                   []string             `json:"traits"`
	Creator                  string               `json:"creator"`
	PrimaryOwnerSharePercent string               `json:"share"`
	MetadataURI              string               `json:"metadataUrl"`
	AssetID                  string               `json:"ipId"`
	TransactionHash          string               `json:"txHash"`
	Ownership                *OwnershipAllocation `json:"ownership,omitempty"`
}

// AssetMetadata is the user-supplied part of a registration.
type AssetMetadata struct {
	Name              string
	Description       string
	Creator           string
	Traits            []string
	MintLicenseTokens bool
	ImageFilename     string
	ImageContentType  string
	Image             []byte
}

// SplitTraits splits comma-separated traits and trims each entry.
// Empty input yields a single empty trait, matching what the dashboard
// has always stored.
func SplitTraits(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// NewAssetID returns the millisecond timestamp used as a record id.
func NewAssetID(now time.Time) int64 {
	return now.UnixMilli()
}

// EncodeGallery serialises records as a JSON array. A nil slice is written
// as [] so the stored value is always an array.
func EncodeGallery(records []AssetRecord) ([]byte, error) {
	if records == nil {
		records = []AssetRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding gallery: %w", err)
	}
	return data, nil
}

// DecodeGallery parses a stored JSON array. Empty input is an empty
// gallery; anything unparsable wraps ErrMalformedGallery.
func DecodeGallery(data []byte) ([]AssetRecord, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []AssetRecord{}, nil
	}
	var records []AssetRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGallery, err)
	}
	if records == nil {
		records = []AssetRecord{}
	}
	return records, nil
}

// RemoveAsset drops the first record with id. The bool reports whether
// anything was removed.
func RemoveAsset(records []AssetRecord, id int64) ([]AssetRecord, bool) {
	for i, r := range records {
		if r.ID == id {
			out := make([]AssetRecord, 0, len(records)-1)
			out = append(out, records[:i]...)
			return append(out, records[i+1:]...), true
		}
	}
	return records, false
}
