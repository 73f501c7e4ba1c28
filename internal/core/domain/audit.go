package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionWalletLogin   AuditAction = "WALLET_LOGIN"
	AuditActionRegisterAsset AuditAction = "REGISTER_ASSET"
	AuditActionDeleteAsset   AuditAction = "DELETE_ASSET"
	AuditActionCommitShare   AuditAction = "COMMIT_SHARE"
	AuditActionRemoveShare   AuditAction = "REMOVE_SHARE"
	AuditActionDiscardDraft  AuditAction = "DISCARD_DRAFT"
)

// AuditLog records a single audited action.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Wallet       string      `json:"wallet,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
