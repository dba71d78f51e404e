package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateLegacy   AuditAction = "CREATE_LEGACY"
	AuditActionSetSignature   AuditAction = "SET_SIGNATURE"
	AuditActionExecute        AuditAction = "EXECUTE"
	AuditActionStake          AuditAction = "STAKE"
	AuditActionClaim          AuditAction = "CLAIM"
	AuditActionWithdraw       AuditAction = "WITHDRAW"
	AuditActionCreateContract AuditAction = "CREATE_CONTRACT"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Subject      string      `json:"subject,omitempty"` // token subject of the caller
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
