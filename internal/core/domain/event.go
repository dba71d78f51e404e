package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a lifecycle event published to the event stream.
type EventType string

const (
	EventLegacyCreated          EventType = "legacy.created"
	EventLegacyExecuted         EventType = "legacy.executed"
	EventStakingActionCompleted EventType = "staking.action_completed"
	EventStakingPendingSwept    EventType = "staking.pending_completed"
)

// LegacyEvent is the payload published for legacy and staking lifecycle changes.
type LegacyEvent struct {
	ID         uuid.UUID     `json:"id"`
	Type       EventType     `json:"type"`
	LegacyID   uuid.UUID     `json:"legacy_id"`
	ChainID    int64         `json:"chain_id"`
	Action     ActionKind    `json:"action,omitempty"`
	TxHash     string        `json:"tx_hash,omitempty"`
	Staking    *ActionResult `json:"staking,omitempty"`
	Submitted  int           `json:"submitted"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewLegacyEvent stamps a new event for the legacy.
func NewLegacyEvent(t EventType, l *Legacy, now time.Time) *LegacyEvent {
	return &LegacyEvent{
		ID:         uuid.New(),
		Type:       t,
		LegacyID:   l.ID,
		ChainID:    l.ChainID,
		OccurredAt: now.UTC(),
	}
}
