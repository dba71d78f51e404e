package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentWallet is the dedicated custodial address that holds a legacy's
// staked assets. Index is the HD derivation index (m/44'/60'/0'/0/index).
type InvestmentWallet struct {
	ID         uuid.UUID  `json:"id"`
	Index      int64      `json:"index"`
	LegacyID   uuid.UUID  `json:"legacy_id"`
	Address    string     `json:"address"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	UnstakedAt *time.Time `json:"unstaked_at,omitempty"`
}

// IsUnstaked reports whether the exit action has completed for this wallet.
func (w *InvestmentWallet) IsUnstaked() bool {
	return w.UnstakedAt != nil
}

// CooldownElapsed reports whether at least cooldown has passed since unstake.
// A zero cooldown only requires the wallet to be unstaked.
func (w *InvestmentWallet) CooldownElapsed(now time.Time, cooldown time.Duration) bool {
	if w.UnstakedAt == nil {
		return false
	}
	return !now.Before(w.UnstakedAt.Add(cooldown))
}
