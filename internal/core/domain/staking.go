package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ActionKind is the staking action requested from the provider.
type ActionKind string

const (
	ActionEnter   ActionKind = "enter"
	ActionExit    ActionKind = "exit"
	ActionPending ActionKind = "pending"
)

// TxStatus is the lifecycle status of one partial transaction in a saga.
type TxStatus string

const (
	TxStatusPending   TxStatus = "PENDING"
	TxStatusSkipped   TxStatus = "SKIPPED"
	TxStatusConfirmed TxStatus = "CONFIRMED"
	TxStatusFailed    TxStatus = "FAILED"
)

// IsTerminal reports whether polling can stop at this status.
func (s TxStatus) IsTerminal() bool {
	return s == TxStatusConfirmed || s == TxStatusFailed
}

// ParsePollStatus accepts only the statuses a status poll may return.
func ParsePollStatus(raw string) (TxStatus, error) {
	switch s := TxStatus(strings.ToUpper(raw)); s {
	case TxStatusPending, TxStatusConfirmed, TxStatusFailed:
		return s, nil
	default:
		return "", fmt.Errorf("unexpected transaction status %q", raw)
	}
}

// PartialTransaction is one leg of a provider-issued staking plan.
type PartialTransaction struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Status    TxStatus `json:"status"`
	Network   string   `json:"network"`
	StepIndex int      `json:"stepIndex"`
}

// YieldInfo is the per-call metadata of a staking integration.
type YieldInfo struct {
	ID                  string
	Symbol              string
	Network             string
	Decimals            int32
	MinAmount           decimal.Decimal
	DefaultValidator    string
	PreferredValidators []string
}

// Validator picks the validator for a new stake: the integration default, then
// the first preferred validator, otherwise none.
func (y YieldInfo) Validator() string {
	if y.DefaultValidator != "" {
		return y.DefaultValidator
	}
	if len(y.PreferredValidators) > 0 {
		return y.PreferredValidators[0]
	}
	return ""
}

// Validators returns the validator list passed to balance queries.
func (y YieldInfo) Validators() []string {
	if v := y.Validator(); v != "" {
		return []string{v}
	}
	return nil
}

// NormalizeAmount converts a base-unit integer string into token units.
func NormalizeAmount(amount string, decimals int32) (decimal.Decimal, error) {
	if strings.TrimSpace(amount) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return d.Shift(-decimals), nil
}

// ActionRequest asks the provider to build a staking plan.
type ActionRequest struct {
	IntegrationID    string
	Kind             ActionKind
	Address          string
	Amount           string // token units
	ValidatorAddress string
	PendingType      string // pending actions only
	Passthrough      string // pending actions only
}

// ActionSession is the provider's answer to an action request. Transactions
// is nil when the provider omitted the list.
type ActionSession struct {
	ID           string
	Status       string
	Transactions []PartialTransaction
}

// GasTier selects a fee mode from a gas quote.
type GasTier int

const (
	GasTierEconomy GasTier = iota
	GasTierMarket
	GasTierFast
)

var gasTierNames = [...]string{"economy", "market", "fast"}

func (t GasTier) String() string {
	if t < 0 || int(t) >= len(gasTierNames) {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return gasTierNames[t]
}

// ParseGasTier maps a configured tier name to its GasTier.
func ParseGasTier(name string) (GasTier, error) {
	for i, n := range gasTierNames {
		if strings.EqualFold(n, name) {
			return GasTier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown gas tier %q", name)
}

// GasMode is one fee option of a gas quote.
type GasMode struct {
	Name    string          `json:"name"`
	GasArgs json.RawMessage `json:"gasArgs"`
}

// GasQuote lists the fee options for a network, cheapest first.
type GasQuote struct {
	Modes []GasMode
}

// Select returns the mode whose name matches the tier, falling back to the
// tier's position in the list.
func (q GasQuote) Select(tier GasTier) (GasMode, error) {
	for _, m := range q.Modes {
		if strings.EqualFold(m.Name, tier.String()) {
			return m, nil
		}
	}
	if int(tier) >= 0 && int(tier) < len(q.Modes) {
		return q.Modes[tier], nil
	}
	return GasMode{}, fmt.Errorf("gas quote has %d modes, no %s mode", len(q.Modes), tier)
}

// UnsignedTransaction is the EIP-1559 descriptor returned once gas is
// attached. Numeric gas fields are base-16 strings.
type UnsignedTransaction struct {
	From                 string `json:"from"`
	To                   string `json:"to"`
	Data                 string `json:"data"`
	Value                string `json:"value"`
	Nonce                uint64 `json:"nonce"`
	ChainID              int64  `json:"chainId"`
	GasLimit             string `json:"gasLimit"`
	MaxFeePerGas         string `json:"maxFeePerGas"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas"`
}

// TransactionStatusReport is one status poll answer.
type TransactionStatusReport struct {
	Status TxStatus
	URL    string
	Hash   string
}

// Balance types reported by the provider.
const (
	BalanceTypeAvailable = "available"
	BalanceTypeStaked    = "staked"
	BalanceTypeUnstaking = "unstaking"
	BalanceTypeUnstaked  = "unstaked"
	BalanceTypeRewards   = "rewards"
)

// Pending action types.
const (
	PendingActionClaimRewards = "CLAIM_REWARDS"
	PendingActionWithdraw     = "WITHDRAW"
)

type BalanceToken struct {
	Network  string `json:"network"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

type PendingAction struct {
	Type        string `json:"type"`
	Passthrough string `json:"passthrough"`
}

// BalanceEntry is one balance group of a staking position.
type BalanceEntry struct {
	GroupID          string          `json:"groupId"`
	Type             string          `json:"type"`
	Amount           string          `json:"amount"`
	Date             *time.Time      `json:"date,omitempty"`
	Token            BalanceToken    `json:"token"`
	PendingActions   []PendingAction `json:"pendingActions"`
	ValidatorAddress string          `json:"validatorAddress,omitempty"`
}

// PendingWork is one (entry, action) pair to push through the pending endpoint.
type PendingWork struct {
	Entry  BalanceEntry
	Action PendingAction
}

// PendingSelector filters balance entries and their pending actions. Empty
// fields match anything.
type PendingSelector struct {
	Name            string
	BalanceType     string
	ActionType      string
	RequireUnlocked bool
}

var (
	ClaimRewardsSelector = PendingSelector{
		Name:        "claim",
		BalanceType: BalanceTypeRewards,
		ActionType:  PendingActionClaimRewards,
	}
	WithdrawSelector = PendingSelector{
		Name:            "withdraw",
		BalanceType:     BalanceTypeUnstaked,
		ActionType:      PendingActionWithdraw,
		RequireUnlocked: true,
	}
)

// Select returns the pending work matching s. An entry without a date counts
// as unlocked.
func (s PendingSelector) Select(entries []BalanceEntry, now time.Time) []PendingWork {
	now = now.UTC()
	var work []PendingWork
	for _, e := range entries {
		if s.BalanceType != "" && e.Type != s.BalanceType {
			continue
		}
		if s.RequireUnlocked && e.Date != nil && e.Date.UTC().After(now) {
			continue
		}
		for _, a := range e.PendingActions {
			if s.ActionType != "" && a.Type != s.ActionType {
				continue
			}
			work = append(work, PendingWork{Entry: e, Action: a})
		}
	}
	return work
}

// LegResult records how one partial transaction ended.
type LegResult struct {
	TransactionID string   `json:"transaction_id"`
	Type          string   `json:"type"`
	Network       string   `json:"network"`
	StepIndex     int      `json:"step_index"`
	Status        TxStatus `json:"status"`
	Submitted     bool     `json:"submitted"`
	Hash          string   `json:"hash,omitempty"`
	URL           string   `json:"url,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// ActionResult aggregates the legs of one saga.
type ActionResult struct {
	Kind          ActionKind  `json:"kind"`
	IntegrationID string      `json:"integration_id"`
	SessionID     string      `json:"session_id"`
	PendingType   string      `json:"pending_type,omitempty"`
	Legs          []LegResult `json:"legs"`
}

// Submitted counts legs that reached the provider's submit endpoint.
func (r *ActionResult) Submitted() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, l := range r.Legs {
		if l.Submitted {
			n++
		}
	}
	return n
}

// Failed counts legs that ended FAILED.
func (r *ActionResult) Failed() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, l := range r.Legs {
		if l.Status == TxStatusFailed {
			n++
		}
	}
	return n
}

const NothingToWithdraw = "Nothing to withdraw"

// PendingSweepResult is the outcome of a claim or withdraw sweep.
type PendingSweepResult struct {
	NothingToDo bool           `json:"nothing_to_do"`
	Status      string         `json:"status,omitempty"`
	Actions     []ActionResult `json:"actions,omitempty"`
}

// Submitted counts submitted legs across all actions of the sweep.
func (r *PendingSweepResult) Submitted() int {
	if r == nil {
		return 0
	}
	n := 0
	for i := range r.Actions {
		n += r.Actions[i].Submitted()
	}
	return n
}

// BalanceView is the client-facing projection of a balance entry.
type BalanceView struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Amount         string   `json:"amount"`
	Date           *string  `json:"date"`
	Network        string   `json:"network"`
	TokenSymbol    string   `json:"tokenSymbol"`
	PendingActions []string `json:"pendingActions"`
}

// NewBalanceViews projects provider balances for clients.
func NewBalanceViews(entries []BalanceEntry) []BalanceView {
	views := make([]BalanceView, 0, len(entries))
	for _, e := range entries {
		v := BalanceView{
			ID:             e.GroupID,
			Type:           e.Type,
			Amount:         e.Amount,
			Network:        e.Token.Network,
			TokenSymbol:    e.Token.Symbol,
			PendingActions: make([]string, 0, len(e.PendingActions)),
		}
		if e.Date != nil {
			d := e.Date.UTC().Format(time.RFC3339)
			v.Date = &d
		}
		for _, a := range e.PendingActions {
			v.PendingActions = append(v.PendingActions, a.Type)
		}
		views = append(views, v)
	}
	return views
}

// ExecutionResult is returned by a legacy execution.
type ExecutionResult struct {
	Legacy          *Legacy       `json:"legacy"`
	TransactionHash string        `json:"transaction,omitempty"`
	Staking         *ActionResult `json:"staking,omitempty"`
}
