package stakekit

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aevia-legacy/internal/core/domain"
)

// Wire shapes of the provider API. They are decoded here and converted to
// domain types so nothing outside this package sees provider JSON.

type addresses struct {
	Address string `json:"address"`
}

type actionArgs struct {
	Amount             string   `json:"amount,omitempty"`
	ValidatorAddress   string   `json:"validatorAddress,omitempty"`
	ValidatorAddresses []string `json:"validatorAddresses,omitempty"`
}

type actionBody struct {
	IntegrationID string     `json:"integrationId"`
	Type          string     `json:"type,omitempty"`
	Passthrough   string     `json:"passthrough,omitempty"`
	Addresses     addresses  `json:"addresses"`
	Args          actionArgs `json:"args"`
}

type actionResponse struct {
	ID           string                       `json:"id"`
	Status       string                       `json:"status"`
	Transactions *[]domain.PartialTransaction `json:"transactions"`
}

type yieldResponse struct {
	ID    string `json:"id"`
	Token struct {
		Symbol   string `json:"symbol"`
		Network  string `json:"network"`
		Decimals *int32 `json:"decimals"`
	} `json:"token"`
	Args struct {
		Enter struct {
			Args struct {
				Amount struct {
					Minimum *json.Number `json:"minimum"`
				} `json:"amount"`
			} `json:"args"`
		} `json:"enter"`
	} `json:"args"`
	Metadata struct {
		DefaultValidator string `json:"defaultValidator"`
	} `json:"metadata"`
	Validators []struct {
		Address   string `json:"address"`
		Preferred bool   `json:"preferred"`
	} `json:"validators"`
}

type gasResponse struct {
	Modes struct {
		Values []domain.GasMode `json:"values"`
	} `json:"modes"`
}

type attachGasBody struct {
	GasArgs json.RawMessage `json:"gasArgs"`
}

// unsignedTransaction arrives either as a JSON object or as a string holding
// the JSON object.
type constructedTransaction struct {
	ID                  string          `json:"id"`
	Status              string          `json:"status"`
	UnsignedTransaction json.RawMessage `json:"unsignedTransaction"`
}

type submitBody struct {
	SignedTransaction string `json:"signedTransaction"`
}

type statusResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
	Hash   string `json:"hash"`
}

type balancesBody struct {
	Addresses addresses  `json:"addresses"`
	Args      actionArgs `json:"args"`
}

type balanceResponse struct {
	GroupID          string                 `json:"groupId"`
	Type             string                 `json:"type"`
	Amount           string                 `json:"amount"`
	Date             *string                `json:"date"`
	Token            domain.BalanceToken    `json:"token"`
	PendingActions   []domain.PendingAction `json:"pendingActions"`
	ValidatorAddress string                 `json:"validatorAddress"`
}

// embeddedError is the error shape the provider sometimes returns with 200.
type embeddedError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (y *yieldResponse) toDomain() (*domain.YieldInfo, error) {
	if y.ID == "" {
		return nil, errors.New("yield response has no id")
	}
	if y.Token.Decimals == nil {
		return nil, errors.New("yield response has no token decimals")
	}
	info := &domain.YieldInfo{
		ID:               y.ID,
		Symbol:           y.Token.Symbol,
		Network:          y.Token.Network,
		Decimals:         *y.Token.Decimals,
		DefaultValidator: y.Metadata.DefaultValidator,
	}
	if m := y.Args.Enter.Args.Amount.Minimum; m != nil {
		min, err := parseDecimal(m.String())
		if err != nil {
			return nil, fmt.Errorf("yield minimum: %w", err)
		}
		info.MinAmount = min
	}
	for _, v := range y.Validators {
		if v.Preferred && v.Address != "" {
			info.PreferredValidators = append(info.PreferredValidators, v.Address)
		}
	}
	return info, nil
}

func (a *actionResponse) toDomain() *domain.ActionSession {
	s := &domain.ActionSession{ID: a.ID, Status: a.Status}
	if a.Transactions != nil {
		s.Transactions = append([]domain.PartialTransaction{}, (*a.Transactions)...)
	}
	return s
}

func (b *balanceResponse) toDomain() (domain.BalanceEntry, error) {
	e := domain.BalanceEntry{
		GroupID:          b.GroupID,
		Type:             b.Type,
		Amount:           b.Amount,
		Token:            b.Token,
		PendingActions:   b.PendingActions,
		ValidatorAddress: b.ValidatorAddress,
	}
	if b.Date != nil && *b.Date != "" {
		t, err := time.Parse(time.RFC3339, *b.Date)
		if err != nil {
			return domain.BalanceEntry{}, fmt.Errorf("balance %s date: %w", b.GroupID, err)
		}
		t = t.UTC()
		e.Date = &t
	}
	return e, nil
}

func decodeUnsigned(raw json.RawMessage) (*domain.UnsignedTransaction, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.New("unsignedTransaction is missing")
	}
	body := []byte(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		body = []byte(s)
	}
	var u domain.UnsignedTransaction
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("decode unsignedTransaction: %w", err)
	}
	return &u, nil
}
