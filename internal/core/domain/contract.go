package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProtocolContractName is the registry name of the legacy executor contract.
const ProtocolContractName = "AeviaProtocol"

// Contract is a deployed contract known to the service, keyed by (name, chain).
type Contract struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	ChainID   int64           `json:"chain_id"`
	Address   string          `json:"address"`
	ABI       json.RawMessage `json:"abi"`
	CreatedAt time.Time       `json:"created_at"`
}
