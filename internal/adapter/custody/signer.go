package custody

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"aevia-legacy/internal/core/domain"
	"aevia-legacy/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// TransactionSigner implements ports.CustodySigner for one secp256k1 key.
type TransactionSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewTransactionSigner wraps an already parsed key.
func NewTransactionSigner(key *ecdsa.PrivateKey) *TransactionSigner {
	return &TransactionSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// NewTransactionSignerFromHex parses a hex private key, with or without 0x.
func NewTransactionSignerFromHex(privateKeyHex string) (*TransactionSigner, error) {
	key, err := crypto.HexToECDSA(trim0x(strings.TrimSpace(privateKeyHex)))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return NewTransactionSigner(key), nil
}

// Address returns the checksummed address of the key.
func (s *TransactionSigner) Address() string {
	return s.address.Hex()
}

// PrivateKey exposes the key to the direct chain transactor.
func (s *TransactionSigner) PrivateKey() *ecdsa.PrivateKey {
	return s.key
}

// SignTransaction builds an EIP-1559 transaction from the provider descriptor,
// signs it and returns the raw 0x-prefixed encoding.
func (s *TransactionSigner) SignTransaction(u *domain.UnsignedTransaction) (string, error) {
	tx, err := BuildDynamicFeeTx(u)
	if err != nil {
		return "", apperror.ErrMalformedTransaction(err)
	}
	if u.From != "" {
		from, err := NormalizeAddress(u.From)
		if err != nil {
			return "", apperror.ErrMalformedTransaction(fmt.Errorf("from: %w", err))
		}
		if from != s.address.Hex() {
			return "", apperror.ErrMalformedTransaction(fmt.Errorf("transaction from %s does not match signer %s", from, s.address.Hex()))
		}
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(tx.ChainId()), s.key)
	if err != nil {
		return "", apperror.ErrSigningFailure(fmt.Errorf("sign transaction: %w", err))
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return "", apperror.ErrSigningFailure(fmt.Errorf("encode signed transaction: %w", err))
	}
	return hexutil.Encode(raw), nil
}

// BuildDynamicFeeTx parses the descriptor. Gas fields are base-16 strings; a
// missing or unparseable field is an error.
func BuildDynamicFeeTx(u *domain.UnsignedTransaction) (*types.Transaction, error) {
	if u == nil {
		return nil, errors.New("unsigned transaction is nil")
	}
	if u.ChainID <= 0 {
		return nil, fmt.Errorf("invalid chainId %d", u.ChainID)
	}

	gasLimit, err := parseHexBig("gasLimit", u.GasLimit)
	if err != nil {
		return nil, err
	}
	if !gasLimit.IsUint64() {
		return nil, fmt.Errorf("gasLimit %s overflows uint64", u.GasLimit)
	}
	maxFee, err := parseHexBig("maxFeePerGas", u.MaxFeePerGas)
	if err != nil {
		return nil, err
	}
	maxPriority, err := parseHexBig("maxPriorityFeePerGas", u.MaxPriorityFeePerGas)
	if err != nil {
		return nil, err
	}

	to, err := NormalizeAddress(u.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	toAddr := common.HexToAddress(to)

	value, err := parseQuantity(u.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}

	var data []byte
	if u.Data != "" {
		data, err = hexutil.Decode("0x" + trim0x(u.Data))
		if err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
	}

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   big.NewInt(u.ChainID),
		Nonce:     u.Nonce,
		GasTipCap: maxPriority,
		GasFeeCap: maxFee,
		Gas:       gasLimit.Uint64(),
		To:        &toAddr,
		Value:     value,
		Data:      data,
	}), nil
}

// NormalizeAddress validates a hex address and returns its checksum form.
func NormalizeAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if !common.IsHexAddress(addr) {
		return "", fmt.Errorf("invalid address %q", addr)
	}
	return common.HexToAddress(addr).Hex(), nil
}

func parseHexBig(field, value string) (*big.Int, error) {
	v := trim0x(strings.TrimSpace(value))
	if v == "" {
		return nil, fmt.Errorf("%s is missing", field)
	}
	n, ok := new(big.Int).SetString(v, 16)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%s %q is not a base-16 integer", field, value)
	}
	return n, nil
}

// parseQuantity accepts 0x-prefixed hex or a decimal string; empty is zero.
func parseQuantity(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return new(big.Int), nil
	}
	base := 10
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		value, base = value[2:], 16
		if value == "" {
			return new(big.Int), nil
		}
	}
	n, ok := new(big.Int).SetString(value, base)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%q is not a valid quantity", value)
	}
	return n, nil
}

func trim0x(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}
