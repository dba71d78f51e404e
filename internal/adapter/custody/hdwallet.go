package custody

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"aevia-legacy/internal/core/ports"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// ethereumAccountPath is m/44'/60'/0'/0; the address index is appended.
var ethereumAccountPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
}

// HDKeyOracle derives investment wallet keys from the service mnemonic.
type HDKeyOracle struct {
	account *hdkeychain.ExtendedKey
}

// NewHDKeyOracle validates the mnemonic and derives the account node once.
func NewHDKeyOracle(mnemonic string) (*HDKeyOracle, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}

	seed := bip39.NewSeed(mnemonic, "")
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	for _, step := range ethereumAccountPath {
		key, err = key.Derive(step)
		if err != nil {
			return nil, fmt.Errorf("derive account path: %w", err)
		}
	}
	return &HDKeyOracle{account: key}, nil
}

// SignerForIndex returns the signer for m/44'/60'/0'/0/index.
func (o *HDKeyOracle) SignerForIndex(index int64) (ports.CustodySigner, error) {
	key, err := o.privateKey(index)
	if err != nil {
		return nil, err
	}
	return NewTransactionSigner(key), nil
}

// AddressForIndex returns the checksummed address for m/44'/60'/0'/0/index.
func (o *HDKeyOracle) AddressForIndex(index int64) (string, error) {
	key, err := o.privateKey(index)
	if err != nil {
		return "", err
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

func (o *HDKeyOracle) privateKey(index int64) (*ecdsa.PrivateKey, error) {
	if index < 0 || index >= int64(hdkeychain.HardenedKeyStart) {
		return nil, fmt.Errorf("derivation index %d out of range", index)
	}
	child, err := o.account.Derive(uint32(index))
	if err != nil {
		return nil, fmt.Errorf("derive index %d: %w", index, err)
	}
	priv, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("private key for index %d: %w", index, err)
	}
	return crypto.ToECDSA(priv.Serialize())
}
