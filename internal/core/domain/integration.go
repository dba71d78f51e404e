package domain

import (
	"strings"
)

// Supported chain ids.
const (
	ChainEthereumMainnet  int64 = 1
	ChainAvalancheMainnet int64 = 43114
	ChainMantleMainnet    int64 = 5000
	ChainMantleSepolia    int64 = 5003
)

// Token addresses with a staking integration.
const (
	TokenEthereumPOL    = "0x455e53CBB86018Ac2B8092FdCd39d8444aFFC3F6"
	TokenAvalancheAVAX  = "0x0000000000000000000000000000000000000000"
	IntegrationPOL      = "ethereum-matic-native-staking"
	IntegrationAVAX     = "avalanche-avax-native-staking"
	defaultLegacyGas    = uint64(2_000_000)
	highGasChainsLegacy = uint64(300_000_000)
)

// StakingIntegration identifies a provider yield for a (chain, token) pair.
type StakingIntegration struct {
	ID      string `json:"id"`
	ChainID int64  `json:"chain_id"`
	Token   string `json:"token"`
}

var integrations = []StakingIntegration{
	{ID: IntegrationPOL, ChainID: ChainEthereumMainnet, Token: TokenEthereumPOL},
	{ID: IntegrationAVAX, ChainID: ChainAvalancheMainnet, Token: TokenAvalancheAVAX},
}

// ResolveIntegration returns the staking integration for a chain and token
// address. Addresses are compared case-insensitively.
func ResolveIntegration(chainID int64, token string) (StakingIntegration, bool) {
	for _, in := range integrations {
		if in.ChainID == chainID && strings.EqualFold(in.Token, token) {
			return in, true
		}
	}
	return StakingIntegration{}, false
}

// Mantle executes executeLegacy with a much higher gas requirement.
var highGasChains = map[int64]struct{}{
	ChainMantleMainnet: {},
	ChainMantleSepolia: {},
}

// GasLimitForChain is the gas limit used for the direct executeLegacy call.
func GasLimitForChain(chainID int64) uint64 {
	if _, ok := highGasChains[chainID]; ok {
		return highGasChainsLegacy
	}
	return defaultLegacyGas
}

// ChainName returns a display name for the chain.
func ChainName(chainID int64) string {
	switch chainID {
	case ChainEthereumMainnet:
		return "Ethereum Mainnet"
	case ChainAvalancheMainnet:
		return "Avalanche Mainnet"
	case ChainMantleMainnet:
		return "Mantle"
	case ChainMantleSepolia:
		return "Mantle Sepolia"
	default:
		return "Unknown Network"
	}
}
