package chain

import (
	"sort"
	"strings"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// Direction selects which way ResolveNetworkAlias translates a network name.
type Direction int

const (
	// ToSpecific maps a generic class name to the chain's own network name.
	ToSpecific Direction = iota
	// ToGeneric maps a chain-specific name back to its generic class name.
	ToGeneric
)

// livenet is the historical wallet name for mainnet.
const livenet = "livenet"

// Each generic class maps to at most one specific name per chain.
var networkAliases = map[models.Chain]map[models.NetworkType]string{
	models.ChainBTC:   {models.Testnet: "testnet3"},
	models.ChainBCH:   {models.Testnet: "testnet3"},
	models.ChainDOGE:  {models.Testnet: "testnet"},
	models.ChainLTC:   {models.Testnet: "testnet4"},
	models.ChainETH:   {models.Testnet: "sepolia"},
	models.ChainMATIC: {models.Testnet: "amoy"},
	models.ChainARB:   {models.Testnet: "sepolia"},
	models.ChainBASE:  {models.Testnet: "sepolia"},
	models.ChainOP:    {models.Testnet: "sepolia"},
	models.ChainSOL:   {models.Testnet: "devnet"},
	models.ChainXRP:   {models.Testnet: "testnet"},
}

// NetworkAliases returns a copy of the alias table for a chain.
func NetworkAliases(c models.Chain) map[models.NetworkType]string {
	out := make(map[models.NetworkType]string, len(networkAliases[c]))
	for k, v := range networkAliases[c] {
		out[k] = v
	}
	return out
}

// Chains lists every chain with an alias table, sorted by name.
func Chains() []models.Chain {
	out := make([]models.Chain, 0, len(networkAliases))
	for c := range networkAliases {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolveNetworkAlias translates a network name for chain c. Names that have
// no alias are returned unchanged.
//
// ToGeneric ignores c: "mainnet" becomes "livenet", and any chain's specific
// testnet name becomes "testnet".
func ResolveNetworkAlias(c models.Chain, network string, dir Direction) string {
	lower := strings.ToLower(network)
	switch dir {
	case ToSpecific:
		if specific, ok := networkAliases[c][models.NetworkType(lower)]; ok {
			return specific
		}
	case ToGeneric:
		if lower == string(models.Mainnet) {
			return livenet
		}
		for _, aliases := range networkAliases {
			if aliases[models.Testnet] == lower {
				return string(models.Testnet)
			}
		}
	}
	return network
}

// ClassifyNetworkType buckets a network name into its generic class. Unknown
// names fall into testnet.
func ClassifyNetworkType(network string) models.NetworkType {
	switch strings.ToLower(network) {
	case string(models.Mainnet), livenet:
		return models.Mainnet
	case string(models.Regtest):
		return models.Regtest
	default:
		return models.Testnet
	}
}

// NetworksCompatible reports whether two network names refer to the same
// network of chain c. With allowRegtestCrossover, any pair of testnet and
// regtest networks is also compatible.
func NetworksCompatible(network1, network2 string, c models.Chain, allowRegtestCrossover bool) bool {
	n1 := ResolveNetworkAlias(c, strings.ToLower(network1), ToSpecific)
	n2 := ResolveNetworkAlias(c, strings.ToLower(network2), ToSpecific)
	if n1 == n2 {
		return true
	}
	if !allowRegtestCrossover {
		return false
	}
	return isTestLike(ClassifyNetworkType(n1)) && isTestLike(ClassifyNetworkType(n2))
}

func isTestLike(t models.NetworkType) bool {
	return t == models.Testnet || t == models.Regtest
}
