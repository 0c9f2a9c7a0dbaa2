package address

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/chain"
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// IsValid reports whether addr is a valid address of chain c on the named
// network. Testnet and regtest share base58 version bytes, so either one
// accepts the other's legacy addresses.
func IsValid(c models.Chain, network, addr string) bool {
	if c.IsEVM() {
		return common.IsHexAddress(addr)
	}
	if !chain.IsFork(c) {
		return false
	}

	id, err := Decode(addr, c)
	if err != nil {
		return false
	}
	want := chain.ClassifyNetworkType(chain.ResolveNetworkAlias(c, network, chain.ToGeneric))
	if id.Network == want {
		return true
	}
	return id.Format == models.FormatLegacy && !id.Kind.IsWitness() &&
		want != models.Mainnet && id.Network != models.Mainnet
}
