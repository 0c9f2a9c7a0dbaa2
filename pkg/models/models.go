package models

// Chain identifies a blockchain. The UTXO forks (btc, bch, doge, ltc) carry an
// address grammar; the account chains only carry network naming.
type Chain string

// Supported chains.
const (
	ChainBTC  Chain = "btc"
	ChainBCH  Chain = "bch"
	ChainDOGE Chain = "doge"
	ChainLTC  Chain = "ltc"

	ChainETH   Chain = "eth"
	ChainMATIC Chain = "matic"
	ChainARB   Chain = "arb"
	ChainBASE  Chain = "base"
	ChainOP    Chain = "op"
	ChainSOL   Chain = "sol"
	ChainXRP   Chain = "xrp"
)

// IsEVM reports whether addresses on the chain are 20-byte hex accounts.
func (c Chain) IsEVM() bool {
	switch c {
	case ChainETH, ChainMATIC, ChainARB, ChainBASE, ChainOP:
		return true
	}
	return false
}

// NetworkType is the generic class of a network, independent of chain naming.
type NetworkType string

// Generic network classes.
const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
	Regtest NetworkType = "regtest"
)

// AddressFormat selects between textual encodings of the same identity.
type AddressFormat string

// Address formats. Only bch distinguishes between them.
const (
	FormatLegacy   AddressFormat = "legacy"
	FormatCashAddr AddressFormat = "cashaddr"
)

// DerivedAddress holds a generated address with its derivation path
type DerivedAddress struct {
	Chain          Chain       `json:"chain"`
	Network        NetworkType `json:"network"`
	Address        string      `json:"address"`
	DerivationPath string      `json:"derivation_path"`
	PublicKey      string      `json:"public_key"`
}
