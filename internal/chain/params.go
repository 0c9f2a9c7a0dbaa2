package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	bchcfg "github.com/gcash/bchd/chaincfg"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// Networks is the order in which a fork's networks are tried when decoding.
var Networks = []models.NetworkType{models.Mainnet, models.Testnet, models.Regtest}

// Bitcoin Cash shares the legacy version bytes with Bitcoin but has no segwit.
var (
	bchMainNetParams = withoutSegwit(chaincfg.MainNetParams, "bch-mainnet", 0xe8f3e1e3)
	bchTestNetParams = withoutSegwit(chaincfg.TestNet3Params, "bch-testnet", 0xf4f3e5f4)
	bchRegTestParams = withoutSegwit(chaincfg.RegressionNetParams, "bch-regtest", 0xfabfb5da)
)

var dogeMainNetParams = chaincfg.Params{
	Name:             "doge-mainnet",
	Net:              0xc0c0c0c0,
	DefaultPort:      "22556",
	PubKeyHashAddrID: 0x1e, // D
	ScriptHashAddrID: 0x16, // 9 or A
	PrivateKeyID:     0x9e,
	HDPrivateKeyID:   [4]byte{0x02, 0xfa, 0xc3, 0x98},
	HDPublicKeyID:    [4]byte{0x02, 0xfa, 0xca, 0xfd},
	HDCoinType:       3,
}

var dogeTestNetParams = chaincfg.Params{
	Name:             "doge-testnet",
	Net:              0xdcb7c1fc,
	DefaultPort:      "44556",
	PubKeyHashAddrID: 0x71, // n
	ScriptHashAddrID: 0xc4, // 2
	PrivateKeyID:     0xf1,
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDCoinType:       1,
}

var dogeRegTestParams = chaincfg.Params{
	Name:             "doge-regtest",
	Net:              0xdab5bffa,
	DefaultPort:      "18444",
	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xef,
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDCoinType:       1,
}

var ltcMainNetParams = chaincfg.Params{
	Name:                    "ltc-mainnet",
	Net:                     0xdbb6c0fb,
	DefaultPort:             "9333",
	PubKeyHashAddrID:        0x30, // L
	ScriptHashAddrID:        0x32, // M
	PrivateKeyID:            0xb0,
	WitnessPubKeyHashAddrID: 0x06,
	WitnessScriptHashAddrID: 0x0a,
	Bech32HRPSegwit:         "ltc",
	HDPrivateKeyID:          [4]byte{0x01, 0x9d, 0x9c, 0xfe}, // Ltpv
	HDPublicKeyID:           [4]byte{0x01, 0x9d, 0xa4, 0x62}, // Ltub
	HDCoinType:              2,
}

var ltcTestNetParams = chaincfg.Params{
	Name:             "ltc-testnet4",
	Net:              0xf1c8d2fd,
	DefaultPort:      "19335",
	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0x3a, // Q
	PrivateKeyID:     0xef,
	Bech32HRPSegwit:  "tltc",
	HDPrivateKeyID:   [4]byte{0x04, 0x36, 0xef, 0x7d}, // ttpv
	HDPublicKeyID:    [4]byte{0x04, 0x36, 0xf6, 0xe1}, // ttub
	HDCoinType:       1,
}

// Litecoin regtest uses the Bitcoin regtest magic on the wire. chaincfg rejects
// duplicate magics, so a distinct value is registered here; it is never used
// for p2p traffic.
var ltcRegTestParams = chaincfg.Params{
	Name:             "ltc-regtest",
	Net:              wire.BitcoinNet(0xdab5bffb),
	DefaultPort:      "19444",
	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0x3a,
	PrivateKeyID:     0xef,
	Bech32HRPSegwit:  "rltc",
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDCoinType:       1,
}

var forkParams = map[models.Chain]map[models.NetworkType]*chaincfg.Params{
	models.ChainBTC: {
		models.Mainnet: &chaincfg.MainNetParams,
		models.Testnet: &chaincfg.TestNet3Params,
		models.Regtest: &chaincfg.RegressionNetParams,
	},
	models.ChainBCH: {
		models.Mainnet: &bchMainNetParams,
		models.Testnet: &bchTestNetParams,
		models.Regtest: &bchRegTestParams,
	},
	models.ChainDOGE: {
		models.Mainnet: &dogeMainNetParams,
		models.Testnet: &dogeTestNetParams,
		models.Regtest: &dogeRegTestParams,
	},
	models.ChainLTC: {
		models.Mainnet: &ltcMainNetParams,
		models.Testnet: &ltcTestNetParams,
		models.Regtest: &ltcRegTestParams,
	},
}

// cashAddrParams carry the Bitcoin Cash prefixes used by the cashaddr format.
var cashAddrParams = map[models.NetworkType]*bchcfg.Params{
	models.Mainnet: &bchcfg.MainNetParams,
	models.Testnet: &bchcfg.TestNet3Params,
	models.Regtest: &bchcfg.RegressionNetParams,
}

// BIP-44 coin types for mainnet. Every testnet/regtest uses coin type 1.
var coinTypes = map[models.Chain]uint32{
	models.ChainBTC:   0,
	models.ChainLTC:   2,
	models.ChainDOGE:  3,
	models.ChainBCH:   145,
	models.ChainETH:   60,
	models.ChainMATIC: 60,
	models.ChainARB:   60,
	models.ChainBASE:  60,
	models.ChainOP:    60,
}

// btcutil only decodes segwit HRPs it has seen registered.
func init() {
	for _, p := range []*chaincfg.Params{&ltcMainNetParams, &ltcTestNetParams, &ltcRegTestParams} {
		if err := chaincfg.Register(p); err != nil {
			panic(fmt.Sprintf("failed to register %s params: %v", p.Name, err))
		}
	}
}

func withoutSegwit(base chaincfg.Params, name string, net wire.BitcoinNet) chaincfg.Params {
	base.Name = name
	base.Net = net
	base.Bech32HRPSegwit = ""
	return base
}

// ParamsFor returns the address parameters of a fork on a network class.
// The returned params are shared and must not be modified.
func ParamsFor(fork models.Chain, network models.NetworkType) (*chaincfg.Params, bool) {
	nets, ok := forkParams[fork]
	if !ok {
		return nil, false
	}
	p, ok := nets[network]
	return p, ok
}

// IsFork reports whether the chain has an address grammar.
func IsFork(c models.Chain) bool {
	_, ok := forkParams[c]
	return ok
}

// SupportsSegwit reports whether the fork's grammar can express witness programs.
func SupportsSegwit(fork models.Chain) bool {
	p, ok := ParamsFor(fork, models.Mainnet)
	return ok && p.Bech32HRPSegwit != ""
}

// CashAddrParams returns the Bitcoin Cash params used to encode cashaddr
// addresses on a network class.
func CashAddrParams(network models.NetworkType) (*bchcfg.Params, bool) {
	p, ok := cashAddrParams[network]
	return p, ok
}

// CashAddrPrefix returns the cashaddr prefix of a Bitcoin Cash network.
func CashAddrPrefix(network models.NetworkType) string {
	p, ok := cashAddrParams[network]
	if !ok {
		return ""
	}
	return p.CashAddressPrefix
}

// CashAddrNetwork maps a cashaddr prefix back to its network class.
func CashAddrNetwork(prefix string) (models.NetworkType, bool) {
	for network, p := range cashAddrParams {
		if p.CashAddressPrefix == prefix {
			return network, true
		}
	}
	return "", false
}

// CoinType returns the BIP-44 coin type for the chain on the given network.
func CoinType(c models.Chain, network models.NetworkType) (uint32, bool) {
	coin, ok := coinTypes[c]
	if !ok {
		return 0, false
	}
	if network != models.Mainnet {
		return 1, true
	}
	return coin, true
}
