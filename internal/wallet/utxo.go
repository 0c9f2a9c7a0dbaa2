package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/address"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/chain"
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// UTXOGenerator derives addresses for the bitcoin-family forks.
// Legacy P2PKH addresses use m/44'/{coin}'/0'/0/{index}; native segwit
// addresses use purpose 84.
type UTXOGenerator struct {
	fork    models.Chain
	network models.NetworkType
	witness bool
}

// NewUTXOGenerator returns a P2PKH generator for the fork and network.
func NewUTXOGenerator(fork models.Chain, network models.NetworkType) (*UTXOGenerator, error) {
	if _, ok := chain.ParamsFor(fork, network); !ok {
		return nil, fmt.Errorf("%w: %s/%s", address.ErrUnsupportedFork, fork, network)
	}
	return &UTXOGenerator{fork: fork, network: network}, nil
}

// NewWitnessGenerator returns a P2WPKH generator. The fork must support segwit.
func NewWitnessGenerator(fork models.Chain, network models.NetworkType) (*UTXOGenerator, error) {
	g, err := NewUTXOGenerator(fork, network)
	if err != nil {
		return nil, err
	}
	if !chain.SupportsSegwit(fork) {
		return nil, fmt.Errorf("%w: %s has no segwit", address.ErrIncompatibleTarget, fork)
	}
	g.witness = true
	return g, nil
}

// Chain returns the fork this generator derives for.
func (g *UTXOGenerator) Chain() models.Chain {
	return g.fork
}

// GenerateFromSeed derives the address at index from a BIP-39 seed.
func (g *UTXOGenerator) GenerateFromSeed(seed []byte, index uint32) (*models.DerivedAddress, error) {
	coin, _ := chain.CoinType(g.fork, g.network)
	purpose, kind := uint32(44), address.KindP2PKH
	if g.witness {
		purpose, kind = 84, address.KindP2WPKH
	}
	path := BIP44Path(purpose, coin, index)

	key, err := DeriveKey(seed, path)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	pubKey := key.PubKey().SerializeCompressed()
	addr, err := address.FromPublicKey(g.fork, g.network, pubKey, kind)
	if err != nil {
		return nil, fmt.Errorf("encode address: %w", err)
	}

	return &models.DerivedAddress{
		Chain:          g.fork,
		Network:        g.network,
		Address:        addr,
		DerivationPath: FormatPath(path),
		PublicKey:      hex.EncodeToString(pubKey),
	}, nil
}
