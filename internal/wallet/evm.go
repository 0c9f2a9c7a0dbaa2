package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// EVMGenerator generates EIP-55 checksummed account addresses.
// Derivation path: m/44'/60'/0'/0/{index} on every EVM chain.
type EVMGenerator struct {
	chain   models.Chain
	network models.NetworkType
}

// NewEVMGenerator returns a generator for an EVM chain.
func NewEVMGenerator(c models.Chain, network models.NetworkType) (*EVMGenerator, error) {
	if !c.IsEVM() {
		return nil, fmt.Errorf("%s is not an EVM chain", c)
	}
	return &EVMGenerator{chain: c, network: network}, nil
}

// Chain returns the EVM chain this generator derives for.
func (g *EVMGenerator) Chain() models.Chain {
	return g.chain
}

// GenerateFromSeed derives an account address from a BIP-39 seed.
func (g *EVMGenerator) GenerateFromSeed(seed []byte, index uint32) (*models.DerivedAddress, error) {
	path := BIP44Path(44, 60, index)

	key, err := DeriveKey(seed, path)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	pubBytes := key.PubKey().SerializeUncompressed()

	// address = last 20 bytes of Keccak256(publicKey), skipping the 0x04 prefix
	hash := keccak256(pubBytes[1:])

	return &models.DerivedAddress{
		Chain:          g.chain,
		Network:        g.network,
		Address:        common.BytesToAddress(hash[12:]).Hex(),
		DerivationPath: FormatPath(path),
		PublicKey:      hex.EncodeToString(pubBytes),
	}, nil
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// NewGenerator returns the generator for any supported chain.
func NewGenerator(c models.Chain, network models.NetworkType, witness bool) (Generator, error) {
	if c.IsEVM() {
		g, err := NewEVMGenerator(c, network)
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	var (
		g   *UTXOGenerator
		err error
	)
	if witness {
		g, err = NewWitnessGenerator(c, network)
	} else {
		g, err = NewUTXOGenerator(c, network)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
