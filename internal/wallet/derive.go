package wallet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is returned for mnemonics that fail the BIP-39 checksum.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Hardened offsets a child index into the hardened range.
func Hardened(i uint32) uint32 {
	return bip32.FirstHardenedChild + i
}

// RequestKeyPath is the path of the key a wallet client signs requests with.
var RequestKeyPath = []uint32{Hardened(1), 0}

// SeedFromMnemonic converts a BIP-39 mnemonic into a seed, validating its checksum.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}

// DeriveKey derives the private child key at path from a BIP-39 seed.
func DeriveKey(seed []byte, path []uint32) (*btcec.PrivateKey, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}

	for depth, index := range path {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, fmt.Errorf("derive %s at depth %d: %w", FormatPath(path[:depth+1]), depth+1, err)
		}
	}

	priv, _ := btcec.PrivKeyFromBytes(key.Key[:32])
	return priv, nil
}

// RequestKey derives the request signing key (m/1'/0) from a seed. Its public
// half is what the server registers as a trusted key.
func RequestKey(seed []byte) (*btcec.PrivateKey, error) {
	return DeriveKey(seed, RequestKeyPath)
}

// BIP44Path returns m/{purpose}'/{coinType}'/0'/0/{index}.
func BIP44Path(purpose, coinType, index uint32) []uint32 {
	return []uint32{Hardened(purpose), Hardened(coinType), Hardened(0), 0, index}
}

// FormatPath renders a derivation path as m/44'/0'/0'/0/1.
func FormatPath(path []uint32) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, index := range path {
		sb.WriteByte('/')
		if index >= bip32.FirstHardenedChild {
			sb.WriteString(strconv.FormatUint(uint64(index-bip32.FirstHardenedChild), 10))
			sb.WriteByte('\'')
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(index), 10))
	}
	return sb.String()
}
