package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// FromPublicKey returns the address of a serialized secp256k1 public key on
// the given fork and network. kind must be KindP2PKH or KindP2WPKH; witness
// addresses require the compressed form.
func FromPublicKey(fork models.Chain, network models.NetworkType, pubKey []byte, kind Kind) (string, error) {
	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return "", fmt.Errorf("parse public key: %w", err)
	}

	serialized := pubKey
	switch kind {
	case KindP2PKH:
	case KindP2WPKH:
		serialized = key.SerializeCompressed()
	default:
		return "", fmt.Errorf("%w: %s from public key", ErrIncompatibleTarget, kind)
	}

	return Encode(Identity{
		Fork:    fork,
		Network: network,
		Kind:    kind,
		Hash:    btcutil.Hash160(serialized),
	}, "")
}
