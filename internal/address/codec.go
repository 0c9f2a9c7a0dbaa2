package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/chain"
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// codec is the address grammar of one fork.
type codec struct {
	decode func(addr string) (Identity, error)
	encode func(id Identity, format models.AddressFormat) (string, error)
}

func codecFor(fork models.Chain) (codec, error) {
	switch fork {
	case models.ChainBTC, models.ChainDOGE, models.ChainLTC:
		return codec{
			decode: func(addr string) (Identity, error) { return decodeBase58(addr, fork) },
			encode: func(id Identity, format models.AddressFormat) (string, error) {
				if format != "" && format != models.FormatLegacy {
					return "", fmt.Errorf("%w: %s for %s", ErrUnsupportedFormat, format, fork)
				}
				return encodeBase58(id, fork)
			},
		}, nil
	case models.ChainBCH:
		return codec{decode: decodeBCH, encode: encodeBCH}, nil
	default:
		return codec{}, fmt.Errorf("%w: %s", ErrUnsupportedFork, fork)
	}
}

// decodeBase58 decodes base58check and segwit addresses using the fork's
// chaincfg params, trying each network in turn.
func decodeBase58(addr string, fork models.Chain) (Identity, error) {
	for _, network := range chain.Networks {
		params, ok := chain.ParamsFor(fork, network)
		if !ok {
			continue
		}
		decoded, err := btcutil.DecodeAddress(addr, params)
		if err != nil || !decoded.IsForNet(params) {
			continue
		}
		kind, ok := kindOf(decoded)
		if !ok {
			continue
		}
		script := decoded.ScriptAddress()
		hash := make([]byte, len(script))
		copy(hash, script)
		return Identity{
			Fork:    fork,
			Network: network,
			Kind:    kind,
			Hash:    hash,
			Format:  models.FormatLegacy,
		}, nil
	}
	return Identity{}, fmt.Errorf("%w: not a %s address", ErrUnrecognizedAddress, fork)
}

func encodeBase58(id Identity, fork models.Chain) (string, error) {
	params, ok := chain.ParamsFor(fork, id.Network)
	if !ok {
		return "", fmt.Errorf("%w: %s has no %s network", ErrUnsupportedFork, fork, id.Network)
	}
	if id.Kind.IsWitness() && !chain.SupportsSegwit(fork) {
		return "", fmt.Errorf("%w: %s on %s", ErrIncompatibleTarget, id.Kind, fork)
	}

	var (
		addr btcutil.Address
		err  error
	)
	switch id.Kind {
	case KindP2PKH:
		addr, err = btcutil.NewAddressPubKeyHash(id.Hash, params)
	case KindP2SH:
		addr, err = btcutil.NewAddressScriptHashFromHash(id.Hash, params)
	case KindP2WPKH:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(id.Hash, params)
	case KindP2WSH:
		addr, err = btcutil.NewAddressWitnessScriptHash(id.Hash, params)
	case KindP2TR:
		addr, err = btcutil.NewAddressTaproot(id.Hash, params)
	default:
		return "", fmt.Errorf("%w: kind %s", ErrIncompatibleTarget, id.Kind)
	}
	if err != nil {
		return "", fmt.Errorf("encode %s %s: %w", fork, id.Kind, err)
	}
	return addr.EncodeAddress(), nil
}

// decodeBCH accepts cashaddr (with or without prefix) and legacy base58.
func decodeBCH(addr string) (Identity, error) {
	network, kind, hash, err := decodeCashAddr(addr)
	if err == nil {
		return Identity{
			Fork:    models.ChainBCH,
			Network: network,
			Kind:    kind,
			Hash:    hash,
			Format:  models.FormatCashAddr,
		}, nil
	}
	return decodeBase58(addr, models.ChainBCH)
}

// encodeBCH defaults to the legacy format.
func encodeBCH(id Identity, format models.AddressFormat) (string, error) {
	switch format {
	case models.FormatCashAddr:
		return encodeCashAddr(id.Network, id.Kind, id.Hash)
	case "", models.FormatLegacy:
		return encodeBase58(id, models.ChainBCH)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func kindOf(addr btcutil.Address) (Kind, bool) {
	switch addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return KindP2PKH, true
	case *btcutil.AddressScriptHash:
		return KindP2SH, true
	case *btcutil.AddressWitnessPubKeyHash:
		return KindP2WPKH, true
	case *btcutil.AddressWitnessScriptHash:
		return KindP2WSH, true
	case *btcutil.AddressTaproot:
		return KindP2TR, true
	default:
		return 0, false
	}
}
