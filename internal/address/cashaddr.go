package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gcash/bchutil"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/chain"
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

var errInvalidCashAddr = errors.New("invalid cashaddr")

// encodeCashAddr renders a P2PKH or P2SH hash as prefix:payload.
func encodeCashAddr(network models.NetworkType, kind Kind, hash []byte) (string, error) {
	params, ok := chain.CashAddrParams(network)
	if !ok {
		return "", fmt.Errorf("%w: bch has no %s network", ErrUnsupportedFork, network)
	}

	var (
		addr bchutil.Address
		err  error
	)
	switch kind {
	case KindP2PKH:
		addr, err = bchutil.NewAddressPubKeyHash(hash, params)
	case KindP2SH:
		addr, err = bchutil.NewAddressScriptHashFromHash(hash, params)
	default:
		return "", fmt.Errorf("%w: %s in cashaddr", ErrIncompatibleTarget, kind)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidCashAddr, err)
	}

	encoded := addr.EncodeAddress()
	if !strings.Contains(encoded, ":") {
		encoded = params.CashAddressPrefix + ":" + encoded
	}
	return encoded, nil
}

// decodeCashAddr decodes a cashaddr string. Without a prefix, every network's
// prefix is tried; the checksum commits to the prefix, so at most one matches.
func decodeCashAddr(addr string) (network models.NetworkType, kind Kind, hash []byte, err error) {
	lower := strings.ToLower(addr)
	if addr != lower && addr != strings.ToUpper(addr) {
		return "", 0, nil, fmt.Errorf("%w: mixed case", errInvalidCashAddr)
	}

	networks := chain.Networks
	if i := strings.IndexByte(lower, ':'); i >= 0 {
		n, ok := chain.CashAddrNetwork(lower[:i])
		if !ok {
			return "", 0, nil, fmt.Errorf("%w: unknown prefix %q", errInvalidCashAddr, lower[:i])
		}
		networks = []models.NetworkType{n}
	}

	for _, n := range networks {
		params, ok := chain.CashAddrParams(n)
		if !ok {
			continue
		}
		decoded, err := bchutil.DecodeAddress(lower, params)
		if err != nil || !decoded.IsForNet(params) {
			continue
		}

		switch decoded.(type) {
		case *bchutil.AddressPubKeyHash:
			kind = KindP2PKH
		case *bchutil.AddressScriptHash:
			kind = KindP2SH
		default:
			// legacy base58 and raw public keys are not cashaddr
			continue
		}

		script := decoded.ScriptAddress()
		hash = make([]byte, len(script))
		copy(hash, script)
		return n, kind, hash, nil
	}
	return "", 0, nil, fmt.Errorf("%w: %q", errInvalidCashAddr, addr)
}
