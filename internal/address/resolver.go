// Package address classifies wallet addresses by fork and re-encodes them
// across forks without changing the script they pay to.
package address

import (
	"fmt"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// Forks is the classification priority. A string that is valid under several
// grammars (a legacy BCH address is also a BTC address) belongs to the first
// fork listed here.
var Forks = [...]models.Chain{
	models.ChainBTC,
	models.ChainBCH,
	models.ChainDOGE,
	models.ChainLTC,
}

// Classify returns the first fork, in Forks order, whose grammar accepts
// addr. An unrecognized address is reported with ok == false.
func Classify(addr string) (fork models.Chain, ok bool) {
	id, ok := Identify(addr)
	if !ok {
		return "", false
	}
	return id.Fork, true
}

// Identify classifies addr and returns its decoded identity.
func Identify(addr string) (Identity, bool) {
	if addr == "" {
		return Identity{}, false
	}
	for _, fork := range Forks {
		id, err := Decode(addr, fork)
		if err == nil {
			return id, true
		}
	}
	return Identity{}, false
}

// Decode decodes addr under one fork's grammar.
func Decode(addr string, fork models.Chain) (Identity, error) {
	c, err := codecFor(fork)
	if err != nil {
		return Identity{}, err
	}
	return c.decode(addr)
}

// Encode renders the identity under its Fork. An empty format selects the
// fork's default, which is legacy for every fork.
func Encode(id Identity, format models.AddressFormat) (string, error) {
	c, err := codecFor(id.Fork)
	if err != nil {
		return "", err
	}
	return c.encode(id, format)
}

// Translate re-encodes addr for the target fork on the same network class,
// using the target's default format.
//
// Legacy base58 addresses carry no testnet/regtest distinction, so a regtest
// legacy address is read as testnet and lands on the target's testnet. The
// hash and script kind are always preserved.
func Translate(addr string, target models.Chain) (string, error) {
	return TranslateFormat(addr, target, "")
}

// TranslateFormat is Translate with an explicit output format. Only bch
// accepts models.FormatCashAddr.
func TranslateFormat(addr string, target models.Chain, format models.AddressFormat) (string, error) {
	id, ok := Identify(addr)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSourceAddress, addr)
	}
	id.Fork = target
	out, err := Encode(id, format)
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", target, err)
	}
	return out, nil
}

// Equivalent reports whether two addresses, on any forks and in any formats,
// pay to the same script. Unrecognized addresses are never equivalent.
func Equivalent(a, b string) bool {
	ida, ok := Identify(a)
	if !ok {
		return false
	}
	idb, ok := Identify(b)
	if !ok {
		return false
	}
	return ida.Equivalent(idb)
}
