package address

import (
	"bytes"
	"errors"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

var (
	// ErrInvalidSourceAddress is returned by Translate when the input matches no fork.
	ErrInvalidSourceAddress = errors.New("invalid source address")
	// ErrUnrecognizedAddress means the string is not valid under the requested fork.
	ErrUnrecognizedAddress = errors.New("unrecognized address")
	ErrUnsupportedFork     = errors.New("unsupported fork")
	// ErrIncompatibleTarget means the target grammar cannot express the identity kind,
	// e.g. a witness program on a fork without segwit.
	ErrIncompatibleTarget = errors.New("identity kind not supported by target fork")
	ErrUnsupportedFormat  = errors.New("unsupported address format")
)

// Kind is the script template an address commits to.
type Kind uint8

// Address kinds.
const (
	KindP2PKH Kind = iota + 1
	KindP2SH
	KindP2WPKH
	KindP2WSH
	KindP2TR
)

var kindNames = map[Kind]string{
	KindP2PKH:  "p2pkh",
	KindP2SH:   "p2sh",
	KindP2WPKH: "p2wpkh",
	KindP2WSH:  "p2wsh",
	KindP2TR:   "p2tr",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsWitness reports whether the kind is a segwit program.
func (k Kind) IsWitness() bool {
	return k == KindP2WPKH || k == KindP2WSH || k == KindP2TR
}

// Identity is a decoded address: the hash or witness program it pays to,
// together with where it was found.
type Identity struct {
	Fork    models.Chain
	Network models.NetworkType
	Kind    Kind
	Hash    []byte
	Format  models.AddressFormat
}

// Equivalent reports whether both identities pay to the same script,
// regardless of fork, network or format.
func (id Identity) Equivalent(other Identity) bool {
	return id.Kind == other.Kind && bytes.Equal(id.Hash, other.Hash)
}

// Key returns a comparable representation of the identity's script commitment.
func (id Identity) Key() string {
	return id.Kind.String() + ":" + string(id.Hash)
}
