package storage

import "errors"

// ErrUnrecognizedAddress is returned when an address matches no fork.
var ErrUnrecognizedAddress = errors.New("unrecognized address")

// ErrInvalidPublicKey is returned for keys that are not SEC1 secp256k1 points.
var ErrInvalidPublicKey = errors.New("invalid public key")

// AddressBook tracks addresses by the script they pay to, so every encoding
// of the same identity (any fork, any format) is treated as one entry.
type AddressBook interface {
	// Add records an address. Adding an equivalent address replaces the stored spelling.
	Add(address string) error
	// Remove forgets the address and every equivalent encoding.
	Remove(address string) error
	// Contains reports whether the address or an equivalent one was added.
	Contains(address string) (bool, error)
	// List returns the stored addresses in their original spelling.
	List() ([]string, error)
}

// KeyStore manages the set of trusted public keys.
type KeyStore interface {
	// Add trusts a hex-encoded public key.
	Add(publicKey string) error
	// Remove stops trusting a public key.
	Remove(publicKey string) error
	// Contains checks if the key is trusted, regardless of its SEC1 form.
	Contains(publicKey string) (bool, error)
	// List returns all trusted keys as compressed hex.
	List() ([]string, error)
}
