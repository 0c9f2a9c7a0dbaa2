// Package message hashes and verifies detached secp256k1 signatures over
// text messages.
package message

import (
	"crypto/sha256"
	"strings"
)

// Message is text split into ordered segments. Segments are concatenated
// with no separator before hashing.
type Message []string

// Text wraps a single string as a Message.
func Text(s string) Message {
	return Message{s}
}

// Bytes returns the concatenated segments.
func (m Message) Bytes() []byte {
	return []byte(strings.Join(m, ""))
}

// HashMessage returns SHA256(SHA256(msg)). With reverseBytes the digest is
// returned in reversed byte order, which is how message hashes are displayed
// and historically signed.
func HashMessage(msg Message, reverseBytes bool) [32]byte {
	digest := doubleSHA256(msg.Bytes())
	if reverseBytes {
		for i, j := 0, len(digest)-1; i < j; i, j = i+1, j-1 {
			digest[i], digest[j] = digest[j], digest[i]
		}
	}
	return digest
}

// DisplayHash is HashMessage with the default reversed byte order.
func DisplayHash(msg Message) [32]byte {
	return HashMessage(msg, true)
}

func doubleSHA256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
