package message

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignMessage returns a DER signature of msg that CheckMessage accepts for
// the key's public half. Signing is deterministic (RFC 6979).
func SignMessage(msg Message, key *btcec.PrivateKey) []byte {
	hash := HashMessage(msg, false)
	return ecdsa.Sign(key, hash[:]).Serialize()
}

// SignMessageHex signs msg with a hex-encoded 32-byte private key and returns
// the hex-encoded DER signature.
func SignMessageHex(msg Message, privateKey string) (string, error) {
	raw, err := hex.DecodeString(privateKey)
	if err != nil {
		return "", fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != btcec.PrivKeyBytesLen {
		return "", fmt.Errorf("private key must be %d bytes, got %d", btcec.PrivKeyBytesLen, len(raw))
	}
	key, _ := btcec.PrivKeyFromBytes(raw)
	return hex.EncodeToString(SignMessage(msg, key)), nil
}
