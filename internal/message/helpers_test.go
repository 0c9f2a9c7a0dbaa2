package message

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
)

func signDigest(key *btcec.PrivateKey, digest []byte) []byte {
	return ecdsa.Sign(key, digest).Serialize()
}

// derComponents splits a DER signature into 32-byte big-endian R and S.
func derComponents(t *testing.T, der []byte) ([]byte, []byte) {
	t.Helper()
	require.Equal(t, byte(0x30), der[0])

	readInt := func(b []byte) ([]byte, []byte) {
		require.Equal(t, byte(0x02), b[0])
		n := int(b[1])
		v := b[2 : 2+n]
		for len(v) > 32 && v[0] == 0 {
			v = v[1:]
		}
		out := make([]byte, 32)
		copy(out[32-len(v):], v)
		return out, b[2+n:]
	}

	r, rest := readInt(der[2:])
	s, _ := readInt(rest)
	return r, s
}
