package address

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

func TestCashAddr_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		hash string
		addr string
	}{
		{"p2pkh", KindP2PKH, "76a04053bda0a88bda5177b86a15c3b29f559873", "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a"},
		{"p2sh", KindP2SH, "76a04053bda0a88bda5177b86a15c3b29f559873", "bitcoincash:ppm2qsznhks23z7629mms6s4cwef74vcwvn0h829pq"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hex.DecodeString(tt.hash)
			require.NoError(t, err)

			got, err := encodeCashAddr(models.Mainnet, tt.kind, hash)
			require.NoError(t, err)
			assert.Equal(t, tt.addr, got)

			network, kind, decoded, err := decodeCashAddr(tt.addr)
			require.NoError(t, err)
			assert.Equal(t, models.Mainnet, network)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, hash, decoded)
		})
	}
}

func TestCashAddr_Networks(t *testing.T) {
	hash, err := hex.DecodeString("76a04053bda0a88bda5177b86a15c3b29f559873")
	require.NoError(t, err)

	for _, network := range []models.NetworkType{models.Testnet, models.Regtest} {
		t.Run(string(network), func(t *testing.T) {
			addr, err := encodeCashAddr(network, KindP2PKH, hash)
			require.NoError(t, err)

			got, _, decoded, err := decodeCashAddr(addr)
			require.NoError(t, err)
			assert.Equal(t, network, got)
			assert.Equal(t, hash, decoded)

			// the checksum commits to the prefix, so a bare payload still
			// resolves to its own network
			bare := addr[strings.IndexByte(addr, ':')+1:]
			got, _, _, err = decodeCashAddr(bare)
			require.NoError(t, err)
			assert.Equal(t, network, got)
		})
	}
}

func TestCashAddr_Decode(t *testing.T) {
	const addr = "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a"

	t.Run("uppercase", func(t *testing.T) {
		_, kind, _, err := decodeCashAddr(strings.ToUpper(addr))
		require.NoError(t, err)
		assert.Equal(t, KindP2PKH, kind)
	})

	t.Run("without prefix", func(t *testing.T) {
		network, _, _, err := decodeCashAddr(strings.TrimPrefix(addr, "bitcoincash:"))
		require.NoError(t, err)
		assert.Equal(t, models.Mainnet, network)
	})

	rejected := map[string]string{
		"mixed case":        "bitcoincash:Qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		"bad checksum":      addr[:len(addr)-1] + "q",
		"invalid character": "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6b",
		"unknown prefix":    "bitcoin:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		"wrong prefix":      "bchtest:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		"legacy":            "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu",
		"empty":             "",
	}
	for name, input := range rejected {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := decodeCashAddr(input)
			assert.ErrorIs(t, err, errInvalidCashAddr)
		})
	}
}

func TestCashAddr_EncodeRejects(t *testing.T) {
	_, err := encodeCashAddr(models.Mainnet, KindP2WPKH, make([]byte, 20))
	assert.ErrorIs(t, err, ErrIncompatibleTarget)

	_, err = encodeCashAddr(models.Mainnet, KindP2PKH, make([]byte, 32))
	assert.ErrorIs(t, err, errInvalidCashAddr)

	_, err = encodeCashAddr("signet", KindP2PKH, make([]byte, 20))
	assert.ErrorIs(t, err, ErrUnsupportedFork)
}
