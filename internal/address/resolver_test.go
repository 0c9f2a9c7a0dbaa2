package address

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

const (
	// Hash160 of the compressed generator point (private key 1).
	genHash160  = "751e76e8199196d454941c45d1b3a323f1433bd6"
	genP2PKH    = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	genP2WPKH   = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	bchLegacy   = "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu"
	bchCashAddr = "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustEncode(t *testing.T, id Identity, format models.AddressFormat) string {
	t.Helper()
	addr, err := Encode(id, format)
	require.NoError(t, err)
	return addr
}

func TestForks_PriorityOrder(t *testing.T) {
	assert.Equal(t, [...]models.Chain{models.ChainBTC, models.ChainBCH, models.ChainDOGE, models.ChainLTC}, Forks)
}

func TestClassify_KnownAddresses(t *testing.T) {
	tests := []struct {
		addr string
		want models.Chain
	}{
		{genP2PKH, models.ChainBTC},
		{genP2WPKH, models.ChainBTC},
		{bchCashAddr, models.ChainBCH},
		{strings.TrimPrefix(bchCashAddr, "bitcoincash:"), models.ChainBCH},
		// legacy bch shares btc version bytes and resolves to btc by priority
		{bchLegacy, models.ChainBTC},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got, ok := Classify(tt.addr)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_NotFound(t *testing.T) {
	for _, addr := range []string{
		"",
		"not-an-address",
		"0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		genP2PKH[:len(genP2PKH)-1],
		// compressed public key hex is accepted by btcutil but is not an address
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	} {
		got, ok := Classify(addr)
		assert.False(t, ok, "address %q", addr)
		assert.Empty(t, got)
	}
}

// Every identity encoded under a fork's own grammar classifies back to that
// fork, unless its version bytes collide with an earlier fork.
func TestClassify_EncodedUnderFork(t *testing.T) {
	hash20 := mustHex(t, genHash160)
	hash32 := make([]byte, 32)
	for i := range hash32 {
		hash32[i] = byte(i + 1)
	}

	tests := []struct {
		id     Identity
		format models.AddressFormat
		want   models.Chain
	}{
		{Identity{Fork: models.ChainBTC, Network: models.Mainnet, Kind: KindP2PKH, Hash: hash20}, "", models.ChainBTC},
		{Identity{Fork: models.ChainBTC, Network: models.Mainnet, Kind: KindP2SH, Hash: hash20}, "", models.ChainBTC},
		{Identity{Fork: models.ChainBTC, Network: models.Mainnet, Kind: KindP2WSH, Hash: hash32}, "", models.ChainBTC},
		{Identity{Fork: models.ChainBTC, Network: models.Mainnet, Kind: KindP2TR, Hash: hash32}, "", models.ChainBTC},
		{Identity{Fork: models.ChainBTC, Network: models.Testnet, Kind: KindP2WPKH, Hash: hash20}, "", models.ChainBTC},
		{Identity{Fork: models.ChainBTC, Network: models.Regtest, Kind: KindP2WPKH, Hash: hash20}, "", models.ChainBTC},
		{Identity{Fork: models.ChainBCH, Network: models.Mainnet, Kind: KindP2PKH, Hash: hash20}, models.FormatCashAddr, models.ChainBCH},
		{Identity{Fork: models.ChainBCH, Network: models.Testnet, Kind: KindP2SH, Hash: hash20}, models.FormatCashAddr, models.ChainBCH},
		{Identity{Fork: models.ChainBCH, Network: models.Regtest, Kind: KindP2PKH, Hash: hash20}, models.FormatCashAddr, models.ChainBCH},
		{Identity{Fork: models.ChainBCH, Network: models.Mainnet, Kind: KindP2PKH, Hash: hash20}, models.FormatLegacy, models.ChainBTC},
		{Identity{Fork: models.ChainDOGE, Network: models.Mainnet, Kind: KindP2PKH, Hash: hash20}, "", models.ChainDOGE},
		{Identity{Fork: models.ChainDOGE, Network: models.Mainnet, Kind: KindP2SH, Hash: hash20}, "", models.ChainDOGE},
		{Identity{Fork: models.ChainDOGE, Network: models.Testnet, Kind: KindP2PKH, Hash: hash20}, "", models.ChainDOGE},
		{Identity{Fork: models.ChainLTC, Network: models.Mainnet, Kind: KindP2PKH, Hash: hash20}, "", models.ChainLTC},
		{Identity{Fork: models.ChainLTC, Network: models.Mainnet, Kind: KindP2SH, Hash: hash20}, "", models.ChainLTC},
		{Identity{Fork: models.ChainLTC, Network: models.Mainnet, Kind: KindP2WPKH, Hash: hash20}, "", models.ChainLTC},
		{Identity{Fork: models.ChainLTC, Network: models.Testnet, Kind: KindP2WPKH, Hash: hash20}, "", models.ChainLTC},
		{Identity{Fork: models.ChainLTC, Network: models.Testnet, Kind: KindP2SH, Hash: hash20}, "", models.ChainLTC},
		{Identity{Fork: models.ChainLTC, Network: models.Testnet, Kind: KindP2PKH, Hash: hash20}, "", models.ChainBTC},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%s/%s/%s/%s", tt.id.Fork, tt.id.Network, tt.id.Kind, tt.format)
		t.Run(name, func(t *testing.T) {
			addr := mustEncode(t, tt.id, tt.format)

			got, ok := Identify(addr)
			require.True(t, ok, "address %s", addr)
			assert.Equal(t, tt.want, got.Fork)
			assert.True(t, got.Equivalent(tt.id))

			// decoding under the fork it was encoded for always works
			own, err := Decode(addr, tt.id.Fork)
			require.NoError(t, err)
			assert.Equal(t, tt.id.Network, own.Network)
			assert.Equal(t, tt.id.Hash, own.Hash)
		})
	}
}

func TestDecode_BCHFormats(t *testing.T) {
	legacy, err := Decode(bchLegacy, models.ChainBCH)
	require.NoError(t, err)
	assert.Equal(t, models.FormatLegacy, legacy.Format)

	cash, err := Decode(bchCashAddr, models.ChainBCH)
	require.NoError(t, err)
	assert.Equal(t, models.FormatCashAddr, cash.Format)
	assert.Equal(t, models.Mainnet, cash.Network)

	assert.True(t, legacy.Equivalent(cash))
	assert.True(t, Equivalent(bchLegacy, bchCashAddr))
}

func TestDecode_UnsupportedFork(t *testing.T) {
	_, err := Decode(genP2PKH, models.ChainETH)
	assert.ErrorIs(t, err, ErrUnsupportedFork)

	_, err = Decode(genP2PKH, models.ChainDOGE)
	assert.ErrorIs(t, err, ErrUnrecognizedAddress)
}

func TestTranslate(t *testing.T) {
	t.Run("btc to bch defaults to legacy", func(t *testing.T) {
		got, err := Translate(genP2PKH, models.ChainBCH)
		require.NoError(t, err)
		assert.Equal(t, genP2PKH, got)
	})

	t.Run("btc to bch cashaddr", func(t *testing.T) {
		got, err := TranslateFormat(bchLegacy, models.ChainBCH, models.FormatCashAddr)
		require.NoError(t, err)
		assert.Equal(t, bchCashAddr, got)
	})

	t.Run("cashaddr to btc", func(t *testing.T) {
		got, err := Translate(bchCashAddr, models.ChainBTC)
		require.NoError(t, err)
		assert.Equal(t, bchLegacy, got)
	})

	t.Run("segwit to ltc", func(t *testing.T) {
		got, err := Translate(genP2WPKH, models.ChainLTC)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "ltc1q"), got)

		fork, ok := Classify(got)
		require.True(t, ok)
		assert.Equal(t, models.ChainLTC, fork)

		back, err := Translate(got, models.ChainBTC)
		require.NoError(t, err)
		assert.Equal(t, genP2WPKH, back)
	})

	t.Run("keeps network class", func(t *testing.T) {
		tb := mustEncode(t, Identity{Fork: models.ChainBTC, Network: models.Testnet, Kind: KindP2WPKH, Hash: mustHex(t, genHash160)}, "")
		got, err := Translate(tb, models.ChainLTC)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "tltc1"), got)
	})

	t.Run("segwit to doge", func(t *testing.T) {
		_, err := Translate(genP2WPKH, models.ChainDOGE)
		assert.ErrorIs(t, err, ErrIncompatibleTarget)
	})

	t.Run("segwit to bch", func(t *testing.T) {
		_, err := TranslateFormat(genP2WPKH, models.ChainBCH, models.FormatCashAddr)
		assert.ErrorIs(t, err, ErrIncompatibleTarget)
	})

	t.Run("invalid source", func(t *testing.T) {
		_, err := Translate("not-an-address", models.ChainBTC)
		assert.ErrorIs(t, err, ErrInvalidSourceAddress)

		_, err = Translate("", models.ChainBCH)
		assert.ErrorIs(t, err, ErrInvalidSourceAddress)
	})

	t.Run("unsupported target", func(t *testing.T) {
		_, err := Translate(genP2PKH, models.ChainETH)
		assert.ErrorIs(t, err, ErrUnsupportedFork)
	})

	t.Run("cashaddr only for bch", func(t *testing.T) {
		_, err := TranslateFormat(genP2PKH, models.ChainLTC, models.FormatCashAddr)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestTranslate_RoundTrip(t *testing.T) {
	hash := mustHex(t, genHash160)
	sources := []string{
		genP2PKH,
		genP2WPKH,
		bchCashAddr,
		mustEncode(t, Identity{Fork: models.ChainDOGE, Network: models.Mainnet, Kind: KindP2PKH, Hash: hash}, ""),
		mustEncode(t, Identity{Fork: models.ChainLTC, Network: models.Mainnet, Kind: KindP2SH, Hash: hash}, ""),
	}

	for _, src := range sources {
		srcFork, ok := Classify(src)
		require.True(t, ok, src)
		srcID, _ := Identify(src)

		for _, target := range Forks {
			t.Run(fmt.Sprintf("%s->%s", src, target), func(t *testing.T) {
				out, err := Translate(src, target)
				if srcID.Kind.IsWitness() && (target == models.ChainDOGE || target == models.ChainBCH) {
					assert.ErrorIs(t, err, ErrIncompatibleTarget)
					return
				}
				require.NoError(t, err)

				outID, err := Decode(out, target)
				require.NoError(t, err)
				assert.True(t, outID.Equivalent(srcID))

				back, err := Translate(out, srcFork)
				require.NoError(t, err)
				assert.True(t, Equivalent(back, src), "%s -> %s -> %s", src, out, back)
			})
		}
	}
}

func TestEquivalent(t *testing.T) {
	assert.True(t, Equivalent(genP2PKH, genP2PKH))
	assert.False(t, Equivalent(genP2PKH, genP2WPKH), "same hash, different kind")
	assert.False(t, Equivalent(genP2PKH, bchLegacy))
	assert.False(t, Equivalent("junk", "junk"))
}

func TestFromPublicKey(t *testing.T) {
	var one [32]byte
	one[31] = 1
	_, pub := btcec.PrivKeyFromBytes(one[:])

	addr, err := FromPublicKey(models.ChainBTC, models.Mainnet, pub.SerializeCompressed(), KindP2PKH)
	require.NoError(t, err)
	assert.Equal(t, genP2PKH, addr)

	addr, err = FromPublicKey(models.ChainBTC, models.Mainnet, pub.SerializeUncompressed(), KindP2WPKH)
	require.NoError(t, err)
	assert.Equal(t, genP2WPKH, addr)

	addr, err = FromPublicKey(models.ChainBTC, models.Mainnet, pub.SerializeUncompressed(), KindP2PKH)
	require.NoError(t, err)
	assert.NotEqual(t, genP2PKH, addr)

	_, err = FromPublicKey(models.ChainBTC, models.Mainnet, []byte{0x02, 0x01}, KindP2PKH)
	assert.Error(t, err)

	_, err = FromPublicKey(models.ChainBTC, models.Mainnet, pub.SerializeCompressed(), KindP2SH)
	assert.ErrorIs(t, err, ErrIncompatibleTarget)
}

func TestFromPublicKey_Hash160(t *testing.T) {
	pub := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

	addr, err := FromPublicKey(models.ChainLTC, models.Mainnet, pub, KindP2PKH)
	require.NoError(t, err)

	id, ok := Identify(addr)
	require.True(t, ok)
	assert.Equal(t, models.ChainLTC, id.Fork)
	assert.Equal(t, genHash160, hex.EncodeToString(id.Hash))
}

// Testnet and regtest share base58 version bytes, so a legacy regtest address
// is read as testnet and translated onto the target's testnet.
func TestTranslate_RegtestLegacyLandsOnTestnet(t *testing.T) {
	const (
		btcRegtest  = "mfWxJ45yp2SFn7UciZyNpvDKrzbhyfKrY8"
		dogeTestnet = "nUCAGGgZEPN1QyknmQe1oAku817bQAFKFt"
	)

	src, ok := Identify(btcRegtest)
	require.True(t, ok)
	assert.Equal(t, models.Testnet, src.Network)

	got, err := Translate(btcRegtest, models.ChainDOGE)
	require.NoError(t, err)
	assert.Equal(t, dogeTestnet, got)

	dst, ok := Identify(got)
	require.True(t, ok)
	assert.Equal(t, models.ChainDOGE, dst.Fork)
	assert.Equal(t, models.Testnet, dst.Network)
	assert.True(t, Equivalent(btcRegtest, got))
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		chain   models.Chain
		network string
		addr    string
		want    bool
	}{
		{models.ChainBTC, "livenet", genP2PKH, true},
		{models.ChainBTC, "mainnet", genP2WPKH, true},
		{models.ChainBTC, "testnet", genP2PKH, false},
		{models.ChainBCH, "livenet", bchCashAddr, true},
		{models.ChainBCH, "livenet", bchLegacy, true},
		{models.ChainDOGE, "livenet", genP2PKH, false},
		{models.ChainETH, "sepolia", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", true},
		{models.ChainMATIC, "mainnet", "0x742d35", false},
		{models.ChainSOL, "mainnet", genP2PKH, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s/%s", tt.chain, tt.network, tt.addr), func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.chain, tt.network, tt.addr))
		})
	}
}
