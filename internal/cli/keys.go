package cli

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/chain"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/wallet"
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

func (a *app) keysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Derive keys and addresses from a mnemonic",
	}
	cmd.AddCommand(a.keysRequestCommand(), a.keysAddressCommand())
	return cmd
}

func (a *app) keysRequestCommand() *cobra.Command {
	var mnemonic, passphrase string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Print the request signing key pair (m/1'/0)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := wallet.SeedFromMnemonic(mnemonic, passphrase)
			if err != nil {
				return err
			}
			key, err := wallet.RequestKey(seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printLine(out, "private:", hex.EncodeToString(key.Serialize()))
			printLine(out, "public: ", hex.EncodeToString(key.PubKey().SerializeCompressed()))
			return nil
		},
	}

	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 mnemonic")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP-39 passphrase")
	_ = cmd.MarkFlagRequired("mnemonic")
	return cmd
}

func (a *app) keysAddressCommand() *cobra.Command {
	var (
		chainName  string
		network    string
		mnemonic   string
		passphrase string
		index      uint32
		segwit     bool
	)

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive a receive address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := models.Chain(strings.ToLower(chainName))
			netType := chain.ClassifyNetworkType(chain.ResolveNetworkAlias(c, network, chain.ToGeneric))

			g, err := wallet.NewGenerator(c, netType, segwit)
			if err != nil {
				return err
			}
			seed, err := wallet.SeedFromMnemonic(mnemonic, passphrase)
			if err != nil {
				return err
			}
			derived, err := g.GenerateFromSeed(seed, index)
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), derived.Address, derived.DerivationPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&chainName, "chain", "btc", "chain to derive for")
	cmd.Flags().StringVar(&network, "network", "mainnet", "network name")
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 mnemonic")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP-39 passphrase")
	cmd.Flags().Uint32Var(&index, "index", 0, "address index")
	cmd.Flags().BoolVar(&segwit, "segwit", false, "derive a native segwit address")
	_ = cmd.MarkFlagRequired("mnemonic")
	return cmd
}
