package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/chain"
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

func (a *app) networkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Map network names between chains",
	}
	cmd.AddCommand(a.networkResolveCommand(), a.networkTypeCommand(), a.networkCompatCommand())
	return cmd
}

func (a *app) networkResolveCommand() *cobra.Command {
	var generic bool

	cmd := &cobra.Command{
		Use:   "resolve <chain> <network>",
		Short: "Translate a network name for a chain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := chain.ToSpecific
			if generic {
				dir = chain.ToGeneric
			}
			c := models.Chain(strings.ToLower(args[0]))
			printLine(cmd.OutOrStdout(), chain.ResolveNetworkAlias(c, args[1], dir))
			return nil
		},
	}

	cmd.Flags().BoolVar(&generic, "generic", false, "map a chain-specific name back to its generic name")
	return cmd
}

func (a *app) networkTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "type <network>",
		Short: "Classify a network name as mainnet, testnet or regtest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd.OutOrStdout(), chain.ClassifyNetworkType(args[0]))
			return nil
		},
	}
}

func (a *app) networkCompatCommand() *cobra.Command {
	var (
		chainName    string
		allowRegtest bool
	)

	cmd := &cobra.Command{
		Use:   "compat <network> <network>",
		Short: "Check whether two network names refer to the same network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			allow := a.cfg.AllowRegtestCrossover
			if cmd.Flags().Changed("allow-regtest") {
				allow = allowRegtest
			}
			c := models.Chain(strings.ToLower(chainName))
			printLine(cmd.OutOrStdout(), chain.NetworksCompatible(args[0], args[1], c, allow))
			return nil
		},
	}

	cmd.Flags().StringVar(&chainName, "chain", "", "chain whose naming applies")
	cmd.Flags().BoolVar(&allowRegtest, "allow-regtest", false, "treat testnet and regtest as compatible")
	_ = cmd.MarkFlagRequired("chain")
	return cmd
}
