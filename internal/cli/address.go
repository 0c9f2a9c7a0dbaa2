package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/address"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/storage"
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

func (a *app) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <address>...",
		Short: "Show the fork, network and script type of addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, addr := range args {
				id, ok := address.Identify(addr)
				if !ok {
					printLine(out, addr, "unrecognized")
					continue
				}
				format := id.Format
				if format == "" {
					format = models.FormatLegacy
				}
				printLine(out, addr, id.Fork, id.Network, id.Kind, format)
			}
			return nil
		},
	}
}

func (a *app) translateCommand() *cobra.Command {
	var (
		target string
		format string
	)

	cmd := &cobra.Command{
		Use:   "translate <address>",
		Short: "Re-encode an address for another fork",
		Long: `Re-encode an address for another fork on the same network class. The
result pays to the same script as the input.

bch output is legacy unless --format or BCH_ADDRESS_FORMAT selects cashaddr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fork := models.Chain(strings.ToLower(target))
			outFormat := models.AddressFormat(strings.ToLower(format))
			if outFormat == "" && fork == models.ChainBCH {
				outFormat = a.cfg.BCHAddressFormat
			}

			source := "unknown"
			if c, ok := address.Classify(args[0]); ok {
				source = string(c)
			}

			translated, err := address.TranslateFormat(args[0], fork, outFormat)
			a.metrics.ObserveTranslation(source, string(fork), err == nil)
			if err != nil {
				a.logger.Debug("translation failed",
					zap.String("source", source),
					zap.String("target", string(fork)),
					zap.Error(err),
				)
				return err
			}
			printLine(cmd.OutOrStdout(), translated)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "target fork (btc, bch, doge, ltc)")
	cmd.Flags().StringVar(&format, "format", "", "output format (legacy, cashaddr)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) equivalentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent <address> <address>",
		Short: "Check whether two addresses pay to the same script",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd.OutOrStdout(), address.Equivalent(args[0], args[1]))
			return nil
		},
	}
}

func (a *app) validateCommand() *cobra.Command {
	var (
		chainName string
		network   string
	)

	cmd := &cobra.Command{
		Use:   "validate <address>",
		Short: "Check an address against a chain and network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := address.IsValid(models.Chain(strings.ToLower(chainName)), network, args[0])
			printLine(cmd.OutOrStdout(), ok)
			return nil
		},
	}

	cmd.Flags().StringVar(&chainName, "chain", "", "chain of the address")
	cmd.Flags().StringVar(&network, "network", "mainnet", "network name")
	_ = cmd.MarkFlagRequired("chain")
	return cmd
}

func (a *app) dedupeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe <address>...",
		Short: "Collapse addresses that pay to the same script",
		Long: `Collapse addresses that pay to the same script, whatever fork or format
they are written in. The last spelling of each identity wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book := storage.NewMemoryAddressBook()
			for _, addr := range args {
				if err := book.Add(addr); err != nil {
					return fmt.Errorf("%s: %w", addr, err)
				}
			}
			unique, err := book.List()
			if err != nil {
				return err
			}
			for _, addr := range unique {
				printLine(cmd.OutOrStdout(), addr)
			}
			return nil
		},
	}
}
