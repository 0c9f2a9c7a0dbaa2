// Package cli wires the address, network, message and key operations into
// the walletid command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/config"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/metrics"
)

// app is the state shared by every subcommand.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewRootCommand builds a fresh walletid command tree. logger and m may be nil.
func NewRootCommand(cfg config.Config, logger *zap.Logger, m *metrics.Metrics) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{cfg: cfg, logger: logger, metrics: m}

	root := &cobra.Command{
		Use:   "walletid",
		Short: "Inspect wallet addresses, networks and signed messages",
		Long: `walletid classifies bitcoin-family addresses by fork, translates them
between forks and formats, maps network names between chains and verifies
detached secp256k1 signatures.

Examples:
  walletid classify 1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH
  walletid translate 1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH --to bch --format cashaddr
  walletid network resolve ltc testnet`,
		SilenceUsage: true,
	}

	root.AddCommand(
		a.classifyCommand(),
		a.translateCommand(),
		a.equivalentCommand(),
		a.validateCommand(),
		a.dedupeCommand(),
		a.networkCommand(),
		a.messageCommand(),
		a.keysCommand(),
		a.adminCommand(),
	)
	return root
}

func printLine(w io.Writer, a ...any) {
	fmt.Fprintln(w, a...)
}
