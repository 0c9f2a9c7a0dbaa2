package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/message"
)

func (a *app) messageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Hash, sign and verify text messages",
	}
	cmd.AddCommand(a.messageHashCommand(), a.messageVerifyCommand(), a.messageSignCommand())
	return cmd
}

func (a *app) messageHashCommand() *cobra.Command {
	var noReverse bool

	cmd := &cobra.Command{
		Use:   "hash <segment>...",
		Short: "Print the double SHA-256 of the concatenated segments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest := message.HashMessage(message.Message(args), !noReverse)
			printLine(cmd.OutOrStdout(), hex.EncodeToString(digest[:]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noReverse, "no-reverse", false, "print the digest in natural byte order")
	return cmd
}

func (a *app) messageVerifyCommand() *cobra.Command {
	var (
		segments  []string
		signature string
		publicKey string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a detached signature",
		Long: `Verify a hex DER or compact signature over the message against a hex
public key. Prints "valid" or "invalid"; malformed input is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := message.NewVerifier(a.logger, a.metrics)
			result := "invalid"
			if v.VerifyMessage(message.Message(segments), signature, publicKey) {
				result = "valid"
			}
			printLine(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&segments, "msg", nil, "message segment, repeatable")
	cmd.Flags().StringVar(&signature, "sig", "", "hex signature")
	cmd.Flags().StringVar(&publicKey, "pubkey", "", "hex public key")
	_ = cmd.MarkFlagRequired("msg")
	_ = cmd.MarkFlagRequired("sig")
	_ = cmd.MarkFlagRequired("pubkey")
	return cmd
}

func (a *app) messageSignCommand() *cobra.Command {
	var (
		segments   []string
		privateKey string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a hex private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := message.SignMessageHex(message.Message(segments), privateKey)
			if err != nil {
				return fmt.Errorf("sign: %w", err)
			}
			printLine(cmd.OutOrStdout(), sig)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&segments, "msg", nil, "message segment, repeatable")
	cmd.Flags().StringVar(&privateKey, "key", "", "hex private key")
	_ = cmd.MarkFlagRequired("msg")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
