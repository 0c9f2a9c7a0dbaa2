package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/adminauth"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/storage"
)

func (a *app) adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Sign and check administrative requests",
	}
	cmd.AddCommand(a.adminSignCommand(), a.adminVerifyCommand())
	return cmd
}

func requestFlags(cmd *cobra.Command, req *adminauth.Request) {
	cmd.Flags().StringVar(&req.Method, "method", "POST", "HTTP method")
	cmd.Flags().StringVar(&req.URL, "url", "", "request URL path")
	cmd.Flags().StringVar(&req.Body, "body", "", "request body")
	_ = cmd.MarkFlagRequired("url")
}

func (a *app) adminSignCommand() *cobra.Command {
	var (
		req        adminauth.Request
		privateKey string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a request with the request key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signed, err := adminauth.Sign(req, privateKey)
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), signed.Signature)
			return nil
		},
	}

	requestFlags(cmd, &req)
	cmd.Flags().StringVar(&privateKey, "key", "", "hex request private key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) adminVerifyCommand() *cobra.Command {
	var (
		req   adminauth.Request
		trust []string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Authenticate a signed request against trusted keys",
		Long: `Authenticate a signed request. Trusted keys come from ADMIN_PUBKEYS and
any --trust flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := storage.NewMemoryKeyStore()
			for _, k := range append(append([]string{}, a.cfg.AdminPubKeys...), trust...) {
				if err := keys.Add(k); err != nil {
					return fmt.Errorf("trusted key %q: %w", k, err)
				}
			}

			auth := adminauth.NewAuthenticator(keys, a.logger, a.metrics)
			if err := auth.Authenticate(req); err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), "authenticated")
			return nil
		},
	}

	requestFlags(cmd, &req)
	cmd.Flags().StringVar(&req.PublicKey, "pubkey", "", "hex public key of the signer")
	cmd.Flags().StringVar(&req.Signature, "sig", "", "hex request signature")
	cmd.Flags().StringArrayVar(&trust, "trust", nil, "additional trusted public key, repeatable")
	return cmd
}
