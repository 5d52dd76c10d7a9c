// AngelaMos | 2026
// keys.go

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/aurex-pk/aurex-api/internal/auth"
	"github.com/aurex-pk/aurex-api/internal/config"
)

func newKeygenCmd() *cobra.Command {
	var privatePath, publicPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an ES256 key pair for signing identity tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				for _, p := range []string{privatePath, publicPath} {
					if _, err := os.Stat(p); err == nil {
						return fmt.Errorf("%s already exists, use --force to overwrite", p)
					}
				}
			}

			for _, p := range []string{privatePath, publicPath} {
				if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
					return fmt.Errorf("create key dir: %w", err)
				}
			}

			if err := auth.GenerateKeyPair(privatePath, publicPath); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", privatePath, publicPath)
			return err
		},
	}

	cmd.Flags().StringVar(&privatePath, "private", envOr("JWT_PRIVATE_KEY_PATH", "keys/private.pem"), "private key output path")
	cmd.Flags().StringVar(&publicPath, "public", envOr("JWT_PUBLIC_KEY_PATH", "keys/public.pem"), "public key output path")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing keys")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		cfg    config.JWTConfig
		claims auth.IdentityClaims
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an identity token for local development",
		Example: `  aurexctl token --subject idp|42 --email owner@acme.pk
  curl -H "Authorization: Bearer $(aurexctl token --subject idp|42)" localhost:8080/api/companies`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := auth.NewJWTManager(cfg)
			if err != nil {
				return err
			}

			token, err := m.CreateAccessToken(claims)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.PrivateKeyPath, "private", envOr("JWT_PRIVATE_KEY_PATH", "keys/private.pem"), "private key path")
	f.StringVar(&cfg.Issuer, "issuer", envOr("JWT_ISSUER", "aurex-identity"), "token issuer")
	f.StringVar(&cfg.Audience, "audience", envOr("JWT_AUDIENCE", "aurex-api"), "token audience")
	f.DurationVar(&cfg.AccessTokenExpire, "ttl", time.Hour, "token lifetime")
	f.StringVar(&claims.Subject, "subject", "", "identity subject")
	f.StringVar(&claims.Email, "email", "", "email claim")
	f.StringVar(&claims.Name, "name", "", "name claim")
	_ = cmd.MarkFlagRequired("subject") //nolint:errcheck

	return cmd
}
