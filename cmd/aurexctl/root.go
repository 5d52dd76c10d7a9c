// AngelaMos | 2026
// root.go

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aurexctl",
		Short:        "Operational tooling for the Aurex API",
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(newMigrateCmd(), newKeygenCmd(), newTokenCmd())
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
