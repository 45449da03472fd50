package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// VersionsOptions holds the parsed flags for "versions".
type VersionsOptions struct {
	Limit int
	All   bool
}

// VersionsRunFunc is the function signature for the versions command handler.
// It is injected by the wiring layer (cmd/mojmap/main.go).
type VersionsRunFunc func(ctx context.Context, opts VersionsOptions) error

// NewVersionsCmd creates the "versions" subcommand.
func NewVersionsCmd(runFunc VersionsRunFunc) *cobra.Command {
	var opts VersionsOptions

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List available Minecraft versions",
		Long:  "List the Minecraft versions published in the Mojang version manifest, newest first. Only stable releases are shown unless --all is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of versions to list (0 = no limit)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Include snapshots and other non-release versions")

	return cmd
}
