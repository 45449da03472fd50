package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Output formats accepted by "convert".
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ConvertOptions holds the parsed flags for "convert".
type ConvertOptions struct {
	Version string
	Latest  bool
	Output  string
	Format  string
}

// ConvertRunFunc is the function signature for the convert command handler.
// It is injected by the wiring layer (cmd/mojmap/main.go).
type ConvertRunFunc func(ctx context.Context, opts ConvertOptions) error

// NewConvertCmd creates the "convert" subcommand.
func NewConvertCmd(runFunc ConvertRunFunc) *cobra.Command {
	var opts ConvertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Download and convert the client mappings for a version",
		Long:  "Download the ProGuard client mappings for a Minecraft version, convert them into a structured mapping table, and write the result to disk. With no --version and no --latest, an interactive version picker is shown.",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateConvertFlags(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Version, "version", "", "Version id to convert (e.g. 1.21.4)")
	cmd.Flags().BoolVar(&opts.Latest, "latest", false, "Convert the newest stable release without prompting")
	cmd.Flags().StringVar(&opts.Output, "output", "mappings.json", "Path of the output file")
	cmd.Flags().StringVar(&opts.Format, "format", FormatJSON, "Output format: json or yaml")

	return cmd
}

func validateConvertFlags(opts ConvertOptions) error {
	if opts.Version != "" && opts.Latest {
		return fmt.Errorf("--version and --latest are mutually exclusive")
	}
	if opts.Format != FormatJSON && opts.Format != FormatYAML {
		return fmt.Errorf("unsupported format %q (expected %s or %s)", opts.Format, FormatJSON, FormatYAML)
	}
	if opts.Output == "" {
		return fmt.Errorf("--output must not be empty")
	}
	return nil
}
