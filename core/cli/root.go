package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level mojmap command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mojmap",
		Short: "Minecraft obfuscation mapping converter",
		Long:  "Mojmap downloads the official Minecraft client mappings and converts them into a structured table with JVM descriptors, ready for JNI consumers.",
	}

	cmd.Version = version

	return cmd
}
