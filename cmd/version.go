package cmd

import (
	"fmt"

	"github.com/kedare/metro/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata for this binary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Version:    %s\n", info.Version)
		fmt.Fprintf(out, "Commit:     %s\n", info.Commit)
		fmt.Fprintf(out, "Built:      %s\n", info.BuildDate)
		fmt.Fprintf(out, "Platform:   %s\n", info.Platform)
		fmt.Fprintf(out, "Go Version: %s\n", info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
