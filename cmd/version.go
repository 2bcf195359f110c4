package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the interpreter version.  Release builds set it with
// -ldflags "-X github.com/emalang/ema/cmd.Version=...".
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ema", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
