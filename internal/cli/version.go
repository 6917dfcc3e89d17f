package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v, commit, built := GetVersionInfo()
		fmt.Printf("changelogger %s (commit: %s, built: %s)\n", v, commit, built)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
