package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mineral/pkg/mineral"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "List the named hooks usable with --before and --after",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range mineral.HookNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}
