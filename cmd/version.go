package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by -ldflags on release builds; "(devel)" means a
// local build that the updater will refuse to replace.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("retain %s\n", version)
	},
}
