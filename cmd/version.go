package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	u "github.com/molecule-go/molecule/pkg/utils"
	"github.com/molecule-go/molecule/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the CLI version",
	Long:    `This command prints the CLI version`,
	Example: "molecule version",
	Run: func(cmd *cobra.Command, args []string) {
		u.PrintMessage(fmt.Sprintf("Molecule %s on %s/%s", version.Version, runtime.GOOS, runtime.GOARCH))
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
