package cmd

import (
	"github.com/spf13/cobra"
)

var syntaxPlaybookFlag string

var syntaxCmd = &cobra.Command{
	Use:     "syntax",
	Short:   "Syntax-check the scenario playbook",
	Long:    `This command renders the scenario's generated files and executes 'ansible-playbook --syntax-check' against the scenario inventory`,
	Example: "molecule syntax",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cfg, err := newProvisioner()
		if err != nil {
			return err
		}

		if err := prepareScenario(p); err != nil {
			return err
		}

		return p.Syntax(resolvePlaybook(cfg, syntaxPlaybookFlag))
	},
}

func init() {
	syntaxCmd.Flags().StringVarP(&syntaxPlaybookFlag, "playbook", "p", DefaultPlaybookFileName,
		"Playbook to check, relative to the scenario directory")
	RootCmd.AddCommand(syntaxCmd)
}
