package cmd

import (
	"github.com/spf13/cobra"
)

var checkPlaybookFlag string

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Dry-run the scenario playbook",
	Long:    `This command renders the scenario's generated files and executes 'ansible-playbook --check' against the scenario inventory`,
	Example: "molecule check",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cfg, err := newProvisioner()
		if err != nil {
			return err
		}

		if err := prepareScenario(p); err != nil {
			return err
		}

		return p.Check(resolvePlaybook(cfg, checkPlaybookFlag))
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkPlaybookFlag, "playbook", "p", DefaultPlaybookFileName,
		"Playbook to dry-run, relative to the scenario directory")
	RootCmd.AddCommand(checkCmd)
}
