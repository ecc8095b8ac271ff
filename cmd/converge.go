package cmd

import (
	"github.com/spf13/cobra"

	u "github.com/molecule-go/molecule/pkg/utils"
)

var convergePlaybookFlag string

var convergeCmd = &cobra.Command{
	Use:     "converge",
	Short:   "Run the scenario playbook with ansible-playbook",
	Long:    `This command renders the scenario's generated files and executes 'ansible-playbook' against the scenario inventory`,
	Example: "molecule converge --playbook playbook.yml",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cfg, err := newProvisioner()
		if err != nil {
			return err
		}

		if err := prepareScenario(p); err != nil {
			return err
		}

		output, err := p.Converge(resolvePlaybook(cfg, convergePlaybookFlag))
		if err != nil {
			return err
		}

		u.PrintMessage(output)
		return nil
	},
}

func init() {
	convergeCmd.Flags().StringVarP(&convergePlaybookFlag, "playbook", "p", DefaultPlaybookFileName,
		"Playbook to run, relative to the scenario directory")
	RootCmd.AddCommand(convergeCmd)
}
