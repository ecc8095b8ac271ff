// Package cmd implements the molecule CLI commands.
package cmd

import (
	"path/filepath"

	charm "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/molecule-go/molecule/pkg/config"
	"github.com/molecule-go/molecule/pkg/driver"
	log "github.com/molecule-go/molecule/pkg/logger"
	"github.com/molecule-go/molecule/pkg/provisioner/ansible"
	"github.com/molecule-go/molecule/pkg/schema"
)

// DefaultPlaybookFileName is the playbook run when --playbook is not given.
const DefaultPlaybookFileName = "playbook.yml"

var (
	moleculeFileFlag string
	debugFlag        bool
)

// RootCmd is the molecule root command.
var RootCmd = &cobra.Command{
	Use:   "molecule",
	Short: "Test Ansible roles against scenario instances",
	Long:  `Molecule renders the Ansible configuration and inventory for a scenario and drives 'ansible-playbook' against its instances.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			log.SetLevel(charm.DebugLevel)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns any execution error.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&moleculeFileFlag, "molecule-file", config.MoleculeFileName,
		"Path to the scenario configuration file")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"Enable debug logging and pass --debug to ansible-playbook")
}

// newProvisioner loads the scenario configuration and constructs the
// provisioner with its driver.
func newProvisioner() (*ansible.Provisioner, schema.MoleculeConfiguration, error) {
	cfg, err := config.Load(moleculeFileFlag, schema.CliArgs{Debug: debugFlag})
	if err != nil {
		return nil, cfg, err
	}

	drv, err := driver.New(cfg)
	if err != nil {
		return nil, cfg, err
	}

	return ansible.New(cfg, drv), cfg, nil
}

// prepareScenario writes every generated file a playbook run depends on:
// ansible.cfg, the host/group vars overlays, and the inventory.
func prepareScenario(p *ansible.Provisioner) error {
	if err := p.WriteConfig(); err != nil {
		return err
	}
	if err := p.AddOrUpdateVars(ansible.HostVarsTarget); err != nil {
		return err
	}
	if err := p.AddOrUpdateVars(ansible.GroupVarsTarget); err != nil {
		return err
	}
	return p.WriteInventory()
}

// resolvePlaybook resolves a relative playbook path against the scenario
// directory.
func resolvePlaybook(cfg schema.MoleculeConfiguration, playbookPath string) string {
	if filepath.IsAbs(playbookPath) {
		return playbookPath
	}
	return filepath.Join(cfg.ScenarioDirectory, playbookPath)
}
