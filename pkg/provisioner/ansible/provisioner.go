// Package ansible implements the provisioner: it builds the scenario
// inventory, renders ansible.cfg, persists host/group variable files to the
// ephemeral directory, and delegates playbook runs to `ansible-playbook`.
package ansible

import (
	"fmt"
	"os"
	"path/filepath"

	errUtils "github.com/molecule-go/molecule/errors"
	"github.com/molecule-go/molecule/pkg/config"
	"github.com/molecule-go/molecule/pkg/driver"
	log "github.com/molecule-go/molecule/pkg/logger"
	"github.com/molecule-go/molecule/pkg/merge"
	"github.com/molecule-go/molecule/pkg/perf"
	"github.com/molecule-go/molecule/pkg/playbook"
	"github.com/molecule-go/molecule/pkg/schema"
	u "github.com/molecule-go/molecule/pkg/utils"
)

// Generated file names inside the ephemeral directory.
const (
	InventoryFileName = "ansible_inventory.yml"
	ConfigFileName    = "ansible.cfg"
)

// Vars targets accepted by AddOrUpdateVars.
const (
	HostVarsTarget  = "host_vars"
	GroupVarsTarget = "group_vars"
)

// Provisioner assembles the inventory, configuration and variable files for
// one scenario and invokes `ansible-playbook` against them. All structures
// are recomputed from the configuration snapshot on every access.
type Provisioner struct {
	cfg schema.MoleculeConfiguration
	drv driver.Driver
}

// New returns a provisioner for the scenario configuration and driver.
func New(cfg schema.MoleculeConfiguration, drv driver.Driver) *Provisioner {
	return &Provisioner{cfg: cfg, drv: drv}
}

// Name returns the configured provisioner name.
func (p *Provisioner) Name() string {
	return p.cfg.Provisioner.Name
}

// DefaultConfigOptions returns the options used to construct ansible.cfg
// before user overrides are applied.
func (p *Provisioner) DefaultConfigOptions() map[string]map[string]any {
	return map[string]map[string]any{
		"defaults": {
			"ansible_managed":     "Ansible managed: Do NOT edit this file manually!",
			"retry_files_enabled": false,
			"roles_path":          "../../../../:$ANSIBLE_ROLES_PATH",
			"library":             fmt.Sprintf("%s:$ANSIBLE_LIBRARY", p.librariesDirectory()),
			"filter_plugins":      fmt.Sprintf("%s:$ANSIBLE_FILTER_PLUGINS", p.filterPluginsDirectory()),
		},
	}
}

// DefaultOptions returns the CLI options passed to `ansible-playbook` before
// user overrides are applied.
func (p *Provisioner) DefaultOptions() map[string]any {
	options := map[string]any{}
	if p.cfg.Args.Debug {
		options["debug"] = true
	}
	return options
}

// ConfigOptions returns the merged ansible.cfg options; overrides win at the
// leaf level and nested sections are merged key-wise.
func (p *Provisioner) ConfigOptions() (map[string]map[string]any, error) {
	defer perf.Track(&p.cfg, "ansible.ConfigOptions")()

	return merge.SectionMaps(p.DefaultConfigOptions(), p.cfg.Provisioner.ConfigOptions)
}

// Options returns the merged `ansible-playbook` CLI options.
func (p *Provisioner) Options() map[string]any {
	defer perf.Track(&p.cfg, "ansible.Options")()

	return merge.Maps(p.DefaultOptions(), p.cfg.Provisioner.Options)
}

// HostVars returns the configured per-instance variable overlays.
func (p *Provisioner) HostVars() map[string]map[string]any {
	return p.cfg.Provisioner.HostVars
}

// GroupVars returns the configured per-group variable overlays.
func (p *Provisioner) GroupVars() map[string]map[string]any {
	return p.cfg.Provisioner.GroupVars
}

// InventoryFile returns the path of the generated inventory file.
func (p *Provisioner) InventoryFile() string {
	return filepath.Join(p.cfg.EphemeralDirectory, InventoryFileName)
}

// ConfigFile returns the path of the generated ansible.cfg.
func (p *Provisioner) ConfigFile() string {
	return filepath.Join(p.cfg.EphemeralDirectory, ConfigFileName)
}

// Inventory builds the inventory structure from the scenario's platforms.
// Every instance appears under each of its declared groups (default
// `ungrouped`), and again under each declared child group. Duplicate
// instance names silently overwrite prior entries.
func (p *Provisioner) Inventory() Inventory {
	defer perf.Track(&p.cfg, "ansible.Inventory")()

	inv := Inventory{}
	for _, platform := range p.cfg.Platforms {
		groups := platform.Groups
		if len(groups) == 0 {
			groups = []string{UngroupedGroupName}
		}

		connectionOptions := p.drv.ConnectionOptions(platform.Name)

		for _, group := range groups {
			inv.group(group).Hosts[platform.Name] = connectionOptions

			// Rewritten on every iteration; the value is platform-independent.
			inv.group(UngroupedGroupName).Vars = map[string]any{
				"molecule_file":               p.cfg.MoleculeFilePath,
				"molecule_inventory_file":     p.InventoryFile(),
				"molecule_scenario_directory": p.cfg.ScenarioDirectory,
				"molecule_instance_config":    p.drv.InstanceConfig(),
			}

			for _, childGroup := range platform.Children {
				inv.group(group).child(childGroup).Hosts[platform.Name] = connectionOptions
			}
		}
	}

	return inv
}

// WriteInventory writes the inventory file to the ephemeral directory.
// An empty inventory (no platforms configured) is fatal: it prints a
// user-facing message and terminates the run.
func (p *Provisioner) WriteInventory() error {
	defer perf.Track(&p.cfg, "ansible.WriteInventory")()

	inv := p.Inventory()
	if len(inv) == 0 {
		errUtils.SysExitWithMessage(fmt.Sprintf(
			"Instances missing from the 'platform' section of %s.", config.MoleculeFileName))
		// Reached only when errUtils.OsExit is overridden.
		return errUtils.ErrInstancesMissing
	}

	if err := u.EnsureDir(p.cfg.EphemeralDirectory); err != nil {
		return err
	}

	log.Debug("Writing inventory", "file", p.InventoryFile())
	return u.WriteToFileAsYAML(p.InventoryFile(), inv, 0o644)
}

// AddOrUpdateVars writes one YAML file per host or group variable overlay
// under `<ephemeral>/<target>/`. Host vars files are scenario-scoped: each
// instance key is rewritten to `<instance>-<scenario>`. A no-op when the
// configured mapping is empty.
func (p *Provisioner) AddOrUpdateVars(target string) error {
	defer perf.Track(&p.cfg, "ansible.AddOrUpdateVars")()

	var varsTarget map[string]map[string]any

	switch target {
	case HostVarsTarget:
		hostVars := p.HostVars()
		varsTarget = make(map[string]map[string]any, len(hostVars))
		for instanceName, value := range hostVars {
			scoped := u.InstanceWithScenarioName(instanceName, p.cfg.ScenarioName)
			varsTarget[scoped] = value
		}
	case GroupVarsTarget:
		varsTarget = p.GroupVars()
	default:
		return fmt.Errorf("%w: %q", errUtils.ErrUnknownVarsTarget, target)
	}

	if len(varsTarget) == 0 {
		return nil
	}

	targetVarsDirectory := filepath.Join(p.cfg.EphemeralDirectory, target)
	if err := u.EnsureDir(targetVarsDirectory); err != nil {
		return err
	}

	for name, content := range varsTarget {
		path := filepath.Join(targetVarsDirectory, name)
		log.Debug("Writing vars", "target", target, "file", path)
		if err := u.WriteToFileAsYAML(path, content, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Converge executes `ansible-playbook` for the given playbook and returns
// its captured standard output.
func (p *Provisioner) Converge(playbookPath string) (string, error) {
	defer perf.Track(&p.cfg, "ansible.Converge")()

	return p.newPlaybook(playbookPath).Execute()
}

// Syntax executes an `ansible-playbook` syntax check for the given playbook.
func (p *Provisioner) Syntax(playbookPath string) error {
	defer perf.Track(&p.cfg, "ansible.Syntax")()

	pb := p.newPlaybook(playbookPath)
	pb.AddCliArg("syntax-check", true)
	_, err := pb.Execute()
	return err
}

// Check executes an `ansible-playbook` dry run for the given playbook.
func (p *Provisioner) Check(playbookPath string) error {
	defer perf.Track(&p.cfg, "ansible.Check")()

	pb := p.newPlaybook(playbookPath)
	pb.AddCliArg("check", true)
	_, err := pb.Execute()
	return err
}

func (p *Provisioner) newPlaybook(playbookPath string) *playbook.Playbook {
	return playbook.New(p.InventoryFile(), playbookPath, p.ConfigFile(), p.cfg, p.Options())
}

// pluginDirectory locates the plugins shipped next to the executable.
func (p *Provisioner) pluginDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("provisioner", "ansible", "plugins")
	}
	return filepath.Join(filepath.Dir(exe), "plugins", "ansible")
}

func (p *Provisioner) librariesDirectory() string {
	return filepath.Join(p.pluginDirectory(), "libraries")
}

func (p *Provisioner) filterPluginsDirectory() string {
	return filepath.Join(p.pluginDirectory(), "filters")
}
