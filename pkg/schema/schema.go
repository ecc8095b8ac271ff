package schema

// MoleculeConfiguration is an immutable snapshot of a scenario configuration.
// It is assembled once by pkg/config from `molecule.yml`, the CLI arguments and
// the scenario file location, and passed by value into every operation.
type MoleculeConfiguration struct {
	// ScenarioName is the name of the scenario (`scenario.name` in molecule.yml).
	ScenarioName string

	// ScenarioDirectory is the directory containing molecule.yml.
	ScenarioDirectory string

	// EphemeralDirectory is the scenario-private working directory holding
	// generated, disposable artifacts (inventory, config, vars files).
	EphemeralDirectory string

	// MoleculeFilePath is the absolute path to molecule.yml.
	MoleculeFilePath string

	// Args carries the command-line arguments relevant to the provisioner.
	Args CliArgs

	Driver      DriverConfig      `yaml:"driver" mapstructure:"driver"`
	Platforms   []Platform        `yaml:"platforms" mapstructure:"platforms"`
	Provisioner ProvisionerConfig `yaml:"provisioner" mapstructure:"provisioner"`
}

// CliArgs holds command-line arguments propagated into the configuration snapshot.
type CliArgs struct {
	Debug bool
}

// DriverConfig is the `driver` section of molecule.yml.
type DriverConfig struct {
	Name    string         `yaml:"name" mapstructure:"name"`
	Options map[string]any `yaml:"options" mapstructure:"options"`
}

// Platform is a single record in the `platforms` section of molecule.yml.
// Groups defaults to ["ungrouped"] when empty.
type Platform struct {
	Name     string   `yaml:"name" mapstructure:"name"`
	Groups   []string `yaml:"groups" mapstructure:"groups"`
	Children []string `yaml:"children" mapstructure:"children"`
}

// ProvisionerConfig is the `provisioner` section of molecule.yml.
type ProvisionerConfig struct {
	Name string `yaml:"name" mapstructure:"name"`

	// ConfigOptions overrides sections of the generated ansible.cfg
	// (section -> key -> value).
	ConfigOptions map[string]any `yaml:"config_options" mapstructure:"config_options"`

	// Options overrides the CLI flags passed to `ansible-playbook`
	// (flag name -> value).
	Options map[string]any `yaml:"options" mapstructure:"options"`

	// HostVars and GroupVars are variable overlays scoped to a single
	// instance or an inventory group.
	HostVars  map[string]map[string]any `yaml:"host_vars" mapstructure:"host_vars"`
	GroupVars map[string]map[string]any `yaml:"group_vars" mapstructure:"group_vars"`
}
