package driver

import (
	"os"

	log "github.com/molecule-go/molecule/pkg/logger"
	"github.com/molecule-go/molecule/pkg/schema"
	u "github.com/molecule-go/molecule/pkg/utils"
)

// Delegated leaves instance lifecycle to the user and reads connection
// details from the scenario's instance config file. Each entry maps an
// instance name to its SSH endpoint.
type Delegated struct {
	cfg schema.MoleculeConfiguration
}

// instanceConfigEntry is one record in instance_config.yml.
type instanceConfigEntry struct {
	Instance     string `yaml:"instance"`
	Address      string `yaml:"address"`
	User         string `yaml:"user"`
	Port         int    `yaml:"port"`
	IdentityFile string `yaml:"identity_file"`
}

// NewDelegated returns a Delegated driver for the scenario.
func NewDelegated(cfg schema.MoleculeConfiguration) *Delegated {
	return &Delegated{cfg: cfg}
}

// Name implements Driver.
func (d *Delegated) Name() string {
	return DelegatedDriverName
}

// ConnectionOptions implements Driver.
// Options for instances absent from the instance config (or when the file
// does not exist yet) fall back to the `driver.options` section of
// molecule.yml, so scenarios can declare static endpoints.
func (d *Delegated) ConnectionOptions(instanceName string) map[string]any {
	for _, entry := range d.readInstanceConfig() {
		if entry.Instance != instanceName {
			continue
		}
		options := map[string]any{
			"ansible_connection": "ssh",
			"ansible_host":       entry.Address,
			"ansible_user":       entry.User,
		}
		if entry.Port != 0 {
			options["ansible_port"] = entry.Port
		}
		if entry.IdentityFile != "" {
			options["ansible_private_key_file"] = entry.IdentityFile
		}
		return options
	}

	options := make(map[string]any, len(d.cfg.Driver.Options))
	for k, v := range d.cfg.Driver.Options {
		options[k] = v
	}
	return options
}

// InstanceConfig implements Driver.
func (d *Delegated) InstanceConfig() string {
	return instanceConfigPath(d.cfg)
}

func (d *Delegated) readInstanceConfig() []instanceConfigEntry {
	content, err := os.ReadFile(d.InstanceConfig())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Failed to read instance config", "file", d.InstanceConfig(), "error", err)
		}
		return nil
	}

	entries, err := u.UnmarshalYAML[[]instanceConfigEntry](string(content))
	if err != nil {
		log.Warn("Failed to parse instance config", "file", d.InstanceConfig(), "error", err)
		return nil
	}
	return entries
}
