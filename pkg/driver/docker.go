package driver

import (
	"github.com/molecule-go/molecule/pkg/schema"
)

// Docker connects to instances through the Docker connection plugin.
// Instances are addressed by container name, so the connection options are
// the same for every instance.
type Docker struct {
	cfg schema.MoleculeConfiguration
}

// NewDocker returns a Docker driver for the scenario.
func NewDocker(cfg schema.MoleculeConfiguration) *Docker {
	return &Docker{cfg: cfg}
}

// Name implements Driver.
func (d *Docker) Name() string {
	return DockerDriverName
}

// ConnectionOptions implements Driver.
func (d *Docker) ConnectionOptions(_ string) map[string]any {
	return map[string]any{
		"ansible_connection": "docker",
	}
}

// InstanceConfig implements Driver.
func (d *Docker) InstanceConfig() string {
	return instanceConfigPath(d.cfg)
}
