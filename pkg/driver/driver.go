// Package driver supplies per-instance connection parameters to the
// provisioner. A driver knows how Ansible should reach the instances a
// scenario declares; it does not create or destroy them.
package driver

import (
	"fmt"
	"path/filepath"

	errUtils "github.com/molecule-go/molecule/errors"
	"github.com/molecule-go/molecule/pkg/schema"
)

// InstanceConfigFileName is the per-scenario file recording how to reach
// each created instance.
const InstanceConfigFileName = "instance_config.yml"

// Driver names accepted in the `driver.name` section of molecule.yml.
const (
	DockerDriverName    = "docker"
	DelegatedDriverName = "delegated"
)

// Driver supplies connection parameters for the instances of one scenario.
type Driver interface {
	// Name returns the driver name as configured in molecule.yml.
	Name() string

	// ConnectionOptions returns the Ansible connection parameters for the
	// named instance (e.g. ansible_connection, ansible_host).
	ConnectionOptions(instanceName string) map[string]any

	// InstanceConfig returns the path to the scenario's instance config file.
	InstanceConfig() string
}

// New returns the driver configured for the scenario.
func New(cfg schema.MoleculeConfiguration) (Driver, error) {
	switch cfg.Driver.Name {
	case DockerDriverName, "":
		return NewDocker(cfg), nil
	case DelegatedDriverName:
		return NewDelegated(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUtils.ErrUnknownDriver, cfg.Driver.Name)
	}
}

// instanceConfigPath returns the instance config location inside the
// scenario's ephemeral directory.
func instanceConfigPath(cfg schema.MoleculeConfiguration) string {
	return filepath.Join(cfg.EphemeralDirectory, InstanceConfigFileName)
}
