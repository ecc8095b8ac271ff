package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/molecule-go/molecule/errors"
	"github.com/molecule-go/molecule/pkg/schema"
)

func testConfiguration(t *testing.T, driverName string) schema.MoleculeConfiguration {
	t.Helper()
	dir := t.TempDir()
	return schema.MoleculeConfiguration{
		ScenarioName:       "default",
		ScenarioDirectory:  dir,
		EphemeralDirectory: filepath.Join(dir, ".molecule"),
		Driver:             schema.DriverConfig{Name: driverName},
	}
}

func TestNewDocker(t *testing.T) {
	d, err := New(testConfiguration(t, "docker"))
	require.NoError(t, err)
	assert.Equal(t, DockerDriverName, d.Name())
}

func TestNewDefaultsToDocker(t *testing.T) {
	d, err := New(testConfiguration(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DockerDriverName, d.Name())
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New(testConfiguration(t, "vagrant"))
	require.ErrorIs(t, err, errUtils.ErrUnknownDriver)
}

func TestDockerConnectionOptions(t *testing.T) {
	cfg := testConfiguration(t, "docker")
	d := NewDocker(cfg)

	assert.Equal(t, map[string]any{"ansible_connection": "docker"}, d.ConnectionOptions("instance-1"))
	assert.Equal(t, filepath.Join(cfg.EphemeralDirectory, InstanceConfigFileName), d.InstanceConfig())
}

func TestDelegatedConnectionOptionsFromInstanceConfig(t *testing.T) {
	cfg := testConfiguration(t, "delegated")
	require.NoError(t, os.MkdirAll(cfg.EphemeralDirectory, 0o755))

	instanceConfig := `
- instance: instance-1
  address: 10.0.0.10
  user: molecule
  port: 2222
  identity_file: /tmp/key
`
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.EphemeralDirectory, InstanceConfigFileName),
		[]byte(instanceConfig), 0o644))

	d := NewDelegated(cfg)
	options := d.ConnectionOptions("instance-1")

	assert.Equal(t, "ssh", options["ansible_connection"])
	assert.Equal(t, "10.0.0.10", options["ansible_host"])
	assert.Equal(t, "molecule", options["ansible_user"])
	assert.Equal(t, 2222, options["ansible_port"])
	assert.Equal(t, "/tmp/key", options["ansible_private_key_file"])
}

func TestDelegatedFallsBackToDriverOptions(t *testing.T) {
	cfg := testConfiguration(t, "delegated")
	cfg.Driver.Options = map[string]any{"ansible_host": "static.example.com"}

	d := NewDelegated(cfg)
	options := d.ConnectionOptions("instance-1")

	assert.Equal(t, map[string]any{"ansible_host": "static.example.com"}, options)
}
