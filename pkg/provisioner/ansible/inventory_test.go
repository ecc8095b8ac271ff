package ansible

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molecule-go/molecule/pkg/driver"
	"github.com/molecule-go/molecule/pkg/schema"
)

func testProvisioner(t *testing.T, platforms []schema.Platform) *Provisioner {
	t.Helper()
	dir := t.TempDir()
	cfg := schema.MoleculeConfiguration{
		ScenarioName:       "default",
		ScenarioDirectory:  dir,
		EphemeralDirectory: filepath.Join(dir, ".molecule"),
		MoleculeFilePath:   filepath.Join(dir, "molecule.yml"),
		Driver:             schema.DriverConfig{Name: driver.DockerDriverName},
		Platforms:          platforms,
		Provisioner:        schema.ProvisionerConfig{Name: "ansible"},
	}
	return New(cfg, driver.NewDocker(cfg))
}

func TestInventoryGroups(t *testing.T) {
	p := testProvisioner(t, []schema.Platform{
		{Name: "instance-1", Groups: []string{"web"}},
		{Name: "instance-2", Groups: []string{"web", "db"}},
	})

	inv := p.Inventory()

	require.Contains(t, inv, "web")
	require.Contains(t, inv, "db")
	require.Contains(t, inv, UngroupedGroupName)

	assert.Contains(t, inv["web"].Hosts, "instance-1")
	assert.Contains(t, inv["web"].Hosts, "instance-2")
	assert.Contains(t, inv["db"].Hosts, "instance-2")
	assert.NotContains(t, inv["db"].Hosts, "instance-1")

	// The implicit ungrouped group has vars but no hosts.
	assert.Empty(t, inv[UngroupedGroupName].Hosts)
	assert.NotEmpty(t, inv[UngroupedGroupName].Vars)
}

func TestInventoryDefaultGroupIsUngrouped(t *testing.T) {
	p := testProvisioner(t, []schema.Platform{
		{Name: "instance-1"},
	})

	inv := p.Inventory()

	require.Contains(t, inv, UngroupedGroupName)
	assert.Contains(t, inv[UngroupedGroupName].Hosts, "instance-1")
	assert.Equal(t,
		map[string]any{"ansible_connection": "docker"},
		inv[UngroupedGroupName].Hosts["instance-1"])
}

func TestInventoryChildren(t *testing.T) {
	p := testProvisioner(t, []schema.Platform{
		{Name: "instance-1", Groups: []string{"web"}, Children: []string{"workers"}},
	})

	inv := p.Inventory()

	require.Contains(t, inv, "web")
	require.Contains(t, inv["web"].Children, "workers")
	assert.Contains(t, inv["web"].Children["workers"].Hosts, "instance-1")
}

func TestInventoryUngroupedVars(t *testing.T) {
	p := testProvisioner(t, []schema.Platform{
		{Name: "instance-1", Groups: []string{"web"}},
	})

	vars := p.Inventory()[UngroupedGroupName].Vars

	assert.Equal(t, p.cfg.MoleculeFilePath, vars["molecule_file"])
	assert.Equal(t, p.InventoryFile(), vars["molecule_inventory_file"])
	assert.Equal(t, p.cfg.ScenarioDirectory, vars["molecule_scenario_directory"])
	assert.Equal(t, p.drv.InstanceConfig(), vars["molecule_instance_config"])
}

func TestInventoryEmptyPlatforms(t *testing.T) {
	p := testProvisioner(t, nil)

	assert.Empty(t, p.Inventory())
}

func TestInventoryDuplicateInstanceLastWriteWins(t *testing.T) {
	p := testProvisioner(t, []schema.Platform{
		{Name: "instance-1", Groups: []string{"web"}},
		{Name: "instance-1", Groups: []string{"web"}},
	})

	inv := p.Inventory()
	assert.Len(t, inv["web"].Hosts, 1)
}
