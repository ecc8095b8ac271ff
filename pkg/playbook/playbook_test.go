package playbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/molecule-go/molecule/pkg/schema"
)

func testPlaybook(options map[string]any) *Playbook {
	cfg := schema.MoleculeConfiguration{
		ScenarioName:       "default",
		ScenarioDirectory:  "/scenario",
		EphemeralDirectory: filepath.Join("/scenario", ".molecule"),
	}
	return New(
		filepath.Join(cfg.EphemeralDirectory, "ansible_inventory.yml"),
		filepath.Join(cfg.ScenarioDirectory, "playbook.yml"),
		filepath.Join(cfg.EphemeralDirectory, "ansible.cfg"),
		cfg,
		options,
	)
}

func TestBakeArgsOrdering(t *testing.T) {
	pb := testPlaybook(map[string]any{
		"limit":  "app",
		"become": true,
	})

	args := pb.BakeArgs()

	// Inventory first, playbook last, flags sorted in between.
	assert.Equal(t, []string{
		"-i", filepath.Join("/scenario", ".molecule", "ansible_inventory.yml"),
		"--become",
		"--limit=app",
		filepath.Join("/scenario", "playbook.yml"),
	}, args)
}

func TestBakeArgsBooleanFlags(t *testing.T) {
	pb := testPlaybook(map[string]any{
		"become": true,
		"diff":   false,
	})

	args := pb.BakeArgs()
	assert.Contains(t, args, "--become")
	assert.NotContains(t, args, "--diff")
	assert.NotContains(t, args, "--diff=false")
}

func TestBakeArgsUnderscoresBecomeDashes(t *testing.T) {
	pb := testPlaybook(map[string]any{"syntax_check": true})

	assert.Contains(t, pb.BakeArgs(), "--syntax-check")
}

func TestAddCliArgOverrides(t *testing.T) {
	pb := testPlaybook(map[string]any{"limit": "app"})
	pb.AddCliArg("limit", "db")

	assert.Contains(t, pb.BakeArgs(), "--limit=db")
}

func TestNewDoesNotAliasOptions(t *testing.T) {
	options := map[string]any{"limit": "app"}
	pb := testPlaybook(options)
	pb.AddCliArg("check", true)

	assert.NotContains(t, options, "check")
}

func TestEnvCarriesAnsibleConfig(t *testing.T) {
	pb := testPlaybook(nil)

	expected := "ANSIBLE_CONFIG=" + filepath.Join("/scenario", ".molecule", "ansible.cfg")
	assert.Contains(t, pb.env, expected)
}
