// Package config loads a scenario configuration from molecule.yml and
// assembles the immutable schema.MoleculeConfiguration snapshot consumed by
// the provisioner.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	errUtils "github.com/molecule-go/molecule/errors"
	log "github.com/molecule-go/molecule/pkg/logger"
	"github.com/molecule-go/molecule/pkg/perf"
	"github.com/molecule-go/molecule/pkg/schema"
)

const (
	// MoleculeFileName is the canonical scenario configuration file name.
	MoleculeFileName = "molecule.yml"

	// EphemeralDirectoryName is the scenario-private working directory,
	// created next to molecule.yml.
	EphemeralDirectoryName = ".molecule"

	// DefaultScenarioName is used when `scenario.name` is not configured.
	DefaultScenarioName = "default"

	// DefaultDriverName is used when `driver.name` is not configured.
	DefaultDriverName = "docker"

	// DefaultProvisionerName is the only supported provisioner.
	DefaultProvisionerName = "ansible"
)

// rawConfiguration mirrors the molecule.yml document structure.
type rawConfiguration struct {
	Scenario struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"scenario"`
	Driver      schema.DriverConfig      `mapstructure:"driver"`
	Platforms   []schema.Platform        `mapstructure:"platforms"`
	Provisioner schema.ProvisionerConfig `mapstructure:"provisioner"`
}

// Load reads molecule.yml, applies defaults and environment overrides
// (MOLECULE_-prefixed), and returns the configuration snapshot.
func Load(moleculeFile string, args schema.CliArgs) (schema.MoleculeConfiguration, error) {
	defer perf.Track(nil, "config.Load")()

	var cfg schema.MoleculeConfiguration

	moleculeFilePath, err := filepath.Abs(moleculeFile)
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigFile(moleculeFilePath)
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	v.SetEnvPrefix("MOLECULE")
	// Nested keys map to env vars with underscores: scenario.name is
	// overridden by MOLECULE_SCENARIO_NAME.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("scenario.name", DefaultScenarioName)
	v.SetDefault("driver.name", DefaultDriverName)
	v.SetDefault("provisioner.name", DefaultProvisionerName)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", errUtils.ErrConfigNotFound, moleculeFilePath, err)
	}

	var raw rawConfiguration
	if err := v.Unmarshal(&raw, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUtils.ErrInvalidConfig, err)
	}

	scenarioDirectory := filepath.Dir(moleculeFilePath)

	cfg = schema.MoleculeConfiguration{
		ScenarioName:       raw.Scenario.Name,
		ScenarioDirectory:  scenarioDirectory,
		EphemeralDirectory: filepath.Join(scenarioDirectory, EphemeralDirectoryName),
		MoleculeFilePath:   moleculeFilePath,
		Args:               args,
		Driver:             raw.Driver,
		Platforms:          raw.Platforms,
		Provisioner:        raw.Provisioner,
	}

	// Fill any empty provisioner fields from the defaults.
	if err := mergo.Merge(&cfg.Provisioner, defaultProvisionerConfig()); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUtils.ErrMerge, err)
	}
	materializeProvisionerMaps(&cfg.Provisioner)

	log.Debug("Loaded scenario configuration",
		"file", cfg.MoleculeFilePath,
		"scenario", cfg.ScenarioName,
		"driver", cfg.Driver.Name,
		"platforms", len(cfg.Platforms),
	)

	return cfg, nil
}

// defaultProvisionerConfig returns the provisioner section defaults.
func defaultProvisionerConfig() schema.ProvisionerConfig {
	return schema.ProvisionerConfig{
		Name: DefaultProvisionerName,
	}
}

// materializeProvisionerMaps replaces nil sub-mappings with empty ones so
// downstream code never nil-checks.
func materializeProvisionerMaps(p *schema.ProvisionerConfig) {
	if p.ConfigOptions == nil {
		p.ConfigOptions = map[string]any{}
	}
	if p.Options == nil {
		p.Options = map[string]any{}
	}
	if p.HostVars == nil {
		p.HostVars = map[string]map[string]any{}
	}
	if p.GroupVars == nil {
		p.GroupVars = map[string]map[string]any{}
	}
}
