// Package playbook builds and runs a single `ansible-playbook` invocation.
// It converts the provisioner's merged options mapping into command-line
// flags, points ANSIBLE_CONFIG at the rendered config file, and captures the
// command's standard output. One invocation, pass-fail; no retries.
package playbook

import (
	"errors"
	"fmt"
	osexec "os/exec"
	"sort"
	"strings"

	errUtils "github.com/molecule-go/molecule/errors"
	"github.com/molecule-go/molecule/internal/exec"
	log "github.com/molecule-go/molecule/pkg/logger"
	"github.com/molecule-go/molecule/pkg/perf"
	"github.com/molecule-go/molecule/pkg/schema"
)

// DefaultCommand is the executable delegated to.
const DefaultCommand = "ansible-playbook"

// Playbook is one pending `ansible-playbook` invocation.
type Playbook struct {
	inventoryFile string
	playbook      string
	configFile    string
	cfg           schema.MoleculeConfiguration
	cliArgs       map[string]any
	env           []string
}

// New returns an invocation for the given playbook using the scenario's
// inventory file, rendered config file and merged CLI options.
func New(inventoryFile string, playbookPath string, configFile string, cfg schema.MoleculeConfiguration, options map[string]any) *Playbook {
	cliArgs := make(map[string]any, len(options))
	for k, v := range options {
		cliArgs[k] = v
	}

	return &Playbook{
		inventoryFile: inventoryFile,
		playbook:      playbookPath,
		configFile:    configFile,
		cfg:           cfg,
		cliArgs:       cliArgs,
		env: []string{
			fmt.Sprintf("ANSIBLE_CONFIG=%s", configFile),
		},
	}
}

// AddCliArg sets one additional CLI option on the invocation.
func (p *Playbook) AddCliArg(name string, value any) {
	p.cliArgs[name] = value
}

// AddEnvArg sets one additional environment variable on the invocation.
func (p *Playbook) AddEnvArg(name string, value string) {
	p.env = append(p.env, fmt.Sprintf("%s=%s", name, value))
}

// BakeArgs renders the full argument list: inventory first, option flags in
// sorted order, the playbook path last.
func (p *Playbook) BakeArgs() []string {
	args := []string{"-i", p.inventoryFile}

	names := make([]string, 0, len(p.cliArgs))
	for name := range p.cliArgs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag := "--" + strings.ReplaceAll(name, "_", "-")
		switch value := p.cliArgs[name].(type) {
		case bool:
			// Boolean flags are bare when true and omitted when false.
			if value {
				args = append(args, flag)
			}
		default:
			args = append(args, fmt.Sprintf("%s=%v", flag, value))
		}
	}

	return append(args, p.playbook)
}

// Execute runs the invocation and returns the captured standard output.
// A non-zero exit propagates wrapped with ErrPlaybookFailed; the subprocess
// exit code is recoverable via errors.GetExitCode.
func (p *Playbook) Execute() (string, error) {
	defer perf.Track(&p.cfg, "playbook.Execute")()

	args := p.BakeArgs()
	log.Debug("Running ansible-playbook",
		"playbook", p.playbook,
		"inventory", p.inventoryFile,
		"args", args,
	)

	output, err := exec.ExecuteShellCommandAndReturnOutput(
		DefaultCommand,
		args,
		p.cfg.ScenarioDirectory,
		p.env,
	)
	if err != nil {
		var exitError *osexec.ExitError
		if errors.As(err, &exitError) {
			return "", errUtils.WithExitCode(
				fmt.Errorf("%w: %w", errUtils.ErrPlaybookFailed, err),
				exitError.ExitCode(),
			)
		}
		return "", fmt.Errorf("%w: %w", errUtils.ErrPlaybookFailed, err)
	}

	return output, nil
}
