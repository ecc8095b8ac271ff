// Package errors defines the sentinel errors shared across the CLI and the
// helpers that turn them into process exit codes.
package errors

import "errors"

var (
	// ErrInstancesMissing is raised when the computed inventory is empty
	// because no platforms are configured in molecule.yml.
	ErrInstancesMissing = errors.New("instances missing from the 'platform' section of molecule.yml")

	// ErrPlaybookFailed wraps a non-zero exit from `ansible-playbook`.
	ErrPlaybookFailed = errors.New("ansible-playbook failed")

	// ErrUnknownDriver is raised for an unrecognized `driver.name`.
	ErrUnknownDriver = errors.New("unknown driver")

	// ErrUnknownVarsTarget is raised for a vars target other than host_vars or group_vars.
	ErrUnknownVarsTarget = errors.New("unknown vars target")

	// ErrConfigNotFound is raised when molecule.yml cannot be located or read.
	ErrConfigNotFound = errors.New("molecule.yml not found")

	// ErrInvalidConfig is raised when molecule.yml cannot be parsed or decoded.
	ErrInvalidConfig = errors.New("invalid molecule.yml")

	// ErrCreateDirectory is raised when a target directory cannot be created.
	ErrCreateDirectory = errors.New("failed to create directory")

	// ErrFileOperation is raised for generic file read/write failures.
	ErrFileOperation = errors.New("file operation failed")

	// ErrTemplateRender is raised when the ansible.cfg template fails to render.
	ErrTemplateRender = errors.New("failed to render template")

	// ErrMerge is raised when configuration maps cannot be merged.
	ErrMerge = errors.New("merge error")
)
