// Package exec invokes external executables on behalf of the provisioner.
package exec

import (
	"os"
	osexec "os/exec"

	log "github.com/molecule-go/molecule/pkg/logger"
)

// ExecuteShellCommand executes the provided command with args, streaming
// stdout and stderr to the current process.
func ExecuteShellCommand(command string, args []string, dir string, env []string) error {
	cmd := osexec.Command(command, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Debug("Executing command", "command", cmd.String(), "dir", dir)

	return cmd.Run()
}

// ExecuteShellCommandAndReturnOutput executes the provided command with args
// and returns its captured standard output. Standard error streams to the
// current process.
func ExecuteShellCommandAndReturnOutput(command string, args []string, dir string, env []string) (string, error) {
	cmd := osexec.Command(command, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr

	log.Debug("Executing command", "command", cmd.String(), "dir", dir)

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return string(output), nil
}
