package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/molecule-go/molecule/cmd"
	errUtils "github.com/molecule-go/molecule/errors"
	log "github.com/molecule-go/molecule/pkg/logger"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Exit with the POSIX convention of 128 + signal number.
		// Use errUtils.OsExit to allow test interception.
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	// Timestamps add no value for an interactive CLI.
	log.Default().SetReportTimestamp(false)

	errUtils.OsExit(run())
}

// run executes the CLI and returns the process exit code.
func run() int {
	err := cmd.Execute()
	if err != nil {
		errUtils.CheckErrorPrintAndExit(err)
		// Reached only when errUtils.OsExit is overridden.
		return errUtils.GetExitCode(err)
	}

	return 0
}
