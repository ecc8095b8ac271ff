package errors

import (
	"os"

	"github.com/fatih/color"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}

// SysExitWithMessage prints a user-facing message to stderr and terminates
// the run with exit code 1. Used for fatal, non-recoverable conditions such
// as an empty inventory.
func SysExitWithMessage(msg string) {
	color.New(color.FgRed).Fprintln(os.Stderr, msg)
	Exit(1)
}

// CheckErrorPrintAndExit prints an error message and exits with the exit
// code extracted from the error chain.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}
	color.New(color.FgRed).Fprintln(os.Stderr, "Error: "+err.Error())
	Exit(GetExitCode(err))
}
