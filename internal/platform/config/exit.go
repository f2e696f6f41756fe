package config

import (
	"fmt"
	"os"
)

// Exitf prints the message to stderr and terminates the process with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// ExitOnError terminates with "action: err" when err is non-nil.
func ExitOnError(err error, action string) {
	if err != nil {
		Exitf("%s: %v", action, err)
	}
}
