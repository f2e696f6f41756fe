package config_test

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/rkprasad/portfolio/internal/platform/config"
)

// os.Exit cannot be observed in-process, so the failing branch re-runs this
// test binary as a child.
func TestExitOnErrorExitsWithActionPrefix(t *testing.T) {
	if os.Getenv("PORTFOLIO_EXIT_CHILD") == "1" {
		config.ExitOnError(errors.New("no such mode"), "sitebuild")
		return
	}

	child := exec.Command(os.Args[0], "-test.run=^TestExitOnErrorExitsWithActionPrefix$")
	child.Env = append(os.Environ(), "PORTFOLIO_EXIT_CHILD=1")
	out, err := child.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("child err = %v, want exit code 1", err)
	}
	if got := string(out); !strings.Contains(got, "sitebuild: no such mode") {
		t.Fatalf("child output = %q", got)
	}
}

func TestExitOnErrorIgnoresNil(t *testing.T) {
	config.ExitOnError(nil, "sitebuild")
}
