package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
)

func init() {
	text.DisableColors()
}

// execute runs a fresh command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.Version = "1.2.3-test"
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// installArgs points a command at the test McStas installation, an empty
// work directory and a fresh configuration directory.
func installArgs(t *testing.T) []string {
	t.Helper()
	return []string{
		"--config-path", t.TempDir(),
		"--mcstas-path", filepath.Join("testdata", "mcstas"),
		"--work-dir", t.TempDir(),
	}
}

func withInstall(t *testing.T, args ...string) []string {
	return append(args, installArgs(t)...)
}
