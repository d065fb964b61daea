package mcrun

import (
	"context"
	"os/exec"
	"runtime"
)

// execCommandContext is a variable to allow mocking in tests
var execCommandContext = exec.CommandContext

// shellCommand runs line through the platform shell.
func shellCommand(ctx context.Context, line string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return execCommandContext(ctx, "cmd", "/C", line)
	}
	return execCommandContext(ctx, "sh", "-c", line)
}
