//go:build windows

package discovery

import (
	"context"
	"os"
	"os/exec"
)

func shellCommand(ctx context.Context, line string) *exec.Cmd {
	shell := os.Getenv("COMSPEC")
	if shell == "" {
		shell = "cmd.exe"
	}
	return exec.CommandContext(ctx, shell, "/C", line)
}
