package discovery

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

// defaultDiscoveryArgs is substituted when a server config carries no
// arguments, signaling discovery mode to servers that understand it.
var defaultDiscoveryArgs = []string{"--list-functions", "--discovery"}

// discoveryEnv is layered on top of the caller-supplied environment so
// cooperative servers can answer with a manifest instead of starting up
// for real.
var discoveryEnv = map[string]string{
	"MCP_LIST_FUNCTIONS":       "true",
	"MCP_DISCOVERY_MODE":       "true",
	"MCP_REQUIRE_DESCRIPTIONS": "true",
	"MCP_LIST_TOOLS":           "true",
	"FUNCTIONS_DISCOVERY":      "true",
	"NODE_ENV":                 "discovery",
}

// launch starts the server command through a shell, so operators and
// quoting inside the configured command are honored, and returns a live
// session. A nil session with an error means the spawn itself failed.
func launch(ctx context.Context, cfg mcpconfig.ServerConfig) (*processSession, error) {
	args := cfg.Args
	if len(args) == 0 {
		args = defaultDiscoveryArgs
	}
	line := strings.TrimSpace(cfg.Command)
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}

	cmd := shellCommand(ctx, line)
	cmd.Env = mergedEnv(cfg.Env)
	// If a killed shell leaves a grandchild holding the output pipes,
	// stop waiting for them shortly after the shell itself is gone.
	cmd.WaitDelay = 2 * time.Second

	sess := &processSession{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		waitCh: make(chan error, 1),
	}
	cmd.Stdout = sess.stdout
	cmd.Stderr = sess.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}
	sess.stdin = stdin

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return nil, fmt.Errorf("failed to start %q: %w", cfg.Command, err)
	}
	sess.cmd = cmd

	go func() {
		sess.waitCh <- cmd.Wait()
	}()

	return sess, nil
}

// mergedEnv builds the child environment: the ambient process
// environment, overridden by the server's configured env, overridden by
// the fixed discovery-signal variables.
func mergedEnv(env map[string]string) []string {
	merged := os.Environ()
	for k, v := range env {
		merged = append(merged, k+"="+v)
	}
	for k, v := range discoveryEnv {
		merged = append(merged, k+"="+v)
	}
	return merged
}
