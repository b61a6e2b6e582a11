package launcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/agentwatch/observability-hooks/internal/command"
)

const (
	// EnvPluginRoot is set by Claude Code to the plugin's install directory.
	EnvPluginRoot = "CLAUDE_PLUGIN_ROOT"

	// EnvAutoStart enables launching the server from the session-start hook.
	EnvAutoStart = "OBSERVABILITY_AUTO_START"

	startScript  = "ensure-server.sh"
	lockFileName = ".server.lock"
	startTimeout = 10 * time.Second
	startupGrace = time.Second
)

// AutoStartEnabled reports whether session-start hooks may try to launch
// the observability server themselves.
func AutoStartEnabled() bool {
	return strings.EqualFold(os.Getenv(EnvAutoStart), "true")
}

// HealthChecker reports whether the observability server is up.
type HealthChecker interface {
	CheckHealth(ctx context.Context) bool
}

// Launcher starts the observability server via the plugin's ensure-server
// script when it is not already running.
type Launcher struct {
	runner command.Runner
	health HealthChecker
	sleep  func(time.Duration)
}

// New creates a Launcher using the given runner and health checker.
func New(runner command.Runner, health HealthChecker) *Launcher {
	return &Launcher{
		runner: runner,
		health: health,
		sleep:  time.Sleep,
	}
}

// EnsureRunning probes the server and, when it is down, runs the plugin's
// ensure-server script. A file lock serializes concurrent session-start
// hooks so only one of them attempts the launch. Reports whether the server
// is healthy afterwards; every failure along the way is non-fatal and
// simply yields false.
func (l *Launcher) EnsureRunning(ctx context.Context) bool {
	if l.health.CheckHealth(ctx) {
		return true
	}

	root := os.Getenv(EnvPluginRoot)
	if root == "" {
		return false
	}

	script := filepath.Join(root, "scripts", startScript)
	if _, err := os.Stat(script); err != nil {
		return false
	}

	lock := flock.New(filepath.Join(root, "scripts", lockFileName))
	if err := lock.Lock(); err != nil {
		return false
	}
	defer lock.Unlock()

	// Another session-start may have launched the server while this one
	// waited on the lock.
	if l.health.CheckHealth(ctx) {
		return true
	}

	runCtx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()
	if _, _, err := l.runner.Run(runCtx, "bash", script); err != nil {
		return false
	}

	// Give the server time to bind before the final probe.
	l.sleep(startupGrace)
	return l.health.CheckHealth(ctx)
}
