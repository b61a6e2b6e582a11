package command

import (
	"context"
	"fmt"
	"strings"
)

// GitRunner abstracts git command execution
type GitRunner interface {
	// GetRemoteOriginURL returns the URL of the origin remote
	GetRemoteOriginURL(ctx context.Context, dir string) (string, error)
}

type gitRunner struct {
	runner Runner
}

// NewGitRunner creates a new GitRunner instance
func NewGitRunner(runner Runner) GitRunner {
	return &gitRunner{
		runner: runner,
	}
}

// GetRemoteOriginURL returns the URL of the origin remote
func (g *gitRunner) GetRemoteOriginURL(ctx context.Context, dir string) (string, error) {
	stdout, stderr, err := g.runner.RunInDir(ctx, dir, "git", "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("failed to get origin remote URL: %w (stderr: %s)", err, stderr)
	}

	return strings.TrimSpace(stdout), nil
}
