package sourceapp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentwatch/observability-hooks/internal/command"
)

const (
	// EnvProjectDir is set by Claude Code to the project root the session
	// runs in.
	EnvProjectDir = "CLAUDE_PROJECT_DIR"

	// DisplayIDLength is how many characters of a session id are shown in
	// user-facing messages.
	DisplayIDLength = 8

	unknown    = "unknown"
	gitTimeout = 5 * time.Second
)

// Detect derives the source app identifier used to group events by origin.
// Priority: origin remote repository name, then the project directory name,
// then "unknown". Git failures are swallowed; detection never errors.
func Detect(ctx context.Context, git command.GitRunner) string {
	dir := projectDir()

	if name := remoteRepoName(ctx, git, dir); name != "" {
		return name
	}

	if dir != "" {
		if base := filepath.Base(dir); base != "" && base != "." && base != string(filepath.Separator) {
			return base
		}
	}

	return unknown
}

func projectDir() string {
	if dir := os.Getenv(EnvProjectDir); dir != "" {
		return dir
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}

func remoteRepoName(ctx context.Context, git command.GitRunner, dir string) string {
	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	url, err := git.GetRemoteOriginURL(ctx, dir)
	if err != nil {
		return ""
	}

	return RepoNameFromURL(url)
}

// RepoNameFromURL extracts the repository name from a git remote URL.
// Handles both HTTPS (https://host/user/repo.git) and SSH
// (git@host:user/repo.git) forms.
func RepoNameFromURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	name := url[strings.LastIndex(url, "/")+1:]
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}

	return strings.TrimSuffix(name, ".git")
}

// TruncateSessionID shortens a session id for display. Ids shorter than the
// requested length are returned unchanged; an empty id yields "unknown".
func TruncateSessionID(sessionID string, length int) string {
	if sessionID == "" {
		return unknown
	}
	if len(sessionID) <= length {
		return sessionID
	}
	return sessionID[:length]
}

// AgentDisplayID formats an agent identifier as source_app:short-session-id.
func AgentDisplayID(sourceApp, sessionID string) string {
	return fmt.Sprintf("%s:%s", sourceApp, TruncateSessionID(sessionID, DisplayIDLength))
}
