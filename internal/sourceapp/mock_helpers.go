package sourceapp

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitRunner is a mock implementation of command.GitRunner for testing.
type MockGitRunner struct {
	mock.Mock
}

// GetRemoteOriginURL is a mock implementation of GitRunner.GetRemoteOriginURL.
func (m *MockGitRunner) GetRemoteOriginURL(ctx context.Context, dir string) (string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.Error(1)
}
