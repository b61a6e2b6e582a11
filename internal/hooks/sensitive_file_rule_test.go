package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSensitiveFileRule(t *testing.T) {
	rule := NewSensitiveFileRule()
	assert.NotNil(t, rule)
	assert.Equal(t, "sensitive-file", rule.Name())
	assert.Equal(t, "Blocks access to env files, credential stores, and private keys", rule.Description())
}

func TestSensitiveFileRule_Evaluate(t *testing.T) {
	tests := []struct {
		name        string
		toolName    string
		filePath    string
		wantAllowed bool
	}{
		{
			name:        "allow non-file tool",
			toolName:    "Bash",
			filePath:    ".env",
			wantAllowed: true,
		},
		{
			name:        "allow Read with no file_path argument",
			toolName:    "Read",
			filePath:    "",
			wantAllowed: true,
		},
		{
			name:        "allow ordinary source file",
			toolName:    "Read",
			filePath:    "src/index.ts",
			wantAllowed: true,
		},
		{
			name:        "block .env read",
			toolName:    "Read",
			filePath:    ".env",
			wantAllowed: false,
		},
		{
			name:        "block .env write",
			toolName:    "Write",
			filePath:    "/home/user/project/.env",
			wantAllowed: false,
		},
		{
			name:        "block .env edit",
			toolName:    "Edit",
			filePath:    ".env",
			wantAllowed: false,
		},
		{
			name:        "block .env.local",
			toolName:    "Read",
			filePath:    "apps/web/.env.local",
			wantAllowed: false,
		},
		{
			name:        "block .env.production",
			toolName:    "Read",
			filePath:    ".env.production",
			wantAllowed: false,
		},
		{
			name:        "block uppercase env file",
			toolName:    "Read",
			filePath:    "project/.ENV",
			wantAllowed: false,
		},
		{
			name:        "block credentials.json",
			toolName:    "Read",
			filePath:    "config/credentials.json",
			wantAllowed: false,
		},
		{
			name:        "block secrets.json",
			toolName:    "Write",
			filePath:    "secrets.json",
			wantAllowed: false,
		},
		{
			name:        "block pem file",
			toolName:    "Read",
			filePath:    "certs/server.pem",
			wantAllowed: false,
		},
		{
			name:        "block key file",
			toolName:    "Read",
			filePath:    "tls/private.key",
			wantAllowed: false,
		},
		{
			name:        "block id_rsa anywhere in path",
			toolName:    "Read",
			filePath:    "/home/user/.ssh/id_rsa",
			wantAllowed: false,
		},
		{
			name:        "block id_rsa.pub stem match",
			toolName:    "Read",
			filePath:    "/home/user/.ssh/id_rsa.pub",
			wantAllowed: false,
		},
		{
			name:        "block id_ed25519",
			toolName:    "Read",
			filePath:    ".ssh/id_ed25519",
			wantAllowed: false,
		},
		{
			name:        "allow .env.sample",
			toolName:    "Read",
			filePath:    ".env.sample",
			wantAllowed: true,
		},
		{
			name:        "allow .env.example",
			toolName:    "Write",
			filePath:    "apps/web/.env.example",
			wantAllowed: true,
		},
		{
			name:        "allow .env.template",
			toolName:    "Edit",
			filePath:    ".env.template",
			wantAllowed: true,
		},
		{
			name:        "allow uppercase sample file",
			toolName:    "Read",
			filePath:    ".ENV.SAMPLE",
			wantAllowed: true,
		},
		{
			name:        "allow env-like name without suffix match",
			toolName:    "Read",
			filePath:    "environment.go",
			wantAllowed: true,
		},
	}

	rule := NewSensitiveFileRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			use := &ToolUse{ToolName: tt.toolName}
			if tt.filePath != "" {
				use.args = map[string]interface{}{"file_path": tt.filePath}
			}

			result := rule.Evaluate(use)

			require.NotNil(t, result)
			assert.Equal(t, tt.wantAllowed, result.Allowed)
			if tt.wantAllowed {
				assert.Empty(t, result.Message)
			} else {
				assert.Equal(t, "Sensitive file access detected: "+tt.filePath, result.Message)
				assert.Equal(t, rule.Name(), result.RuleName)
			}
		})
	}
}
