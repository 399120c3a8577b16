//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.Production)
	assert.Equal(t, "Therapeutic Companion System", cfg.SystemName)
	assert.Equal(t, "therapy_data", cfg.DataDir)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.False(t, cfg.SMTP.Configured())
}

func TestInitializeRestConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PRODUCTION", "true")
	t.Setenv("SYSTEM_NAME", "Companion QA")
	t.Setenv("SYSTEM_EMAIL", "reports@example.org")
	t.Setenv("SYSTEM_EMAIL_PASSWORD", "app-password")
	t.Setenv("SMTP_SERVER", "smtp.example.org")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("ACCESS_CODE", "master-secret")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Production)
	assert.Equal(t, "Companion QA", cfg.SystemName)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "smtp.example.org", cfg.SMTP.Server)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "master-secret", cfg.MasterToken)
}

func TestInitializeRestConfig_MasterTokenEnvWins(t *testing.T) {
	t.Setenv("MASTER_TOKEN", "direct-token")
	t.Setenv("ACCESS_CODE", "fallback-token")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "direct-token", cfg.MasterToken)
}

func TestSMTPSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *SMTPSettings
		expectedError bool
	}{
		{
			name:          "unconfigured is valid",
			settings:      &SMTPSettings{},
			expectedError: false,
		},
		{
			name: "configured with server",
			settings: &SMTPSettings{
				SenderEmail:    "reports@example.org",
				SenderPassword: "secret",
				Server:         "smtp.example.org",
				Port:           587,
			},
			expectedError: false,
		},
		{
			name: "configured without server",
			settings: &SMTPSettings{
				SenderEmail:    "reports@example.org",
				SenderPassword: "secret",
			},
			expectedError: true,
		},
		{
			name: "invalid sender email",
			settings: &SMTPSettings{
				SenderEmail: "not-an-email",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
