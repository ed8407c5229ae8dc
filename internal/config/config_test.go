package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 9000
log_level = "trace"
logs_path = ""
log_to_stdout = true
sentry_enabled = false
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "formcoach"
redis_host = "localhost"
redis_port = "6379"
nats_url = ""
nats_unlock_subject = "progress.milestones.unlocked"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 15

[production]
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/formcoach/service.log"
log_to_stdout = false
sentry_enabled = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "formcoach"
redis_host = "localhost"
redis_port = "6379"
nats_url = "nats://localhost:4222"
nats_unlock_subject = "progress.milestones.unlocked"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 5
`

func TestLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfigContent), 0o600))

	devConfig, err := Load("dev", configPath)
	require.NoError(t, err)
	assert.Equal(t, "development", devConfig.Environment)
	assert.Equal(t, "localhost", devConfig.Host)
	assert.Equal(t, 9000, devConfig.Port)
	assert.Equal(t, "trace", devConfig.LogLevel)
	assert.False(t, devConfig.SentryEnabled)
	assert.Equal(t, "formcoach", devConfig.PostgresDBName)
	assert.Empty(t, devConfig.NatsURL)
	assert.Equal(t, 15, devConfig.LoginRateLimitAllowedPerMin)

	prodConfig, err := Load("production", configPath)
	require.NoError(t, err)
	assert.Equal(t, "production", prodConfig.Environment)
	assert.True(t, prodConfig.SentryEnabled)
	assert.Equal(t, "nats://localhost:4222", prodConfig.NatsURL)
	assert.Equal(t, "progress.milestones.unlocked", prodConfig.NatsUnlockSubject)

	_, err = Load("staging", configPath)
	require.Error(t, err)
}
