package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
  write_timeout: 15
  idle_timeout: 60
  allow_origins:
    - https://dashboard.example.com
  public_url: https://dashboard.example.com
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
auth:
  jwt_secret: super-secret
  api_keys:
    - moderation-key
  requests_per_minute: 60
  burst: 20
identity:
  url: https://auth.example.com
  anon_key: anon
  service_role_key: service
  timeout: 5s
cloudflare:
  account_id: acc
  api_token: token
  max_upload_size: 2048
nats:
  url: nats://localhost:4222
  stream_name: TEST_ACTIVITY
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.WriteTimeout)
				assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.Server.AllowOrigins)
				assert.Equal(t, "https://dashboard.example.com", cfg.Server.PublicURL)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
				assert.Equal(t, []string{"moderation-key"}, cfg.Auth.APIKeys)
				assert.Equal(t, 60, cfg.Auth.RequestsPerMinute)
				assert.Equal(t, 20, cfg.Auth.Burst)
				assert.Equal(t, "https://auth.example.com", cfg.Identity.URL)
				assert.Equal(t, "service", cfg.Identity.ServiceRoleKey)
				assert.Equal(t, 5*time.Second, cfg.Identity.Timeout)
				assert.Equal(t, "acc", cfg.Cloudflare.AccountID)
				assert.Equal(t, int64(2048), cfg.Cloudflare.MaxUploadSize)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_ACTIVITY", cfg.NATS.StreamName)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
identity:
  url: https://auth.example.com
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 30, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 30, cfg.Auth.RequestsPerMinute)
				assert.Equal(t, 10, cfg.Auth.Burst)
				assert.Equal(t, 15*time.Second, cfg.Identity.Timeout)
				assert.Equal(t, int64(10*1024*1024), cfg.Cloudflare.MaxUploadSize)
				assert.Equal(t, "ARTIST_ACTIVITY", cfg.NATS.StreamName)
				assert.Equal(t, "activity", cfg.NATS.SubjectPrefix)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Empty(t, cfg.NATS.URL)
			},
		},
		{
			name: "missing identity url",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configFile), 0600))

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSeederConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SeederConfig)
	}{
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *SeederConfig) {
				assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 256, cfg.Worker.WorkerQueueSize)
				assert.Equal(t, 200, cfg.BatchSize)
				assert.Equal(t, 10, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxIdleTime)
			},
		},
		{
			name: "overrides",
			configFile: `
database:
  host: db
  dbname: artists
worker:
  pool_size: 2
  queue_size: 4
batch_size: 50
`,
			validate: func(t *testing.T, cfg *SeederConfig) {
				assert.Equal(t, "db", cfg.Database.Host)
				assert.Equal(t, 2, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 4, cfg.Worker.WorkerQueueSize)
				assert.Equal(t, 50, cfg.BatchSize)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: artists
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: db
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configFile), 0600))

			cfg, err := LoadSeederConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		ReadHost: "replica",
		User:     "u",
		Password: "p",
		DBName:   "db",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=replica port=5432 user=u password=p dbname=db sslmode=disable", cfg.ReadDSN())

	cfg.ReadPort = 6432
	assert.Equal(t, "host=replica port=6432 user=u password=p dbname=db sslmode=disable", cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// Viper uses the ARTIST_DASHBOARD_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `ARTIST_DASHBOARD_DEBUG=true
ARTIST_DASHBOARD_DATABASE_HOST=env-host
ARTIST_DASHBOARD_DATABASE_PORT=6543
ARTIST_DASHBOARD_IDENTITY_URL=https://env-auth.example.com
ARTIST_DASHBOARD_AUTH_JWT_SECRET=env-secret
`
	require.NoError(t, os.WriteFile(envFile, []byte(envContent), 0600))
	t.Cleanup(func() {
		for _, key := range []string{
			"ARTIST_DASHBOARD_DEBUG",
			"ARTIST_DASHBOARD_DATABASE_HOST",
			"ARTIST_DASHBOARD_DATABASE_PORT",
			"ARTIST_DASHBOARD_IDENTITY_URL",
			"ARTIST_DASHBOARD_AUTH_JWT_SECRET",
		} {
			_ = os.Unsetenv(key)
		}
	})

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
identity:
  url: https://file-auth.example.com
`
	require.NoError(t, os.WriteFile(configPath, []byte(configFile), 0600))

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// .env values override the config file
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "file-db", cfg.Database.DBName)
	assert.Equal(t, "https://env-auth.example.com", cfg.Identity.URL)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}
