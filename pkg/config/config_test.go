package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "BiteForm", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "biteform", cfg.Database.DBName)
	assert.True(t, cfg.Database.ShouldAutoMigrate())
	assert.NotEmpty(t, cfg.Security.JWTSecret)
	assert.False(t, cfg.Security.RequireAuth)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  mode: debug
database:
  driver: sqlite
  path: data/forms.db
  auto_migrate: false
security:
  require_auth: true
logging:
  level: debug
  output: both
`)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/forms.db", cfg.Database.DSN())
	assert.False(t, cfg.Database.ShouldAutoMigrate())
	assert.Equal(t, "from-env", cfg.Security.JWTSecret)
	assert.True(t, cfg.Security.RequireAuth)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"不支持的驱动", "database:\n  driver: oracle\n"},
		{"非法端口", "server:\n  port: 70000\n"},
		{"非法模式", "server:\n  mode: verbose\n"},
		{"非法日志输出", "logging:\n  output: syslog\n"},
		{"YAML 格式错误", "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DBName: "forms", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=forms sslmode=disable TimeZone=UTC", pg.DSN())

	my := DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, User: "u", Password: "p", DBName: "forms"}
	assert.Equal(t, "u:p@tcp(db:3306)/forms?charset=utf8mb4&parseTime=True&loc=UTC", my.DSN())

	mysqlDefaults := DatabaseConfig{Driver: "mysql"}
	mysqlDefaults.SetDefaults()
	assert.Equal(t, 3306, mysqlDefaults.Port)
}
