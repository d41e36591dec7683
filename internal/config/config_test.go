package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadehouse/booking-service/internal/config"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "booking_service"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/booking-service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "booking-service"

[user_service]
url = "http://localhost:8081"
timeout = 5
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "booking_service", cfg.Database.DBName)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "http://localhost:8081", cfg.UserService.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKING_DB_USER", "override_user")
	t.Setenv("BOOKING_DB_PASSWORD", "override_password")

	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "override_user", cfg.Database.User)
	assert.Equal(t, "override_password", cfg.Database.Password)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=booking_service sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	body := `
[server]
http_port = 0

[database]
host = "localhost"
dbname = "booking_service"

[user_service]
url = "http://localhost:8081"
`
	_, err := config.Load(writeConfig(t, body))
	assert.ErrorContains(t, err, "http_port")
}

func TestLoad_MissingUserServiceURL(t *testing.T) {
	body := `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "booking_service"
`
	_, err := config.Load(writeConfig(t, body))
	assert.ErrorContains(t, err, "user_service.url")
}
