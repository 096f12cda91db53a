package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no config.yaml or .env
// from the repository leaks in.
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)
	t.Setenv("NASA_API_KEY", "")
	t.Setenv("APOD_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://api.nasa.gov/planetary/apod", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Timeout())
	require.Equal(t, "DEMO_KEY", cfg.Key())
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadEnv(t *testing.T) {
	inTempDir(t)
	t.Setenv("APOD_API_KEY", "")
	t.Setenv("NASA_API_KEY", "env-key")
	t.Setenv("APOD_BASE_URL", "http://localhost:9999/apod")
	t.Setenv("APOD_CLIENT_TIMEOUT", "5s")
	t.Setenv("APOD_SERVER_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "env-key", cfg.Key())
	require.Equal(t, "http://localhost:9999/apod", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Timeout())
	require.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadFile(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("NASA_API_KEY", "")
	t.Setenv("APOD_API_KEY", "")

	yaml := "api_key: file-key\nclient_timeout: 2s\nlog_level: debug\nserver:\n  address: 127.0.0.1\n  port: 7000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "file-key", cfg.Key())
	require.Equal(t, 2*time.Second, cfg.Timeout())
	require.Equal(t, "127.0.0.1", cfg.Server.Address)
	require.Equal(t, 7000, cfg.Server.Port)

	cfg.SetupLogger()
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	logrus.SetLevel(logrus.InfoLevel)
}

func TestTimeoutFallback(t *testing.T) {

	tests := []struct {
		name     string
		cfg      *Config
		expected time.Duration
	}{
		{name: "nil", cfg: nil, expected: 30 * time.Second},
		{name: "empty", cfg: &Config{}, expected: 30 * time.Second},
		{name: "garbage", cfg: &Config{ClientTimeout: "soon"}, expected: 30 * time.Second},
		{name: "negative", cfg: &Config{ClientTimeout: "-1s"}, expected: 30 * time.Second},
		{name: "valid", cfg: &Config{ClientTimeout: "1m"}, expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cfg.Timeout())
		})
	}
}
