package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000/api", c.ServerBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Empty(t, c.CredentialFile)
	assert.Empty(t, c.LogFile)
}

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server_base_url": "https://content.example.com/api", "request_timeout": "30s"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var c Config
	c.LoadDefaults()
	parseJson(&c, path)

	assert.Equal(t, "https://content.example.com/api", c.ServerBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Empty(t, c.CredentialFile, "absent JSON fields keep their defaults")
}

func TestParseJson_NumericDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout": 5000000000}`), 0o600))

	var c Config
	c.LoadDefaults()
	parseJson(&c, path)

	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}

func TestParseJson_EmptyPathIsNoop(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseJson(&c, "")
	assert.Equal(t, "http://127.0.0.1:5000/api", c.ServerBaseURL)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("CONTENTDESK_SERVER_URL", "https://env.example.com/api")
	t.Setenv("CONTENTDESK_REQUEST_TIMEOUT", "15s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://env.example.com/api", c.ServerBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestParseFlags_Overrides(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseFlags(&c, []string{"-s", "https://flag.example.com/api", "-t", "20", "-l", "/tmp/contentdesk.log"})

	assert.Equal(t, "https://flag.example.com/api", c.ServerBaseURL)
	assert.Equal(t, 20*time.Second, c.RequestTimeout)
	assert.Equal(t, "/tmp/contentdesk.log", c.LogFile)
}

func TestConfigFilePath_ShortAndLongForm(t *testing.T) {
	assert.Equal(t, "conf.json", configFilePath([]string{"-c", "conf.json"}))
	assert.Equal(t, "conf.json", configFilePath([]string{"-config=conf.json", "-s", "x"}))
	assert.Empty(t, configFilePath([]string{"-s", "x"}))
}
