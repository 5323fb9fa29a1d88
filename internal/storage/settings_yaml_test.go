package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadbar/internal/ui/preferences"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	saved := preferences.Settings{
		Background: "#f33",
		HeightPx:   5,
		Simulate:   7 * time.Second,
	}

	require.NoError(t, writeSettingsFile(path, saved))

	loaded, err := readSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	loaded, err := readSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}

func TestLoadMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("background: [unclosed"), 0o644))

	loaded, err := readSettingsFile(path)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded, "defaults still usable on parse failure")
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height_px: 6\n"), 0o644))

	loaded, err := readSettingsFile(path)
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, 6, loaded.HeightPx)
	assert.Equal(t, defaults.Background, loaded.Background)
	assert.Equal(t, defaults.Simulate, loaded.Simulate)
}
