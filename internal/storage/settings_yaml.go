package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"loadbar/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Background      string `yaml:"background"`
	HeightPx        int    `yaml:"height_px"`
	SimulateSeconds int    `yaml:"simulate_seconds"`
}

// LoadSettings reads demo preferences from YAML. If the config file does not
// exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return readSettingsFile(configPath)
}

// SaveSettings writes demo preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return writeSettingsFile(configPath, settings)
}

func readSettingsFile(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func writeSettingsFile(path string, settings preferences.Settings) error {
	fileData := yamlSettings{
		Background:      settings.Background,
		HeightPx:        settings.HeightPx,
		SimulateSeconds: int(settings.Simulate / time.Second),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Background != "" {
		settings.Background = fileData.Background
	}
	if fileData.HeightPx > 0 {
		settings.HeightPx = fileData.HeightPx
	}
	if fileData.SimulateSeconds > 0 {
		settings.Simulate = time.Duration(fileData.SimulateSeconds) * time.Second
	}
}
