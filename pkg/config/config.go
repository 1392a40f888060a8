package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vrtool/pkg/device"
)

const HomeEnv = "VRTOOL_HOME"

type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Device   DeviceConfig   `yaml:"device"`
}

type GenerateConfig struct {
	TemplateDir string `yaml:"template_dir"`
	DestRoot    string `yaml:"dest_root"`
	// Manifest optionally replaces the built-in VrTemplate manifest.
	Manifest string `yaml:"manifest,omitempty"`
}

type DeviceConfig struct {
	Bridge    string `yaml:"bridge"`
	MediaDir  string `yaml:"media_dir"`
	RemoteDir string `yaml:"remote_dir"`
	Serial    string `yaml:"serial,omitempty"`
}

func (d DeviceConfig) ToPusherConfig() device.Config {
	return device.Config{
		Bridge:    d.Bridge,
		MediaDir:  d.MediaDir,
		RemoteDir: d.RemoteDir,
		Serial:    d.Serial,
	}
}

func DefaultConfigDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".vrtool"
	}
	return filepath.Join(homeDir, ".vrtool")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.fillDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			TemplateDir: ".",
			DestRoot:    "..",
		},
		Device: DeviceConfig{
			Bridge:    device.DefaultBridge,
			MediaDir:  device.DefaultMediaDir,
			RemoteDir: device.DefaultRemoteDir,
		},
	}
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Generate.TemplateDir == "" {
		c.Generate.TemplateDir = def.Generate.TemplateDir
	}
	if c.Generate.DestRoot == "" {
		c.Generate.DestRoot = def.Generate.DestRoot
	}
	if c.Device.Bridge == "" {
		c.Device.Bridge = def.Device.Bridge
	}
	if c.Device.MediaDir == "" {
		c.Device.MediaDir = def.Device.MediaDir
	}
	if c.Device.RemoteDir == "" {
		c.Device.RemoteDir = def.Device.RemoteDir
	}
}

// applyEnv lets VRTOOL_* variables (typically from a .env file) override the
// device settings.
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"VRTOOL_BRIDGE":     &c.Device.Bridge,
		"VRTOOL_MEDIA_DIR":  &c.Device.MediaDir,
		"VRTOOL_REMOTE_DIR": &c.Device.RemoteDir,
		"VRTOOL_SERIAL":     &c.Device.Serial,
		"VRTOOL_MANIFEST":   &c.Generate.Manifest,
	}
	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
}

func EnsureConfigDir() error {
	configDir := DefaultConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// WriteDefaultConfig writes the default config unless one already exists and
// returns the config path.
func WriteDefaultConfig() (string, error) {
	if err := EnsureConfigDir(); err != nil {
		return "", err
	}

	configPath := DefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	return configPath, os.WriteFile(configPath, data, 0644)
}
