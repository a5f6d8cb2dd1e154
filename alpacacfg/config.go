// Package alpacacfg loads the YAML configuration for the decoder daemon:
// where to listen, how verbosely to log, and which devices the demo
// dispatcher should advertise.
package alpacacfg

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// Config is the top level configuration.
type Config struct {
	Listen   string         `yaml:"listen"`
	LogLevel string         `yaml:"log_level"`
	Devices  []DeviceConfig `yaml:"devices"`
}

// DeviceConfig describes one device the demo dispatcher exposes under
// /management/v1/configureddevices and routes /api/v1/... requests to.
type DeviceConfig struct {
	DeviceType   string `yaml:"device_type"`
	DeviceNumber uint32 `yaml:"device_number"`
	Name         string `yaml:"name"`
	UniqueID     string `yaml:"unique_id"`
}

// Default returns the configuration used when no file is given: listen on
// localhost:8080, log at info level, and advertise a single SafetyMonitor
// device at device number 0.
func Default() *Config {
	return &Config{
		Listen:   "localhost:8080",
		LogLevel: "info",
		Devices: []DeviceConfig{
			{DeviceType: "safetymonitor", DeviceNumber: 0, Name: "SafetyMonitor0", UniqueID: "00000000-0000-0000-0000-000000000000"},
		},
	}
}

// Load reads and parses the YAML configuration at path.
func Load(path string) (*Config, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("alpacacfg: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("alpacacfg: parsing %s: %w", path, err)
	}
	return &c, nil
}
