package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config using the shared search order:
// customPath -> ~/.arcade/configs/<file> -> ./configs/<file> -> embedded default.
// Only an explicit custom path surfaces errors; the fallback chain is silent.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	var cfg BreakoutConfig
	err := load("breakout.yaml", customPath, defaultBreakoutYAML, &cfg)
	return cfg, err
}

// LoadDino loads Dino Run configuration.
func LoadDino(customPath string) (DinoConfig, error) {
	var cfg DinoConfig
	err := load("dino.yaml", customPath, defaultDinoYAML, &cfg)
	return cfg, err
}

// LoadFrogger loads Frogger configuration.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	var cfg FroggerConfig
	err := load("frogger.yaml", customPath, defaultFroggerYAML, &cfg)
	return cfg, err
}

// LoadJezzball loads JezzBall configuration.
func LoadJezzball(customPath string) (JezzballConfig, error) {
	var cfg JezzballConfig
	err := load("jezzball.yaml", customPath, defaultJezzballYAML, &cfg)
	return cfg, err
}

// LoadPinball loads Pinball configuration.
func LoadPinball(customPath string) (PinballConfig, error) {
	var cfg PinballConfig
	err := load("pinball.yaml", customPath, defaultPinballYAML, &cfg)
	return cfg, err
}

// LoadBeam loads Beam configuration.
func LoadBeam(customPath string) (BeamConfig, error) {
	var cfg BeamConfig
	err := load("beam.yaml", customPath, defaultBeamYAML, &cfg)
	return cfg, err
}
