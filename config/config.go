package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"molscene/internal/domain"
)

// Config holds all configuration for the molscene tool.
type Config struct {
	Scene SceneConfig `yaml:"scene"`
	Batch BatchConfig `yaml:"batch"`
}

// SceneConfig holds the scene-generation options. These were UI-bound
// operator properties in the original tool.
type SceneConfig struct {
	AtomScale     float64 `yaml:"atom_scale"`
	HideBonds     bool    `yaml:"hide_bonds"`
	BondRadius    float64 `yaml:"bond_radius"`
	HideHydrogen  bool    `yaml:"hide_hydrogen"`
	MinimalCarbon bool    `yaml:"minimal_carbon"`
}

// Options converts the scene section into the domain options value.
func (s SceneConfig) Options() domain.Options {
	return domain.Options{
		AtomScale:     s.AtomScale,
		HideBonds:     s.HideBonds,
		BondRadius:    s.BondRadius,
		HideHydrogen:  s.HideHydrogen,
		MinimalCarbon: s.MinimalCarbon,
	}
}

// BatchConfig holds batch-build configuration.
type BatchConfig struct {
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
	OutputDir string   `yaml:"output_dir"`
}

// DefaultConfig returns the default configuration. Scene defaults match
// the original tool: a quarter-scale ball-and-stick model.
func DefaultConfig() *Config {
	return &Config{
		Scene: SceneConfig{
			AtomScale:  0.25,
			BondRadius: 0.05,
		},
		Batch: BatchConfig{
			Includes:  []string{"**/*.sdf", "**/*.mol"},
			Excludes:  []string{"**/.molscene/**"},
			OutputDir: "scenes",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// molscene.yaml, then .molscene/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "molscene.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".molscene", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the batch scene cache.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, ".molscene", "cache.db")
}

// EnsureCacheDir ensures the .molscene directory exists.
func EnsureCacheDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".molscene"), 0755)
}
