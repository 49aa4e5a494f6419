package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene.AtomScale != 0.25 {
		t.Errorf("expected AtomScale=0.25, got %f", cfg.Scene.AtomScale)
	}
	if cfg.Scene.BondRadius != 0.05 {
		t.Errorf("expected BondRadius=0.05, got %f", cfg.Scene.BondRadius)
	}
	if cfg.Scene.HideBonds || cfg.Scene.HideHydrogen || cfg.Scene.MinimalCarbon {
		t.Error("expected all hide/minimal flags off by default")
	}
	if len(cfg.Batch.Includes) == 0 {
		t.Error("expected default include patterns")
	}
}

func TestSceneOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene.HideHydrogen = true

	opts := cfg.Scene.Options()
	if opts.AtomScale != 0.25 {
		t.Errorf("expected AtomScale=0.25, got %f", opts.AtomScale)
	}
	if !opts.HideHydrogen {
		t.Error("expected HideHydrogen to carry over")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "molscene.yaml")

	content := `
scene:
  atom_scale: 1.0
  hide_hydrogen: true
batch:
  output_dir: out
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Scene.AtomScale != 1.0 {
		t.Errorf("expected AtomScale=1.0, got %f", cfg.Scene.AtomScale)
	}
	if !cfg.Scene.HideHydrogen {
		t.Error("expected HideHydrogen=true")
	}
	if cfg.Scene.BondRadius != 0.05 {
		t.Errorf("expected default BondRadius to survive partial config, got %f", cfg.Scene.BondRadius)
	}
	if cfg.Batch.OutputDir != "out" {
		t.Errorf("expected OutputDir=out, got %s", cfg.Batch.OutputDir)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "molscene.yaml")

	content := `
scene:
  minimal_carbon: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Scene.MinimalCarbon {
		t.Error("expected MinimalCarbon=true")
	}
}

func TestCacheDBPath(t *testing.T) {
	path := CacheDBPath("/home/user/molecules")
	expected := filepath.Join("/home/user/molecules", ".molscene", "cache.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
