package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"molscene/internal/adapter/fs"
	"molscene/internal/adapter/sdf"
	"molscene/internal/adapter/store"
	"molscene/internal/domain"
)

const waterSDF = `water
  molscene test fixture

  3  2  0  0  0  0
    0.0000    0.0000    0.0000 O   0  0
    0.7600    0.5900    0.0000 H   0  0
   -0.7600    0.5900    0.0000 H   0  0
  1  2  1  0
  1  3  1  0
M  END
`

func newBatch(t *testing.T, root string) *BatchUseCase {
	t.Helper()
	st, err := store.NewBoltStore(filepath.Join(root, "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	walker := fs.NewWalker([]string{"**/*.sdf"}, nil)
	builder := NewBuildUseCase(sdf.NewParser(), domain.DefaultOptions())
	return NewBatchUseCase(st, walker, builder)
}

func TestBatchBuildsAllFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.sdf", filepath.Join("sub", "b.sdf")} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(waterSDF), 0644); err != nil {
			t.Fatal(err)
		}
	}

	outDir := filepath.Join(root, "scenes")
	batch := newBatch(t, t.TempDir())

	result, err := batch.Run(root, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.FilesBuilt != 2 {
		t.Errorf("expected 2 files built, got %d", result.FilesBuilt)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}

	for _, name := range []string{"a.scene.json", "b.scene.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}
}

func TestBatchSkipsUnchangedFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.sdf"), []byte(waterSDF), 0644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(root, "scenes")
	batch := newBatch(t, t.TempDir())

	first, err := batch.Run(root, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.FilesBuilt != 1 {
		t.Fatalf("expected 1 file built on first run, got %d", first.FilesBuilt)
	}

	second, err := batch.Run(root, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if second.FilesBuilt != 0 {
		t.Errorf("expected nothing rebuilt on second run, got %d", second.FilesBuilt)
	}
	if second.FilesSkipped != 1 {
		t.Errorf("expected 1 file skipped on second run, got %d", second.FilesSkipped)
	}
}

func TestBatchRewritesMissingOutputFromCache(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.sdf"), []byte(waterSDF), 0644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(root, "scenes")
	batch := newBatch(t, t.TempDir())

	if _, err := batch.Run(root, outDir, nil); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(outDir, "a.scene.json")
	if err := os.Remove(outPath); err != nil {
		t.Fatal(err)
	}

	result, err := batch.Run(root, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.FilesBuilt != 0 {
		t.Errorf("expected cached rewrite, not rebuild; built %d", result.FilesBuilt)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("expected output restored from cache: %v", err)
	}
}

func TestBatchAccumulatesErrors(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "good.sdf"), []byte(waterSDF), 0644); err != nil {
		t.Fatal(err)
	}
	bad := "broken\n   0.0 nope 0.0 C\nM  END\n"
	if err := os.WriteFile(filepath.Join(root, "bad.sdf"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	batch := newBatch(t, t.TempDir())

	result, err := batch.Run(root, filepath.Join(root, "scenes"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.FilesBuilt != 1 {
		t.Errorf("expected 1 file built, got %d", result.FilesBuilt)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error recorded, got %v", result.Errors)
	}
}
