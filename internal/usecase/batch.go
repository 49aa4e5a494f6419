package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"molscene/internal/adapter/scene"
	"molscene/internal/port"
)

// BatchUseCase builds scenes for every molecule file under a root
// directory, caching results so unchanged files are skipped on later
// runs.
type BatchUseCase struct {
	store   port.SceneStore
	walker  port.FileWalker
	builder *BuildUseCase
}

func NewBatchUseCase(store port.SceneStore, walker port.FileWalker, builder *BuildUseCase) *BatchUseCase {
	return &BatchUseCase{
		store:   store,
		walker:  walker,
		builder: builder,
	}
}

// BatchResult contains the results of one batch run.
type BatchResult struct {
	FilesBuilt    int
	FilesSkipped  int
	ShapesCreated int
	Errors        []string
}

// ProgressFunc reports batch progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

// Run builds all molecule files under root into outputDir. A file
// whose cached modification time has not advanced is rewritten from
// the cache without re-parsing.
func (u *BatchUseCase) Run(root, outputDir string, progress ProgressFunc) (*BatchResult, error) {
	result := &BatchResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, file := range files {
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}

		outPath := filepath.Join(outputDir, sceneFileName(file.Path))

		cached, modTime, ok, err := u.store.Get(file.Path)
		if err == nil && ok && modTime >= file.ModTime {
			if _, statErr := os.Stat(outPath); statErr == nil {
				result.FilesSkipped++
				continue
			}
			// Output file vanished; rewrite it from the cache.
			if err := scene.WriteFile(outPath, cached); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to write %s: %v", outPath, err))
				continue
			}
			result.FilesSkipped++
			continue
		}

		built, err := u.builder.BuildFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to build %s: %v", file.Path, err))
			continue
		}
		for _, skipped := range built.SkippedBonds {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: skipped degenerate bond: %s", file.Path, skipped))
		}

		if err := scene.WriteFile(outPath, built.Scene); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to write %s: %v", outPath, err))
			continue
		}
		if err := u.store.Put(file.Path, file.ModTime, built.Scene); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to cache %s: %v", file.Path, err))
		}

		result.FilesBuilt++
		result.ShapesCreated += len(built.Scene.Shapes)
	}

	return result, nil
}

func sceneFileName(molPath string) string {
	base := filepath.Base(molPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".scene.json"
}
