package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"molscene/config"
	"molscene/internal/adapter/fs"
	"molscene/internal/adapter/sdf"
	"molscene/internal/adapter/store"
	"molscene/internal/usecase"
)

var batchOutput string

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Build scenes for every molecule file under a directory",
	Long: `Walk a directory tree, build a scene for every molecule file that
matches the configured include patterns, and write the results into the
output directory. Built scenes are cached in .molscene/cache.db within
the target directory so unchanged files are skipped on later runs.

Examples:
  molscene batch .                 # Build everything under the current directory
  molscene batch ./molecules -o ./scenes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output directory (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	outputDir := batchOutput
	if outputDir == "" {
		outputDir = cfg.Batch.OutputDir
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(path, outputDir)
	}

	if err := config.EnsureCacheDir(path); err != nil {
		return fmt.Errorf("failed to create .molscene directory: %w", err)
	}

	st, err := store.NewBoltStore(config.CacheDBPath(path))
	if err != nil {
		return fmt.Errorf("failed to open scene cache: %w", err)
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes)
	builder := usecase.NewBuildUseCase(sdf.NewParser(), sceneOptions(cmd))
	batch := usecase.NewBatchUseCase(st, walker, builder)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var initialized bool

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Building[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)
	}

	result, err := batch.Run(path, outputDir, progress)
	if err != nil {
		return fmt.Errorf("batch build failed: %w", err)
	}

	fmt.Printf("\nBatch complete:\n")
	fmt.Printf("  Scenes built:   %d\n", result.FilesBuilt)
	fmt.Printf("  Files skipped:  %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Shapes created: %d\n", result.ShapesCreated)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nScenes written to: %s\n", outputDir)
	return nil
}
