package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"molscene/internal/adapter/scene"
	"molscene/internal/adapter/sdf"
	"molscene/internal/usecase"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Build the scene for one molecule file",
	Long: `Parse a molecule file and write its scene directives as JSON.

Examples:
  molscene build caffeine.sdf
  molscene build caffeine.sdf -o caffeine.scene.json
  molscene build caffeine.sdf --hide-hydrogen --minimal-carbon`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output file (default: stdout)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	builder := usecase.NewBuildUseCase(sdf.NewParser(), sceneOptions(cmd))

	result, err := builder.BuildFile(args[0])
	if err != nil {
		return err
	}

	for _, skipped := range result.SkippedBonds {
		fmt.Fprintf(os.Stderr, "Warning: skipped degenerate bond: %s\n", skipped)
	}

	if buildOutput == "" {
		return scene.Write(os.Stdout, result.Scene)
	}
	if err := scene.WriteFile(buildOutput, result.Scene); err != nil {
		return err
	}
	fmt.Printf("Scene written to: %s\n", buildOutput)
	fmt.Printf("  Materials: %d\n", len(result.Scene.Materials))
	fmt.Printf("  Shapes:    %d\n", len(result.Scene.Shapes))
	return nil
}
