package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"molscene/internal/adapter/sdf"
	"molscene/internal/usecase"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show atom and bond counts for a molecule file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	builder := usecase.NewBuildUseCase(sdf.NewParser(), sceneOptions(cmd))

	summary, err := builder.Summarize(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Atoms: %d\n", summary.Atoms)
	fmt.Printf("Bonds: %d\n", summary.Bonds)

	symbols := make([]string, 0, len(summary.Elements))
	for sym := range summary.Elements {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		fmt.Printf("  %-3s %d\n", sym, summary.Elements[sym])
	}
	return nil
}
