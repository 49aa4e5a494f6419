package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"molscene/config"
	"molscene/internal/domain"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string

	atomScale     float64
	hideBonds     bool
	bondRadius    float64
	hideHydrogen  bool
	minimalCarbon bool
)

var rootCmd = &cobra.Command{
	Use:   "molscene",
	Short: "Derive 3D scene placements from SDF molecule files",
	Long: `molscene parses SDF-style molecule files and derives placement
directives for a 3D scene: one sphere per atom, colored and scaled by
element, and half-bond cylinders rotated and offset so single, double
and triple bonds stay visually distinct.

Example usage:
  molscene build caffeine.sdf        # Build one scene to stdout
  molscene info caffeine.sdf         # Show atom/bond counts
  molscene batch ./molecules         # Build a whole directory`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./molscene.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")

	rootCmd.PersistentFlags().Float64Var(&atomScale, "atom-scale", 0.25, "atom scale factor (1 gives a space-filling model)")
	rootCmd.PersistentFlags().BoolVar(&hideBonds, "hide-bonds", false, "do not generate bonds")
	rootCmd.PersistentFlags().Float64Var(&bondRadius, "bond-radius", 0.05, "bond cylinder radius")
	rootCmd.PersistentFlags().BoolVar(&hideHydrogen, "hide-hydrogen", false, "drop hydrogen atoms and their bonds")
	rootCmd.PersistentFlags().BoolVar(&minimalCarbon, "minimal-carbon", false, "shrink carbon atoms to the bond radius")
}

// sceneOptions resolves the effective options: config values, then any
// flag the user set on the command line.
func sceneOptions(cmd *cobra.Command) domain.Options {
	opts := cfg.Scene.Options()
	flags := cmd.Flags()
	if flags.Changed("atom-scale") {
		opts.AtomScale = atomScale
	}
	if flags.Changed("hide-bonds") {
		opts.HideBonds = hideBonds
	}
	if flags.Changed("bond-radius") {
		opts.BondRadius = bondRadius
	}
	if flags.Changed("hide-hydrogen") {
		opts.HideHydrogen = hideHydrogen
	}
	if flags.Changed("minimal-carbon") {
		opts.MinimalCarbon = minimalCarbon
	}
	return opts
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
