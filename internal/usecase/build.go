package usecase

import (
	"errors"
	"fmt"

	"molscene/internal/adapter/scene"
	"molscene/internal/domain"
	"molscene/internal/port"
)

// BuildUseCase turns one molecule into a scene.
type BuildUseCase struct {
	parser port.MoleculeParser
	opts   domain.Options
}

func NewBuildUseCase(parser port.MoleculeParser, opts domain.Options) *BuildUseCase {
	return &BuildUseCase{
		parser: parser,
		opts:   opts,
	}
}

// BuildResult contains the built scene plus any bonds that were
// dropped because their endpoints coincide.
type BuildResult struct {
	Scene        *domain.Scene
	Molecule     *domain.Molecule
	SkippedBonds []string
}

// BuildFile parses the molecule file at path and builds its scene.
func (u *BuildUseCase) BuildFile(path string) (*BuildResult, error) {
	mol, err := u.parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return u.Build(mol)
}

// Build derives the scene for an already-parsed molecule. An unknown
// element aborts the build; a degenerate bond is recorded and skipped
// so the rest of the molecule still renders.
func (u *BuildUseCase) Build(mol *domain.Molecule) (*BuildResult, error) {
	result := &BuildResult{Molecule: mol}
	builder := scene.NewBuilder(mol.Name, u.opts)

	for _, atom := range mol.Atoms {
		if err := builder.AddAtom(atom); err != nil {
			return nil, err
		}
	}

	for _, bond := range mol.Bonds {
		err := builder.AddBond(mol, bond)
		var degenerate *domain.DegenerateBondError
		if errors.As(err, &degenerate) {
			result.SkippedBonds = append(result.SkippedBonds, degenerate.Error())
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	result.Scene = builder.Scene()
	return result, nil
}

// Summarize reports atom/bond counts and the element histogram for the
// molecule file at path.
func (u *BuildUseCase) Summarize(path string) (*domain.Summary, error) {
	mol, err := u.parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	summary := &domain.Summary{
		Atoms:    len(mol.Atoms),
		Bonds:    len(mol.Bonds),
		Elements: make(map[string]int),
	}
	for _, atom := range mol.Atoms {
		summary.Elements[atom.Symbol]++
	}
	return summary, nil
}
