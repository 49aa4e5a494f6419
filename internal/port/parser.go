package port

import "molscene/internal/domain"

// MoleculeParser reads one molecule from a file.
type MoleculeParser interface {
	ParseFile(path string) (*domain.Molecule, error)
}
