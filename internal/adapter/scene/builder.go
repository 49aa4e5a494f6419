// Package scene turns parsed molecule data into placement directives
// for the rendering collaborator: one sphere per visible atom and two
// half-bond cylinders per parallel bond instance.
package scene

import (
	"molscene/internal/adapter/geometry"
	"molscene/internal/domain"
)

// Builder accumulates the shapes and materials of one scene. Materials
// are created once per element and shared by every shape that uses
// them, keyed by symbol.
type Builder struct {
	opts      domain.Options
	scene     *domain.Scene
	materials map[string]string
}

// NewBuilder starts an empty scene with the given name.
func NewBuilder(name string, opts domain.Options) *Builder {
	return &Builder{
		opts:      opts,
		scene:     &domain.Scene{Name: name},
		materials: make(map[string]string),
	}
}

// AddAtom appends the sphere for one atom, unless the atom is
// suppressed by the hide-hydrogen option. The appearance lookup fails
// with *domain.UnknownElementError for symbols outside the element
// table.
func (b *Builder) AddAtom(atom domain.Atom) error {
	if geometry.ShouldSkipAtom(atom.Symbol, b.opts) {
		return nil
	}
	app, err := geometry.ResolveAtomAppearance(atom.Symbol, b.opts)
	if err != nil {
		return err
	}
	mat := b.materialFor(atom.Symbol, app.Color)
	b.scene.Shapes = append(b.scene.Shapes, domain.Shape{
		Kind:     "sphere",
		X:        atom.X,
		Y:        atom.Y,
		Z:        atom.Z,
		Radius:   app.Radius,
		Material: mat,
	})
	return nil
}

// AddBond appends the half-bond cylinders for one bond record, unless
// the bond is suppressed by the hide-bonds or hide-hydrogen options.
// Each half takes the material of the atom it is anchored to.
func (b *Builder) AddBond(mol *domain.Molecule, bond domain.Bond) error {
	symA := mol.Atoms[bond.AtomA].Symbol
	symB := mol.Atoms[bond.AtomB].Symbol
	if geometry.ShouldSkipBond(symA, symB, b.opts) {
		return nil
	}

	placements, err := geometry.ComputeBondPlacements(mol, bond, b.opts.BondRadius)
	if err != nil {
		return err
	}
	for _, p := range placements {
		for _, half := range []domain.HalfBond{p.A, p.B} {
			owner := mol.Atoms[half.OwnerAtom]
			app, err := geometry.ResolveAtomAppearance(owner.Symbol, b.opts)
			if err != nil {
				return err
			}
			mat := b.materialFor(owner.Symbol, app.Color)
			b.scene.Shapes = append(b.scene.Shapes, domain.Shape{
				Kind:     "cylinder",
				X:        half.X,
				Y:        half.Y,
				Z:        half.Z,
				RotX:     half.RotX,
				RotY:     half.RotY,
				Radius:   half.Radius,
				Length:   half.Length,
				Material: mat,
			})
		}
	}
	return nil
}

// Scene returns the directives accumulated so far.
func (b *Builder) Scene() *domain.Scene {
	return b.scene
}

// materialFor returns the material name for symbol, creating the
// material on first use.
func (b *Builder) materialFor(symbol string, color domain.Color) string {
	if name, ok := b.materials[symbol]; ok {
		return name
	}
	name := "element_" + symbol
	b.materials[symbol] = name
	b.scene.Materials = append(b.scene.Materials, domain.Material{Name: name, Color: color})
	return name
}
