// Package geometry derives placement transforms from parsed molecule
// data: cylinder rotations and offsets for bonds, and sphere radius and
// color for atoms. It is pure computation with no shared state.
package geometry

import (
	"math"

	"molscene/internal/domain"
)

// ComputeBondPlacements computes the cylinder transforms for one bond
// record. Each of the bond.Count parallel instances becomes a pair of
// half-bonds, one anchored near each endpoint atom, meeting at the
// midpoint. Parallel instances are displaced perpendicular to the bond
// in the XY plane only, so multiplicity stays visible from above.
//
// It fails with *domain.DegenerateBondError when both atoms occupy the
// same position.
func ComputeBondPlacements(mol *domain.Molecule, bond domain.Bond, bondRadius float64) ([]domain.BondPlacement, error) {
	a := mol.Atoms[bond.AtomA]
	b := mol.Atoms[bond.AtomB]

	dX := b.X - a.X
	dY := b.Y - a.Y
	dZ := b.Z - a.Z

	length := math.Sqrt(dX*dX + dY*dY + dZ*dZ)
	if length == 0 {
		return nil, &domain.DegenerateBondError{AtomA: bond.AtomA, AtomB: bond.AtomB}
	}

	// Tilt the cylinder axis onto the atom-to-atom vector. A purely
	// vertical bond has an undefined ratio, so its tilt is fixed at
	// a quarter turn.
	var rotX float64
	if dX == 0 && dZ == 0 {
		rotX = math.Pi / 2
	} else {
		rotX = math.Atan(dY / math.Sqrt(dZ*dZ+dX*dX))
	}
	var rotY float64
	if dZ == 0 {
		rotY = math.Pi / 2
	} else {
		rotY = math.Atan(dX / dZ)
	}
	if dZ > 0 {
		rotX = -rotX
	}

	dXY := math.Sqrt(dX*dX + dY*dY)
	n := bond.Count

	placements := make([]domain.BondPlacement, 0, n)
	for i := 0; i < n; i++ {
		// Signed offset from the bond center line: instances are
		// spaced 4*bondRadius apart, symmetric around zero.
		modXY := bondRadius * float64(2*i-n+1) * 2

		var modX, modY float64
		if dXY == 0 {
			// Vertical bond: the in-plane perpendicular is undefined,
			// so spread the instances along the X axis.
			modX = modXY
		} else {
			modX = dY / dXY * modXY
			modY = -dX / dXY * modXY
		}

		half := func(owner int, anchor domain.Atom, sign float64) domain.HalfBond {
			return domain.HalfBond{
				X:         anchor.X + dX/4*sign + modX,
				Y:         anchor.Y + dY/4*sign + modY,
				Z:         anchor.Z + dZ/4*sign,
				RotX:      rotX,
				RotY:      rotY,
				Length:    length / 2,
				Radius:    bondRadius,
				OwnerAtom: owner,
			}
		}
		placements = append(placements, domain.BondPlacement{
			A: half(bond.AtomA, a, 1),
			B: half(bond.AtomB, b, -1),
		})
	}
	return placements, nil
}
