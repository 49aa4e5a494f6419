package geometry

import "molscene/internal/domain"

// ResolveAtomAppearance returns the sphere radius and color for one
// atom. With the minimal-carbon option, carbon spheres shrink to the
// bond radius; otherwise the element radius is scaled by the atom
// scale factor.
func ResolveAtomAppearance(symbol string, opts domain.Options) (domain.Appearance, error) {
	e, err := LookupElement(symbol)
	if err != nil {
		return domain.Appearance{}, err
	}
	radius := e.Radius * opts.AtomScale
	if opts.MinimalCarbon && symbol == "C" {
		radius = opts.BondRadius
	}
	return domain.Appearance{Radius: radius, Color: e.Color}, nil
}

// ShouldSkipAtom reports whether the atom is suppressed entirely.
func ShouldSkipAtom(symbol string, opts domain.Options) bool {
	return opts.HideHydrogen && symbol == "H"
}

// ShouldSkipBond reports whether a bond between the two symbols is
// suppressed. Hiding hydrogen hides every bond touching a hydrogen.
func ShouldSkipBond(symbolA, symbolB string, opts domain.Options) bool {
	if opts.HideBonds {
		return true
	}
	return opts.HideHydrogen && (symbolA == "H" || symbolB == "H")
}
