package domain

// Atom is a single atom record from a molecule file. Position is in
// angstroms. Atoms are identified by their position in the molecule's
// atom list; bond records refer to them by that index.
type Atom struct {
	X      float64
	Y      float64
	Z      float64
	Symbol string
}

// Bond connects two atoms by their 0-based indices into the atom list.
// Count is the number of parallel bonds (2 = double bond).
type Bond struct {
	AtomA int
	AtomB int
	Count int
}

// Molecule is the parsed form of one molecule file. Atom order matches
// declaration order in the file and is what bond indices refer to.
type Molecule struct {
	Name  string
	Atoms []Atom
	Bonds []Bond
}

// Options are the scene-generation knobs, previously bound to UI
// properties in the original tool.
type Options struct {
	AtomScale     float64
	HideBonds     bool
	BondRadius    float64
	HideHydrogen  bool
	MinimalCarbon bool
}

// DefaultOptions returns the options the original tool defaults to.
func DefaultOptions() Options {
	return Options{
		AtomScale:  0.25,
		BondRadius: 0.05,
	}
}

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Appearance is the resolved look of one atom: sphere radius after
// scaling, and the element color.
type Appearance struct {
	Radius float64
	Color  Color
}

// HalfBond is one of the two cylinder segments that make up a single
// bond instance. Each half is anchored near one endpoint atom and takes
// that atom's material. RotX and RotY are Euler rotations in radians;
// roll is always zero.
type HalfBond struct {
	X         float64
	Y         float64
	Z         float64
	RotX      float64
	RotY      float64
	Length    float64
	Radius    float64
	OwnerAtom int
}

// BondPlacement describes one parallel bond instance as its two halves.
// The halves meet at the midpoint between the two atoms.
type BondPlacement struct {
	A HalfBond
	B HalfBond
}

// Shape is one placement directive for the rendering collaborator.
type Shape struct {
	Kind     string  `json:"kind"` // "sphere" or "cylinder"
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	RotX     float64 `json:"rot_x,omitempty"`
	RotY     float64 `json:"rot_y,omitempty"`
	Radius   float64 `json:"radius"`
	Length   float64 `json:"length,omitempty"`
	Material string  `json:"material"`
}

// Material is a named color resource. Materials are shared: every shape
// for the same element references the same material.
type Material struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// Scene is the full set of directives derived from one molecule.
type Scene struct {
	Name      string     `json:"name"`
	Materials []Material `json:"materials"`
	Shapes    []Shape    `json:"shapes"`
}

// Summary holds the counts reported by the info command.
type Summary struct {
	Atoms    int
	Bonds    int
	Elements map[string]int
}
