package geometry

import "molscene/internal/domain"

// Element holds the static per-element rendering properties: the
// van der Waals radius in angstroms and the display color.
type Element struct {
	Radius float64
	Color  domain.Color
}

// elements is the closed set of supported elements. A symbol outside
// this table is an error when its appearance is resolved; there is no
// default radius or color.
var elements = map[string]Element{
	"H":  {1.2, domain.Color{R: 1, G: 1, B: 1}},
	"He": {1.4, domain.Color{R: 0, G: 1, B: 1}},
	"Li": {1.82, domain.Color{R: 0.184, G: 0, B: 1}},
	"C":  {1.7, domain.Color{R: 0.016, G: 0.016, B: 0.016}},
	"N":  {1.55, domain.Color{R: 0.016, G: 0.033, B: 1}},
	"O":  {1.52, domain.Color{R: 1, G: 0.016, B: 0}},
	"F":  {1.47, domain.Color{R: 0.014, G: 0.871, B: 0.014}},
	"Ne": {1.54, domain.Color{R: 0, G: 1, B: 1}},
	"Na": {2.27, domain.Color{R: 0.184, G: 0, B: 1}},
	"Mg": {1.73, domain.Color{R: 0, G: 0.184, B: 0}},
	"Si": {2.1, domain.Color{R: 0.723, G: 0.184, B: 1}},
	"P":  {1.8, domain.Color{R: 1, G: 0.319, B: 0}},
	"S":  {1.8, domain.Color{R: 0.723, G: 0.723, B: 0}},
	"Cl": {1.75, domain.Color{R: 0.014, G: 0.871, B: 0.014}},
	"Ar": {1.88, domain.Color{R: 0, G: 1, B: 1}},
}

// LookupElement returns the properties for symbol.
func LookupElement(symbol string) (Element, error) {
	e, ok := elements[symbol]
	if !ok {
		return Element{}, &domain.UnknownElementError{Symbol: symbol}
	}
	return e, nil
}
