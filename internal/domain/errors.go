package domain

import "fmt"

// FormatError reports a molecule file line that was classified as an
// atom or bond record but could not be decoded. Parsing aborts on the
// first one; no partial molecule is returned.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// UnknownElementError reports a symbol with no entry in the element
// table. It surfaces when an appearance is resolved, not at parse time.
type UnknownElementError struct {
	Symbol string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element %q", e.Symbol)
}

// DegenerateBondError reports a bond whose endpoint atoms occupy the
// same position, leaving the bond direction undefined.
type DegenerateBondError struct {
	AtomA int
	AtomB int
}

func (e *DegenerateBondError) Error() string {
	return fmt.Sprintf("atoms %d and %d occupy the same position", e.AtomA, e.AtomB)
}
