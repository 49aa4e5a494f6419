// Package sdf reads the minimal SDF subset the scene builder consumes:
// a header section, an atom block, a bond block, and an "M END"
// terminator. Classification is positional, matching the fixed-column
// convention of the format: any line with at least three leading spaces
// is an atom record, even inside the bond block.
package sdf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"molscene/internal/domain"
)

// Parser implements the molecule parser port.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) ParseFile(path string) (*domain.Molecule, error) {
	return ParseFile(path)
}

// Parse reads one molecule from r. It fails with *domain.FormatError on
// the first atom or bond record that cannot be decoded; no partial
// molecule is returned.
func Parse(r io.Reader) (*domain.Molecule, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read molecule: %w", err)
	}
	return ParseLines(lines)
}

// ParseFile reads one molecule from the file at path.
func ParseFile(path string) (*domain.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mol, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if mol.Name == "" {
		base := filepath.Base(path)
		mol.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return mol, nil
}

// ParseLines runs the line classifier over the given lines.
//
// A line is an atom record if it has at least two fields and starts
// with three spaces; once one has been seen, every later line that is
// neither an atom record nor the "M END" terminator is a bond record.
// Lines before the first atom record are the header and are ignored,
// except that a non-blank first line names the molecule.
func ParseLines(lines []string) (*domain.Molecule, error) {
	mol := &domain.Molecule{}
	atomsFound := false

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			if i == 0 {
				mol.Name = strings.TrimSpace(line)
			}
			continue
		}

		switch {
		case fields[0] == "M" && fields[1] == "END":
			// Everything after the terminator is ignored.
			return mol, nil

		case strings.HasPrefix(line, "   "):
			atom, err := parseAtom(fields, i+1)
			if err != nil {
				return nil, err
			}
			atomsFound = true
			mol.Atoms = append(mol.Atoms, atom)

		case atomsFound:
			bond, err := parseBond(fields, i+1, len(mol.Atoms))
			if err != nil {
				return nil, err
			}
			mol.Bonds = append(mol.Bonds, bond)

		default:
			if i == 0 {
				mol.Name = strings.TrimSpace(line)
			}
		}
	}
	return mol, nil
}

// parseAtom decodes "x y z symbol [...]".
func parseAtom(fields []string, lineNo int) (domain.Atom, error) {
	if len(fields) < 4 {
		return domain.Atom{}, &domain.FormatError{Line: lineNo, Reason: "atom record needs x y z symbol"}
	}
	var coords [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return domain.Atom{}, &domain.FormatError{
				Line:   lineNo,
				Reason: fmt.Sprintf("bad coordinate %q", fields[i]),
			}
		}
		coords[i] = v
	}
	return domain.Atom{X: coords[0], Y: coords[1], Z: coords[2], Symbol: fields[3]}, nil
}

// parseBond decodes "atomA atomB count [...]" with 1-based atom
// indices, converting them to 0-based and checking them against the
// atoms declared so far.
func parseBond(fields []string, lineNo, atomCount int) (domain.Bond, error) {
	if len(fields) < 3 {
		return domain.Bond{}, &domain.FormatError{Line: lineNo, Reason: "bond record needs atomA atomB count"}
	}
	var nums [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return domain.Bond{}, &domain.FormatError{
				Line:   lineNo,
				Reason: fmt.Sprintf("bad bond field %q", fields[i]),
			}
		}
		nums[i] = v
	}

	a, b, count := nums[0]-1, nums[1]-1, nums[2]
	if a < 0 || a >= atomCount || b < 0 || b >= atomCount {
		return domain.Bond{}, &domain.FormatError{
			Line:   lineNo,
			Reason: fmt.Sprintf("bond references undeclared atom (%d atoms so far)", atomCount),
		}
	}
	if a == b {
		return domain.Bond{}, &domain.FormatError{Line: lineNo, Reason: "bond references the same atom twice"}
	}
	if count < 1 {
		return domain.Bond{}, &domain.FormatError{Line: lineNo, Reason: fmt.Sprintf("bond count %d < 1", count)}
	}
	return domain.Bond{AtomA: a, AtomB: b, Count: count}, nil
}
