// Package lammps holds the in-memory model of a LAMMPS data file: atoms
// with dense sequential indices, deduplicated bonds, the two type intern
// tables and the simulation box, plus the writer for the data format.
package lammps

import (
	"errors"
	"fmt"
)

// Placeholder a forcefield label defaults to when the source declares
// none. An atom carrying it is typed by its element symbol instead.
const UnknownForcefieldType = "unknown"

// ErrUnknownAtom reports a bond endpoint whose source ID matches no atom.
var ErrUnknownAtom = errors.New("lammps: bond references an unknown atom ID")

// Atom is one atom row. Its dense 1-based index is its position in
// System.Atoms plus one; SourceID is whatever the input document used and
// may be sparse or out of order.
type Atom struct {
	SourceID       int
	Name           string
	Element        string
	ForcefieldType string
	Charge         float64
	X, Y, Z        float64

	Type    int    // interned atom type, assigned by AddAtom
	TypeKey string // the key Type was interned under
}

// Bond is one bond row. Atom1 and Atom2 are dense atom indices with
// Atom1 < Atom2.
type Bond struct {
	ID           int
	Type         int
	Atom1, Atom2 int
	Order        string
}

// BondKey identifies a bond type: the two element symbols in
// lexicographic order plus the bond-order label, so C-H and H-C
// intern to the same type.
type BondKey struct {
	ElemA, ElemB string
	Order        string
}

// Box is the axis-aligned simulation box.
type Box struct {
	XLo, XHi float64
	YLo, YHi float64
	ZLo, ZHi float64
}

// System is the model built from one input structure. Populate it with
// AddAtom, then AddBond (bonds resolve atoms through the source-ID
// mapping, so all atoms must be added first), then set Box.
type System struct {
	Atoms []Atom
	Bonds []Bond

	AtomTypes *TypeTable[string]
	BondTypes *TypeTable[BondKey]
	Box       Box

	index map[int]int     // source ID -> dense 1-based index
	pairs map[[2]int]bool // dense pairs already bonded, smaller index first
}

func NewSystem() *System {
	return &System{
		AtomTypes: NewTypeTable[string](),
		BondTypes: NewTypeTable[BondKey](),
		index:     make(map[int]int),
		pairs:     make(map[[2]int]bool),
	}
}

// AddAtom appends a at the next dense index and returns that index. The
// atom type is interned from the forcefield label, or from the element
// symbol when the label is empty or the placeholder.
func (s *System) AddAtom(a Atom) int {
	key := a.ForcefieldType
	if key == "" || key == UnknownForcefieldType {
		key = a.Element
	}
	a.TypeKey = key
	a.Type = s.AtomTypes.Assign(key)

	idx := len(s.Atoms) + 1
	s.index[a.SourceID] = idx
	s.Atoms = append(s.Atoms, a)
	return idx
}

// Index returns the dense index for a source atom ID.
func (s *System) Index(sourceID int) (int, bool) {
	idx, ok := s.index[sourceID]
	return idx, ok
}

// AddBond records a bond between two source atom IDs and returns the
// assigned bond ID. An endpoint with no matching atom yields
// ErrUnknownAtom. A pair that is already bonded, in either direction,
// returns 0 with no error: the duplicate is absorbed and the bond-ID
// counter does not advance.
func (s *System) AddBond(srcA, srcB int, order string) (int, error) {
	a, ok := s.index[srcA]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownAtom, srcA)
	}
	b, ok := s.index[srcB]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownAtom, srcB)
	}

	if b < a {
		a, b = b, a
	}
	pair := [2]int{a, b}
	if s.pairs[pair] {
		return 0, nil
	}
	s.pairs[pair] = true

	e1 := s.Atoms[a-1].Element
	e2 := s.Atoms[b-1].Element
	if e2 < e1 {
		e1, e2 = e2, e1
	}

	id := len(s.Bonds) + 1
	s.Bonds = append(s.Bonds, Bond{
		ID:    id,
		Type:  s.BondTypes.Assign(BondKey{ElemA: e1, ElemB: e2, Order: order}),
		Atom1: pair[0],
		Atom2: pair[1],
		Order: order,
	})
	return id, nil
}
