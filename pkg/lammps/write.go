package lammps

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteData renders the system as a LAMMPS data file. masses maps element
// symbols to atomic masses; nil means DefaultMasses. The return value is
// the number of atom types whose mass had to be defaulted because no
// element symbol could be recognized in the type key.
//
// Angles, dihedrals and impropers are always written as zero: the input
// format carries no such terms.
func (s *System) WriteData(w io.Writer, masses map[string]float64) (int, error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "LAMMPS data file - converted from XSD")
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "%d atoms\n", len(s.Atoms))
	fmt.Fprintf(bw, "%d bonds\n", len(s.Bonds))
	fmt.Fprintln(bw, "0 angles")
	fmt.Fprintln(bw, "0 dihedrals")
	fmt.Fprintln(bw, "0 impropers")
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "%d atom types\n", s.AtomTypes.Len())
	fmt.Fprintf(bw, "%d bond types\n", s.BondTypes.Len())
	fmt.Fprintln(bw, "0 angle types")
	fmt.Fprintln(bw, "0 dihedral types")
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "%.6f %.6f xlo xhi\n", s.Box.XLo, s.Box.XHi)
	fmt.Fprintf(bw, "%.6f %.6f ylo yhi\n", s.Box.YLo, s.Box.YHi)
	fmt.Fprintf(bw, "%.6f %.6f zlo zhi\n", s.Box.ZLo, s.Box.ZHi)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Masses")
	fmt.Fprintln(bw)
	var defaulted int
	for i, key := range s.AtomTypes.Keys() {
		m, known := MassFor(key, masses)
		if !known {
			defaulted++
		}
		fmt.Fprintf(bw, "%d %.3f  # %s\n", i+1, m, key)
	}
	fmt.Fprintln(bw)

	// Bond coefficients are the user's job; leave them a legend.
	if s.BondTypes.Len() > 0 {
		fmt.Fprintln(bw, "# Bond Types Reference:")
		for i, k := range s.BondTypes.Keys() {
			fmt.Fprintf(bw, "#   Type %d: %s-%s (%s)\n", i+1, k.ElemA, k.ElemB, k.Order)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "Atoms")
	fmt.Fprintln(bw)
	for i, a := range s.Atoms {
		fmt.Fprintf(bw, "%d 1 %d %.6f %.8f %.8f %.8f\n",
			i+1, a.Type, a.Charge, a.X, a.Y, a.Z)
	}
	fmt.Fprintln(bw)

	if len(s.Bonds) > 0 {
		fmt.Fprintln(bw, "Bonds")
		fmt.Fprintln(bw)
		for _, b := range s.Bonds {
			fmt.Fprintf(bw, "%d %d %d %d\n", b.ID, b.Type, b.Atom1, b.Atom2)
		}
		fmt.Fprintln(bw)
	}

	return defaulted, bw.Flush()
}

// WriteFile writes the data file to path. The file is created up front
// and closed on every path; after a write error the partial file is left
// in place.
func (s *System) WriteFile(path string, masses map[string]float64) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	defaulted, err := s.WriteData(f, masses)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return defaulted, err
}
