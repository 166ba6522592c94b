package convert

import (
	"log"

	"github.com/crisnapatel/xsd2lammps/pkg/lammps"
	"github.com/crisnapatel/xsd2lammps/pkg/xsd"
)

// Report counts what one conversion produced and what it had to absorb.
// Everything counted here was recovered locally; only Parse and Write
// errors abort a conversion.
type Report struct {
	Atoms     int
	Bonds     int
	AtomTypes int
	BondTypes int

	DroppedBonds     int // unusable Connects or unknown endpoints
	DefaultedCoords  int // XYZ triples replaced by the origin
	DefaultedCharges int // charges replaced by 0.0
	DefaultedMasses  int // atom types written with the fallback mass
}

// Converter converts a single XSD file. Call Parse, then Write; the model
// stays readable through System afterwards. A Converter is single use per
// input and holds no state shared with other conversions. Use
// NewConverter: the zero value has no padding.
type Converter struct {
	Padding float64
	Masses  map[string]float64 // element symbol -> mass, nil for the default table
	Log     *log.Logger        // warnings sink, may be nil

	sys    *lammps.System
	report Report
}

func NewConverter() *Converter {
	return &Converter{
		Padding: lammps.DefaultPadding,
		sys:     lammps.NewSystem(),
	}
}

// Parse reads the XSD document at path and populates the model: atoms in
// document order with dense indices from 1, then bonds resolved against
// the atom mapping, then the padded bounding box. It returns the number
// of atoms found. Bonds that cannot be resolved are dropped with a
// warning; only a malformed document or an unreadable file is an error,
// and after one the model keeps whatever was populated before it.
func (c *Converter) Parse(path string) (int, error) {
	st, err := xsd.ReadFile(path)
	if err != nil {
		return 0, err
	}

	c.sys = lammps.NewSystem()
	for _, a := range st.Atoms {
		c.sys.AddAtom(lammps.Atom{
			SourceID:       a.ID,
			Name:           a.Name,
			Element:        a.Element,
			ForcefieldType: a.ForcefieldType,
			Charge:         a.Charge,
			X:              a.XYZ[0],
			Y:              a.XYZ[1],
			Z:              a.XYZ[2],
		})
	}

	dropped := st.SkippedBonds
	if st.SkippedBonds > 0 {
		c.warnf("%s: %d bond(s) with unusable Connects skipped", path, st.SkippedBonds)
	}
	for _, b := range st.Bonds {
		_, err := c.sys.AddBond(b.Connects[0], b.Connects[1], b.Order)
		if err != nil {
			dropped++
			c.warnf("%s: bond %d,%d dropped: %v", path, b.Connects[0], b.Connects[1], err)
		}
	}

	c.sys.Box = lammps.BoundingBox(c.sys.Atoms, c.Padding)

	if st.DefaultedCoords > 0 {
		c.warnf("%s: %d atom(s) with unparseable XYZ placed at the origin", path, st.DefaultedCoords)
	}
	if st.DefaultedCharges > 0 {
		c.warnf("%s: %d atom(s) with unparseable Charge set to 0", path, st.DefaultedCharges)
	}

	c.report = Report{
		Atoms:            len(c.sys.Atoms),
		Bonds:            len(c.sys.Bonds),
		AtomTypes:        c.sys.AtomTypes.Len(),
		BondTypes:        c.sys.BondTypes.Len(),
		DroppedBonds:     dropped,
		DefaultedCoords:  st.DefaultedCoords,
		DefaultedCharges: st.DefaultedCharges,
	}
	return len(st.Atoms), nil
}

// Write emits the LAMMPS data file for the parsed model.
func (c *Converter) Write(path string) error {
	defaulted, err := c.sys.WriteFile(path, c.Masses)
	c.report.DefaultedMasses = defaulted
	if defaulted > 0 {
		c.warnf("%s: %d atom type(s) written with the fallback mass", path, defaulted)
	}
	return err
}

// System exposes the populated model, e.g. for reporting.
func (c *Converter) System() *lammps.System {
	return c.sys
}

// Report returns the counters for the last Parse/Write.
func (c *Converter) Report() Report {
	return c.report
}

func (c *Converter) warnf(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Printf(format, args...)
	}
}
