package xsd

import (
	"errors"
	"strings"
	"testing"
)

const namespacedDoc = `<?xml version="1.0" encoding="latin1"?>
<XSD Version="6.0" xmlns="http://www.accelrys.com/xsd">
 <AtomisticTreeRoot>
  <Molecule ID="2">
   <Atom3d ID="5" Name="C1" ForcefieldType="c3" Charge="-0.18" XYZ="0.1,0.2,0.3">
    <Components>C</Components>
   </Atom3d>
   <Atom3d ID="9" Name="H1" XYZ="1.1,0.2,0.3">
    <Components>H</Components>
   </Atom3d>
   <Bond ID="12" Connects="5,9" Type="Single"/>
  </Molecule>
 </AtomisticTreeRoot>
</XSD>`

const plainDoc = `<?xml version="1.0"?>
<AtomisticTreeRoot>
 <Molecule>
  <Atom3d ID="5" Name="C1" ForcefieldType="c3" Charge="-0.18" XYZ="0.1,0.2,0.3" Components="C"/>
  <Atom3d ID="9" Name="H1" XYZ="1.1,0.2,0.3" Components="H"/>
  <Bond ID="12" Connects="5,9" Type="Single"/>
 </Molecule>
</AtomisticTreeRoot>`

// Both namespace conventions must yield the same stream.
func TestReadNamespaceConventions(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"namespaced", namespacedDoc},
		{"unqualified", plainDoc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Read(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if len(s.Atoms) != 2 {
				t.Fatalf("got %d atoms, want 2", len(s.Atoms))
			}
			if len(s.Bonds) != 1 {
				t.Fatalf("got %d bonds, want 1", len(s.Bonds))
			}

			c := s.Atoms[0]
			if c.ID != 5 || c.Element != "C" || c.ForcefieldType != "c3" {
				t.Errorf("first atom = %+v", c)
			}
			if c.Charge != -0.18 {
				t.Errorf("Charge = %v, want -0.18", c.Charge)
			}
			if c.XYZ != [3]float64{0.1, 0.2, 0.3} {
				t.Errorf("XYZ = %v", c.XYZ)
			}

			h := s.Atoms[1]
			if h.ID != 9 || h.Element != "H" {
				t.Errorf("second atom = %+v", h)
			}
			if h.ForcefieldType != "unknown" {
				t.Errorf("ForcefieldType = %q, want the unknown placeholder", h.ForcefieldType)
			}
			if h.Charge != 0 {
				t.Errorf("absent Charge = %v, want 0", h.Charge)
			}

			b := s.Bonds[0]
			if b.Connects != [2]int{5, 9} || b.Order != "Single" {
				t.Errorf("bond = %+v", b)
			}
		})
	}
}

func TestReadElementResolution(t *testing.T) {
	tests := []struct {
		name string
		atom string
		want string
	}{
		{"child element", `<Atom3d ID="1"><Components>N</Components></Atom3d>`, "N"},
		{"child wins over attribute", `<Atom3d ID="1" Components="O"><Components>N</Components></Atom3d>`, "N"},
		{"attribute", `<Atom3d ID="1" Components="O"/>`, "O"},
		{"neither", `<Atom3d ID="1"/>`, "X"},
		{"empty child falls back", `<Atom3d ID="1" Components="O"><Components></Components></Atom3d>`, "O"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Read(strings.NewReader("<Root>" + tt.atom + "</Root>"))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got := s.Atoms[0].Element; got != tt.want {
				t.Errorf("Element = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadDegenerateValues(t *testing.T) {
	doc := `<Root>
 <Atom3d ID="1" XYZ="bad,data" Charge="abc"/>
 <Atom3d ID="2" XYZ="1,2"/>
</Root>`

	s, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(s.Atoms) != 2 {
		t.Fatalf("got %d atoms, want 2", len(s.Atoms))
	}
	for _, a := range s.Atoms {
		if a.XYZ != [3]float64{} {
			t.Errorf("atom %d XYZ = %v, want origin", a.ID, a.XYZ)
		}
	}
	if s.Atoms[0].Charge != 0 {
		t.Errorf("Charge = %v, want 0", s.Atoms[0].Charge)
	}
	if s.DefaultedCoords != 2 {
		t.Errorf("DefaultedCoords = %d, want 2", s.DefaultedCoords)
	}
	if s.DefaultedCharges != 1 {
		t.Errorf("DefaultedCharges = %d, want 1", s.DefaultedCharges)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"broken xml", `<Root><Atom3d ID="1"`},
		{"missing ID", `<Root><Atom3d Name="C1"/></Root>`},
		{"non-integer ID", `<Root><Atom3d ID="abc"/></Root>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestReadSkippedBonds(t *testing.T) {
	doc := `<Root>
 <Atom3d ID="1"/>
 <Atom3d ID="2"/>
 <Atom3d ID="3"/>
 <Bond Connects="1,2,3"/>
 <Bond Connects="a,b"/>
 <Bond Connects=""/>
 <Bond Connects="2,3"/>
</Root>`

	s, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if s.SkippedBonds != 3 {
		t.Errorf("SkippedBonds = %d, want 3", s.SkippedBonds)
	}
	if len(s.Bonds) != 1 {
		t.Fatalf("got %d bonds, want 1", len(s.Bonds))
	}
	if s.Bonds[0].Order != "Single" {
		t.Errorf("Order = %q, want the Single default", s.Bonds[0].Order)
	}
}

func TestReadEmptyDocument(t *testing.T) {
	s, err := Read(strings.NewReader(`<Root></Root>`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(s.Atoms) != 0 || len(s.Bonds) != 0 {
		t.Errorf("got %d atoms, %d bonds, want none", len(s.Atoms), len(s.Bonds))
	}
}
