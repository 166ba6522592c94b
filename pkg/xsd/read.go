package xsd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// raw shapes for xml.Decoder.DecodeElement. Components appears both as an
// attribute and as a child element depending on the Materials Studio
// version, so both are captured.
type atom3d struct {
	ID             string     `xml:"ID,attr"`
	Name           string     `xml:"Name,attr"`
	ForcefieldType string     `xml:"ForcefieldType,attr"`
	Charge         string     `xml:"Charge,attr"`
	XYZ            string     `xml:"XYZ,attr"`
	Components     string     `xml:"Components,attr"`
	ComponentsEl   []chardata `xml:"Components"`
}

type chardata struct {
	Text string `xml:",chardata"`
}

type bondElem struct {
	Connects string `xml:"Connects,attr"`
	Type     string `xml:"Type,attr"`
}

// ReadFile opens and reads one XSD document.
func ReadFile(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read reads one XSD document. Atom3d and Bond elements are collected at
// any nesting depth. Elements under the Accelrys namespace and elements
// with no namespace are collected separately; for each kind, the
// unqualified set is used when non-empty, otherwise the namespaced one,
// so a document written in either convention yields the same stream.
func Read(r io.Reader) (*Structure, error) {
	var (
		plainAtoms, nsAtoms []atom3d
		plainBonds, nsBonds []bondElem
	)

	dec := xml.NewDecoder(r)
	// Materials Studio declares latin1; atom attributes are plain ASCII,
	// so any ASCII-compatible single-byte declaration reads as-is.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToLower(charset) {
		case "latin1", "iso-8859-1", "us-ascii", "ascii":
			return input, nil
		}
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Space != "" && se.Name.Space != Namespace {
			continue
		}

		switch se.Name.Local {
		case "Atom3d":
			var a atom3d
			if err := dec.DecodeElement(&a, &se); err != nil {
				return nil, fmt.Errorf("%w: Atom3d: %v", ErrMalformed, err)
			}
			if se.Name.Space == Namespace {
				nsAtoms = append(nsAtoms, a)
			} else {
				plainAtoms = append(plainAtoms, a)
			}
		case "Bond":
			var b bondElem
			if err := dec.DecodeElement(&b, &se); err != nil {
				return nil, fmt.Errorf("%w: Bond: %v", ErrMalformed, err)
			}
			if se.Name.Space == Namespace {
				nsBonds = append(nsBonds, b)
			} else {
				plainBonds = append(plainBonds, b)
			}
		}
	}

	atoms := plainAtoms
	if len(atoms) == 0 {
		atoms = nsAtoms
	}
	bonds := plainBonds
	if len(bonds) == 0 {
		bonds = nsBonds
	}

	var s Structure
	for _, a := range atoms {
		at, err := s.atom(a)
		if err != nil {
			return nil, err
		}
		s.Atoms = append(s.Atoms, at)
	}
	for _, b := range bonds {
		bd, ok := s.bond(b)
		if !ok {
			s.SkippedBonds++
			continue
		}
		s.Bonds = append(s.Bonds, bd)
	}
	return &s, nil
}

// atom converts a raw Atom3d. A missing or non-integer ID is fatal; every
// other attribute degrades to a default.
func (s *Structure) atom(raw atom3d) (Atom, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw.ID))
	if err != nil {
		return Atom{}, fmt.Errorf("%w: Atom3d %q has no usable ID attribute", ErrMalformed, raw.Name)
	}

	at := Atom{
		ID:             id,
		Name:           raw.Name,
		ForcefieldType: raw.ForcefieldType,
		Element:        raw.element(),
	}
	if at.ForcefieldType == "" {
		at.ForcefieldType = "unknown"
	}

	if raw.Charge != "" {
		c, err := strconv.ParseFloat(strings.TrimSpace(raw.Charge), 64)
		if err != nil {
			s.DefaultedCharges++
		} else {
			at.Charge = c
		}
	}

	if raw.XYZ != "" {
		xyz, ok := parseTriple(raw.XYZ)
		if !ok {
			s.DefaultedCoords++
		} else {
			at.XYZ = xyz
		}
	}
	return at, nil
}

// element resolves the chemical element symbol: child Components text
// first, then the Components attribute, then the "X" placeholder.
func (raw *atom3d) element() string {
	for _, c := range raw.ComponentsEl {
		if t := strings.TrimSpace(c.Text); t != "" {
			return t
		}
	}
	if raw.Components != "" {
		return raw.Components
	}
	return "X"
}

// bond converts a raw Bond. Connects must name exactly two integer atom
// IDs; anything else drops the record.
func (s *Structure) bond(raw bondElem) (Bond, bool) {
	parts := strings.Split(raw.Connects, ",")
	if len(parts) != 2 {
		return Bond{}, false
	}

	var ids [2]int
	for k, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Bond{}, false
		}
		ids[k] = id
	}

	order := raw.Type
	if order == "" {
		order = "Single"
	}
	return Bond{Connects: ids, Order: order}, true
}

func parseTriple(str string) ([3]float64, bool) {
	parts := strings.Split(str, ",")
	if len(parts) != 3 {
		return [3]float64{}, false
	}

	var xyz [3]float64
	for k, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, false
		}
		xyz[k] = v
	}
	return xyz, true
}
