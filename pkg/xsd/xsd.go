// Package xsd reads Materials Studio XSD structure documents. It extracts
// the Atom3d and Bond elements and nothing else. Documents may declare the
// Accelrys namespace or use plain element names; both conventions are
// accepted.
package xsd

import "errors"

// Namespace is the URI Materials Studio declares on XSD documents.
const Namespace = "http://www.accelrys.com/xsd"

// ErrMalformed reports an input that cannot be converted at all:
// unparseable XML or an Atom3d without a usable ID.
var ErrMalformed = errors.New("xsd: malformed input")

// Atom is one Atom3d element. ID is the source document ID; it may be
// sparse and out of order across a document.
type Atom struct {
	ID             int
	Name           string
	ForcefieldType string
	Element        string
	Charge         float64
	XYZ            [3]float64
}

// Bond is one Bond element. Connects holds the two source atom IDs as
// written, unordered and not yet checked against the atom list.
type Bond struct {
	Connects [2]int
	Order    string
}

// Structure is the raw content of one document. The counters record
// values that had to be defaulted or records that had to be dropped;
// none of them abort a read.
type Structure struct {
	Atoms []Atom
	Bonds []Bond

	DefaultedCoords  int // XYZ attributes that did not parse as a float triple
	DefaultedCharges int // Charge attributes that did not parse as a float
	SkippedBonds     int // Bond elements whose Connects was unusable
}
