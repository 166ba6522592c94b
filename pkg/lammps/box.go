package lammps

import "gonum.org/v1/gonum/floats"

// DefaultPadding is the margin added on every side of the bounding box,
// in the length units of the input coordinates.
const DefaultPadding = 10.0

// BoundingBox computes the axis-aligned bounding box of the atoms,
// expanded by padding on every side. With no atoms there is nothing to
// bound and the zero Box is returned; callers treat that as a degenerate
// but valid box.
func BoundingBox(atoms []Atom, padding float64) Box {
	if len(atoms) == 0 {
		return Box{}
	}

	xs := make([]float64, len(atoms))
	ys := make([]float64, len(atoms))
	zs := make([]float64, len(atoms))
	for i, a := range atoms {
		xs[i], ys[i], zs[i] = a.X, a.Y, a.Z
	}

	return Box{
		XLo: floats.Min(xs) - padding, XHi: floats.Max(xs) + padding,
		YLo: floats.Min(ys) - padding, YHi: floats.Max(ys) + padding,
		ZLo: floats.Min(zs) - padding, ZHi: floats.Max(zs) + padding,
	}
}
