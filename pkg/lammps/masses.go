package lammps

import (
	"strings"
	"unicode"
)

// DefaultMasses maps element symbols to atomic masses in g/mol. Only the
// common organic elements and a few salts are covered; MassFor falls back
// to 12.0 for anything else.
var DefaultMasses = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"S":  32.065,
	"P":  30.974,
	"Cl": 35.45,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.904,
	"Na": 22.990,
	"K":  39.098,
	"Ca": 40.078,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
}

// MassFor looks up a mass for an atom-type key. The key is usually a
// forcefield label ("c3", "hw", "Cl1"), so the element symbol is guessed
// from it: letters only, first one or two characters, capitalized, with a
// one-letter retry. The guess is best effort; an unrecognized symbol
// returns 12.0 and false. A nil masses map means DefaultMasses.
func MassFor(typeKey string, masses map[string]float64) (float64, bool) {
	if masses == nil {
		masses = DefaultMasses
	}

	var letters []rune
	for _, r := range typeKey {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		letters = []rune{'X'}
	}

	var symbol string
	if len(letters) == 1 {
		symbol = strings.ToUpper(string(letters[0]))
	} else {
		symbol = strings.ToUpper(string(letters[0])) + strings.ToLower(string(letters[1]))
	}
	if _, ok := masses[symbol]; !ok {
		symbol = strings.ToUpper(string(letters[0]))
	}

	m, ok := masses[symbol]
	if !ok {
		return 12.0, false
	}
	return m, true
}
