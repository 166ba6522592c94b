// Package convert implements the xsd_to_lammps calculation: it turns
// Materials Studio XSD structure files into LAMMPS data files, one output
// per input, and reports what it had to drop or default along the way.
package convert

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/crisnapatel/xsd2lammps/pkg/lammps"
)

// Type is the name of the calculation.
var Type = "xsd_to_lammps"

// Conv is the batch conversion parsed from a TOML configuration file. It
// converts every file in Files plus every *.xsd under Dir; the output
// name is the input name with its extension replaced by OutSuffix. This
// structure can be instanced through the New method.
type Conv struct {
	Dir       string             `toml:"xsd_to_lammps.dir"`
	Files     []string           `toml:"xsd_to_lammps.files"`
	OutSuffix string             `toml:"xsd_to_lammps.out_suffix"`
	Padding   float64            `toml:"xsd_to_lammps.padding"`
	Masses    map[string]float64 `toml:"xsd_to_lammps.masses"`

	log *log.Logger
}

// New returns an instance of the Conv structure. It reads and parses the
// configuration file given in argument. The file must be a TOML file.
// An absent out_suffix means ".data"; a padding that is absent, zero or
// negative means the default 10.0; an absent masses table means the
// built-in one.
func New(path string) (*Conv, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Conv
	dec := toml.NewDecoder(f)
	err = dec.Decode(&c)
	if err != nil {
		return nil, err
	}

	if c.OutSuffix == "" {
		c.OutSuffix = ".data"
	}
	if c.Padding <= 0 {
		c.Padding = lammps.DefaultPadding
	}
	c.log = log.New(os.Stdout, "", log.LstdFlags)

	if c.Dir == "" && len(c.Files) == 0 {
		return nil, fmt.Errorf("no input: set dir or files")
	}
	return &c, nil
}

// SetLogger redirects the per-file summaries and warnings.
func (c *Conv) SetLogger(l *log.Logger) {
	c.log = l
}

// Start performs the conversions one by one. It is a thread blocking
// method. A file that fails is logged and skipped, the batch keeps
// going; Start returns an error if any file failed.
func (c *Conv) Start() error {
	files := append([]string(nil), c.Files...)
	if c.Dir != "" {
		matches, err := filepath.Glob(filepath.Join(c.Dir, "*.xsd"))
		if err != nil {
			return err
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .xsd files to convert")
	}

	var failed int
	for _, in := range files {
		out := strings.TrimSuffix(in, filepath.Ext(in)) + c.OutSuffix
		err := c.convert(in, out)
		if err != nil {
			failed++
			c.log.Println(fmt.Errorf("convert %s: %w", in, err))
		}
	}

	c.log.Printf("%d file(s) converted, %d failed", len(files)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(files))
	}
	return nil
}

func (c *Conv) convert(in, out string) error {
	conv := NewConverter()
	conv.Padding = c.Padding
	conv.Masses = mergeMasses(c.Masses)
	conv.Log = c.log

	atoms, err := conv.Parse(in)
	if err != nil {
		return fmt.Errorf("Parse: %w", err)
	}

	err = conv.Write(out)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	r := conv.Report()
	c.log.Printf("%s: %d atoms, %d bonds, %d atom types, %d bond types -> %s",
		in, atoms, r.Bonds, r.AtomTypes, r.BondTypes, out)
	return nil
}

// mergeMasses lays per-run overrides over the built-in table.
func mergeMasses(over map[string]float64) map[string]float64 {
	if len(over) == 0 {
		return lammps.DefaultMasses
	}
	m := make(map[string]float64, len(lammps.DefaultMasses)+len(over))
	for k, v := range lammps.DefaultMasses {
		m[k] = v
	}
	for k, v := range over {
		m[k] = v
	}
	return m
}
