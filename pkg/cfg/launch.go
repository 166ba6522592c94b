package cfg

import (
	"fmt"

	"github.com/crisnapatel/xsd2lammps/pkg/convert"
)

// Conversion is an interface that only contains one method: Start. Every
// conversion must have a Start method that will launch it. It must be a
// thread blocking method.
type Conversion interface {
	Start() error
}

// Launch launchs a specific conversion. It is a thread blocking method.
// The parameters required to launch the conversion must be in a file.
func Launch(name string, path string) error {
	var (
		err error
		cal Conversion
	)

	switch name {
	case convert.Type:
		cal, err = convert.New(path)
	default:
		return fmt.Errorf("conversion `%s` doesn't exist", name)
	}

	if err != nil {
		return fmt.Errorf("%s: New: %w", name, err)
	}

	err = cal.Start()
	if err != nil {
		return fmt.Errorf("%s: Start: %w", name, err)
	}

	return nil
}
