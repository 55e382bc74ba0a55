package cmd

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// readInput reads the named file, or stdin when name is empty or "-".
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		b, err := ioutil.ReadAll(stdin)
		return b, errors.Wrap(err, "read stdin")
	}
	b, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return b, nil
}

func openOutput(name string, stdout io.Writer) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", name)
	}
	return f, f.Close, nil
}
