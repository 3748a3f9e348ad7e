package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var errMissingContent = errors.New("did you forget to pipe something in the command? If you wanted to reset the content of the node use `--force` or `-f`")

// isTerminal reports whether in is an interactive terminal. Readers that are
// not files, as used in tests, count as piped input.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readContent picks the payload of a write: the argument at index 1 if given,
// else piped input. Without either, required turns the empty payload into a
// usage error.
func readContent(args []string, in io.Reader, interactive, required bool) ([]byte, error) {
	if len(args) > 1 {
		return []byte(args[1]), nil
	}

	if !interactive {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to read stdin")
		}
		return data, nil
	}

	if required {
		return nil, errMissingContent
	}

	return []byte{}, nil
}
