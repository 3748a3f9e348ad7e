package namespace

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/0glabs/zk-cli/node"
	"github.com/pkg/errors"
)

// ErrNotUTF8 is returned when a payload read as text is not valid UTF-8.
var ErrNotUTF8 = errors.New("payload is not valid UTF-8")

// Reader prints node payloads.
type Reader struct {
	client node.Client
}

// NewReader creates a reader acting through client.
func NewReader(client node.Client) *Reader {
	return &Reader{client: client}
}

// Cat writes the payload of path to out. In binary mode the bytes are written
// as they are, otherwise the payload must be UTF-8 text and is followed by a
// newline.
func (r *Reader) Cat(out io.Writer, path string, binary bool) error {
	data, err := r.client.Get(path)
	if err != nil {
		return errors.WithMessagef(err, "failed to read %v", path)
	}

	if binary {
		_, err = out.Write(data)
		return err
	}

	if !utf8.Valid(data) {
		return errors.WithMessagef(ErrNotUTF8, "%v", path)
	}

	_, err = fmt.Fprintln(out, string(data))
	return err
}
