package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes every message to all of its writers. A failing
// writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: writers}
}

// Write reports len(p) when at least one writer took the whole message, and
// the combined errors of the writers that failed.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err error
		ok  bool
	)
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		ok = true
	}
	if !ok {
		return 0, err
	}
	return len(p), err
}
