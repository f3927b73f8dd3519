package jsontok

import (
	"bytes"
	"io"
)

// lineReader retains the bytes handed to the decoder until they have been
// scanned, so that the line of every token can be derived from the
// decoder's input offset.
type lineReader struct {
	r         io.Reader
	pending   []byte
	base      int64
	line      int
	lineStart int64
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: r, line: 1}
}

func (lr *lineReader) Read(p []byte) (int, error) {
	n, err := lr.r.Read(p)
	lr.pending = append(lr.pending, p[:n]...)
	return n, err
}

// advance consumes the input up to offset and returns the location there.
func (lr *lineReader) advance(offset int64) Location {
	if n := int(offset - lr.base); n > 0 {
		scanned := lr.pending[:n]
		if count := bytes.Count(scanned, []byte{'\n'}); count > 0 {
			lr.line += count
			lr.lineStart = lr.base + int64(bytes.LastIndexByte(scanned, '\n')) + 1
		}
		lr.pending = lr.pending[n:]
		lr.base = offset
	}

	return Location{
		Line:   lr.line,
		Column: int(offset-lr.lineStart) + 1,
		Offset: offset,
	}
}
