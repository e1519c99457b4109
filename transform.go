package opencc

import (
	"golang.org/x/text/transform"
)

// Transformer adapts a Converter to the golang.org/x/text/transform
// interface, so a conversion can be plugged into transform.String,
// transform.NewReader or transform.NewWriter.
//
// OpenCC conversion is not streamable: a phrase dictionary entry may match
// across any chunk boundary. The transformer therefore buffers all input and
// runs a single conversion when the source signals EOF.
type Transformer struct {
	c       *Converter
	pending []byte // input accumulated until EOF
	out     []byte // converted bytes not yet copied to dst
	flushed bool
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer wraps c. The Transformer itself is single-use state and not
// goroutine-safe, but it serializes on c's internal lock like any other
// conversion, so distinct Transformers may share one Converter.
func NewTransformer(c *Converter) *Transformer {
	return &Transformer{c: c}
}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.flushed {
		t.pending = append(t.pending, src...)
		nSrc = len(src)
		if !atEOF {
			return 0, nSrc, transform.ErrShortSrc
		}
		converted, cerr := t.c.Convert(string(t.pending))
		if cerr != nil {
			return 0, nSrc, cerr
		}
		t.pending = t.pending[:0]
		t.out = append(t.out[:0], converted...)
		t.flushed = true
	}
	nDst = copy(dst, t.out)
	t.out = t.out[nDst:]
	if len(t.out) > 0 {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer, readying t for a new input stream.
func (t *Transformer) Reset() {
	t.pending = t.pending[:0]
	t.out = nil
	t.flushed = false
}
