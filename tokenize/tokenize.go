// Package tokenize destructively splits a mutable buffer into delimiter
// separated views.
//
// Destructively means the buffer itself is the backing store: delimiter
// bytes are overwritten with NUL terminators and each token is a subslice of
// the original buffer, so tokenizing allocates nothing per token. The price
// is discipline: tokens are only valid until the next Load, and the caller
// must not touch the buffer while any token is in use.
package tokenize

// Tokenizer splits buffers on a fixed delimiter set.
//
// Per-instance state only, no internal locking; confine each instance to
// one goroutine at a time.
type Tokenizer struct {
	delim  [256]bool
	tokens [][]byte
}

// New returns a Tokenizer splitting on the bytes of delims. capacityHint
// pre-sizes the token list; it is a performance hint, never a limit.
func New(delims string, capacityHint int) *Tokenizer {
	t := &Tokenizer{tokens: make([][]byte, 0, capacityHint)}
	for i := 0; i < len(delims); i++ {
		t.delim[delims[i]] = true
	}
	return t
}

// Load splits buf in place and returns the tokens, in buffer order. Every
// delimiter byte in buf is overwritten with NUL; each token is a view over a
// maximal run of non-delimiter bytes, so consecutive delimiters yield no
// empty tokens and empty input yields none at all.
//
// Load invalidates all tokens from any previous Load on this Tokenizer.
func (t *Tokenizer) Load(buf []byte) [][]byte {
	t.tokens = t.tokens[:0]

	start := -1 // current token's first byte, -1 between tokens
	for i, b := range buf {
		if !t.delim[b] {
			if start < 0 {
				start = i
			}
			continue
		}

		buf[i] = 0 // terminate in place, like strtok would
		if start >= 0 {
			t.tokens = append(t.tokens, buf[start:i])
			start = -1
		}
	}
	if start >= 0 {
		t.tokens = append(t.tokens, buf[start:])
	}

	return t.tokens
}

// Tokens returns the views produced by the most recent Load.
func (t *Tokenizer) Tokens() [][]byte {
	return t.tokens
}
