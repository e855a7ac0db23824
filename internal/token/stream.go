package token

// NoIndex is the defined "none" result of stream lookups.
const NoIndex = -1

// Stream is an immutable, indexable sequence of significant tokens for one
// file. Comments and whitespace never appear in it, so neighbouring indices
// are lexically adjacent tokens.
type Stream struct {
	toks []Token
}

// NewStream wraps a token slice. The slice is not copied; callers must not
// mutate it afterwards.
func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int { return len(s.toks) }

// At returns the token at index i. Out-of-range indices yield an Invalid
// token so that callers can branch on Kind without a second bounds check.
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.toks) {
		return Token{Kind: Invalid}
	}
	return s.toks[i]
}

// Ok reports whether i is a valid index into the stream.
func (s *Stream) Ok(i int) bool { return i >= 0 && i < len(s.toks) }

// Before returns the index of the token skip positions before i, or NoIndex
// when the lookup runs off the start of the stream.
func (s *Stream) Before(i, skip int) int {
	j := i - 1 - skip
	if j < 0 || j >= len(s.toks) || i > len(s.toks) {
		return NoIndex
	}
	return j
}

// After returns the index of the token skip positions after i, or NoIndex
// when the lookup runs off the end of the stream.
func (s *Stream) After(i, skip int) int {
	j := i + 1 + skip
	if i < 0 || j >= len(s.toks) {
		return NoIndex
	}
	return j
}

// LastIn returns the index of the last token of the inclusive index range
// [first, last], skipping skip tokens backward from the end. NoIndex when
// the range is empty or the skip leaves it.
func (s *Stream) LastIn(first, last, skip int) int {
	j := last - skip
	if first < 0 || j < first || j >= len(s.toks) {
		return NoIndex
	}
	return j
}

// Tokens returns the backing slice. Read-only by convention.
func (s *Stream) Tokens() []Token { return s.toks }
