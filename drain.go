package smartstr

import (
	"strings"
	"unicode/utf8"
)

// Drain removes the half-open byte range [start, end) from the string and
// returns an iterator over the removed runes. The range is removed
// immediately; the iterator walks a detached copy, so it stays valid across
// later mutations of the source string.
func (s *String[M]) Drain(start, end int) (*Drain, error) {
	if err := s.checkRange(start, end); err != nil {
		return nil, err
	}
	n := s.Len()
	removed := strings.Clone(s.view()[start:end])
	buf := s.capSlice()
	copy(buf[start:], buf[end:n])
	s.setLen(n - len(removed))
	s.tryDemote()
	return &Drain{text: removed, rest: removed}, nil
}

// Drain iterates over the runes removed by String.Drain. Call Next to
// advance, then Rune for the current value.
type Drain struct {
	text string
	rest string
	r    rune
	size int
}

// Next advances to the next removed rune. It returns false when the
// removed range is exhausted.
func (d *Drain) Next() bool {
	if len(d.rest) == 0 {
		return false
	}
	d.r, d.size = utf8.DecodeRuneInString(d.rest)
	d.rest = d.rest[d.size:]
	return true
}

// Rune returns the rune at the current position. Only valid after a Next
// call that returned true.
func (d *Drain) Rune() rune {
	return d.r
}

// Size returns the encoded byte length of the current rune.
func (d *Drain) Size() int {
	return d.size
}

// String returns the entire removed range as text, regardless of iterator
// position.
func (d *Drain) String() string {
	return d.text
}
