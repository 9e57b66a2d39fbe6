package smartstr

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and other hold the same bytes. Representation is
// irrelevant: an inline string equals a boxed string with the same
// contents, and the modes may differ.
func Equal[A, B Mode](s *String[A], other *String[B]) bool {
	return s.view() == other.view()
}

// EqualString reports whether the contents equal str.
func (s *String[M]) EqualString(str string) bool {
	return s.view() == str
}

// Compare orders s against other bytewise, returning -1, 0 or 1 in the
// manner of strings.Compare. Bytewise order coincides with code point order
// for valid UTF-8.
func Compare[A, B Mode](s *String[A], other *String[B]) int {
	return strings.Compare(s.view(), other.view())
}

// CompareString orders the contents against str bytewise.
func (s *String[M]) CompareString(str string) int {
	return strings.Compare(s.view(), str)
}

// Hash64 returns a 64-bit content hash. Strings with equal contents hash
// equally regardless of representation or mode.
func (s *String[M]) Hash64() uint64 {
	return xxhash.Sum64String(s.view())
}
