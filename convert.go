package smartstr

import "strings"

// String returns the contents as an ordinary garbage-collected string. The
// result is an independent copy and stays valid after the source mutates or
// is released. Implements fmt.Stringer.
func (s *String[M]) String() string {
	return strings.Clone(s.view())
}

// Bytes returns the contents as a freshly allocated byte slice.
func (s *String[M]) Bytes() []byte {
	return []byte(s.view())
}

// AppendTo appends the contents to dst and returns the extended slice,
// following the append-style API of strconv and friends.
func (s *String[M]) AppendTo(dst []byte) []byte {
	return append(dst, s.view()...)
}

// UnsafeString returns the contents without copying. The result aliases the
// string's storage: it is invalidated by any mutation and must not outlive
// the next mutating call or Release. Use String for a safe copy.
func (s *String[M]) UnsafeString() string {
	return s.view()
}
