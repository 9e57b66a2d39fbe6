package smartstr

import "unicode/utf8"

// String is a mutable UTF-8 string that stores up to MaxInline bytes
// directly in its own three words, promoting to a heap buffer only when the
// content outgrows that. The zero value is an empty, ready-to-use string.
//
// The mode parameter selects the demotion policy; see Compact and
// LazyCompact. A String has single-owner semantics: assigning or passing it
// by value transfers ownership of any heap buffer, so use Clone when an
// independent copy is needed, and call Release when discarding a string
// that may have been promoted.
type String[M Mode] struct {
	w0 uintptr
	w1 uintptr
	w2 uintptr
}

// New returns an empty string. Equivalent to the zero value.
func New[M Mode]() String[M] {
	return String[M]{}
}

// FromString builds a String from existing text: inline if it fits,
// immediately boxed otherwise. Returns ErrInvalidUTF8 for malformed input.
func FromString[M Mode](str string) (String[M], error) {
	var out String[M]
	if !utf8.ValidString(str) {
		return out, ErrInvalidUTF8
	}
	out.assign(str)
	return out, nil
}

// MustFromString is FromString for input known to be valid UTF-8, such as
// literals. It panics on malformed input.
func MustFromString[M Mode](str string) String[M] {
	s, err := FromString[M](str)
	if err != nil {
		panic("smartstr: MustFromString: " + err.Error())
	}
	return s
}

// WithCapacity returns an empty string that can hold n bytes without
// further allocation. If n exceeds MaxInline the string is pre-promoted to
// a heap buffer of at least that capacity.
func WithCapacity[M Mode](n int) String[M] {
	var out String[M]
	if n > MaxInline {
		out.setBoxed(allocBoxed(n))
	}
	return out
}

// assign overwrites a zero or inline value with the given text. The caller
// guarantees valid UTF-8 and that no heap buffer is currently owned.
func (s *String[M]) assign(str string) {
	if len(str) <= MaxInline {
		s.reset()
		copy(s.raw()[1:], str)
		s.setInlineLen(len(str))
		return
	}
	b := allocBoxed(len(str))
	copy(b.bytes(), str)
	b.len = len(str)
	s.setBoxed(b)
}

// Len returns the length in bytes. Note this can differ from the number of
// runes.
func (s *String[M]) Len() int {
	if s.isBoxed() {
		return int(s.w1)
	}
	return s.inlineLen()
}

// IsEmpty reports whether the string holds no bytes.
func (s *String[M]) IsEmpty() bool {
	return s.Len() == 0
}

// IsInline reports whether the inline representation is active.
func (s *String[M]) IsInline() bool {
	return !s.isBoxed()
}

// Capacity returns the number of bytes the string can hold without
// reallocating. Inline strings always report MaxInline.
func (s *String[M]) Capacity() int {
	if s.isBoxed() {
		return int(s.w2)
	}
	return MaxInline
}

// At returns the rune starting at byte offset i.
func (s *String[M]) At(i int) (rune, error) {
	v := s.view()
	if i < 0 || i >= len(v) {
		return 0, ErrOffsetOutOfRange
	}
	if !isUTF8Start(v[i]) {
		return 0, ErrNotCharBoundary
	}
	r, _ := utf8.DecodeRuneInString(v[i:])
	return r, nil
}

// reserveTotal guarantees capacity for target bytes, promoting or growing
// as needed. Promotion is all-or-nothing: the buffer is allocated and
// filled before the words are switched over, so a fatal allocation failure
// can never leave a half-promoted value.
func (s *String[M]) reserveTotal(target int) {
	if s.isBoxed() {
		b := s.boxed()
		if target <= b.cap {
			return
		}
		b.grow(growCapacity(b.cap, target))
		s.setBoxed(b)
		return
	}
	if target <= MaxInline {
		return
	}
	n := s.inlineLen()
	b := allocBoxed(target)
	copy(b.bytes(), s.raw()[1:1+n])
	b.len = n
	s.setBoxed(b)
}

// tryDemote re-inlines boxed content after a shrinking mutation, if the
// policy calls for it.
func (s *String[M]) tryDemote() {
	var m M
	if m.demoteAfterShrink() {
		s.demote()
	}
}

// demote moves boxed content back inline if it fits, releasing the buffer.
// No-op for inline strings and for content over MaxInline bytes.
func (s *String[M]) demote() {
	if !s.isBoxed() {
		return
	}
	b := s.boxed()
	if b.len > MaxInline {
		return
	}
	var tmp [MaxInline]byte
	n := copy(tmp[:], b.bytes()[:b.len])
	b.release()
	s.reset()
	copy(s.raw()[1:], tmp[:n])
	s.setInlineLen(n)
}

// Reserve guarantees room for additional more bytes beyond the current
// length, pre-promoting if the total exceeds MaxInline. It never demotes.
func (s *String[M]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	s.reserveTotal(s.Len() + additional)
}

// ShrinkToFit reduces memory to the minimum the policy allows. Under
// Compact, content short enough to fit inline is re-inlined and the buffer
// freed; longer content is reallocated to its exact length. Under
// LazyCompact the string stays boxed and the buffer shrinks to the exact
// length (floored at the allocator's 2-byte minimum, which matters only at
// lengths 0 and 1). Calling it twice is the same as calling it once.
func (s *String[M]) ShrinkToFit() {
	if !s.isBoxed() {
		return
	}
	var m M
	b := s.boxed()
	if m.demoteAfterShrink() && b.len <= MaxInline {
		s.demote()
		return
	}
	b.shrinkTo(b.len)
	s.setBoxed(b)
}

// Clear empties the string. Under Compact any heap buffer is released and
// the string returns to the inline representation; under LazyCompact the
// buffer and its capacity are kept for reuse.
func (s *String[M]) Clear() {
	if !s.isBoxed() {
		s.reset()
		return
	}
	var m M
	if m.demoteAfterShrink() {
		b := s.boxed()
		b.release()
		s.reset()
		return
	}
	s.setLen(0)
}

// Release frees any heap buffer and resets the string to empty. It is the
// destructor for promoted strings; calling it on an inline string is a
// cheap no-op. The string remains usable afterwards.
func (s *String[M]) Release() {
	if s.isBoxed() {
		b := s.boxed()
		b.release()
	}
	s.reset()
}

// Clone returns an independent copy. Inline strings copy trivially; boxed
// strings get a fresh buffer with the same capacity as the source.
func (s *String[M]) Clone() String[M] {
	if !s.isBoxed() {
		return *s
	}
	b := s.boxed()
	nb := allocBoxed(b.cap)
	copy(nb.bytes(), b.bytes()[:b.len])
	nb.len = b.len
	var out String[M]
	out.setBoxed(nb)
	return out
}
