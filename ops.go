package smartstr

import "unicode/utf8"

// isUTF8Start reports whether b can begin a UTF-8 encoded rune. UTF-8
// continuation bytes all match 10xxxxxx.
func isUTF8Start(b byte) bool {
	return b&0xC0 != 0x80
}

// checkBoundary validates that i is a byte offset on a character boundary
// within the current contents. Offset Len() itself is a valid boundary.
func (s *String[M]) checkBoundary(i int) error {
	n := s.Len()
	if i < 0 || i > n {
		return ErrOffsetOutOfRange
	}
	if i < n && !isUTF8Start(s.view()[i]) {
		return ErrNotCharBoundary
	}
	return nil
}

// checkRange validates a half-open byte range [start, end).
func (s *String[M]) checkRange(start, end int) error {
	if end < start {
		return ErrRangeInvalid
	}
	if err := s.checkBoundary(start); err != nil {
		return err
	}
	return s.checkBoundary(end)
}

// Push appends a single rune. Returns ErrInvalidUTF8 for runes with no
// UTF-8 encoding, such as surrogates.
func (s *String[M]) Push(r rune) error {
	if !utf8.ValidRune(r) {
		return ErrInvalidUTF8
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	s.appendBytes(buf[:n])
	return nil
}

// PushString appends str. Returns ErrInvalidUTF8 for malformed input,
// leaving the string unchanged.
func (s *String[M]) PushString(str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	s.appendBytes([]byte(str))
	return nil
}

// Write appends p, implementing io.Writer. The write is all-or-nothing:
// malformed UTF-8 is rejected without appending anything, so n is always
// len(p) or 0.
func (s *String[M]) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, ErrInvalidUTF8
	}
	s.appendBytes(p)
	return len(p), nil
}

// WriteString appends str, implementing io.StringWriter.
func (s *String[M]) WriteString(str string) (int, error) {
	if err := s.PushString(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

// WriteRune appends a single rune, implementing the io.RuneWriter shape
// used by bytes.Buffer and strings.Builder.
func (s *String[M]) WriteRune(r rune) (int, error) {
	if err := s.Push(r); err != nil {
		return 0, err
	}
	return utf8.RuneLen(r), nil
}

// appendBytes appends already-validated UTF-8. Growth never demotes.
func (s *String[M]) appendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	n := s.Len()
	s.reserveTotal(n + len(p))
	copy(s.capSlice()[n:], p)
	s.setLen(n + len(p))
}

// Insert inserts a rune at byte offset i, shifting the tail right.
func (s *String[M]) Insert(i int, r rune) error {
	if !utf8.ValidRune(r) {
		return ErrInvalidUTF8
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return s.insertBytes(i, buf[:n])
}

// InsertString inserts str at byte offset i, shifting the tail right.
func (s *String[M]) InsertString(i int, str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	return s.insertBytes(i, []byte(str))
}

func (s *String[M]) insertBytes(i int, p []byte) error {
	if err := s.checkBoundary(i); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	n := s.Len()
	s.reserveTotal(n + len(p))
	buf := s.capSlice()
	copy(buf[i+len(p):n+len(p)], buf[i:n])
	copy(buf[i:], p)
	s.setLen(n + len(p))
	return nil
}

// Remove deletes and returns the rune starting at byte offset i, shifting
// the tail left.
func (s *String[M]) Remove(i int) (rune, error) {
	n := s.Len()
	if i < 0 || i >= n {
		return 0, ErrOffsetOutOfRange
	}
	v := s.view()
	if !isUTF8Start(v[i]) {
		return 0, ErrNotCharBoundary
	}
	r, size := utf8.DecodeRuneInString(v[i:])
	buf := s.capSlice()
	copy(buf[i:], buf[i+size:n])
	s.setLen(n - size)
	s.tryDemote()
	return r, nil
}

// Truncate shortens the string to n bytes. Offsets at or past the current
// length are a no-op; an offset inside a multi-byte rune is rejected.
func (s *String[M]) Truncate(n int) error {
	if n < 0 {
		return ErrOffsetOutOfRange
	}
	if n >= s.Len() {
		return nil
	}
	if !isUTF8Start(s.view()[n]) {
		return ErrNotCharBoundary
	}
	s.setLen(n)
	s.tryDemote()
	return nil
}

// Pop removes and returns the last rune. The second result is false when
// the string is empty.
func (s *String[M]) Pop() (rune, bool) {
	v := s.view()
	if len(v) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(v)
	s.setLen(len(v) - size)
	s.tryDemote()
	return r, true
}

// Retain keeps only the runes for which keep returns true, preserving
// order and compacting in place.
func (s *String[M]) Retain(keep func(r rune) bool) {
	v := s.view()
	buf := s.capSlice()
	w := 0
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRuneInString(v[i:])
		if keep(r) {
			copy(buf[w:], v[i:i+size])
			w += size
		}
		i += size
	}
	s.setLen(w)
	s.tryDemote()
}

// SplitOff truncates the string at byte offset i and returns the removed
// tail as a new string of the same mode.
func (s *String[M]) SplitOff(i int) (String[M], error) {
	var tail String[M]
	if err := s.checkBoundary(i); err != nil {
		return tail, err
	}
	tail.assign(s.view()[i:])
	s.setLen(i)
	s.tryDemote()
	return tail, nil
}

// ReplaceRange replaces the half-open byte range [start, end) with repl,
// growing or shrinking the string as needed.
func (s *String[M]) ReplaceRange(start, end int, repl string) error {
	if !utf8.ValidString(repl) {
		return ErrInvalidUTF8
	}
	if err := s.checkRange(start, end); err != nil {
		return err
	}
	n := s.Len()
	newLen := n - (end - start) + len(repl)
	s.reserveTotal(newLen)
	buf := s.capSlice()
	copy(buf[start+len(repl):newLen], buf[end:n])
	copy(buf[start:], repl)
	s.setLen(newLen)
	if newLen < n {
		s.tryDemote()
	}
	return nil
}

// SetString replaces the entire contents with str. A boxed string reuses
// its buffer when the new contents fit; under Compact short replacements
// demote back inline.
func (s *String[M]) SetString(str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	n := s.Len()
	s.reserveTotal(len(str))
	copy(s.capSlice(), str)
	s.setLen(len(str))
	if len(str) < n {
		s.tryDemote()
	}
	return nil
}
