package smartstr

import (
	"fmt"
	"unicode/utf8"
)

// CheckInvariants verifies the representation invariants and returns an
// error wrapping ErrCorrupt on the first violation. A String only ever
// becomes corrupt through memory errors or misuse of UnsafeString aliases;
// the check exists for tests and debugging, not for routine use.
func (s *String[M]) CheckInvariants() error {
	if s.isBoxed() {
		b := s.boxed()
		if b.ptr == 0 {
			return fmt.Errorf("%w: boxed string with nil buffer", ErrCorrupt)
		}
		if b.ptr&boxedTag != 0 {
			return fmt.Errorf("%w: misaligned buffer pointer %#x", ErrCorrupt, b.ptr)
		}
		if b.len < 0 || b.cap < minShrinkCapacity || b.len > b.cap {
			return fmt.Errorf("%w: boxed len %d cap %d", ErrCorrupt, b.len, b.cap)
		}
	} else {
		n := s.inlineLen()
		if n > MaxInline {
			return fmt.Errorf("%w: inline length %d exceeds %d", ErrCorrupt, n, MaxInline)
		}
		for _, c := range s.raw()[1+n:] {
			if c != 0 {
				return fmt.Errorf("%w: nonzero inline padding past length %d", ErrCorrupt, n)
			}
		}
	}
	if v := s.view(); !utf8.ValidString(v) {
		return fmt.Errorf("%w: contents are not valid UTF-8", ErrCorrupt)
	}
	return nil
}
