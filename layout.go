package smartstr

import "unsafe"

// Layout constants for the three-word representation.
const (
	// ptrSize is the size of a machine word in bytes (8 on 64-bit, 4 on 32-bit).
	ptrSize = 4 << (^uintptr(0) >> 63)

	// regionSize is the total size of a String value in bytes.
	regionSize = 3 * ptrSize

	// MaxInline is the maximum number of bytes a String can hold without
	// allocating: 23 on 64-bit platforms, 11 on 32-bit.
	MaxInline = regionSize - 1

	// boxedTag is set on the pointer word of a boxed String. Heap buffers
	// are allocated at even addresses, so the true pointer never carries
	// this bit; it is masked off on every access.
	boxedTag uintptr = 1
)

// Compile-time check that String is exactly three words.
var (
	_ [regionSize - unsafe.Sizeof(String[Compact]{})]byte
	_ [unsafe.Sizeof(String[Compact]{}) - regionSize]byte
)

// The marker byte lives at offset 0, overlapping the low byte of the
// pointer word. That only holds on little-endian platforms.
func init() {
	probe := uint16(1)
	if *(*byte)(unsafe.Pointer(&probe)) != 1 {
		panic("smartstr: big-endian platforms are not supported")
	}
}

// raw reinterprets the value as its underlying byte region. Every byte-level
// access to the representation goes through this one accessor.
//
// Byte 0 is the marker: an inline string stores length<<1 there (always
// even, length recoverable by shifting back), while a boxed string stores
// the tagged low byte of the buffer pointer (always odd). Inline data
// occupies bytes 1..regionSize-1, zero-padded past the length. A boxed
// string packs pointer, length and capacity into the three words.
func (s *String[M]) raw() *[regionSize]byte {
	return (*[regionSize]byte)(unsafe.Pointer(s))
}

// isBoxed reports whether the boxed representation is active.
func (s *String[M]) isBoxed() bool {
	return s.w0&boxedTag != 0
}

// inlineLen returns the length stored in the inline marker byte.
func (s *String[M]) inlineLen() int {
	return int(s.raw()[0] >> 1)
}

// setInlineLen writes the inline marker byte. The caller guarantees
// 0 <= n <= MaxInline.
func (s *String[M]) setInlineLen(n int) {
	s.raw()[0] = byte(n << 1)
}

// boxed unpacks the heap buffer descriptor from the three words.
// Only valid when isBoxed reports true.
func (s *String[M]) boxed() boxed {
	return boxed{
		ptr: s.w0 &^ boxedTag,
		len: int(s.w1),
		cap: int(s.w2),
	}
}

// setBoxed packs a heap buffer descriptor into the three words, tagging the
// pointer so the marker byte becomes odd.
func (s *String[M]) setBoxed(b boxed) {
	s.w0 = b.ptr | boxedTag
	s.w1 = uintptr(b.len)
	s.w2 = uintptr(b.cap)
}

// reset returns the value to the empty inline state. It does not release
// any heap buffer; callers that hold one free it first.
func (s *String[M]) reset() {
	s.w0, s.w1, s.w2 = 0, 0, 0
}

// view returns the current contents as a string without copying. The result
// aliases the representation and is invalidated by any mutation.
func (s *String[M]) view() string {
	if s.isBoxed() {
		b := s.boxed()
		if b.len == 0 {
			return ""
		}
		return unsafe.String((*byte)(unsafe.Pointer(b.ptr)), b.len)
	}
	n := s.inlineLen()
	if n == 0 {
		return ""
	}
	return unsafe.String(&s.raw()[1], n)
}

// capSlice returns the full writable capacity of the active representation:
// MaxInline bytes for inline strings, the whole heap buffer for boxed ones.
// Bytes past the current length are not meaningful content.
func (s *String[M]) capSlice() []byte {
	if s.isBoxed() {
		b := s.boxed()
		return unsafe.Slice((*byte)(unsafe.Pointer(b.ptr)), b.cap)
	}
	return s.raw()[1 : 1+MaxInline]
}

// setLen updates the active representation's length. Shrinking an inline
// string re-zeroes the vacated tail to keep the padding invariant.
func (s *String[M]) setLen(n int) {
	if s.isBoxed() {
		s.w1 = uintptr(n)
		return
	}
	if old := s.inlineLen(); n < old {
		clear(s.raw()[1+n : 1+old])
	}
	s.setInlineLen(n)
}
