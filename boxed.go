package smartstr

import "unsafe"

// Boxed buffer sizing constants.
const (
	// minBoxedCapacity is the smallest buffer a promotion allocates. A
	// string is only promoted because it outgrew MaxInline, so anything
	// smaller would guarantee an immediate regrow.
	minBoxedCapacity = 2 * MaxInline

	// minShrinkCapacity floors shrinkTo. A zero-byte reallocation would
	// free the buffer and hand back a nil pointer, which has no valid
	// boxed encoding.
	minShrinkCapacity = 2
)

// boxed is a heap buffer descriptor: a manually managed byte buffer with
// its current length and exact capacity. It has no knowledge of the inline
// representation; the String value packs and unpacks it from its three
// words. Capacity is tracked exactly so that every buffer is released with
// the same layout it was allocated with.
type boxed struct {
	ptr uintptr
	len int
	cap int
}

// allocBoxed allocates a buffer of at least the requested capacity, with
// length zero.
func allocBoxed(capacity int) boxed {
	if capacity < minBoxedCapacity {
		capacity = minBoxedCapacity
	}
	return boxed{ptr: heapAlloc(capacity), cap: capacity}
}

// bytes returns the full capacity of the buffer as a writable slice. Bytes
// past len are not meaningful content.
func (b *boxed) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b.ptr)), b.cap)
}

// grow reallocates to newCap. The caller guarantees newCap >= b.cap;
// contents up to b.len are preserved.
func (b *boxed) grow(newCap int) {
	b.ptr = heapRealloc(b.ptr, newCap)
	b.cap = newCap
}

// shrinkTo reallocates to a smaller capacity. The caller guarantees
// newCap >= b.len; the floor keeps the allocation alive at length zero.
func (b *boxed) shrinkTo(newCap int) {
	if newCap < minShrinkCapacity {
		newCap = minShrinkCapacity
	}
	if newCap >= b.cap {
		return
	}
	b.ptr = heapRealloc(b.ptr, newCap)
	b.cap = newCap
}

// release frees the buffer. The descriptor must not be used afterwards.
func (b *boxed) release() {
	heapFree(b.ptr)
	b.ptr = 0
	b.len = 0
	b.cap = 0
}

// growCapacity picks the next capacity when cur is insufficient: geometric
// doubling keeps repeated appends amortized O(1) per byte.
func growCapacity(cur, need int) int {
	c := cur
	for c < need {
		c *= 2
	}
	return c
}
