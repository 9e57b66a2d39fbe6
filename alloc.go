package smartstr

import (
	"fmt"
	"sync"

	"modernc.org/memory"
)

// Boxed buffers live outside the garbage-collected heap. This keeps the
// uintptr-packed pointer word honest: the collector neither scans nor moves
// these allocations, and every allocation is paired with exactly one
// explicit release. The allocator is the only shared subsystem the package
// touches; a mutex serializes access to it.
var (
	heapMu sync.Mutex
	heap   memory.Allocator
)

// heapAlloc allocates size bytes of manually managed memory. Allocation
// failure is fatal, matching the behavior of any other exhausted-heap
// condition in the process.
func heapAlloc(size int) uintptr {
	heapMu.Lock()
	p, err := heap.UintptrMalloc(size)
	heapMu.Unlock()
	if err != nil {
		panic(fmt.Sprintf("smartstr: allocating %d bytes: %v", size, err))
	}
	checkAligned(p)
	return p
}

// heapRealloc resizes an allocation, preserving contents up to the smaller
// of the old and new sizes.
func heapRealloc(p uintptr, size int) uintptr {
	heapMu.Lock()
	q, err := heap.UintptrRealloc(p, size)
	heapMu.Unlock()
	if err != nil {
		panic(fmt.Sprintf("smartstr: reallocating to %d bytes: %v", size, err))
	}
	checkAligned(q)
	return q
}

// heapFree releases an allocation obtained from heapAlloc or heapRealloc.
func heapFree(p uintptr) {
	heapMu.Lock()
	err := heap.UintptrFree(p)
	heapMu.Unlock()
	if err != nil {
		panic(fmt.Sprintf("smartstr: freeing buffer: %v", err))
	}
}

// checkAligned enforces the alignment guarantee the whole encoding rests
// on: buffer pointers must be even so their low bit can act as the boxed
// discriminant. The allocator aligns much more coarsely than 2 bytes in
// practice; this guards against ever swapping in one that does not.
func checkAligned(p uintptr) {
	if p == 0 || p&boxedTag != 0 {
		panic("smartstr: allocator returned an unusable pointer")
	}
}
