package smartstr

// Mode selects the layout policy of a String. It is a type parameter rather
// than a field, so it occupies no storage and the policy is fixed at compile
// time. The set of modes is closed: Compact and LazyCompact.
type Mode interface {
	// demoteAfterShrink reports whether shrinking mutations should try to
	// move boxed content back inline.
	demoteAfterShrink() bool
}

// Compact re-inlines aggressively: any mutation that leaves the content at
// or under MaxInline bytes releases the heap buffer and moves the bytes
// back inline. This minimizes heap usage but can thrash if the length
// oscillates across the inline threshold.
type Compact struct{}

func (Compact) demoteAfterShrink() bool { return true }

// LazyCompact never re-inlines once a string has been promoted, keeping the
// allocation around for reuse. This is the right default when allocation
// cost matters more than locality.
type LazyCompact struct{}

func (LazyCompact) demoteAfterShrink() bool { return false }

// CompactString is a String with the Compact layout policy.
type CompactString = String[Compact]

// LazyString is a String with the LazyCompact layout policy.
type LazyString = String[LazyCompact]
