// Package smartstr provides a mutable UTF-8 string value that stores short
// content directly inside its own three machine words, deferring heap
// allocation until the content outgrows the inline capacity.
//
// A String is exactly the size of a conventional heap string descriptor
// (pointer, length, capacity - 24 bytes on 64-bit platforms) with no extra
// tag field. Which of the two representations is active is encoded in the
// bit pattern of the words themselves: heap buffers are allocated at even
// addresses, so the low bit of the pointer word is free to act as the
// discriminant.
//
// Key properties:
//   - Strings up to MaxInline bytes (23 on 64-bit, 11 on 32-bit) never
//     touch the heap
//   - The zero value is an empty, ready-to-use inline string
//   - Heap buffers live outside the garbage-collected heap and are released
//     deterministically; call Release when discarding a string that may
//     have been promoted
//
// Two layout policies control what happens when a promoted string shrinks
// back under the inline threshold. Compact re-inlines aggressively and frees
// the buffer; LazyCompact keeps the allocation around to avoid thrashing
// when the length oscillates across the threshold. The policy is a type
// parameter, so it costs no storage:
//
//	var s smartstr.String[smartstr.LazyCompact]
//	s.WriteString("hello")
//	fmt.Println(s.IsInline()) // true
//
// All mutating operations are boundary-checked: an index that does not land
// on a UTF-8 character boundary is rejected with ErrNotCharBoundary and the
// string is left unchanged. Content is validated on ingest, so the bytes
// held are always valid UTF-8.
//
// String values have single-owner semantics. Assignment transfers ownership
// of any heap buffer; use Clone for an independent copy. Concurrent readers
// are safe, concurrent mutation is not.
//
// Only little-endian platforms are supported; the package refuses to
// initialize on big-endian ones.
package smartstr
