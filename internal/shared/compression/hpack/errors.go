package hpack

import "errors"

// Sentinel errors, per spec.md §7. Wrapped with fmt.Errorf("...: %w", ...) at
// the call site so callers can still errors.Is against the sentinel while
// getting a human-readable trail of where the failure happened.
var (
	// ErrTruncated means the input ended mid-integer, mid-string, or
	// mid-representation.
	ErrTruncated = errors.New("hpack: truncated input")

	// ErrInvalidIndex means a combined-table index was 0 or exceeded
	// 61+used.
	ErrInvalidIndex = errors.New("hpack: invalid index")

	// ErrInvalidHuffman covers bad padding, an EOS symbol appearing mid
	// stream, or padding of 8 bits or more.
	ErrInvalidHuffman = errors.New("hpack: invalid huffman encoding")

	// ErrIntegerOverflow means an integer decode exceeded 2^32-1.
	ErrIntegerOverflow = errors.New("hpack: integer overflow")

	// ErrProtocol means a table-size-update representation appeared after a
	// non-size-update representation in the same block, or a size update
	// exceeded the peer-signaled maximum.
	ErrProtocol = errors.New("hpack: protocol error")

	// ErrCapacityExceeded means a resize requested a capacity above the
	// signaled maximum.
	ErrCapacityExceeded = errors.New("hpack: capacity exceeds signaled maximum")

	// ErrTooLong means a decoded string exceeded the caller's output bound.
	ErrTooLong = errors.New("hpack: decoded string too long")

	// ErrInternalInvariant means the encoder could not find a valid
	// representation for an input - a logic bug, never a consequence of
	// caller input.
	ErrInternalInvariant = errors.New("hpack: internal invariant violated")
)
