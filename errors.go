package qmx

import "errors"

// Error taxonomy (spec §7). Every error a caller can trigger is one of these
// sentinels, returned as is, so callers can use errors.Is; invariant violations that cannot
// happen with well-formed 32-bit input panic instead, the same split the
// teacher draws between returned errors and validateBlockLength's panics.
var (
	// ErrOutputTooSmall is returned when dst cannot hold the encoded form
	// of values. The caller must retry with a larger buffer.
	ErrOutputTooSmall = errors.New("qmx: output buffer too small")

	// ErrWidthOverflow indicates the classifier produced a width above 32
	// bits. Unreachable for correct 32-bit input; surfaced rather than
	// silently truncated so buffer corruption is never mistaken for a
	// successful encode.
	ErrWidthOverflow = errors.New("qmx: fatal width overflow")

	// ErrInvalidSelector is returned by a strict Decode/Decoder when a key
	// byte selects the reserved selector 15 (key range 0xF0..0xFF).
	ErrInvalidSelector = errors.New("qmx: invalid selector in key byte")

	// ErrInvalidBuffer is returned when an encoded buffer is structurally
	// too short to contain what its keys claim (returned by Decode,
	// DecodeSafe and Decoder.Decode).
	ErrInvalidBuffer = errors.New("qmx: invalid encoded buffer")
)
