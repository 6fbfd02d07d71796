package qmx

// Component E: the decoder.
//
// decodeCursor holds the two cursors spec §4.E describes: in (the payload
// position, advancing forward) and keys (the tail position, advancing
// backward), plus the destination cursor. The outer loop below is the only
// hand-written control flow; the 256-way dispatch on the key byte itself —
// "op mod 16 gives the batch count minus one ... each case unpacks exactly
// one block" — lives in the generated decodeOp in decode_table_gen.go, so
// the fall-through structure spec §4.E and §9 call out as load-bearing is
// produced mechanically instead of hand-unrolled (see internal/gen).
//
// remaining tracks real values left in the whole logical stream, independent
// of how much room any single Decode/Decoder.Decode call has in to. A batch
// key covers up to 16 units' worth of payload that must be consumed together
// (its bytes are read in one pass through decodeOp's fallthrough); when a
// unit produces more values than the current call has room for, the excess
// is queued in pending and drained first by the next call. This is what lets
// Decoder serve arbitrary, unit-unaligned chunk sizes without dropping the
// tail of a unit that didn't fit.
type decodeCursor struct {
	encoded []byte
	inPos   int
	keyPos  int

	to    []uint32
	toPos int
	limit int

	remaining int

	pending    []uint32
	pendingPos int

	strict bool
	err    error
}

// DecodeOptions tunes Decode/Decoder behaviour that spec §7 leaves to the
// caller: whether an illegal selector (key byte 0xF0..0xFF) is a hard error
// or is skipped permissively, matching the source's documented-but-dubious
// fallback (spec §9's "Illegal-selector handling" open question).
type DecodeOptions struct {
	// Strict, when true, causes Decode to fail with ErrInvalidSelector
	// instead of skipping one byte and continuing.
	Strict bool
}

// Decode unpacks up to count values from encoded into dst, reusing dst's
// backing array when its capacity is at least count and allocating a new
// slice otherwise. It returns the slice of values written: all count of
// them on success, fewer if the key bytes run out first or an error stops
// the decode.
//
// Spec §9's tail-padding note describes a source that pads its buffers
// because its decoder issues unconditional fixed-size 16/32-byte block
// reads. This implementation doesn't need that slack: processUnit checks
// c.inPos+unitBytes against len(encoded) before ever slicing into it, and
// every write into dst is bounded by c.limit, so Decode never reads or
// writes past the slices it was given — DecodeSafe exists only as a
// convenience for callers who'd rather not size dst themselves, not because
// Decode is unsafe without it.
func Decode(dst []uint32, encoded []byte, count int, opts DecodeOptions) ([]uint32, error) {
	if count < 0 {
		panic("qmx: Decode called with a negative count")
	}
	if cap(dst) < count {
		dst = make([]uint32, count)
	} else {
		dst = dst[:count]
	}
	if count == 0 || len(encoded) == 0 {
		return dst[:0], nil
	}

	c := &decodeCursor{
		encoded:   encoded,
		inPos:     0,
		keyPos:    len(encoded) - 1,
		to:        dst,
		limit:     count,
		remaining: count,
		strict:    opts.Strict,
	}
	drainCursor(c)
	if c.err != nil {
		return dst[:c.toPos], c.err
	}
	return dst[:c.toPos], nil
}

// DecodeSafe is Decode's allocate-it-for-me counterpart (spec §9's
// re-architecture guidance: "allocate a staging buffer rather than push the
// burden onto the caller"), for callers who don't want to size or reuse a
// destination slice themselves. It passes dst through unchanged if it
// already has the right length and simply ignores it otherwise — the
// passed-in dst parameter is unused in the allocate-from-scratch path, kept
// only so callers migrating from Decode don't need to restructure the call.
func DecodeSafe(dst []uint32, encoded []byte, count int, opts DecodeOptions) ([]uint32, error) {
	if cap(dst) >= count {
		return Decode(dst, encoded, count, opts)
	}
	return Decode(make([]uint32, count), encoded, count, opts)
}

// drainCursor runs the shared decode loop: drain anything already queued in
// pending, then pull key bytes from the tail and dispatch them, until the
// current call's destination is full, the logical stream is exhausted, or
// an error occurs. Both Decode and Decoder.Decode use this.
func drainCursor(c *decodeCursor) {
	for c.toPos < c.limit {
		if c.pendingPos < len(c.pending) {
			n := copy(c.to[c.toPos:c.limit], c.pending[c.pendingPos:])
			c.toPos += n
			c.pendingPos += n
			if c.pendingPos >= len(c.pending) {
				c.pending = c.pending[:0]
				c.pendingPos = 0
			}
			continue
		}
		if c.remaining <= 0 || c.inPos > c.keyPos {
			return
		}
		op := c.encoded[c.keyPos]
		c.keyPos--
		decodeOp(op, c)
		if c.err != nil {
			return
		}
	}
}

// processUnit unpacks one selector unit — the body every generated
// fall-through case invokes exactly once. It is the single place that
// knows how to turn a selector's physical layout (interleaved lanes or the
// natural array layout for widths 8/16/32) into values, shared by every one
// of the 256 generated cases instead of being duplicated per case.
//
// wantCount (how many of this unit's values are still real, i.e. not the
// zero-padding packRun appended to fill out its final unit) is driven by
// c.remaining, the whole stream's logical budget — never by c.limit, the
// current call's destination capacity. Whatever doesn't fit in c.to this
// call is appended to c.pending for the next call to pick up.
func processUnit(sel uint8, c *decodeCursor) {
	if c.remaining <= 0 {
		return
	}
	entry := selectorTable[sel]
	w := entry.width
	unitSize := int(entry.intsPerUnit)

	wantCount := unitSize
	if c.remaining < wantCount {
		wantCount = c.remaining
	}
	c.remaining -= wantCount

	var full [256]uint32
	if w != 0 {
		unitBytes := int(entry.blocksPerUnit) * 16
		if c.inPos+unitBytes > len(c.encoded) {
			// The payload ran out before its keys said it would: the source
			// buffer is truncated/corrupt. Stop rather than read out of
			// bounds; spec §5 asks implementations to treat this as the
			// caller's contract violation, not something to recover from.
			c.err = ErrInvalidBuffer
			c.remaining = 0
			return
		}
		src := c.encoded[c.inPos : c.inPos+unitBytes]
		c.inPos += unitBytes

		if isNaturalWidth(w) {
			unpackUnitNatural(full[:], src, w, wantCount)
		} else {
			unpackUnitInterleaved(full[:], src, w, wantCount)
		}
	}
	// w == 0 leaves full zeroed, which is exactly its decoded value.

	avail := c.limit - c.toPos
	if avail > wantCount {
		avail = wantCount
	}
	if avail > 0 {
		copy(c.to[c.toPos:c.toPos+avail], full[:avail])
		c.toPos += avail
	}
	if avail < wantCount {
		c.pending = append(c.pending, full[avail:wantCount]...)
	}
}

// illegalSelector handles a key byte in 0xF0..0xFF (selector 15, reserved).
// Strict mode fails the decode; permissive mode matches the source's
// fallback of advancing the payload cursor by one byte and continuing
// (spec §7, §9).
func illegalSelector(c *decodeCursor) {
	if c.strict {
		c.err = ErrInvalidSelector
		return
	}
	c.inPos++
}
