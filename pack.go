package qmx

// Component C: the packer.
//
// Encoder owns the scratch buffers spec §3's "Entity lifetimes" describes:
// a bit-width classification buffer and a zero-padding buffer, both scoped
// to one Encode call but reused across calls by a caller that keeps the
// Encoder around — the same lifetime contract fastpfor.go's PackDelta scratch
// parameter has, just owned by the struct instead of passed in.
type Encoder struct {
	widthBuf []uint8
	padUnit  [256]uint32 // zeroed scratch for a short final unit of a run

	payload []byte
	keys    []byte
}

// NewEncoder returns an Encoder ready for reuse across many Encode calls.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// MaxEncodedLen returns the worst-case encoded size in bytes for n values,
// per spec §5: every value packed at 32 bits plus one key byte per 16
// values, rounded up with slack for the final partial unit.
func MaxEncodedLen(n int) int {
	if n < 0 {
		panic("qmx: MaxEncodedLen called with a negative count")
	}
	return (n*32+7)/8 + n/16 + 16
}

// Encode packs values into dst using a throwaway Encoder. Callers doing
// many encodes should keep their own Encoder instead, to reuse its scratch
// buffers.
func Encode(dst []byte, values []uint32) ([]byte, error) {
	return NewEncoder().Encode(dst, values)
}

// Encode packs values into dst, returning the encoded slice (payload
// followed by the reversed key region, per spec §6's wire format) or
// ErrOutputTooSmall if dst cannot hold the result.
func (e *Encoder) Encode(dst []byte, values []uint32) ([]byte, error) {
	e.payload = e.payload[:0]
	e.keys = e.keys[:0]

	if len(values) == 0 {
		return dst[:0], nil
	}

	if cap(e.widthBuf) < len(values) {
		e.widthBuf = make([]uint8, len(values))
	}
	widths := e.widthBuf[:len(values)]
	for i, v := range values {
		w := classifyWidth(v)
		if w > 32 {
			return nil, ErrWidthOverflow
		}
		widths[i] = w
	}

	planned := planWidths(widths)

	for p := 0; p < len(values); {
		w := planned[p]
		end := p + 1
		for end < len(values) && planned[end] == w {
			end++
		}
		e.packRun(w, values[p:end])
		p = end
	}

	total := len(e.payload) + len(e.keys)
	if total > cap(dst) {
		return nil, ErrOutputTooSmall
	}
	dst = dst[:total]

	n := copy(dst, e.payload)
	writeKeysReversed(dst[n:], e.keys)
	return dst, nil
}

// packRun implements spec §4.C's pack_run: split a maximal same-width run
// into ints_per_unit-sized units, emitting one key byte per batch of up to
// 16 units and the corresponding payload blocks.
func (e *Encoder) packRun(w uint8, values []uint32) {
	sel := selectorFor(w)
	unitSize := intsPerUnit(w)
	unitBytes := int(selectorTable[sel].blocksPerUnit) * 16

	unitsNeeded := (len(values) + unitSize - 1) / unitSize
	idx := 0
	for unitsNeeded > 0 {
		batch := unitsNeeded
		if batch > 16 {
			batch = 16
		}
		e.keys = append(e.keys, (sel<<4)|((^byte(batch-1))&0x0F))

		for b := 0; b < batch; b++ {
			start := idx * unitSize
			end := start + unitSize
			var unit []uint32
			if end <= len(values) {
				unit = values[start:end]
			} else {
				// Final, partially-populated unit: zero-pad from the
				// scratch buffer so the packer never reads past the
				// caller's slice (spec §4.C).
				pad := e.padUnit[:unitSize]
				clear(pad)
				copy(pad, values[start:])
				unit = pad
			}

			if w == 0 {
				// Width 0 is implicit: no payload bytes are emitted.
			} else {
				blockStart := len(e.payload)
				e.payload = append(e.payload, make([]byte, unitBytes)...)
				dstBlock := e.payload[blockStart : blockStart+unitBytes]
				if isNaturalWidth(w) {
					packUnitNatural(dstBlock, unit, w)
				} else {
					packUnitInterleaved(dstBlock, unit, w)
				}
			}
			idx++
		}
		unitsNeeded -= batch
	}
}
