package qmx

import "math/bits"

// Component A: the bit-width classifier.
//
// legalWidths is the fixed set of widths the packer is allowed to emit,
// ordered so that index == selector and widths[i] < widths[i+1]: a single
// ordered table (mirroring selectBitWidth's candidate loop in fastpfor.go)
// as the source of truth for both classification and promotion.
var legalWidths = [15]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 16, 21, 32}

// selectorEntry describes one row of the QMX selector table (spec §3).
type selectorEntry struct {
	width        uint8  // bit width packed per value
	intsPerUnit  uint16 // values encoded by one key-addressable unit
	blocksPerUnit uint8 // 16-byte blocks consumed by one unit (1 or 2)
}

// selectorTable is indexed by selector (0..14).
var selectorTable = [15]selectorEntry{
	{width: 0, intsPerUnit: 256, blocksPerUnit: 1}, // implicit zeros, no payload bytes
	{width: 1, intsPerUnit: 128, blocksPerUnit: 1},
	{width: 2, intsPerUnit: 64, blocksPerUnit: 1},
	{width: 3, intsPerUnit: 40, blocksPerUnit: 1},
	{width: 4, intsPerUnit: 32, blocksPerUnit: 1},
	{width: 5, intsPerUnit: 24, blocksPerUnit: 1},
	{width: 6, intsPerUnit: 20, blocksPerUnit: 1},
	{width: 7, intsPerUnit: 36, blocksPerUnit: 2},
	{width: 8, intsPerUnit: 16, blocksPerUnit: 1},
	{width: 9, intsPerUnit: 28, blocksPerUnit: 2},
	{width: 10, intsPerUnit: 12, blocksPerUnit: 1},
	{width: 12, intsPerUnit: 20, blocksPerUnit: 2},
	{width: 16, intsPerUnit: 8, blocksPerUnit: 1},
	{width: 21, intsPerUnit: 12, blocksPerUnit: 2},
	{width: 32, intsPerUnit: 4, blocksPerUnit: 1},
}

// widthToSelector maps a legal width directly to its selector index. Built
// once at init so classifyWidth and the planner never have to linear-scan
// selectorTable on the hot path.
var widthToSelector = func() map[uint8]uint8 {
	m := make(map[uint8]uint8, len(selectorTable))
	for i, e := range selectorTable {
		m[e.width] = uint8(i)
	}
	return m
}()

// selectorFor returns the selector index for a legal width. Panics if w is
// not one of the fixed legal widths — callers must only ever pass a value
// that classifyWidth or the planner produced.
func selectorFor(w uint8) uint8 {
	sel, ok := widthToSelector[w]
	if !ok {
		panic("qmx: selectorFor called with an illegal width")
	}
	return sel
}

// classifyWidth returns the smallest legal width that can hold v, i.e.
// ceil(log2(v+1)) rounded up to the nearest entry of legalWidths (spec §4.A).
func classifyWidth(v uint32) uint8 {
	if v == 0 {
		return 0
	}
	need := uint8(bits.Len32(v))
	for _, w := range legalWidths[1:] {
		if w >= need {
			return w
		}
	}
	// Unreachable for 32-bit input: bits.Len32 never exceeds 32, and 32 is
	// the last legal width. Kept as a defensive fallback per spec §4.B's
	// failure semantics (FatalWidthOverflow must remain checkable even
	// though it cannot trigger from well-formed input).
	return 32
}

// nextLegalWidth returns the smallest legal width strictly greater than w,
// implementing the promotion chain spec §4.B requires (10→12→16→21→32).
// Returns 0 with ok=false if w is already the widest legal width.
func nextLegalWidth(w uint8) (next uint8, ok bool) {
	for _, lw := range legalWidths {
		if lw > w {
			return lw, true
		}
	}
	return 0, false
}

// intsPerUnit is a convenience accessor used throughout the planner/packer.
func intsPerUnit(w uint8) int {
	return int(selectorTable[selectorFor(w)].intsPerUnit)
}
