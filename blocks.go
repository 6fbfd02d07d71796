package qmx

import (
	"encoding/binary"

	"github.com/Akron/qmx-go/lane"
)

// blocks.go holds the per-width unit packing/unpacking primitives shared by
// the packer (component C) and the decoder (component E). Every selector's
// unit maps onto one of two physical layouts (spec §3):
//
//   - interleaved: 4 logical lanes, lane i%4 accumulating values i, i+4, ...
//     selectorTable guarantees perLane*width (perLane = intsPerUnit/4) never
//     exceeds blocksPerUnit*32 bits, so a lane's whole contribution always
//     fits in one load/store of its accumulator — single-block selectors
//     pack into one 32-bit-per-lane word, the four straddling selectors
//     (7, 9, 12, 21) into one 64-bit-per-lane word split across the unit's
//     two physical blocks. There is never a partial flush mid-unit; "a value
//     straddles the block boundary" just means its bits land on both sides
//     of the low/high 32-bit split of that 64-bit word, the same mechanism
//     spec §4.C describes, generalized from fastpfor.go's packLane/unpackLane
//     streaming accumulator to a lane package trait instead of a bespoke
//     shift/stride table per width (spec §9 re-architecture note).
//   - natural: widths 8, 16 and 32 store values as plain little-endian
//     array elements, no interleaving (spec §3).
var bo = binary.LittleEndian

func isNaturalWidth(w uint8) bool {
	return w == 8 || w == 16 || w == 32
}

func maskFor(width uint) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF
	}
	return (1 << width) - 1
}

// packUnitInterleaved packs exactly intsPerUnit(w) values (zero-padded by
// the caller if values is short) into dst, which must be
// blocksPerUnit(w)*16 bytes.
func packUnitInterleaved(dst []byte, values []uint32, w uint8) {
	entry := selectorTable[selectorFor(w)]
	perLane := int(entry.intsPerUnit) / 4
	width := uint(w)

	if entry.blocksPerUnit == 1 {
		packLane32(dst, values, width, perLane)
	} else {
		packLane64(dst, values, width, perLane)
	}
}

// unpackUnitInterleaved reverses packUnitInterleaved, writing at most count
// values starting at dst[0] (the caller positions dst at the destination
// cursor). count may be less than intsPerUnit(w) when this is the final,
// partially-needed unit of the sequence.
func unpackUnitInterleaved(dst []uint32, src []byte, w uint8, count int) {
	entry := selectorTable[selectorFor(w)]
	perLane := int(entry.intsPerUnit) / 4
	width := uint(w)

	if entry.blocksPerUnit == 1 {
		unpackLane32(dst, src, width, perLane, count)
	} else {
		unpackLane64(dst, src, width, perLane, count)
	}
}

// packLane32 handles every single-block selector: one accumulator word per
// lane, built up with ShiftLeft32/Or32 and stored with a single StoreU32x4.
func packLane32(dst []byte, values []uint32, width uint, perLane int) {
	mask := maskFor(width)
	var acc [4]uint32
	for i := 0; i < perLane; i++ {
		var v [4]uint32
		for l := 0; l < 4; l++ {
			v[l] = values[i*4+l] & mask
		}
		acc = lane.Active.Or32(acc, lane.Active.ShiftLeft32(v, width*uint(i)))
	}
	lane.Active.StoreU32x4(dst, acc)
}

func unpackLane32(dst []uint32, src []byte, width uint, perLane, count int) {
	acc := lane.Active.LoadU32x4(src)
	mask := maskFor(width)
	for i := 0; i < perLane; i++ {
		shift := width * uint(i)
		for l := 0; l < 4; l++ {
			idx := l + i*4
			if idx < count {
				dst[idx] = (acc[l] >> shift) & mask
			}
		}
	}
}

// packLane64 handles the straddling selectors (widths 7, 9, 12, 21): one
// 64-bit accumulator per lane, built with ShiftLeft64/Or64, then split into
// the unit's two physical 16-byte blocks (the low 32 bits of each lane going
// to the first block, the high 32 bits to the second).
func packLane64(dst []byte, values []uint32, width uint, perLane int) {
	mask := uint64(maskFor(width))
	var acc [4]uint64
	for i := 0; i < perLane; i++ {
		var v [4]uint64
		for l := 0; l < 4; l++ {
			v[l] = uint64(values[i*4+l]) & mask
		}
		acc = lane.Active.Or64(acc, lane.Active.ShiftLeft64(v, width*uint(i)))
	}
	var lo, hi [4]uint32
	for l := 0; l < 4; l++ {
		lo[l] = uint32(acc[l])
		hi[l] = uint32(acc[l] >> 32)
	}
	lane.Active.StoreU32x4(dst[0:16], lo)
	lane.Active.StoreU32x4(dst[16:32], hi)
}

func unpackLane64(dst []uint32, src []byte, width uint, perLane, count int) {
	lo := lane.Active.LoadU32x4(src[0:16])
	hi := lane.Active.LoadU32x4(src[16:32])
	var acc [4]uint64
	for l := 0; l < 4; l++ {
		acc[l] = uint64(lo[l]) | uint64(hi[l])<<32
	}
	mask := uint64(maskFor(width))
	for i := 0; i < perLane; i++ {
		shift := width * uint(i)
		for l := 0; l < 4; l++ {
			idx := l + i*4
			if idx < count {
				dst[idx] = uint32((acc[l] >> shift) & mask)
			}
		}
	}
}

// packUnitNatural packs values at a fixed byte width (1, 2 or 4 bytes) with
// no interleaving, for selectors 8 (w=8), 12 (w=16) and 14 (w=32).
func packUnitNatural(dst []byte, values []uint32, w uint8) {
	switch w {
	case 8:
		for i, v := range values {
			dst[i] = byte(v)
		}
	case 16:
		for i, v := range values {
			bo.PutUint16(dst[i*2:], uint16(v))
		}
	case 32:
		for i := 0; i+4 <= len(values); i += 4 {
			var block [4]uint32
			copy(block[:], values[i:i+4])
			lane.Active.StoreU32x4(dst[i*4:i*4+16], block)
		}
	default:
		panic("qmx: packUnitNatural called with a non-natural width")
	}
}

// unpackUnitNatural reverses packUnitNatural, writing at most count values.
// Widths 8 and 16 route through the lane trait's widen primitives four
// values at a time; the natural-32 path is a plain LoadU32x4 per block.
func unpackUnitNatural(dst []uint32, src []byte, w uint8, count int) {
	switch w {
	case 8:
		n := len(src)
		i := 0
		for ; i+4 <= n; i += 4 {
			block := lane.Active.Widen8To32(src[i : i+4])
			for l := 0; l < 4; l++ {
				if idx := i + l; idx < count {
					dst[idx] = block[l]
				}
			}
		}
		for ; i < n; i++ {
			if i < count {
				dst[i] = uint32(src[i])
			}
		}
	case 16:
		n := len(src) / 2
		i := 0
		for ; i+4 <= n; i += 4 {
			block := lane.Active.Widen16To32(src[i*2 : i*2+8])
			for l := 0; l < 4; l++ {
				if idx := i + l; idx < count {
					dst[idx] = block[l]
				}
			}
		}
		for ; i < n; i++ {
			if i < count {
				dst[i] = uint32(bo.Uint16(src[i*2:]))
			}
		}
	case 32:
		n := len(src) / 4
		i := 0
		for ; i+4 <= n; i += 4 {
			block := lane.Active.LoadU32x4(src[i*4 : i*4+16])
			for l := 0; l < 4; l++ {
				if idx := i + l; idx < count {
					dst[idx] = block[l]
				}
			}
		}
		for ; i < n; i++ {
			if i < count {
				dst[i] = bo.Uint32(src[i*4:])
			}
		}
	default:
		panic("qmx: unpackUnitNatural called with a non-natural width")
	}
}
