// Package lane implements the 8-function 128-bit lane trait the codec's
// bit-packing walks on top of: load/store a 4-wide uint32 lane group,
// shift and combine accumulators at 32- and 64-bit width, and widen
// byte/uint16 arrays into lanes for the natural (8/16/32-bit) selectors.
//
// The trait exists so the packer and decoder never touch a byte slice
// directly — they describe what they want in terms of lanes, and the
// active Backend decides how, the same split simdpack.go draws between
// packLanesSIMDPreferred and packLanesScalar. Active is swapped once at
// package init (see lane_amd64.go), not per call, matching
// initSIMDSelection's one-time choice.
package lane

// Backend is the set of 128-bit lane primitives a qmx block operation is
// built from. A 128-bit block is always treated as 4 lanes of 32 bits;
// the 64-bit operations exist for selectors whose unit straddles two
// blocks (widths 7, 9, 12, 21), where each lane accumulates into a
// 64-bit word before the low and high 32 bits are split across the two
// blocks.
type Backend interface {
	// LoadU32x4 reads 16 bytes from src as 4 little-endian uint32 lanes.
	LoadU32x4(src []byte) [4]uint32
	// StoreU32x4 writes 4 lanes to dst as 16 little-endian bytes.
	StoreU32x4(dst []byte, v [4]uint32)

	// ShiftLeft32 shifts each lane left by n bits (n < 32).
	ShiftLeft32(v [4]uint32, n uint) [4]uint32
	// ShiftLeft64 shifts each lane left by n bits (n < 64).
	ShiftLeft64(v [4]uint64, n uint) [4]uint64

	// Or32 combines two lane groups with a bitwise OR.
	Or32(a, b [4]uint32) [4]uint32
	// Or64 combines two 64-bit lane groups with a bitwise OR.
	Or64(a, b [4]uint64) [4]uint64

	// Widen8To32 reads 4 bytes from src, one per lane, zero-extended.
	Widen8To32(src []byte) [4]uint32
	// Widen16To32 reads 4 little-endian uint16s from src, one per lane,
	// zero-extended.
	Widen16To32(src []byte) [4]uint32
}

// Active is the Backend the package has selected: the SWAR-accelerated
// implementation when the running CPU qualifies (see lane_amd64.go's
// init), the portable scalar implementation otherwise.
var Active Backend = scalarBackend{}

// scalarBackend is the portable fallback: plain Go arithmetic, no
// platform assumptions. It is always correct and is what non-amd64
// builds use exclusively.
type scalarBackend struct{}

func (scalarBackend) LoadU32x4(src []byte) [4]uint32 {
	var v [4]uint32
	for i := 0; i < 4; i++ {
		v[i] = uint32(src[i*4]) | uint32(src[i*4+1])<<8 | uint32(src[i*4+2])<<16 | uint32(src[i*4+3])<<24
	}
	return v
}

func (scalarBackend) StoreU32x4(dst []byte, v [4]uint32) {
	for i := 0; i < 4; i++ {
		dst[i*4] = byte(v[i])
		dst[i*4+1] = byte(v[i] >> 8)
		dst[i*4+2] = byte(v[i] >> 16)
		dst[i*4+3] = byte(v[i] >> 24)
	}
}

func (scalarBackend) ShiftLeft32(v [4]uint32, n uint) [4]uint32 {
	var out [4]uint32
	for i := range v {
		out[i] = v[i] << n
	}
	return out
}

func (scalarBackend) ShiftLeft64(v [4]uint64, n uint) [4]uint64 {
	var out [4]uint64
	for i := range v {
		out[i] = v[i] << n
	}
	return out
}

func (scalarBackend) Or32(a, b [4]uint32) [4]uint32 {
	var out [4]uint32
	for i := range a {
		out[i] = a[i] | b[i]
	}
	return out
}

func (scalarBackend) Or64(a, b [4]uint64) [4]uint64 {
	var out [4]uint64
	for i := range a {
		out[i] = a[i] | b[i]
	}
	return out
}

func (scalarBackend) Widen8To32(src []byte) [4]uint32 {
	var v [4]uint32
	for i := 0; i < 4; i++ {
		v[i] = uint32(src[i])
	}
	return v
}

func (scalarBackend) Widen16To32(src []byte) [4]uint32 {
	var v [4]uint32
	for i := 0; i < 4; i++ {
		v[i] = uint32(src[i*2]) | uint32(src[i*2+1])<<8
	}
	return v
}
