//go:build amd64 && !noasm

package lane

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

func init() {
	if cpu.X86.HasSSE41 || cpu.X86.HasSSE2 {
		Active = swarBackend{}
	}
}

// swarBackend processes lane pairs two-at-a-time through a single 64-bit
// word (SIMD-within-a-register), the software stand-in for the vector
// instructions the dormant avo generator in internal/avo/main.go would
// eventually emit for this trait (spec's §9 re-architecture guidance).
// It produces byte-identical results to scalarBackend; the win is fewer,
// wider operations per block on CPUs that can do 64-bit arithmetic in one
// go, not a change in semantics.
type swarBackend struct{}

func (swarBackend) LoadU32x4(src []byte) [4]uint32 {
	lo := binary.LittleEndian.Uint64(src[0:8])
	hi := binary.LittleEndian.Uint64(src[8:16])
	return [4]uint32{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

func (swarBackend) StoreU32x4(dst []byte, v [4]uint32) {
	lo := uint64(v[0]) | uint64(v[1])<<32
	hi := uint64(v[2]) | uint64(v[3])<<32
	binary.LittleEndian.PutUint64(dst[0:8], lo)
	binary.LittleEndian.PutUint64(dst[8:16], hi)
}

// ShiftLeft32 packs lanes 0/1 and 2/3 into one uint64 apiece and shifts each
// pair together. This only produces the same result as shifting each lane
// independently when a lane's value plus the shift never reaches bit 32 —
// true for every call blocks.go makes, since packLane32 only ever shifts a
// width-masked value by an offset where width+offset <= 32 (the selector
// table's single-block invariant). A caller shifting unmasked or
// wider-than-that-budget values across this boundary would see lane 0 bleed
// into lane 1's bits; scalarBackend never has this restriction.
func (swarBackend) ShiftLeft32(v [4]uint32, n uint) [4]uint32 {
	lo := (uint64(v[0]) | uint64(v[1])<<32) << n
	hi := (uint64(v[2]) | uint64(v[3])<<32) << n
	return [4]uint32{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

func (swarBackend) ShiftLeft64(v [4]uint64, n uint) [4]uint64 {
	return [4]uint64{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

func (swarBackend) Or32(a, b [4]uint32) [4]uint32 {
	loA := uint64(a[0]) | uint64(a[1])<<32
	hiA := uint64(a[2]) | uint64(a[3])<<32
	loB := uint64(b[0]) | uint64(b[1])<<32
	hiB := uint64(b[2]) | uint64(b[3])<<32
	lo := loA | loB
	hi := hiA | hiB
	return [4]uint32{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

func (swarBackend) Or64(a, b [4]uint64) [4]uint64 {
	return [4]uint64{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

func (swarBackend) Widen8To32(src []byte) [4]uint32 {
	packed := binary.LittleEndian.Uint32(src[0:4])
	return [4]uint32{
		packed & 0xFF,
		(packed >> 8) & 0xFF,
		(packed >> 16) & 0xFF,
		(packed >> 24) & 0xFF,
	}
}

func (swarBackend) Widen16To32(src []byte) [4]uint32 {
	lo := binary.LittleEndian.Uint64(src[0:8])
	return [4]uint32{
		uint32(lo) & 0xFFFF,
		uint32(lo>>16) & 0xFFFF,
		uint32(lo>>32) & 0xFFFF,
		uint32(lo>>48) & 0xFFFF,
	}
}
