//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

// This file generates the lane package's widen kernels, used only by the
// decoder's natural-width unpacker (widths 8 and 16). PMOVZXBD/PMOVZXWD
// zero-extend the low 4 bytes / low 4 uint16s of the source directly into
// 4 uint32 lanes, so there is no masking step the way there is in the
// SWAR swarBackend.

func genWiden8To32Kernel() {
	TEXT("widen8To32Asm", NOSPLIT, "func(src *byte) [4]uint32")
	Doc("widen8To32Asm zero-extends 4 bytes from src into 4 uint32 lanes.")

	src := Load(Param("src"), GP64())
	v := XMM()
	PMOVZXBD(operand.Mem{Base: src}, v)
	Store(v, ReturnIndex(0))
	RET()
}

func genWiden16To32Kernel() {
	TEXT("widen16To32Asm", NOSPLIT, "func(src *byte) [4]uint32")
	Doc("widen16To32Asm zero-extends 4 little-endian uint16s from src into 4 uint32 lanes.")

	src := Load(Param("src"), GP64())
	v := XMM()
	PMOVZXWD(operand.Mem{Base: src}, v)
	Store(v, ReturnIndex(0))
	RET()
}
