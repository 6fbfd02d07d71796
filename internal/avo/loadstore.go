//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

// This file generates the lane package's unaligned load/store kernels: a
// straight MOVOU in and out of a 16-byte lane group, no arithmetic. They
// exist mainly so the rest of the kernels in this package have a real
// SSE2 entry/exit point to round-trip through in the eventual .s file.

func genLoadU32x4Kernel() {
	TEXT("loadU32x4Asm", NOSPLIT, "func(src *byte) [4]uint32")
	Doc("loadU32x4Asm reads 16 bytes from src as 4 little-endian uint32 lanes.")

	src := Load(Param("src"), GP64())
	v := XMM()
	MOVOU(operand.Mem{Base: src}, v)
	Store(v, ReturnIndex(0))
	RET()
}

func genStoreU32x4Kernel() {
	TEXT("storeU32x4Asm", NOSPLIT, "func(dst *byte, v [4]uint32)")
	Doc("storeU32x4Asm writes 4 lanes to dst as 16 little-endian bytes.")

	dst := Load(Param("dst"), GP64())
	v := Load(Param("v"), XMM())
	MOVOU(v, operand.Mem{Base: dst})
	RET()
}
