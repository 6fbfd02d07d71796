//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
)

// This file generates the lane package's packed left-shift kernels: PSLLD
// shifts all 4 uint32 lanes by a shared count, PSLLQ shifts the 2 uint64
// halves used by the straddling selectors (widths 7, 9, 12, 21). Both are
// single instructions; there is no tail loop because a lane group is
// always exactly 16 bytes. The shift count is moved into the low qword of
// an XMM register first, since PSLLD/PSLLQ's variable-count form reads its
// count from a vector register rather than a GP register.

func genShiftLeft32Kernel() {
	TEXT("shiftLeft32Asm", NOSPLIT, "func(v [4]uint32, n uint) [4]uint32")
	Doc("shiftLeft32Asm shifts each of 4 packed uint32 lanes left by n bits.")

	v := Load(Param("v"), XMM())
	n := Load(Param("n"), GP64())
	count := XMM()
	MOVQ(n, count)
	PSLLL(count, v)
	Store(v, ReturnIndex(0))
	RET()
}

func genShiftLeft64Kernel() {
	TEXT("shiftLeft64Asm", NOSPLIT, "func(v [2]uint64, n uint) [2]uint64")
	Doc("shiftLeft64Asm shifts each of 2 packed uint64 lanes left by n bits.")

	v := Load(Param("v"), XMM())
	n := Load(Param("n"), GP64())
	count := XMM()
	MOVQ(n, count)
	PSLLQ(count, v)
	Store(v, ReturnIndex(0))
	RET()
}
