//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
)

// This file generates the lane package's combine kernels. POR is
// width-agnostic at the instruction level; Or32Asm and Or64Asm exist as
// distinct entry points only because the Go signatures they back (and the
// callers in blocks.go) differ, not because the instruction differs.

func genOr32Kernel() {
	TEXT("or32Asm", NOSPLIT, "func(a, b [4]uint32) [4]uint32")
	Doc("or32Asm combines two 4-lane uint32 groups with a bitwise OR.")

	a := Load(Param("a"), XMM())
	b := Load(Param("b"), XMM())
	POR(b, a)
	Store(a, ReturnIndex(0))
	RET()
}

func genOr64Kernel() {
	TEXT("or64Asm", NOSPLIT, "func(a, b [2]uint64) [2]uint64")
	Doc("or64Asm combines two 2-lane uint64 groups with a bitwise OR.")

	a := Load(Param("a"), XMM())
	b := Load(Param("b"), XMM())
	POR(b, a)
	Store(a, ReturnIndex(0))
	RET()
}
