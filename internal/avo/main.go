//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the lane package's eight SSE2/SSE4.1 kernels (the two widen
// kernels use SSE4.1's PMOVZX) so lane/lane_amd64.s can
// be regenerated with `go:generate avo -out lane_amd64.s`: the same
// Package/ConstraintExpr/Generate scaffolding a delta/zigzag kernel
// generator would use, retargeted at the lane trait instead of delta coding
// (this codec has no delta stage of its own).
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/Akron/qmx-go/lane")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "loadstore" || comp == "all" {
		genLoadU32x4Kernel()
		genStoreU32x4Kernel()
	}

	if comp == "shift" || comp == "all" {
		genShiftLeft32Kernel()
		genShiftLeft64Kernel()
	}

	if comp == "logic" || comp == "all" {
		genOr32Kernel()
		genOr64Kernel()
	}

	if comp == "widen" || comp == "all" {
		genWiden8To32Kernel()
		genWiden16To32Kernel()
	}

	Generate()
}
