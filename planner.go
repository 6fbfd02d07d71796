package qmx

// Component B: the selector planner.
//
// planWidths rewrites a per-value classification into a piecewise-constant
// width sequence that satisfies spec §4.B's three properties:
//
//   P1 lane alignment  — every 4-aligned tuple shares one width.
//   P2 run legality    — every window of ints_per_block(w) values at a
//                         width-w boundary really does fit in w bits.
//   P3 short-tail coalescing — very short tails flatten to a byte-aligned
//                         width instead of emitting pathological tiny runs.
//
// The source's version of this algorithm restarts its decision loop in
// place whenever a promotion invalidates the current window (spec §9). This
// version follows the re-architecture guidance directly: compute the max
// over the upcoming window first, and only then commit, so there is a
// single forward pass instead of a nested retry.
func planWidths(classified []uint8) []uint8 {
	n := len(classified)
	if n == 0 {
		return nil
	}
	w := make([]uint8, n)
	copy(w, classified)

	applyLaneAlignment(w)

	out := make([]uint8, n)
	for p := 0; p < n; {
		applyShortTailCoalescing(w[p:])
		width := w[p]
		if _, legal := widthToSelector[width]; !legal {
			// An illegal width (11, 13..15, 17..20, 22..31) starts at the next
			// legal one; a width above 32 reaches the panic below.
			width, _ = nextLegalWidth(width)
		}
		for {
			end := p + intsPerUnit(width)
			if end > n {
				end = n
			}
			max := width
			for _, v := range w[p:end] {
				if v > max {
					max = v
				}
			}
			if max == width {
				for i := p; i < end; i++ {
					out[i] = width
				}
				p = end
				break
			}
			next, ok := nextLegalWidth(width)
			if !ok {
				// max is itself illegal (> 32); unreachable for 32-bit
				// input but kept so corruption is caught rather than
				// silently mis-packed (spec §4.B failure semantics).
				panic("qmx: classifier produced a width with no legal promotion")
			}
			width = next
		}
	}
	return out
}

// applyLaneAlignment implements P1: every 4-aligned tuple is rewritten to
// its own maximum width, a first pass ahead of the run-legality walk.
func applyLaneAlignment(w []uint8) {
	n := len(w)
	for base := 0; base < n; base += 4 {
		end := base + 4
		if end > n {
			end = n
		}
		var max uint8
		for _, v := range w[base:end] {
			if v > max {
				max = v
			}
		}
		for i := base; i < end; i++ {
			w[i] = max
		}
	}
}

// applyShortTailCoalescing implements P3 on w, the values that remain from
// the planner's current position to the end of the sequence: fewer than 16
// remaining values that all fit in 8 bits are flattened to width 8, else
// fewer than 8 that all fit in 16 bits to width 16, else fewer than 4 to
// width 32 (which always fits, since 32 is the widest legal width). With 16
// or more values remaining it changes nothing. planWidths calls it before
// every P2 decision, so a long sequence's tail is coalesced once the walk
// reaches a position with that few values left.
func applyShortTailCoalescing(w []uint8) {
	n := len(w)
	if n == 0 {
		return
	}
	if n < 16 && coalesceTailWindow(w, tailWindowSize(n, 16), 8) {
		return
	}
	if n < 8 && coalesceTailWindow(w, tailWindowSize(n, 8), 16) {
		return
	}
	if n < 4 {
		coalesceTailWindow(w, tailWindowSize(n, 4), 32)
	}
}

// tailWindowSize caps size at n so short sequences examine their whole
// length instead of indexing past the start.
func tailWindowSize(n, size int) int {
	if size > n {
		return n
	}
	return size
}

// coalesceTailWindow flattens the last size elements of w to flattenTo if
// none of them need a wider width, reporting whether it did so.
func coalesceTailWindow(w []uint8, size int, flattenTo uint8) bool {
	tail := w[len(w)-size:]
	var max uint8
	for _, v := range tail {
		if v > max {
			max = v
		}
	}
	if max > flattenTo {
		return false
	}
	for i := range tail {
		tail[i] = flattenTo
	}
	return true
}
