package qmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyLaneAlignment(t *testing.T) {
	assert := assert.New(t)

	w := []uint8{1, 2, 1, 1, 4, 4, 4, 4}
	applyLaneAlignment(w)
	assert.Equal([]uint8{2, 2, 2, 2, 4, 4, 4, 4}, w)
}

func TestApplyLaneAlignmentPartialTail(t *testing.T) {
	w := []uint8{1, 3}
	applyLaneAlignment(w)
	assert.Equal(t, []uint8{3, 3}, w)
}

func TestApplyShortTailCoalescing(t *testing.T) {
	assert := assert.New(t)

	t.Run("coalesces under 16 to width 8", func(t *testing.T) {
		w := make([]uint8, 10)
		for i := range w {
			w[i] = 1
		}
		applyShortTailCoalescing(w)
		for _, v := range w {
			assert.Equal(uint8(8), v)
		}
	})

	t.Run("coalesces under 8 to width 16", func(t *testing.T) {
		w := make([]uint8, 5)
		for i := range w {
			w[i] = 9
		}
		applyShortTailCoalescing(w)
		for _, v := range w {
			assert.Equal(uint8(16), v)
		}
	})

	t.Run("coalesces under 4 to width 32", func(t *testing.T) {
		w := []uint8{17, 17, 17}
		applyShortTailCoalescing(w)
		for _, v := range w {
			assert.Equal(uint8(32), v)
		}
	})

	t.Run("coalesces only the trailing window of a long sequence", func(t *testing.T) {
		// Width 4 units hold 32 values: the walk commits 0..31 and 32..63,
		// then reaches position 64 with only 4 values left.
		w := make([]uint8, 68)
		for i := range w {
			w[i] = 4
		}
		planned := planWidths(w)
		for i, v := range planned {
			if i >= 64 {
				assert.Equal(uint8(8), v, "index %d should be in the coalesced tail window", i)
			} else {
				assert.Equal(uint8(4), v, "index %d is outside the tail window and should be untouched", i)
			}
		}
	})

	t.Run("coalesces a short tail regardless of total sequence length", func(t *testing.T) {
		w := make([]uint8, 100000)
		for i := range w {
			w[i] = 32 // width 32 units hold 4 values, so the walk steps by 4
		}
		for i := len(w) - 4; i < len(w); i++ {
			w[i] = 3 // last 4 values fit comfortably in 8 bits
		}
		planned := planWidths(w)
		for i := len(w) - 4; i < len(w); i++ {
			assert.Equal(uint8(8), planned[i], "index %d should be in the coalesced tail window", i)
		}
		for i := 0; i < len(w)-4; i++ {
			assert.Equal(uint8(32), planned[i], "index %d is outside the tail window and should be untouched", i)
		}
	})
}

func TestPlanWidthsNeverShrinksBelowClassified(t *testing.T) {
	assert := assert.New(t)

	classified := make([]uint8, 100)
	for i := range classified {
		classified[i] = uint8(i % 11)
	}
	planned := planWidths(classified)
	assert.Len(planned, len(classified))
	for i, c := range classified {
		assert.GreaterOrEqual(int(planned[i]), int(c), "index %d", i)
	}
}

func TestPlanWidthsProducesWholeUnits(t *testing.T) {
	assert := assert.New(t)

	classified := make([]uint8, 500)
	for i := range classified {
		classified[i] = uint8(i % 20)
	}
	planned := planWidths(classified)

	for p := 0; p < len(planned); {
		w := planned[p]
		unit := intsPerUnit(w)
		end := p + unit
		if end > len(planned) {
			end = len(planned)
		}
		for _, v := range planned[p:end] {
			assert.Equal(w, v, "run starting at %d should be constant width", p)
		}
		p = end
	}
}

func TestPlanWidthsEmpty(t *testing.T) {
	assert.Nil(t, planWidths(nil))
}
