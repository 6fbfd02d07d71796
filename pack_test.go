package qmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxEncodedLen(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(16, MaxEncodedLen(0))
	got := MaxEncodedLen(1000)
	assert.GreaterOrEqual(got, 4*1000)
	assert.Panics(func() { MaxEncodedLen(-1) })
}

func TestEncodeEmpty(t *testing.T) {
	assert := assert.New(t)
	dst := make([]byte, MaxEncodedLen(0))
	out, err := Encode(dst, nil)
	assert.NoError(err)
	assert.Empty(out)
}

func TestEncodeOutputTooSmall(t *testing.T) {
	assert := assert.New(t)
	values := make([]uint32, 100)
	for i := range values {
		values[i] = uint32(i)
	}
	dst := make([]byte, 0, 4) // deliberately far too small
	_, err := Encode(dst, values)
	assert.ErrorIs(err, ErrOutputTooSmall)
}

func TestEncodeDecodeRoundTripSingleRun(t *testing.T) {
	assert := assert.New(t)
	values := make([]uint32, 64)
	for i := range values {
		values[i] = uint32(i % 4) // all fit in width 2
	}
	dst := make([]byte, MaxEncodedLen(len(values)))
	encoded, err := Encode(dst, values)
	assert.NoError(err)

	got, err := DecodeSafe(nil, encoded, len(values), DecodeOptions{})
	assert.NoError(err)
	assert.Equal(values, got)
}

func TestEncodeDecodeRoundTripMixedWidths(t *testing.T) {
	assert := assert.New(t)
	var values []uint32
	for i := 0; i < 20; i++ {
		values = append(values, uint32(i)) // small width
	}
	for i := 0; i < 20; i++ {
		values = append(values, uint32(100000+i)) // wide width
	}
	for i := 0; i < 9; i++ {
		values = append(values, uint32(i)) // short tail
	}

	dst := make([]byte, MaxEncodedLen(len(values)))
	encoded, err := Encode(dst, values)
	assert.NoError(err)

	got, err := DecodeSafe(nil, encoded, len(values), DecodeOptions{})
	assert.NoError(err)
	assert.Equal(values, got)
}

func TestEncodeDecodeRoundTripPartialFinalUnit(t *testing.T) {
	assert := assert.New(t)
	// 5 values, fewer than 16, are coalesced to width 8 (unit size 16):
	// forces packRun's zero-pad path.
	values := []uint32{1, 0, 1, 1, 0}

	dst := make([]byte, MaxEncodedLen(len(values)))
	encoded, err := Encode(dst, values)
	assert.NoError(err)

	got, err := DecodeSafe(nil, encoded, len(values), DecodeOptions{})
	assert.NoError(err)
	assert.Equal(values, got)
}

func TestEncoderReuseAcrossCalls(t *testing.T) {
	assert := assert.New(t)
	enc := NewEncoder()

	first := []uint32{1, 2, 3, 4}
	dst1 := make([]byte, MaxEncodedLen(len(first)))
	encoded1, err := enc.Encode(dst1, first)
	assert.NoError(err)
	got1, err := DecodeSafe(nil, encoded1, len(first), DecodeOptions{})
	assert.NoError(err)
	assert.Equal(first, got1)

	second := []uint32{100000, 200000, 300000}
	dst2 := make([]byte, MaxEncodedLen(len(second)))
	encoded2, err := enc.Encode(dst2, second)
	assert.NoError(err)
	got2, err := DecodeSafe(nil, encoded2, len(second), DecodeOptions{})
	assert.NoError(err)
	assert.Equal(second, got2)
}

func TestPackRunEmitsOneKeyPerSixteenUnits(t *testing.T) {
	assert := assert.New(t)
	// Width 32 has intsPerUnit == 4, so 17 units (68 values) needs a batch
	// of 16 followed by a batch of 1: two key bytes.
	values := make([]uint32, 4*17)
	for i := range values {
		values[i] = 0xFFFFFFFF // forces width 32
	}

	enc := NewEncoder()
	dst := make([]byte, MaxEncodedLen(len(values)))
	encoded, err := enc.Encode(dst, values)
	assert.NoError(err)
	assert.Len(enc.keys, 2)

	got, err := DecodeSafe(nil, encoded, len(values), DecodeOptions{})
	assert.NoError(err)
	assert.Equal(values, got)
}
