package qmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildEncoded(t *testing.T, values []uint32) []byte {
	t.Helper()
	dst := make([]byte, MaxEncodedLen(len(values)))
	encoded, err := Encode(dst, values)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return encoded
}

func TestDecoderEmptyBufferIsImmediatelyDone(t *testing.T) {
	assert := assert.New(t)
	d := NewDecoder(nil, 0, DecodeOptions{})
	assert.True(d.Done())

	n, done, err := d.Decode(make([]uint32, 4))
	assert.NoError(err)
	assert.True(done)
	assert.Zero(n)
}

func TestDecoderMatchesSingleShotDecode(t *testing.T) {
	assert := assert.New(t)

	values := make([]uint32, 300)
	for i := range values {
		values[i] = uint32(i * 7 % 5000)
	}
	encoded := buildEncoded(t, values)

	want, err := DecodeSafe(nil, encoded, len(values), DecodeOptions{})
	assert.NoError(err)

	d := NewDecoder(encoded, len(values), DecodeOptions{})
	var got []uint32
	chunk := make([]uint32, 37) // deliberately not a divisor of any unit size
	for !d.Done() {
		n, _, err := d.Decode(chunk)
		assert.NoError(err)
		if n == 0 {
			break
		}
		got = append(got, chunk[:n]...)
	}

	assert.Equal(want, got)
}

func TestDecoderReportsDoneOnlyAfterFullyConsumed(t *testing.T) {
	assert := assert.New(t)

	values := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	encoded := buildEncoded(t, values)

	d := NewDecoder(encoded, len(values), DecodeOptions{})
	n, done, err := d.Decode(make([]uint32, 4))
	assert.NoError(err)
	assert.Equal(4, n)
	assert.False(done, "four of eight values decoded: buffer not fully consumed yet")

	n, done, err = d.Decode(make([]uint32, 4))
	assert.NoError(err)
	assert.Equal(4, n)
	assert.True(done)
}

func TestDecoderZeroLengthChunkIsNoop(t *testing.T) {
	assert := assert.New(t)
	values := []uint32{1, 2, 3}
	encoded := buildEncoded(t, values)

	d := NewDecoder(encoded, len(values), DecodeOptions{})
	n, done, err := d.Decode(nil)
	assert.NoError(err)
	assert.False(done)
	assert.Zero(n)
}
