package qmx

// Decoder is the resumable counterpart to Decode: it keeps the payload and
// key cursors (and any values produced but not yet claimed, in pending)
// alive across calls so a caller can pull values in chunks without a full
// predecode pass, grounded on reader_slim.go's SlimReader — here the
// incrementality is "resume across Decode calls" rather than SlimReader's
// "resume across Get/Next calls within one block", since qmx's unit size
// (up to 256 values) is already far larger than FastPFOR's 128-value block.
//
// Unlike Decode, a Decoder's chunk size need not align to a unit or batch
// boundary: count is the real length of the logical sequence (exactly what
// Decode's count parameter means), and any decoded values that overshoot a
// given Decode call's len(dst) are queued in the cursor's pending slice
// rather than discarded, so no chunking pattern can lose data.
type Decoder struct {
	c    decodeCursor
	done bool
}

// NewDecoder prepares a Decoder over encoded, which together decode to
// exactly count values. opts controls illegal-selector handling exactly as
// it does for Decode.
func NewDecoder(encoded []byte, count int, opts DecodeOptions) *Decoder {
	if count < 0 {
		panic("qmx: NewDecoder called with a negative count")
	}
	d := &Decoder{}
	d.c.encoded = encoded
	d.c.inPos = 0
	d.c.keyPos = len(encoded) - 1
	d.c.remaining = count
	d.c.strict = opts.Strict
	if count == 0 || len(encoded) == 0 {
		d.done = true
	}
	return d
}

// Decode fills dst with the next len(dst) values and reports how many were
// actually written (fewer than len(dst) only when the stream is exhausted)
// along with whether the whole logical sequence has now been delivered.
func (d *Decoder) Decode(dst []uint32) (n int, done bool, err error) {
	if d.done || len(dst) == 0 {
		return 0, d.done, nil
	}

	d.c.to = dst
	d.c.toPos = 0
	d.c.limit = len(dst)
	d.c.err = nil

	drainCursor(&d.c)

	if d.c.err != nil {
		return d.c.toPos, false, d.c.err
	}
	if d.c.remaining <= 0 && d.c.pendingPos >= len(d.c.pending) {
		d.done = true
	}
	return d.c.toPos, d.done, nil
}

// Done reports whether the decoder has delivered every value of the
// sequence it was constructed over.
func (d *Decoder) Done() bool {
	return d.done
}
