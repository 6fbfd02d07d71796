package qmx

// Component D: the key writer.
//
// writeKeysReversed copies keys into dst in reverse order, placing them at
// the tail of the encoded buffer. dst must be exactly len(keys) bytes (the
// region after the payload). Reversal is what lets the decoder read keys
// from the tail forward while the payload cursor advances from the front,
// so both cursors converge and can be compared directly (spec §4.D, §6).
func writeKeysReversed(dst []byte, keys []byte) {
	for i, k := range keys {
		dst[len(dst)-1-i] = k
	}
}
