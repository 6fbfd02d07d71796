// Package qmx implements an Improved QMX integer codec: a SIMD-friendly
// compressor/decompressor for sequences of 32-bit unsigned integers,
// optimised for the postings-list workloads of inverted indexes.
//
// The codec is built from five pieces, leaves first: a bit-width classifier
// (widths.go), a selector planner that groups values into SIMD-aligned runs
// (planner.go), a packer that interleaves values into 16-byte lanes
// (pack.go, blocks.go), a key writer that lays the run metadata at the tail
// of the buffer (keys.go), and a decoder whose dispatch table lets one key
// byte drive the unpacking of up to 16 blocks without testing a length
// counter in its inner loop (decode.go, decode_table_gen.go).
//
// Encode and Decode are safe for concurrent use as long as each goroutine
// uses its own Encoder/Decoder (or the stateless package-level functions):
// no package-level mutable state, only per-call scratch.
//
// The wire format carries no header, length field, or magic number — per
// spec §6, callers must convey the source element count and encoded length
// out of band.
package qmx

//go:generate go run ./internal/gen -out decode_table_gen.go
