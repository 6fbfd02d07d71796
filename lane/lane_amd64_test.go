//go:build amd64 && !noasm

package lane

import "testing"

func TestSwarMatchesScalarLoadStore(t *testing.T) {
	buf := []byte{
		0x01, 0x02, 0x03, 0x04,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x80,
		0x10, 0x20, 0x30, 0x40,
	}
	want := scalarBackend{}.LoadU32x4(buf)
	got := swarBackend{}.LoadU32x4(buf)
	if got != want {
		t.Fatalf("LoadU32x4: got %v, want %v", got, want)
	}

	dstWant := make([]byte, 16)
	dstGot := make([]byte, 16)
	scalarBackend{}.StoreU32x4(dstWant, want)
	swarBackend{}.StoreU32x4(dstGot, got)
	if string(dstGot) != string(dstWant) {
		t.Fatalf("StoreU32x4: got %x, want %x", dstGot, dstWant)
	}
}

// TestSwarMatchesScalarShiftLeft32WithinBudget only exercises shifts where
// width+offset<=32 per lane, the invariant blocks.go's packLane32 relies on
// (see ShiftLeft32's doc comment) — it is not a general-purpose shifter.
func TestSwarMatchesScalarShiftLeft32WithinBudget(t *testing.T) {
	cases := []struct {
		v [4]uint32
		n uint
	}{
		{[4]uint32{0x0F, 0x0F, 0x0F, 0x0F}, 4},
		{[4]uint32{0, 0, 0, 0}, 10},
		{[4]uint32{0x1FFFFF, 0x1FFFFF, 0x1FFFFF, 0x1FFFFF}, 11}, // width 21, offset 11
	}
	for _, c := range cases {
		want := scalarBackend{}.ShiftLeft32(c.v, c.n)
		got := swarBackend{}.ShiftLeft32(c.v, c.n)
		if got != want {
			t.Fatalf("ShiftLeft32(%v, %d): got %v, want %v", c.v, c.n, got, want)
		}
	}
}

func TestSwarMatchesScalarShiftLeft64(t *testing.T) {
	v := [4]uint64{1, 2, 3, 4}
	want := scalarBackend{}.ShiftLeft64(v, 5)
	got := swarBackend{}.ShiftLeft64(v, 5)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSwarMatchesScalarOr32(t *testing.T) {
	a := [4]uint32{0x0F, 0xF0, 0, 0xFF}
	b := [4]uint32{0xF0, 0x0F, 0xFF, 0}
	want := scalarBackend{}.Or32(a, b)
	got := swarBackend{}.Or32(a, b)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSwarMatchesScalarOr64(t *testing.T) {
	a := [4]uint64{0x0F, 1, 2, 3}
	b := [4]uint64{0xF0, 0, 0, 0}
	want := scalarBackend{}.Or64(a, b)
	got := swarBackend{}.Or64(a, b)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSwarMatchesScalarWiden8To32(t *testing.T) {
	buf := []byte{1, 255, 128, 0}
	want := scalarBackend{}.Widen8To32(buf)
	got := swarBackend{}.Widen8To32(buf)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSwarMatchesScalarWiden16To32(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 1, 0, 0, 1, 2, 0}
	want := scalarBackend{}.Widen16To32(buf)
	got := swarBackend{}.Widen16To32(buf)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
