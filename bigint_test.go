package vdf

import (
	"math/big"
	"testing"
)

func TestModPow(t *testing.T) {
	got := modPow(big.NewInt(3), big.NewInt(5), big.NewInt(7))
	want := big.NewInt(5) // 3^5 = 243 = 34*7 + 5
	if got.Cmp(want) != 0 {
		t.Errorf("modPow(3,5,7) = %s, want %s", got, want)
	}
}

func TestModMul(t *testing.T) {
	got := modMul(big.NewInt(6), big.NewInt(7), big.NewInt(10))
	want := big.NewInt(2) // 42 mod 10
	if got.Cmp(want) != 0 {
		t.Errorf("modMul(6,7,10) = %s, want %s", got, want)
	}
}

func TestDivFloorAndModFloor(t *testing.T) {
	a := big.NewInt(1024)
	b := big.NewInt(7)

	q := divFloor(a, b)
	if q.Cmp(big.NewInt(146)) != 0 {
		t.Errorf("divFloor(1024,7) = %s, want 146", q)
	}

	r := modFloor(a, b)
	if r.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("modFloor(1024,7) = %s, want 2", r)
	}
}

func TestPadLeftAndTrimmedBytes(t *testing.T) {
	x := big.NewInt(255)
	trimmed := trimmedBytes(x)
	if len(trimmed) != 1 || trimmed[0] != 0xFF {
		t.Errorf("trimmedBytes(255) = %x, want ff", trimmed)
	}

	padded := padLeft(trimmed, 4)
	if len(padded) != 4 || padded[3] != 0xFF || padded[0] != 0 {
		t.Errorf("padLeft(ff, 4) = %x, want 000000ff", padded)
	}
}

func TestPadLeftPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("padLeft should panic when the value is already wider than the target")
		}
	}()
	padLeft([]byte{1, 2, 3}, 2)
}

func TestSampleBytesLength(t *testing.T) {
	b, err := sampleBytes(32)
	if err != nil {
		t.Fatalf("sampleBytes failed: %v", err)
	}
	if len(b) != 32 {
		t.Errorf("sampleBytes(32) returned %d bytes", len(b))
	}
}
