package road

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedCoin replays a fixed sequence of draws.
type scriptedCoin struct {
	draws []int
	calls int
}

func (c *scriptedCoin) Intn(n int) int {
	if c.calls >= len(c.draws) {
		panic("scriptedCoin: out of draws")
	}
	v := c.draws[c.calls]
	c.calls++
	return v
}

func TestGenerateInvariants(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		r, err := Generate(50, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		if r.Len() != 50 {
			t.Fatalf("seed %d: Len() = %d, expected 50", seed, r.Len())
		}
		if r[0] != Solid {
			t.Fatalf("seed %d: tile 0 should be Solid, road %s", seed, r)
		}
		for i := 1; i < r.Len(); i++ {
			if r[i-1] == None && r[i] != Solid {
				t.Fatalf("seed %d: consecutive gaps at %d, road %s", seed, i, r)
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate(100, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate(100, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("same seed produced different roads:\n%s\n%s", a, b)
	}
}

func TestGenerateScripted(t *testing.T) {
	// Draws: i=1 -> 1 (Solid), i=2 -> 0 (None), i=3 forced, i=4 -> 1 (Solid)
	coin := &scriptedCoin{draws: []int{1, 0, 1}}
	r, err := Generate(5, coin)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	want := Road{Solid, Solid, None, Solid, Solid}
	if r.String() != want.String() {
		t.Errorf("Generate() = %s, expected %s", r, want)
	}
	if coin.calls != 3 {
		t.Errorf("expected 3 draws (forced tile draws nothing), got %d", coin.calls)
	}
}

func TestGenerateSingleTile(t *testing.T) {
	coin := &scriptedCoin{}
	r, err := Generate(1, coin)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if r.Len() != 1 || r[0] != Solid {
		t.Errorf("Generate(1) = %s, expected #", r)
	}
	if coin.calls != 0 {
		t.Errorf("single tile road should not draw, got %d draws", coin.calls)
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, -50} {
		coin := &scriptedCoin{}
		_, err := Generate(length, coin)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Generate(%d) error = %v, expected ErrInvalidLength", length, err)
		}
		if coin.calls != 0 {
			t.Errorf("Generate(%d) should reject before drawing", length)
		}
	}
}

func TestLandable(t *testing.T) {
	r := Road{Solid, Solid, None, Solid, Solid}

	tests := []struct {
		index int
		want  bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, false},
		{3, true},
		{4, true},
		{5, false}, // index == Len is off the road
		{6, false},
	}
	for _, tc := range tests {
		if got := r.Landable(tc.index); got != tc.want {
			t.Errorf("Landable(%d) = %v, expected %v", tc.index, got, tc.want)
		}
	}
}

func TestAtAndGaps(t *testing.T) {
	r := Road{Solid, None, Solid, None, Solid}

	if r.At(1) != None || r.At(2) != Solid {
		t.Error("At() returned wrong tile kinds")
	}
	if r.At(99) != None {
		t.Error("At() off the road should be None")
	}

	gaps := r.Gaps()
	if len(gaps) != 2 || gaps[0] != 1 || gaps[1] != 3 {
		t.Errorf("Gaps() = %v, expected [1 3]", gaps)
	}
	if r.String() != "#_#_#" {
		t.Errorf("String() = %q, expected %q", r.String(), "#_#_#")
	}
}
