// Package road generates the linear tile road the player jumps along.
package road

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLength is returned when a road of non-positive length is requested.
var ErrInvalidLength = errors.New("road: length must be positive")

// TileKind says whether a road position supports landing.
type TileKind int

const (
	None  TileKind = iota // Gap
	Solid                 // Landable block
)

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case None:
		return "None"
	case Solid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// Coin is the randomness source consumed by Generate.
// *rand.Rand satisfies it; tests can script the draws.
type Coin interface {
	Intn(n int) int
}

// Road is an ordered sequence of tiles. Index 0 is the spawn tile.
type Road []TileKind

// Generate builds a road of the given length.
// Tile 0 is always Solid and a gap is always followed by a Solid tile.
// Every other tile costs exactly one rng.Intn(2) draw: 0 is a gap, 1 is Solid.
func Generate(length int, rng Coin) (Road, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	r := make(Road, length)
	r[0] = Solid
	for i := 1; i < length; i++ {
		if r[i-1] == None {
			r[i] = Solid
			continue
		}
		if rng.Intn(2) == 0 {
			r[i] = None
		} else {
			r[i] = Solid
		}
	}
	return r, nil
}

// Len returns the number of tiles.
func (r Road) Len() int {
	return len(r)
}

// At returns the tile at index, or None when the index is off the road.
func (r Road) At(index int) TileKind {
	if index < 0 || index >= len(r) {
		return None
	}
	return r[index]
}

// Landable reports whether index lies on the road and holds a Solid tile.
// index == Len() is off the road.
func (r Road) Landable(index int) bool {
	return index >= 0 && index < len(r) && r[index] != None
}

// Gaps returns the indices of all None tiles.
func (r Road) Gaps() []int {
	var gaps []int
	for i, k := range r {
		if k == None {
			gaps = append(gaps, i)
		}
	}
	return gaps
}

// String renders the road as a strip: '#' for Solid, '_' for None.
func (r Road) String() string {
	var sb strings.Builder
	sb.Grow(len(r))
	for _, k := range r {
		if k == Solid {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
