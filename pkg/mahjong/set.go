package mahjong

import (
	"math/bits"
	"strings"
)

// Set is an ordered set of tiles stored as a bitmask over tile indexes.
type Set uint64

func NewSet(tiles ...Tile) Set {
	var s Set
	for _, t := range tiles {
		s = s.Add(t)
	}
	return s
}

func (s Set) Add(t Tile) Set {
	if !t.Valid() {
		return s
	}
	return s | 1<<uint(t)
}

func (s Set) Contains(t Tile) bool {
	return t.Valid() && s&(1<<uint(t)) != 0
}

func (s Set) Union(o Set) Set { return s | o }

func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

func (s Set) Empty() bool { return s == 0 }

// Filter keeps the tiles accepted by fn.
func (s Set) Filter(fn func(Tile) bool) Set {
	var res Set
	for _, t := range s.Tiles() {
		if fn(t) {
			res = res.Add(t)
		}
	}
	return res
}

// Tiles returns the members in tile order.
func (s Set) Tiles() Tiles {
	res := make(Tiles, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		res = append(res, Tile(bits.TrailingZeros64(v)))
	}
	return res
}

func (s Set) String() string {
	ts := s.Tiles()
	res := make([]string, len(ts))
	for i, t := range ts {
		res[i] = t.String()
	}
	return "{" + strings.Join(res, " ") + "}"
}
