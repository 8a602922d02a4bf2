package mahjong

import (
	"errors"
	"testing"

	"github.com/lonng/mjeff/pkg/errutil"
)

func TestNewTile(t *testing.T) {
	cases := []struct {
		suit  Suit
		rank  int
		index int
		ok    bool
	}{
		{SuitCharacter, 1, 11, true},
		{SuitCharacter, 9, 19, true},
		{SuitDot, 5, 25, true},
		{SuitBamboo, 9, 39, true},
		{SuitWind, 4, 44, true},
		{SuitDragon, 3, 53, true},
		{SuitWind, 5, 0, false},
		{SuitDragon, 4, 0, false},
		{SuitCharacter, 0, 0, false},
		{SuitCharacter, 10, 0, false},
		{Suit(0), 1, 0, false},
		{Suit(6), 1, 0, false},
	}

	for _, c := range cases {
		tile, err := NewTile(c.suit, c.rank)
		if c.ok != (err == nil) {
			t.Fatalf("expect ok: %v, got: %v, suit: %d, rank: %d", c.ok, err, c.suit, c.rank)
		}
		if err != nil {
			if !errors.Is(err, errutil.ErrInvalidTile) {
				t.Fatalf("expect: %v, got: %v", errutil.ErrInvalidTile, err)
			}
			continue
		}
		if tile.Index() != c.index {
			t.Fatalf("expect: %d, got: %d", c.index, tile.Index())
		}
		if tile.Suit() != c.suit || tile.Rank() != c.rank {
			t.Fatalf("expect: %v/%d, got: %v/%d", c.suit, c.rank, tile.Suit(), tile.Rank())
		}
	}
}

func TestTileFromIndex(t *testing.T) {
	for _, idx := range []int{0, 10, 20, 30, 40, 45, 50, 54, -1, 100} {
		if _, err := TileFromIndex(idx); err == nil {
			t.Fatalf("index %d should be invalid", idx)
		}
	}

	valid := 0
	for idx := 0; idx <= MaxTileIndex; idx++ {
		if _, err := TileFromIndex(idx); err == nil {
			valid++
		}
	}
	if valid != 34 {
		t.Fatalf("expect: 34, got: %d", valid)
	}
}

func TestTileOffset(t *testing.T) {
	cases := []struct {
		tile  Tile
		delta int
		want  Tile
		ok    bool
	}{
		{MustTile(SuitCharacter, 1), -1, 0, false},
		{MustTile(SuitCharacter, 1), 2, MustTile(SuitCharacter, 3), true},
		{MustTile(SuitDot, 8), 2, 0, false},
		{MustTile(SuitBamboo, 5), -4, MustTile(SuitBamboo, 1), true},
		{MustTile(SuitWind, 4), 1, 0, false},
	}

	for _, c := range cases {
		got, ok := c.tile.Offset(c.delta)
		if ok != c.ok || got != c.want {
			t.Fatalf("expect: %v/%v, got: %v/%v, tile: %s", c.want, c.ok, got, ok, c.tile)
		}
	}
}

func TestTileString(t *testing.T) {
	cases := []struct {
		tile Tile
		text string
		name string
	}{
		{11, "1m", "1万"},
		{25, "5p", "5筒"},
		{39, "9s", "9条"},
		{41, "E", "东"},
		{44, "N", "北"},
		{51, "C", "中"},
		{53, "P", "白"},
	}

	for _, c := range cases {
		if c.tile.String() != c.text {
			t.Fatalf("expect: %s, got: %s", c.text, c.tile.String())
		}
		if c.tile.Name() != c.name {
			t.Fatalf("expect: %s, got: %s", c.name, c.tile.Name())
		}
	}
}

func TestTilesSortRemove(t *testing.T) {
	ts := Tiles{39, 11, 53, 11, 25}
	ts.Sort()
	if ts.String() != "1m 1m 5p 9s P" {
		t.Fatalf("expect: 1m 1m 5p 9s P, got: %s", ts)
	}

	rest := ts.Remove(11)
	if rest.String() != "1m 5p 9s P" {
		t.Fatalf("expect: 1m 5p 9s P, got: %s", rest)
	}
	if len(ts) != 5 {
		t.Fatalf("remove mutated its receiver: %s", ts)
	}
}

func TestAllTiles(t *testing.T) {
	if n := len(AllTiles(Suits...)); n != 34 {
		t.Fatalf("expect: 34, got: %d", n)
	}
	if n := len(AllTiles(SuitWind, SuitDragon)); n != 7 {
		t.Fatalf("expect: 7, got: %d", n)
	}
}

func TestStats(t *testing.T) {
	ms := NewStats(MustParse("1m 1m 2m E"), MustParse("E E"))
	if ms.Count(11) != 2 || ms.Count(41) != 3 || ms.Count(12) != 1 {
		t.Fatalf("unexpected stats: %s", ms)
	}
	if ms.Total() != 6 {
		t.Fatalf("expect: 6, got: %d", ms.Total())
	}

	other := NewStats(MustParse("2m 9s"))
	ms.Merge(other)
	if ms.Count(12) != 2 || ms.Count(39) != 1 {
		t.Fatalf("unexpected merged stats: %s", ms)
	}
	if got := ms.Distinct().String(); got != "1m 2m 9s E" {
		t.Fatalf("expect: 1m 2m 9s E, got: %s", got)
	}
}

func TestSet(t *testing.T) {
	s := NewSet(39, 11, 53, 11)
	if s.Len() != 3 {
		t.Fatalf("expect: 3, got: %d", s.Len())
	}
	if !s.Contains(53) || s.Contains(12) || s.Contains(0) {
		t.Fatalf("unexpected membership: %s", s)
	}
	if s.String() != "{1m 9s P}" {
		t.Fatalf("expect: {1m 9s P}, got: %s", s)
	}

	u := s.Union(NewSet(12))
	if u.Len() != 4 || s.Len() != 3 {
		t.Fatalf("union: %s, %s", s, u)
	}
	odd := u.Filter(func(t Tile) bool { return t.Rank()%2 == 1 })
	if odd.String() != "{1m 9s P}" {
		t.Fatalf("expect: {1m 9s P}, got: %s", odd)
	}
}
