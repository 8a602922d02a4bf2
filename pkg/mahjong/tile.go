package mahjong

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/pkg/errors"
)

// 牌的编码: Index = Suit*10 + Rank
// 11~19: 万, 21~29: 筒, 31~39: 条, 41~44: 东南西北, 51~53: 中发白
const (
	MaxRank      = 9
	MaxTileIndex = 53
	Copies       = 4 // 每种牌的张数
)

type Suit int

const (
	SuitCharacter Suit = iota + 1 // 万
	SuitDot                       // 筒
	SuitBamboo                    // 条
	SuitWind                      // 风
	SuitDragon                    // 箭
)

// Suits lists every suit in tile order.
var Suits = []Suit{SuitCharacter, SuitDot, SuitBamboo, SuitWind, SuitDragon}

var suitInfos = [...]struct {
	ranks    int
	sequence bool
	letter   string
	name     string
}{
	SuitCharacter: {9, true, "m", "万"},
	SuitDot:       {9, true, "p", "筒"},
	SuitBamboo:    {9, true, "s", "条"},
	SuitWind:      {4, false, "", "风"},
	SuitDragon:    {3, false, "", "箭"},
}

var (
	windNames   = []string{"", "东", "南", "西", "北"}
	windLetters = []string{"", "E", "S", "W", "N"}

	dragonNames   = []string{"", "中", "发", "白"}
	dragonLetters = []string{"", "C", "F", "P"}
)

func (s Suit) Valid() bool {
	return s >= SuitCharacter && s <= SuitDragon
}

// Ranks returns the highest rank of the suit.
func (s Suit) Ranks() int {
	if !s.Valid() {
		return 0
	}
	return suitInfos[s].ranks
}

// Sequence reports whether runs (顺子) can be built in the suit.
func (s Suit) Sequence() bool {
	return s.Valid() && suitInfos[s].sequence
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitInfos[s].name
}

type Tile int

// NewTile validates the suit/rank combination.
func NewTile(s Suit, rank int) (Tile, error) {
	if !s.Valid() {
		return 0, errors.Wrapf(errutil.ErrInvalidTile, "suit %d", int(s))
	}
	if rank < 1 || rank > s.Ranks() {
		return 0, errors.Wrapf(errutil.ErrInvalidTile, "%s rank %d", s, rank)
	}
	return Tile(int(s)*10 + rank), nil
}

func MustTile(s Suit, rank int) Tile {
	t, err := NewTile(s, rank)
	if err != nil {
		panic(err)
	}
	return t
}

func TileFromIndex(idx int) (Tile, error) {
	if idx < 0 || idx%10 == 0 {
		return 0, errors.Wrapf(errutil.ErrInvalidTile, "index %d", idx)
	}
	return NewTile(Suit(idx/10), idx%10)
}

func (t Tile) Suit() Suit { return Suit(t / 10) }
func (t Tile) Rank() int  { return int(t % 10) }
func (t Tile) Index() int { return int(t) }

func (t Tile) Valid() bool {
	r := t.Rank()
	return t.Suit().Valid() && r >= 1 && r <= t.Suit().Ranks()
}

// Offset returns the tile d ranks away in the same suit.
func (t Tile) Offset(d int) (Tile, bool) {
	r := t.Rank() + d
	if r < 1 || r > t.Suit().Ranks() {
		return 0, false
	}
	return t + Tile(d), true
}

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	switch s := t.Suit(); s {
	case SuitWind:
		return windLetters[t.Rank()]
	case SuitDragon:
		return dragonLetters[t.Rank()]
	default:
		return fmt.Sprintf("%d%s", t.Rank(), suitInfos[s].letter)
	}
}

// Name 中文牌名
func (t Tile) Name() string {
	if !t.Valid() {
		return ""
	}
	switch s := t.Suit(); s {
	case SuitWind:
		return windNames[t.Rank()]
	case SuitDragon:
		return dragonNames[t.Rank()]
	default:
		return fmt.Sprintf("%d%s", t.Rank(), suitInfos[s].name)
	}
}

type Tiles []Tile

func (ts Tiles) Len() int           { return len(ts) }
func (ts Tiles) Swap(i, j int)      { ts[i], ts[j] = ts[j], ts[i] }
func (ts Tiles) Less(i, j int) bool { return ts[i] < ts[j] }

func (ts Tiles) Sort() { sort.Sort(ts) }

func (ts Tiles) Clone() Tiles {
	c := make(Tiles, len(ts))
	copy(c, ts)
	return c
}

func (ts Tiles) String() string {
	res := make([]string, len(ts))
	for i := range ts {
		res[i] = ts[i].String()
	}
	return strings.Join(res, " ")
}

func (ts Tiles) Names() string {
	res := make([]string, len(ts))
	for i := range ts {
		res[i] = ts[i].Name()
	}
	return strings.Join(res, ", ")
}

// Remove returns a copy without one instance of t.
func (ts Tiles) Remove(t Tile) Tiles {
	res := make(Tiles, 0, len(ts))
	removed := false
	for _, x := range ts {
		if x == t && !removed {
			removed = true
			continue
		}
		res = append(res, x)
	}
	return res
}

// AllTiles returns one instance of every tile of the given suits.
func AllTiles(suits ...Suit) Tiles {
	var res Tiles
	for _, s := range suits {
		for r := 1; r <= s.Ranks(); r++ {
			res = append(res, Tile(int(s)*10+r))
		}
	}
	return res
}
