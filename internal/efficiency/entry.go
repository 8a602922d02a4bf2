package efficiency

import (
	"github.com/lonng/mjeff/pkg/mahjong"
)

// Combination records the tiles one move consumed.
type Combination struct {
	Kind  Kind          `json:"kind"`
	Shape string        `json:"shape"`
	Tiles mahjong.Tiles `json:"tiles"`
}

// Entry is one decomposition branch. Entries are never mutated after creation.
type Entry struct {
	Key          Key
	Useful       mahjong.Stats // tiles extending melds and partials
	EyeTiles     mahjong.Stats // tiles extending eye material
	Combinations []Combination
	Singles      mahjong.Tiles
}

// Join sums two branches of disjoint tiles.
func (e *Entry) Join(o *Entry) *Entry {
	res := &Entry{
		Key:      e.Key.Join(o.Key),
		Useful:   e.Useful,
		EyeTiles: e.EyeTiles,
	}
	res.Useful.Merge(&o.Useful)
	res.EyeTiles.Merge(&o.EyeTiles)

	res.Combinations = make([]Combination, 0, len(e.Combinations)+len(o.Combinations))
	res.Combinations = append(res.Combinations, e.Combinations...)
	res.Combinations = append(res.Combinations, o.Combinations...)

	res.Singles = make(mahjong.Tiles, 0, len(e.Singles)+len(o.Singles))
	res.Singles = append(res.Singles, e.Singles...)
	res.Singles = append(res.Singles, o.Singles...)
	return res
}

// Advancing is the set of tiles that extend any structure of the entry.
func (e *Entry) Advancing() mahjong.Set {
	return e.Useful.Set().Union(e.EyeTiles.Set())
}

// fingerprint identifies entries that evaluate alike: the key decides the
// distance and the advancing set is all that reaches the ukeire.
type fingerprint struct {
	key       Key
	advancing mahjong.Set
}

func (e *Entry) fingerprint() fingerprint {
	return fingerprint{key: e.Key, advancing: e.Advancing()}
}

// dedup keeps the first entry of every (key, advancing) class.
func dedup(entries []*Entry) []*Entry {
	seen := make(map[fingerprint]struct{}, len(entries))
	res := entries[:0:0]
	for _, e := range entries {
		fp := e.fingerprint()
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		res = append(res, e)
	}
	return res
}
