package efficiency

import (
	"github.com/lonng/mjeff/pkg/mahjong"
)

// goal is the shape a complete hand must reach.
type goal struct {
	melds int
	eyes  int
	exact bool // only a complete decomposition matters
}

func (g goal) complete(k Key) bool {
	return k.Melds == g.melds && k.Eyes == g.eyes
}

// distance is the number of draws the entry still needs.
func (g goal) distance(k Key) int {
	d := 0
	if missing := g.melds - k.Melds; missing > 0 {
		if k.Partials >= missing {
			d += missing
		} else {
			d += k.Partials + 2*(missing-k.Partials)
		}
	}
	if g.eyes-k.Eyes > 0 {
		if k.EyeCandidates > 0 {
			d++
		} else {
			d += 2
		}
	}
	return d
}

type evaluation struct {
	distance int
	steps    map[int]mahjong.Set
	best     *Entry
}

// evaluate buckets the advancing tiles of every entry under its distance.
// hand is the multiset being analyzed, eyes are the eye-eligible tiles of the universe.
func evaluate(entries []*Entry, g goal, hand *mahjong.Stats, eyes mahjong.Set) evaluation {
	for _, e := range entries {
		if g.complete(e.Key) {
			return evaluation{steps: map[int]mahjong.Set{0: 0}, best: e}
		}
	}

	ev := evaluation{distance: -1, steps: map[int]mahjong.Set{}}
	obtainable := func(t mahjong.Tile) bool { return hand.Count(t) < mahjong.Copies }

	for _, e := range entries {
		d := g.distance(e.Key)
		tiles := e.Advancing()
		if e.Key.Eyes == 0 && e.Key.EyeCandidates == 0 {
			tiles = tiles.Union(eyes)
		}
		ev.steps[d] = ev.steps[d].Union(tiles.Filter(obtainable))

		if ev.distance < 0 || d < ev.distance || (d == ev.distance && e.Key.Better(ev.best.Key)) {
			ev.distance, ev.best = d, e
		}
	}
	return ev
}
