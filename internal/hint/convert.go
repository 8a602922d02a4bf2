package hint

import (
	"sort"
	"time"

	"github.com/lonng/mjeff/db/model"
	"github.com/lonng/mjeff/internal/efficiency"
	"github.com/lonng/mjeff/pkg/mahjong"
	"github.com/lonng/mjeff/protocol"
)

func tileStrings(ts mahjong.Tiles) []string {
	res := make([]string, len(ts))
	for i, t := range ts {
		res[i] = t.String()
	}
	return res
}

// remaining counts the copies of the set not held in hand.
func remaining(s mahjong.Set, hand mahjong.Tiles) int {
	stats := mahjong.NewStats(hand)
	n := 0
	for _, t := range s.Tiles() {
		n += mahjong.Copies - stats.Count(t)
	}
	return n
}

func steps(m map[int]mahjong.Set) []protocol.Step {
	res := make([]protocol.Step, 0, len(m))
	for d, s := range m {
		res = append(res, protocol.Step{Distance: d, Tiles: tileStrings(s.Tiles())})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Distance < res[j].Distance })
	return res
}

func decomposition(e *efficiency.Entry) *protocol.Decomposition {
	if e == nil {
		return nil
	}
	d := &protocol.Decomposition{
		Melds:         e.Key.Melds,
		Eyes:          e.Key.Eyes,
		Partials:      e.Key.Partials,
		EyeCandidates: e.Key.EyeCandidates,
		Combinations:  make([]protocol.Combination, len(e.Combinations)),
		Singles:       tileStrings(e.Singles),
	}
	for i, c := range e.Combinations {
		d.Combinations[i] = protocol.Combination{
			Kind:  c.Kind.String(),
			Shape: c.Shape,
			Tiles: tileStrings(c.Tiles),
		}
	}
	return d
}

func historyLite(a *model.Analysis) protocol.HistoryLite {
	return protocol.HistoryLite{
		Id:           a.Id,
		Uid:          a.Uid,
		Source:       a.Source,
		Kind:         a.Kind,
		Rule:         a.Rule,
		Hand:         a.Hand,
		Distance:     a.Distance,
		Ukeire:       a.Ukeire,
		Elapsed:      a.Elapsed,
		CreatedAt:    a.CreatedAt,
		CreatedAtStr: time.Unix(a.CreatedAt, 0).Format(format),
	}
}
