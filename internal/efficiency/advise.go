package efficiency

import (
	"context"
	"runtime"
	"sort"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/pkg/mahjong"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Candidate is the outcome of discarding one tile.
type Candidate struct {
	Discard  mahjong.Tile
	Distance int
	Ukeire   mahjong.Set
	Copies   int // unseen copies of the ukeire tiles
}

// Advise analyzes every distinct discard of a 3k+2 hand. Candidates are
// sorted by distance, then by ukeire copies, then by tile.
func (a *Analyzer) Advise(ctx context.Context, tiles []mahjong.Tile, eye mahjong.Predicate) ([]Candidate, error) {
	n := len(tiles)
	if n == 0 {
		return nil, errutil.ErrEmptyHand
	}
	if n%3 != 2 || n > 14 {
		return nil, errors.Wrapf(errutil.ErrInvalidHandSize, "%d tiles", n)
	}

	hand := mahjong.Tiles(tiles).Clone()
	hand.Sort()
	if err := a.validate(hand); err != nil {
		return nil, err
	}
	stats := mahjong.NewStats(hand)
	discards := stats.Distinct()

	if ctx == nil {
		ctx = context.Background()
	}
	candidates := make([]Candidate, len(discards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, d := range discards {
		i, d := i, d
		g.Go(func() error {
			res, err := a.run(gctx, hand.Remove(d), eye, goal{melds: (n - 2) / 3, eyes: 1})
			if err != nil {
				return errors.WithMessagef(err, "discard %s", d)
			}
			c := Candidate{Discard: d, Distance: res.Distance, Ukeire: res.Ukeire()}
			for _, t := range c.Ukeire.Tiles() {
				c.Copies += mahjong.Copies - stats.Count(t)
			}
			candidates[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.Distance != cj.Distance {
			return ci.Distance < cj.Distance
		}
		if ci.Copies != cj.Copies {
			return ci.Copies > cj.Copies
		}
		return ci.Discard < cj.Discard
	})

	a.logger.Debugf("advise %s: best discard %s distance=%d", hand, candidates[0].Discard, candidates[0].Distance)
	return candidates, nil
}
