package efficiency

import (
	"context"

	"github.com/lonng/mjeff/pkg/mahjong"
	"golang.org/x/sync/errgroup"
)

// bySuit partitions the tiles in ascending suit order.
func bySuit(tiles mahjong.Tiles) ([]mahjong.Suit, []mahjong.Tiles) {
	var (
		suits  []mahjong.Suit
		groups []mahjong.Tiles
	)
	for _, s := range mahjong.Suits {
		var g mahjong.Tiles
		for _, t := range tiles {
			if t.Suit() == s {
				g = append(g, t)
			}
		}
		if len(g) > 0 {
			suits = append(suits, s)
			groups = append(groups, g)
		}
	}
	return suits, groups
}

// searchSuits runs one search per suit. Results are indexed like suits.
func (a *Analyzer) searchSuits(ctx context.Context, suits []mahjong.Suit, groups []mahjong.Tiles, eye mahjong.Predicate, exact bool) ([][]*Entry, int, error) {
	results := make([][]*Entry, len(suits))
	nodes := make([]int, len(suits))
	spawn := func(ctx context.Context, i int) *searcher {
		s := newSearcher(ctx, suits[i], groups[i], eye, a.nodeLimit)
		if exact {
			s.moves = structural(s.moves)
		}
		return s
	}

	if !a.parallel || len(suits) < 2 {
		for i := range suits {
			s := spawn(ctx, i)
			entries, err := s.search()
			if err != nil {
				return nil, 0, err
			}
			results[i], nodes[i] = entries, s.nodes
		}
		return results, sum(nodes), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range suits {
		i := i
		g.Go(func() error {
			s := spawn(gctx, i)
			entries, err := s.search()
			if err != nil {
				return err
			}
			results[i], nodes[i] = entries, s.nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return results, sum(nodes), nil
}

// combine folds the per-suit entry sets by pairwise Join.
func combine(results [][]*Entry) []*Entry {
	acc := []*Entry{{}}
	for _, entries := range results {
		next := make([]*Entry, 0, len(acc)*len(entries))
		for _, a := range acc {
			for _, b := range entries {
				next = append(next, a.Join(b))
			}
		}
		acc = dedup(next)
	}
	return acc
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
