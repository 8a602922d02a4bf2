package efficiency

import (
	"context"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/pkg/mahjong"
	"github.com/pkg/errors"
)

const ctxCheckMask = 1<<10 - 1

// searcher enumerates the decompositions of one suit.
type searcher struct {
	ctx   context.Context
	state state
	moves [][]move
	ranks int
	limit int
	nodes int

	seen    map[fingerprint]struct{}
	entries []*Entry
}

func newSearcher(ctx context.Context, suit mahjong.Suit, tiles mahjong.Tiles, eye mahjong.Predicate, limit int) *searcher {
	s := &searcher{
		ctx:   ctx,
		moves: movesFor(suit, eye),
		ranks: suit.Ranks(),
		limit: limit,
		seen:  map[fingerprint]struct{}{},
	}
	s.state.suit = suit
	for _, t := range tiles {
		s.state.counts[t.Rank()]++
	}
	return s
}

// search returns the deduplicated non-empty entries, or a single empty entry
// holding every tile as a single.
func (s *searcher) search() ([]*Entry, error) {
	if err := s.walk(1, 0); err != nil {
		return nil, err
	}
	if len(s.entries) == 0 {
		s.entries = append(s.entries, &Entry{Singles: s.singles()})
	}
	return s.entries, nil
}

func (s *searcher) walk(pos, from int) error {
	s.nodes++
	if s.limit > 0 && s.nodes > s.limit {
		return errors.Wrapf(errutil.ErrSearchLimit, "suit %s: more than %d nodes", s.state.suit, s.limit)
	}
	if s.nodes&ctxCheckMask == 1 {
		if err := s.ctx.Err(); err != nil {
			return err
		}
	}

	r := pos
	for r <= s.ranks && s.state.counts[r] == 0 {
		r++
	}
	if r > s.ranks {
		s.collect()
		return nil
	}
	if r != pos {
		from = 0
	}

	moves := s.moves[r]
	for i := from; i < len(moves); i++ {
		m := &moves[i]
		if !s.state.available(m) {
			continue
		}
		s.state.apply(m)
		err := s.walk(r, i)
		s.state.revoke(m)
		if err != nil {
			return err
		}
	}

	// remaining copies of r stay single
	return s.walk(r+1, 0)
}

func (s *searcher) collect() {
	if s.state.key.Zero() {
		return
	}

	e := &Entry{Key: s.state.key}
	for r := 1; r <= s.ranks; r++ {
		t := mahjong.MustTile(s.state.suit, r)
		e.Useful.Add(t, s.state.useful[r])
		e.EyeTiles.Add(t, s.state.eye[r])
	}

	fp := e.fingerprint()
	if _, ok := s.seen[fp]; ok {
		return
	}
	s.seen[fp] = struct{}{}

	e.Combinations = make([]Combination, len(s.state.stack))
	for i, m := range s.state.stack {
		e.Combinations[i] = s.state.combination(m)
	}
	e.Singles = s.singles()
	s.entries = append(s.entries, e)
}

func (s *searcher) singles() mahjong.Tiles {
	var res mahjong.Tiles
	for r := 1; r <= s.ranks; r++ {
		for i := 0; i < s.state.counts[r]; i++ {
			res = append(res, mahjong.MustTile(s.state.suit, r))
		}
	}
	return res
}
