package efficiency

import (
	"fmt"

	"github.com/lonng/mjeff/pkg/mahjong"
)

type Kind int

const (
	KindMeld Kind = iota
	KindEye
	KindEyeCandidate
	KindPartial
)

var kindNames = [...]string{
	KindMeld:         "meld",
	KindEye:          "eye",
	KindEyeCandidate: "eyeCandidate",
	KindPartial:      "partial",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// shape is a move relative to the anchor rank t. Offsets are added to t.
type shape struct {
	name     string
	kind     Kind
	consume  []int
	advance  []int
	sequence bool // only in suits that build runs
	eyeOnly  bool // anchor must be accepted by the eye predicate
}

// catalogue order is the enumeration order at one anchor.
var catalogue = []shape{
	{name: "triplet", kind: KindMeld, consume: []int{0, 0, 0}},
	{name: "run", kind: KindMeld, consume: []int{0, 1, 2}, sequence: true},
	{name: "eye", kind: KindEye, consume: []int{0, 0}, eyeOnly: true},
	{name: "eye-candidate", kind: KindEyeCandidate, consume: []int{0}, advance: []int{0}, eyeOnly: true},
	{name: "pair", kind: KindPartial, consume: []int{0, 0}, advance: []int{0}},
	{name: "open-run", kind: KindPartial, consume: []int{0, 1}, advance: []int{-1, 2}, sequence: true},
	{name: "closed-run", kind: KindPartial, consume: []int{0, 2}, advance: []int{1}, sequence: true},
	{name: "double-closed", kind: KindPartial, consume: []int{0, 2, 4}, advance: []int{1, 3}, sequence: true},
	{name: "pair-adjacent", kind: KindPartial, consume: []int{0, 0, 1}, advance: []int{-1, 0, 2}, sequence: true},
	{name: "pair-gap", kind: KindPartial, consume: []int{0, 0, 2}, advance: []int{0, 1}, sequence: true},
	{name: "run-duplicate", kind: KindPartial, consume: []int{0, 1, 1}, advance: []int{-1, 1, 2}, sequence: true},
}

type need struct {
	rank  int
	count int
}

// move is a shape bound to a concrete anchor inside one suit.
type move struct {
	shape   *shape
	anchor  int
	needs   []need
	advance []int
}

// movesFor binds every catalogue shape to every rank of the suit and drops
// the ones that cannot apply there. Advancing ranks outside the suit are omitted.
func movesFor(suit mahjong.Suit, eye mahjong.Predicate) [][]move {
	ranks := suit.Ranks()
	moves := make([][]move, ranks+1)

	for r := 1; r <= ranks; r++ {
		anchor := mahjong.MustTile(suit, r)
	next:
		for i := range catalogue {
			sh := &catalogue[i]
			if sh.sequence && !suit.Sequence() {
				continue
			}
			if sh.eyeOnly && (eye == nil || !eye(anchor)) {
				continue
			}

			m := move{shape: sh, anchor: r}
			for _, off := range sh.consume {
				rank := r + off
				if rank < 1 || rank > ranks {
					continue next
				}
				if n := len(m.needs); n > 0 && m.needs[n-1].rank == rank {
					m.needs[n-1].count++
				} else {
					m.needs = append(m.needs, need{rank: rank, count: 1})
				}
			}
			for _, off := range sh.advance {
				if rank := r + off; rank >= 1 && rank <= ranks {
					m.advance = append(m.advance, rank)
				}
			}
			moves[r] = append(moves[r], m)
		}
	}
	return moves
}

// structural keeps the moves that build melds and eyes, the only ones a
// complete hand is made of.
func structural(moves [][]move) [][]move {
	res := make([][]move, len(moves))
	for r, ms := range moves {
		for _, m := range ms {
			if m.shape.kind == KindMeld || m.shape.kind == KindEye {
				res[r] = append(res[r], m)
			}
		}
	}
	return res
}

// state is the mutable search state of one suit.
type state struct {
	suit   mahjong.Suit
	counts [mahjong.MaxRank + 1]int
	useful [mahjong.MaxRank + 1]int
	eye    [mahjong.MaxRank + 1]int
	key    Key
	stack  []*move
}

func (s *state) available(m *move) bool {
	for _, n := range m.needs {
		if s.counts[n.rank] < n.count {
			return false
		}
	}
	return true
}

func (s *state) apply(m *move) {
	for _, n := range m.needs {
		s.counts[n.rank] -= n.count
		if s.counts[n.rank] < 0 {
			panic(fmt.Sprintf("efficiency: negative count of %s after %s", mahjong.MustTile(s.suit, n.rank), m.shape.name))
		}
	}
	s.key.add(m.shape.kind, 1)
	target := &s.useful
	if m.shape.kind == KindEyeCandidate {
		target = &s.eye
	}
	for _, r := range m.advance {
		target[r]++
	}
	s.stack = append(s.stack, m)
}

func (s *state) revoke(m *move) {
	n := len(s.stack)
	if n == 0 || s.stack[n-1] != m {
		panic(fmt.Sprintf("efficiency: revoke %s out of order", m.shape.name))
	}
	s.stack = s.stack[:n-1]

	target := &s.useful
	if m.shape.kind == KindEyeCandidate {
		target = &s.eye
	}
	for _, r := range m.advance {
		target[r]--
		if target[r] < 0 {
			panic(fmt.Sprintf("efficiency: negative advancing count after revoking %s", m.shape.name))
		}
	}
	s.key.add(m.shape.kind, -1)
	for _, n := range m.needs {
		s.counts[n.rank] += n.count
	}
}

// combination returns the sorted tiles consumed by m.
func (s *state) combination(m *move) Combination {
	c := Combination{Kind: m.shape.kind, Shape: m.shape.name}
	for _, n := range m.needs {
		t := mahjong.MustTile(s.suit, n.rank)
		for i := 0; i < n.count; i++ {
			c.Tiles = append(c.Tiles, t)
		}
	}
	return c
}
