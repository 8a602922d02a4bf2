// Package efficiency computes how far a hand is from completion (shanten)
// and which draws bring it closer (ukeire).
package efficiency

import (
	"context"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/pkg/mahjong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultNodeLimit = 1 << 22

var logger = log.WithField("component", "efficiency")

type (
	Analyzer struct {
		suits     []mahjong.Suit
		nodeLimit int
		parallel  bool
		logger    *log.Entry
	}

	Option func(a *Analyzer)

	Result struct {
		Tiles    mahjong.Tiles
		Distance int
		Steps    map[int]mahjong.Set
		Best     *Entry
		Branches int // full-hand entries after the cross-suit join
		Nodes    int
	}
)

// WithNodeLimit caps the search nodes visited per suit, zero disables the cap.
func WithNodeLimit(limit int) Option {
	return func(a *Analyzer) {
		a.nodeLimit = limit
	}
}

// WithParallel searches the suits concurrently.
func WithParallel(enable bool) Option {
	return func(a *Analyzer) {
		a.parallel = enable
	}
}

func WithLogger(l *log.Entry) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// WithSuits restricts the tile universe.
func WithSuits(suits ...mahjong.Suit) Option {
	return func(a *Analyzer) {
		a.suits = suits
	}
}

// WithRule restricts the tile universe to the rule's suits.
func WithRule(r *mahjong.Rule) Option {
	return WithSuits(r.Suits...)
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		suits:     mahjong.Suits,
		nodeLimit: DefaultNodeLimit,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var std = New()

// Analyze evaluates a 1, 4, 7, 10 or 13 tile hand with the default analyzer.
func Analyze(tiles []mahjong.Tile, eye mahjong.Predicate) (*Result, error) {
	return std.Analyze(context.Background(), tiles, eye)
}

// CheckWin reports whether a 3k+2 hand is complete with the default analyzer.
func CheckWin(tiles []mahjong.Tile, eye mahjong.Predicate) (bool, error) {
	return std.CheckWin(context.Background(), tiles, eye)
}

func (a *Analyzer) Analyze(ctx context.Context, tiles []mahjong.Tile, eye mahjong.Predicate) (*Result, error) {
	n := len(tiles)
	if n == 0 {
		return nil, errutil.ErrEmptyHand
	}
	if n%3 != 1 || n > 13 {
		return nil, errors.Wrapf(errutil.ErrInvalidHandSize, "%d tiles", n)
	}

	res, err := a.run(ctx, tiles, eye, goal{melds: (n - 1) / 3, eyes: 1})
	if err != nil {
		return nil, err
	}

	a.logger.Debugf("analyze %s: distance=%d ukeire=%s branches=%d nodes=%d",
		res.Tiles, res.Distance, res.Ukeire(), res.Branches, res.Nodes)
	return res, nil
}

// CheckWin accepts hands of 2, 5, 8, 11 and 14 tiles.
func (a *Analyzer) CheckWin(ctx context.Context, tiles []mahjong.Tile, eye mahjong.Predicate) (bool, error) {
	n := len(tiles)
	if n == 0 {
		return false, errutil.ErrEmptyHand
	}
	if n%3 != 2 || n > 14 {
		return false, errors.Wrapf(errutil.ErrInvalidHandSize, "%d tiles", n)
	}

	res, err := a.run(ctx, tiles, eye, goal{melds: (n - 2) / 3, eyes: 1, exact: true})
	if err != nil {
		return false, err
	}
	return res.Distance == 0, nil
}

func (a *Analyzer) run(ctx context.Context, tiles []mahjong.Tile, eye mahjong.Predicate, g goal) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if eye == nil {
		eye = mahjong.EyeNone
	}

	hand := mahjong.Tiles(tiles).Clone()
	hand.Sort()
	if err := a.validate(hand); err != nil {
		return nil, err
	}

	suits, groups := bySuit(hand)
	results, nodes, err := a.searchSuits(ctx, suits, groups, eye, g.exact)
	if err != nil {
		return nil, err
	}
	entries := combine(results)

	stats := mahjong.NewStats(hand)
	ev := evaluate(entries, g, stats, a.eyeTiles(eye))

	return &Result{
		Tiles:    hand,
		Distance: ev.distance,
		Steps:    ev.steps,
		Best:     ev.best,
		Branches: len(entries),
		Nodes:    nodes,
	}, nil
}

func (a *Analyzer) validate(hand mahjong.Tiles) error {
	stats := &mahjong.Stats{}
	for _, t := range hand {
		if !t.Valid() || !a.contains(t.Suit()) {
			return errors.Wrapf(errutil.ErrInvalidTile, "tile %d", int(t))
		}
		stats.Add(t, 1)
		if stats.Count(t) > mahjong.Copies {
			return errors.Wrapf(errutil.ErrTileOverflow, "tile %s", t)
		}
	}
	return nil
}

func (a *Analyzer) contains(s mahjong.Suit) bool {
	for _, x := range a.suits {
		if x == s {
			return true
		}
	}
	return false
}

// eyeTiles is every tile of the universe accepted by eye.
func (a *Analyzer) eyeTiles(eye mahjong.Predicate) mahjong.Set {
	var s mahjong.Set
	for _, t := range mahjong.AllTiles(a.suits...) {
		if eye(t) {
			s = s.Add(t)
		}
	}
	return s
}

// Ukeire is the set of tiles that lower the distance.
func (r *Result) Ukeire() mahjong.Set {
	return r.Steps[r.Distance]
}

// Complete reports whether the analyzed tiles already form a winning shape.
func (r *Result) Complete() bool {
	return r.Distance == 0
}
