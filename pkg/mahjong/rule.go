package mahjong

import (
	"sort"
	"strings"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/pkg/errors"
)

// Predicate decides whether a tile may serve as the eye (将).
type Predicate func(Tile) bool

// EyeAny accepts every tile.
func EyeAny(Tile) bool { return true }

// EyeNone accepts nothing, a hand judged under it can never complete.
func EyeNone(Tile) bool { return false }

// Eye258 is the 2/5/8 eye restriction of numbered suits.
func Eye258(t Tile) bool {
	if !t.Suit().Sequence() {
		return false
	}
	r := t.Rank()
	return r == 2 || r == 5 || r == 8
}

// EyeOf accepts exactly the listed tiles.
func EyeOf(tiles ...Tile) Predicate {
	s := NewSet(tiles...)
	return s.Contains
}

// Rule fixes the tile universe and the eye predicate of a game variant.
type Rule struct {
	Name  string
	Suits []Suit
	Eye   Predicate
}

var rules = map[string]*Rule{
	"default": {
		Name:  "default",
		Suits: Suits,
		Eye:   EyeAny,
	},
	// 长沙麻将: 只有万筒条, 2/5/8做将
	"changsha": {
		Name:  "changsha",
		Suits: []Suit{SuitCharacter, SuitDot, SuitBamboo},
		Eye:   Eye258,
	},
}

func RuleByName(name string) (*Rule, error) {
	if name == "" {
		name = "default"
	}
	r, ok := rules[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(errutil.ErrUnknownRule, "rule %q", name)
	}
	return r, nil
}

// RuleNames returns every registered rule name, sorted.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Rule) Contains(t Tile) bool {
	if !t.Valid() {
		return false
	}
	for _, s := range r.Suits {
		if s == t.Suit() {
			return true
		}
	}
	return false
}

// Universe is every tile the rule plays with.
func (r *Rule) Universe() Set {
	return NewSet(AllTiles(r.Suits...)...)
}
