package mahjong

import (
	"strings"
	"unicode"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

var suffixes = map[rune]Suit{
	'm': SuitCharacter, '万': SuitCharacter,
	'p': SuitDot, '筒': SuitDot, '饼': SuitDot,
	's': SuitBamboo, '条': SuitBamboo, '索': SuitBamboo,
}

var honors = map[rune]Tile{
	'E': 41, '东': 41,
	'S': 42, '南': 42,
	'W': 43, '西': 43,
	'N': 44, '北': 44,
	'C': 51, '中': 51,
	'F': 52, '发': 52, '發': 52,
	'P': 53, '白': 53,
}

// Parse reads a hand written as space or comma separated tiles. Digit groups
// share a suit suffix ("123m 55p"), honors are letters or their Chinese
// names, and "1z".."7z" address the winds then the dragons. Full-width input
// is folded first.
func Parse(s string) (Tiles, error) {
	s = width.Fold.String(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '，' || r == '、'
	})

	tiles := Tiles{}
	for _, f := range fields {
		ts, err := parseToken(f)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, ts...)
	}
	return tiles, nil
}

// ParseTiles parses every string as a separate token list.
func ParseTiles(ss []string) (Tiles, error) {
	tiles := Tiles{}
	for _, s := range ss {
		ts, err := Parse(s)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, ts...)
	}
	return tiles, nil
}

func MustParse(s string) Tiles {
	ts, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func parseToken(token string) (Tiles, error) {
	var (
		tiles   Tiles
		pending []int
	)

	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			pending = append(pending, int(r-'0'))

		case r == 'z':
			if len(pending) == 0 {
				return nil, errors.Wrapf(errutil.ErrInvalidTile, "token %q: suffix without rank", token)
			}
			for _, rank := range pending {
				t, err := honorByNumber(rank)
				if err != nil {
					return nil, errors.WithMessagef(err, "token %q", token)
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]

		default:
			if suit, ok := suffixes[r]; ok {
				if len(pending) == 0 {
					return nil, errors.Wrapf(errutil.ErrInvalidTile, "token %q: suffix without rank", token)
				}
				for _, rank := range pending {
					t, err := NewTile(suit, rank)
					if err != nil {
						return nil, errors.WithMessagef(err, "token %q", token)
					}
					tiles = append(tiles, t)
				}
				pending = pending[:0]
				continue
			}

			t, ok := honors[r]
			if !ok || len(pending) > 0 {
				return nil, errors.Wrapf(errutil.ErrInvalidTile, "token %q: unexpected %q", token, r)
			}
			tiles = append(tiles, t)
		}
	}

	if len(pending) > 0 {
		return nil, errors.Wrapf(errutil.ErrInvalidTile, "token %q: missing suit", token)
	}
	return tiles, nil
}

func honorByNumber(n int) (Tile, error) {
	switch {
	case n >= 1 && n <= 4:
		return NewTile(SuitWind, n)
	case n >= 5 && n <= 7:
		return NewTile(SuitDragon, n-4)
	}
	return 0, errors.Wrapf(errutil.ErrInvalidTile, "honor %dz", n)
}
