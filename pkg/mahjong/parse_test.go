package mahjong

import (
	"errors"
	"testing"

	"github.com/lonng/mjeff/pkg/errutil"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input  string
		result string
	}{
		{"1m 5p 9s E S W N C F P", "1m 5p 9s E S W N C F P"},
		{"123m 55p", "1m 2m 3m 5p 5p"},
		{"1m,1m,1m", "1m 1m 1m"},
		{"1万 5筒 9条 东 南 西 北 中 发 白", "1m 5p 9s E S W N C F P"},
		{"1234567z", "E S W N C F P"},
		{"１２３ｍ　Ｅ", "1m 2m 3m E"},
		{"11m4m5m7m E", "1m 1m 4m 5m 7m E"},
		{"", ""},
	}

	for _, c := range cases {
		ts, err := Parse(c.input)
		if err != nil {
			t.Fatalf("input: %q, err: %v", c.input, err)
		}
		if ts.String() != c.result {
			t.Fatalf("expect: %s, got: %s", c.result, ts)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"m", "10m", "12", "8z", "1x", "1E", "0p", "5E"} {
		_, err := Parse(input)
		if !errors.Is(err, errutil.ErrInvalidTile) {
			t.Fatalf("input: %q, expect: %v, got: %v", input, errutil.ErrInvalidTile, err)
		}
	}
}

func TestParseTiles(t *testing.T) {
	ts, err := ParseTiles([]string{"1m", "2m 3m", "中"})
	if err != nil {
		t.Fatal(err)
	}
	if ts.String() != "1m 2m 3m C" {
		t.Fatalf("expect: 1m 2m 3m C, got: %s", ts)
	}
}

func TestRule(t *testing.T) {
	r, err := RuleByName("")
	if err != nil || r.Name != "default" {
		t.Fatalf("expect default rule, got: %v, %v", r, err)
	}
	if r.Universe().Len() != 34 {
		t.Fatalf("expect: 34, got: %d", r.Universe().Len())
	}

	cs, err := RuleByName("ChangSha")
	if err != nil {
		t.Fatal(err)
	}
	if cs.Universe().Len() != 27 || cs.Contains(41) {
		t.Fatalf("unexpected changsha universe: %s", cs.Universe())
	}
	for _, tile := range AllTiles(Suits...) {
		want := tile.Suit().Sequence() && (tile.Rank() == 2 || tile.Rank() == 5 || tile.Rank() == 8)
		if cs.Eye(tile) != want {
			t.Fatalf("tile: %s, expect: %v, got: %v", tile, want, cs.Eye(tile))
		}
	}

	if _, err := RuleByName("riichi"); !errors.Is(err, errutil.ErrUnknownRule) {
		t.Fatalf("expect: %v, got: %v", errutil.ErrUnknownRule, err)
	}

	if got := RuleNames(); len(got) != 2 || got[0] != "changsha" {
		t.Fatalf("unexpected rule names: %v", got)
	}
}
