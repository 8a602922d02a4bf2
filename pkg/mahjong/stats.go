package mahjong

import (
	"bytes"
	"fmt"
)

// Stats 按Index统计每种牌的数量
type Stats [MaxTileIndex + 1]uint8

func NewStats(tiles ...Tiles) *Stats {
	ms := &Stats{}
	ms.From(tiles...)
	return ms
}

func (ms *Stats) From(tiles ...Tiles) {
	for _, ts := range tiles {
		for _, t := range ts {
			ms.Add(t, 1)
		}
	}
}

func (ms *Stats) Add(t Tile, n int) {
	if t < 0 || int(t) > MaxTileIndex {
		return
	}
	ms[t] += uint8(n)
}

func (ms *Stats) Count(t Tile) int {
	if t < 0 || int(t) > MaxTileIndex {
		return 0
	}
	return int(ms[t])
}

// Merge adds every count of o into ms.
func (ms *Stats) Merge(o *Stats) {
	for i, c := range o {
		ms[i] += c
	}
}

func (ms *Stats) Total() int {
	n := 0
	for _, c := range ms {
		n += int(c)
	}
	return n
}

// Distinct returns the tiles with a non-zero count in tile order.
func (ms *Stats) Distinct() Tiles {
	var res Tiles
	for i, c := range ms {
		if c > 0 {
			res = append(res, Tile(i))
		}
	}
	return res
}

// Set returns the support of the multiset.
func (ms *Stats) Set() Set {
	var s Set
	for i, c := range ms {
		if c > 0 {
			s = s.Add(Tile(i))
		}
	}
	return s
}

func (ms *Stats) String() string {
	buf := &bytes.Buffer{}

	for i, count := range ms {
		if count == 0 {
			continue
		}
		fmt.Fprintf(buf, "%s:%d ", Tile(i), count)
	}

	return buf.String()
}
