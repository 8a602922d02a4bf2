package db

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lonng/mjeff/db/model"
	"github.com/lonng/mjeff/pkg/errutil"
)

func TestBuildDSN(t *testing.T) {
	cases := []struct {
		args   string
		result string
	}{
		{"", "root:pwd@tcp(127.0.0.1:3306)/mjeff"},
		{"charset=utf8mb4", "root:pwd@tcp(127.0.0.1:3306)/mjeff?charset=utf8mb4"},
	}

	for _, c := range cases {
		if r := BuildDSN("127.0.0.1", 3306, "root", "pwd", "mjeff", c.args); r != c.result {
			t.Fatalf("expect: %s, got: %s", c.result, r)
		}
	}
}

func TestFilterCondition(t *testing.T) {
	injection := `\' OR 1=1 -- `
	cases := []struct {
		filter Filter
		query  string
		args   []interface{}
	}{
		{Filter{}, "", nil},
		{Filter{Rule: "changsha"}, "`rule` = ?", []interface{}{"changsha"}},
		{Filter{Rule: injection, Kind: KindAdvise}, "`rule` = ? AND `kind` = ?", []interface{}{injection, KindAdvise}},
		{Filter{Begin: 10, End: 20}, "(`created_at` >= ? AND `created_at` < ?)", []interface{}{int64(10), int64(20)}},
	}

	for _, c := range cases {
		cond := c.filter.condition()
		if cond.Query != c.query || !reflect.DeepEqual(cond.Args, c.args) {
			t.Fatalf("expect: %s %v, got: %s %v", c.query, c.args, cond.Query, cond.Args)
		}
		// user values only travel as bound arguments
		if c.filter.Rule != "" && strings.Contains(cond.Query, c.filter.Rule) {
			t.Fatalf("value inlined into query: %s", cond.Query)
		}
	}
}

func TestPage(t *testing.T) {
	cases := []struct {
		offset, count int
		o, c          int
	}{
		{0, 0, 0, defaultPageSize},
		{-5, 10, 0, 10},
		{40, 1000, 40, maxPageSize},
	}

	for _, c := range cases {
		if o, n := page(c.offset, c.count); o != c.o || n != c.c {
			t.Fatalf("expect: %d/%d, got: %d/%d", c.o, c.c, o, n)
		}
	}
}

func TestDisabled(t *testing.T) {
	if Enabled() {
		t.Skip("database started")
	}

	RecordAnalysis(&model.Analysis{Uid: "x"})

	if _, err := QueryAnalysis(1); err != errutil.ErrNotFound {
		t.Fatalf("expect: %v, got: %v", errutil.ErrNotFound, err)
	}
	list, total, err := QueryAnalyses(Filter{})
	if err != nil || total != 0 || len(list) != 0 {
		t.Fatalf("unexpected result: %v %d %v", list, total, err)
	}
	if err := InsertAnalysis(&model.Analysis{}); err != errutil.ErrDBOperation {
		t.Fatalf("expect: %v, got: %v", errutil.ErrDBOperation, err)
	}
}
