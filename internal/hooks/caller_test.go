package hooks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestHook(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.Out = buf
	l.Formatter = &logrus.TextFormatter{DisableColors: true}
	l.AddHook(NewHook())

	l.WithField("component", "test").Info("hello")

	if out := buf.String(); !strings.Contains(out, "hooks/caller_test.go:") {
		t.Fatalf("missing call site: %s", out)
	}
}

func TestTrim(t *testing.T) {
	cases := []struct {
		file   string
		depth  int
		result string
	}{
		{"/a/b/c/d.go", 2, "c/d.go"},
		{"/a/b/c/d.go", 1, "d.go"},
		{"/a/b/c/d.go", 0, "/a/b/c/d.go"},
		{"d.go", 2, "d.go"},
	}

	for _, c := range cases {
		if r := trim(c.file, c.depth); r != c.result {
			t.Fatalf("expect: %s, got: %s", c.result, r)
		}
	}
}
