package errutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{nil, OK},
		{ErrInvalidTile, effInvalidTile},
		{ErrEmptyHand, effEmptyHand},
		{pkgerrors.Wrap(ErrEmptyHand, "analyze"), effEmptyHand},
		{pkgerrors.Wrapf(ErrInvalidHandSize, "%d tiles", 3), effInvalidHandSize},
		{pkgerrors.WithMessage(ErrSearchLimit, "suit m"), effSearchLimit},
		{fmt.Errorf("query: %w", ErrNotFound), effNotFound},
		{context.DeadlineExceeded, effTimeout},
		{pkgerrors.Wrap(context.Canceled, "analyze"), effTimeout},
		{fmt.Errorf("%w: %w", ErrTimeout, context.DeadlineExceeded), effTimeout},
		{errors.New("boom"), Unknown},
	}

	for _, c := range cases {
		if code := Code(c.err); code != c.code {
			t.Fatalf("expect: %d, got: %d, err: %v", c.code, code, c.err)
		}
	}

	if !errors.Is(ErrEmptyHand, ErrInvalidHandSize) {
		t.Fatal("empty hand should be an invalid hand size")
	}
}
