package errutil

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrInvalidHandSize  = errors.New("invalid hand size")
	ErrEmptyHand        = pkgerrors.WithMessage(ErrInvalidHandSize, "empty hand")
	ErrInvalidTile      = errors.New("invalid tile")
	ErrTileOverflow     = errors.New("too many copies of a tile")
	ErrSearchLimit      = errors.New("decomposition search limit exceeded")
	ErrUnknownRule      = errors.New("unknown rule")
	ErrIllegalParameter = errors.New("illegal parameter")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrDBOperation      = errors.New("database opertaion failed")
	ErrServerInternal   = errors.New("server internal error")
	ErrTimeout          = errors.New("request timeout")
)

//Code code for the error
func Code(err error) int {
	if err == nil {
		return OK
	}
	if c, ok := errs[err]; ok {
		return c
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs[ErrTimeout]
	}
	// ErrEmptyHand wraps ErrInvalidHandSize, match it first
	if errors.Is(err, ErrEmptyHand) {
		return errs[ErrEmptyHand]
	}
	if c, ok := errs[pkgerrors.Cause(err)]; ok {
		return c
	}
	for e, c := range errs {
		if errors.Is(err, e) {
			return c
		}
	}
	return Unknown
}
