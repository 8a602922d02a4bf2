package errutil

const (
	OK       = 0
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	effInvalidHandSize
	effEmptyHand
	effInvalidTile
	effTileOverflow
	effSearchLimit
	effUnknownRule
	effIllegalParameter
	effPermissionDenied
	effNotFound
	effDBOperation
	effServerInternal
	effTimeout
)

var errs = map[error]int{
	ErrInvalidHandSize:  effInvalidHandSize,
	ErrEmptyHand:        effEmptyHand,
	ErrInvalidTile:      effInvalidTile,
	ErrTileOverflow:     effTileOverflow,
	ErrSearchLimit:      effSearchLimit,
	ErrUnknownRule:      effUnknownRule,
	ErrIllegalParameter: effIllegalParameter,
	ErrPermissionDenied: effPermissionDenied,
	ErrNotFound:         effNotFound,
	ErrDBOperation:      effDBOperation,
	ErrServerInternal:   effServerInternal,
	ErrTimeout:          effTimeout,
}
