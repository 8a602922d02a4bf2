package api

import (
	"context"
	"net/http"

	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/pkg/whitelist"
	"github.com/lonng/mjeff/protocol"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "api")

// EncodeError renders every failed request as {"code": n, "error": "..."}.
func EncodeError(err error) interface{} {
	code := errutil.Code(err)
	if code == errutil.Unknown {
		logger.Warnf("unclassified error: %v", err)
	}
	return &protocol.ErrorResponse{Code: code, Error: err.Error()}
}

func whitelistFilter(ctx context.Context, r *http.Request) (context.Context, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		return ctx, errutil.ErrPermissionDenied
	}
	return ctx, nil
}
