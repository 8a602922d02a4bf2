package web

import (
	"net/http"

	"github.com/lonng/mjeff/protocol"
	"github.com/lonng/nex"
)

func accessControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		h.ServeHTTP(w, r)
	})
}

// preflight requests never reach the handlers
func optionControl(h http.Handler) http.Handler {
	success := nex.Handler(func() (protocol.StringResponse, error) {
		return protocol.SuccessResponse, nil
	})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			success.ServeHTTP(w, r)
			return
		}

		h.ServeHTTP(w, r)
	})
}
