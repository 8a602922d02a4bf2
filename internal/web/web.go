package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/mjeff/internal/web/api"
	"github.com/lonng/mjeff/pkg/whitelist"
	"github.com/lonng/mjeff/protocol"
	"github.com/lonng/nex"
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const shutdownTimeout = 5 * time.Second

var logger = log.WithField("component", "http")

func enableWhiteList() {
	if err := whitelist.Setup(viper.GetStringSlice("whitelist.ip")); err != nil {
		logger.Fatalf("whitelist: %v", err)
	}
}

func version(svc hint.Service) func() (*protocol.Version, error) {
	return func() (*protocol.Version, error) {
		return &protocol.Version{
			Version: viper.GetInt("update.version"),
			Rules:   svc.Rules(),
		}, nil
	}
}

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.WithField("trace", uuid.New()).Debugf("Method=%s, RemoteAddr=%s URL=%s", r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

func startupService(svc hint.Service) http.Handler {
	mux := http.NewServeMux()

	nex.SetErrorEncoder(api.EncodeError)
	nex.Before(logRequest)
	mux.Handle("/v1/efficiency/", api.MakeEfficiencyService(svc))
	mux.Handle("/v1/history/", api.MakeHistoryService(svc))
	mux.Handle("/v1/version", nex.Handler(version(svc)))
	mux.Handle("/ping", nex.Handler(pongHandler))

	return accessControl(optionControl(mux))
}

// Startup serves the http api until SIGINT/SIGTERM.
func Startup(svc hint.Service) {
	enableWhiteList()

	var (
		addr      = viper.GetString("webserver.addr")
		cert      = viper.GetString("webserver.certificates.cert")
		key       = viper.GetString("webserver.certificates.key")
		enableSSL = viper.GetBool("webserver.enable_ssl")
	)

	server := &http.Server{Addr: addr, Handler: startupService(svc)}

	logger.Infof("Web service addr: %s(enable ssl: %v)", addr, enableSSL)
	go func() {
		var err error
		if enableSSL {
			err = server.ListenAndServeTLS(cert, key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal(err)
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	s := <-sg
	logger.Infof("got signal: %s", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
