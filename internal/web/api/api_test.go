package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/pkg/whitelist"
	"github.com/lonng/mjeff/protocol"
	"github.com/lonng/nex"
	log "github.com/sirupsen/logrus"
)

var svc hint.Service

func serve(t *testing.T, h http.Handler, method, target, body string, v interface{}) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", target, err)
	}
}

func TestAnalyze(t *testing.T) {
	h := MakeEfficiencyService(svc)

	resp := &protocol.AnalyzeResponse{}
	serve(t, h, "POST", "/v1/efficiency/analyze", `{"hand": "123m 456m 789p EEE 1s"}`, resp)
	if resp.Code != 0 || resp.Data == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Data.Distance != 1 || len(resp.Data.Ukeire) != 1 || resp.Data.Ukeire[0] != "1s" {
		t.Fatalf("unexpected analysis: %+v", resp.Data)
	}

	resp = &protocol.AnalyzeResponse{}
	serve(t, h, "GET", "/v1/efficiency/analyze/123m,456m,789p,111s,5s?rule=changsha", "", resp)
	if resp.Data == nil || resp.Data.Rule != "changsha" || resp.Data.Distance != 1 {
		t.Fatalf("unexpected response: %+v", resp.Data)
	}
}

func TestAnalyzeError(t *testing.T) {
	h := MakeEfficiencyService(svc)

	cases := []struct {
		body string
		code int
	}{
		{`{"hand": "123m 4m 5m"}`, errutil.Code(errutil.ErrInvalidHandSize)},
		{`{"hand": "123m", "rule": "riichi"}`, errutil.Code(errutil.ErrUnknownRule)},
		{`{"tiles": ["1m", "1q", "2m", "3m"]}`, errutil.Code(errutil.ErrInvalidTile)},
		{`{}`, errutil.Code(errutil.ErrEmptyHand)},
	}

	for _, c := range cases {
		resp := &protocol.ErrorResponse{}
		serve(t, h, "POST", "/v1/efficiency/analyze", c.body, resp)
		if resp.Code != c.code || resp.Error == "" {
			t.Fatalf("expect: %d, got: %+v, body: %s", c.code, resp, c.body)
		}
	}
}

func TestAdviseWin(t *testing.T) {
	h := MakeEfficiencyService(svc)

	advice := &protocol.AdviseResponse{}
	serve(t, h, "POST", "/v1/efficiency/advise", `{"hand": "123m 456m 789p EEE 1s 9s"}`, advice)
	if advice.Data == nil || len(advice.Data.Candidates) == 0 || advice.Data.Candidates[0].Discard != "1s" {
		t.Fatalf("unexpected advice: %+v", advice.Data)
	}

	win := &protocol.WinResponse{}
	serve(t, h, "POST", "/v1/efficiency/win", `{"hand": "123m 456m 789p EEE 11s"}`, win)
	if win.Data == nil || !win.Data.Win {
		t.Fatalf("unexpected win result: %+v", win.Data)
	}
}

func TestHistory(t *testing.T) {
	h := MakeHistoryService(svc)

	// httptest requests come from 192.0.2.1
	whitelist.ClearIPList()
	resp := &protocol.ErrorResponse{}
	serve(t, h, "GET", "/v1/history/lite", "", resp)
	if resp.Code != errutil.Code(errutil.ErrPermissionDenied) {
		t.Fatalf("expect: %d, got: %+v", errutil.Code(errutil.ErrPermissionDenied), resp)
	}

	whitelist.RegisterIP("192.0.2.1")
	defer whitelist.ClearIPList()

	list := &protocol.HistoryLiteListResponse{}
	serve(t, h, "GET", "/v1/history/lite?rule=default&count=5", "", list)
	if list.Code != 0 || list.Total != 0 {
		t.Fatalf("unexpected list: %+v", list)
	}

	resp = &protocol.ErrorResponse{}
	serve(t, h, "GET", "/v1/history/lite?offset=x", "", resp)
	if resp.Code != errutil.Code(errutil.ErrIllegalParameter) {
		t.Fatalf("expect: %d, got: %+v", errutil.Code(errutil.ErrIllegalParameter), resp)
	}

	resp = &protocol.ErrorResponse{}
	serve(t, h, "GET", "/v1/history/uid/6f1c", "", resp)
	if resp.Code != errutil.Code(errutil.ErrNotFound) {
		t.Fatalf("expect: %d, got: %+v", errutil.Code(errutil.ErrNotFound), resp)
	}

	resp = &protocol.ErrorResponse{}
	serve(t, h, "GET", "/v1/history/42", "", resp)
	if resp.Code != errutil.Code(errutil.ErrNotFound) {
		t.Fatalf("expect: %d, got: %+v", errutil.Code(errutil.ErrNotFound), resp)
	}
}

func TestMain(m *testing.M) {
	nex.SetErrorEncoder(EncodeError)

	var err error
	svc, err = hint.NewService(log.WithField("component", "test"), hint.Config{})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
