package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/protocol"
	"github.com/lonng/nex"
)

type efficiencyService struct {
	svc hint.Service
}

func MakeEfficiencyService(svc hint.Service) http.Handler {
	s := &efficiencyService{svc: svc}
	router := mux.NewRouter()
	router.Handle("/v1/efficiency/analyze", nex.Handler(s.analyze)).Methods("POST")          //向听数与进张
	router.Handle("/v1/efficiency/analyze/{hand}", nex.Handler(s.analyzeByPath)).Methods("GET") //同上, 手牌在路径中, 规则在query中
	router.Handle("/v1/efficiency/advise", nex.Handler(s.advise)).Methods("POST")            //出牌建议
	router.Handle("/v1/efficiency/win", nex.Handler(s.win)).Methods("POST")                  //是否胡牌
	return router
}

func meta(r *http.Request) hint.Meta {
	return hint.Meta{Source: "http", Remote: r.RemoteAddr}
}

func (s *efficiencyService) analyze(r *http.Request, req *protocol.AnalyzeRequest) (*protocol.AnalyzeResponse, error) {
	data, err := s.svc.Analyze(r.Context(), req, meta(r))
	if err != nil {
		return nil, err
	}
	return &protocol.AnalyzeResponse{Data: data}, nil
}

func (s *efficiencyService) analyzeByPath(r *http.Request) (*protocol.AnalyzeResponse, error) {
	hand, ok := mux.Vars(r)["hand"]
	if !ok || strings.TrimSpace(hand) == "" {
		return nil, errutil.ErrIllegalParameter
	}

	req := &protocol.AnalyzeRequest{Hand: hand, Rule: r.URL.Query().Get("rule")}
	data, err := s.svc.Analyze(r.Context(), req, meta(r))
	if err != nil {
		return nil, err
	}
	return &protocol.AnalyzeResponse{Data: data}, nil
}

func (s *efficiencyService) advise(r *http.Request, req *protocol.AnalyzeRequest) (*protocol.AdviseResponse, error) {
	data, err := s.svc.Advise(r.Context(), req, meta(r))
	if err != nil {
		return nil, err
	}
	return &protocol.AdviseResponse{Data: data}, nil
}

func (s *efficiencyService) win(r *http.Request, req *protocol.AnalyzeRequest) (*protocol.WinResponse, error) {
	data, err := s.svc.CheckWin(r.Context(), req, meta(r))
	if err != nil {
		return nil, err
	}
	return &protocol.WinResponse{Data: data}, nil
}
