package game

import (
	"context"

	"github.com/lonng/mjeff/internal/async"
	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/protocol"
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/session"
)

// Efficiency answers hint requests over the realtime connection. The search
// runs off the nano logic goroutine and the reply is matched by message id.
type Efficiency struct {
	component.Base
	svc hint.Service
}

func newEfficiency(svc hint.Service) *Efficiency {
	return &Efficiency{svc: svc}
}

func errorResponse(err error) *protocol.ErrorResponse {
	return &protocol.ErrorResponse{
		Code:  errutil.Code(err),
		Error: err.Error(),
	}
}

func meta(s *session.Session) hint.Meta {
	m := hint.Meta{Source: "nano"}
	if addr := s.RemoteAddr(); addr != nil {
		m.Remote = addr.String()
	}
	return m
}

func (e *Efficiency) Analyze(s *session.Session, req *protocol.AnalyzeRequest) error {
	mid := s.LastMid()
	async.Run(func() {
		data, err := e.svc.Analyze(context.Background(), req, meta(s))
		if err != nil {
			logger.Debugf("analyze: %v", err)
			s.ResponseMID(mid, errorResponse(err))
			return
		}
		s.ResponseMID(mid, &protocol.AnalyzeResponse{Data: data})
	})
	return nil
}

func (e *Efficiency) Advise(s *session.Session, req *protocol.AnalyzeRequest) error {
	mid := s.LastMid()
	async.Run(func() {
		data, err := e.svc.Advise(context.Background(), req, meta(s))
		if err != nil {
			logger.Debugf("advise: %v", err)
			s.ResponseMID(mid, errorResponse(err))
			return
		}
		s.ResponseMID(mid, &protocol.AdviseResponse{Data: data})
	})
	return nil
}

func (e *Efficiency) Win(s *session.Session, req *protocol.AnalyzeRequest) error {
	mid := s.LastMid()
	async.Run(func() {
		data, err := e.svc.CheckWin(context.Background(), req, meta(s))
		if err != nil {
			s.ResponseMID(mid, errorResponse(err))
			return
		}
		s.ResponseMID(mid, &protocol.WinResponse{Data: data})
	})
	return nil
}

// Rules lists the supported rule names.
func (e *Efficiency) Rules(s *session.Session, _ []byte) error {
	return s.Response(&protocol.Version{Rules: e.svc.Rules()})
}
