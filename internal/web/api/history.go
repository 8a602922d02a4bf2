package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/lonng/mjeff/db"
	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/protocol"
	"github.com/lonng/nex"
)

type historyService struct {
	svc hint.Service
}

func MakeHistoryService(svc hint.Service) http.Handler {
	s := &historyService{svc: svc}
	router := mux.NewRouter()
	router.Handle("/v1/history/lite", nex.Handler(s.historyList).Before(whitelistFilter)).Methods("GET") //获取历史列表(lite), 参数: rule, kind, begin, end, offset, count
	router.Handle("/v1/history/uid/{uid}", nex.Handler(s.historyByUID).Before(whitelistFilter)).Methods("GET") //按uid获取历史记录
	router.Handle("/v1/history/{id}", nex.Handler(s.historyByID).Before(whitelistFilter)).Methods("GET") //获取历史记录
	return router
}

func int64Query(r *http.Request, key string) (int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errutil.ErrIllegalParameter
	}
	return n, nil
}

func (s *historyService) historyList(r *http.Request) (*protocol.HistoryLiteListResponse, error) {
	f := db.Filter{
		Rule: r.URL.Query().Get("rule"),
		Kind: r.URL.Query().Get("kind"),
	}

	var err error
	if f.Begin, err = int64Query(r, "begin"); err != nil {
		return nil, err
	}
	if f.End, err = int64Query(r, "end"); err != nil {
		return nil, err
	}
	offset, err := int64Query(r, "offset")
	if err != nil {
		return nil, err
	}
	count, err := int64Query(r, "count")
	if err != nil {
		return nil, err
	}
	f.Offset, f.Count = int(offset), int(count)

	list, total, err := s.svc.HistoryLiteList(f)
	if err != nil {
		return nil, err
	}
	return &protocol.HistoryLiteListResponse{Data: list, Total: total}, nil
}

func (s *historyService) historyByID(r *http.Request) (*protocol.HistoryByIDResponse, error) {
	idStr, ok := mux.Vars(r)["id"]
	if !ok || idStr == "" {
		return nil, errutil.ErrIllegalParameter
	}

	id, err := strconv.ParseInt(idStr, 10, 0)
	if err != nil {
		return nil, errutil.ErrIllegalParameter
	}

	h, err := s.svc.HistoryByID(id)
	if err != nil {
		return nil, err
	}
	return &protocol.HistoryByIDResponse{Data: h}, nil
}

func (s *historyService) historyByUID(r *http.Request) (*protocol.HistoryByIDResponse, error) {
	uid, ok := mux.Vars(r)["uid"]
	if !ok || uid == "" {
		return nil, errutil.ErrIllegalParameter
	}
	h, err := s.svc.HistoryByUID(uid)
	if err != nil {
		return nil, err
	}
	return &protocol.HistoryByIDResponse{Data: h}, nil
}
