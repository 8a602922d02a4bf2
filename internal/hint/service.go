package hint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lonng/mjeff/db"
	"github.com/lonng/mjeff/db/model"
	"github.com/lonng/mjeff/internal/cache"
	"github.com/lonng/mjeff/internal/efficiency"
	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/lonng/mjeff/pkg/mahjong"
	"github.com/lonng/mjeff/protocol"
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

const format = "01-02 15:04:05"

// Meta describes where a request came from.
type Meta struct {
	Source string // http, nano, cli
	Remote string
}

type Service interface {
	Analyze(ctx context.Context, req *protocol.AnalyzeRequest, meta Meta) (*protocol.Analysis, error)
	Advise(ctx context.Context, req *protocol.AnalyzeRequest, meta Meta) (*protocol.Advice, error)
	CheckWin(ctx context.Context, req *protocol.AnalyzeRequest, meta Meta) (*protocol.WinResult, error)

	HistoryByID(id int64) (*protocol.History, error)
	HistoryByUID(uid string) (*protocol.History, error)
	HistoryLiteList(f db.Filter) ([]protocol.HistoryLite, int64, error)

	Rules() []string
}

type Config struct {
	Rule      string        // default rule
	Parallel  bool          // search suits concurrently
	NodeLimit int           // per suit search cap
	Timeout   time.Duration // per request, zero means none
}

type service struct {
	config    Config
	logger    *log.Entry
	analyzers map[string]*efficiency.Analyzer
}

// NewService new a service answering efficiency queries
func NewService(l *log.Entry, c Config) (Service, error) {
	if c.Rule == "" {
		c.Rule = "default"
	}
	if _, err := mahjong.RuleByName(c.Rule); err != nil {
		return nil, err
	}
	if c.NodeLimit == 0 {
		c.NodeLimit = efficiency.DefaultNodeLimit
	}

	s := &service{
		config:    c,
		logger:    l.WithField("service", "hint"),
		analyzers: map[string]*efficiency.Analyzer{},
	}
	for _, name := range mahjong.RuleNames() {
		r, _ := mahjong.RuleByName(name)
		s.analyzers[name] = efficiency.New(
			efficiency.WithRule(r),
			efficiency.WithParallel(c.Parallel),
			efficiency.WithNodeLimit(c.NodeLimit),
			efficiency.WithLogger(s.logger.WithField("rule", name)),
		)
	}
	return s, nil
}

type prepared struct {
	rule     *mahjong.Rule
	analyzer *efficiency.Analyzer
	tiles    mahjong.Tiles
}

func (s *service) prepare(req *protocol.AnalyzeRequest) (*prepared, error) {
	if req == nil {
		return nil, errutil.ErrIllegalParameter
	}

	name := req.Rule
	if name == "" {
		name = s.config.Rule
	}
	rule, err := mahjong.RuleByName(name)
	if err != nil {
		return nil, err
	}

	tiles, err := mahjong.ParseTiles(req.Tiles)
	if err != nil {
		return nil, err
	}
	if req.Hand != "" {
		more, err := mahjong.Parse(req.Hand)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, more...)
	}

	return &prepared{rule: rule, analyzer: s.analyzers[rule.Name], tiles: tiles}, nil
}

// timeout reports search aborts as ErrTimeout, the context error stays
// reachable through errors.Is.
func timeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", errutil.ErrTimeout, err)
	}
	return err
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.config.Timeout > 0 {
		return context.WithTimeout(ctx, s.config.Timeout)
	}
	return context.WithCancel(ctx)
}

func (s *service) Analyze(ctx context.Context, req *protocol.AnalyzeRequest, meta Meta) (*protocol.Analysis, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	began := time.Now()
	key := cache.Key(db.KindAnalyze, p.rule.Name, p.tiles)
	cached := &protocol.Analysis{}
	if s.cached(key, cached) {
		cached.Uid = uuid.New()
		return cached, nil
	}

	res, err := p.analyzer.Analyze(ctx, p.tiles, p.rule.Eye)
	if err != nil {
		return nil, timeout(err)
	}

	ukeire := res.Ukeire()
	data := &protocol.Analysis{
		Uid:         uuid.New(),
		Rule:        p.rule.Name,
		Tiles:       tileStrings(res.Tiles),
		Distance:    res.Distance,
		Ukeire:      tileStrings(ukeire.Tiles()),
		UkeireCount: remaining(ukeire, res.Tiles),
		Steps:       steps(res.Steps),
		Best:        decomposition(res.Best),
		Branches:    res.Branches,
	}

	s.record(db.KindAnalyze, meta, data.Uid, p.rule.Name, res.Tiles, res.Distance, ukeire, began, data)
	s.store(key, data)
	return data, nil
}

func (s *service) Advise(ctx context.Context, req *protocol.AnalyzeRequest, meta Meta) (*protocol.Advice, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	began := time.Now()
	key := cache.Key(db.KindAdvise, p.rule.Name, p.tiles)
	cached := &protocol.Advice{}
	if s.cached(key, cached) {
		cached.Uid = uuid.New()
		return cached, nil
	}

	cs, err := p.analyzer.Advise(ctx, p.tiles, p.rule.Eye)
	if err != nil {
		return nil, timeout(err)
	}

	hand := p.tiles.Clone()
	hand.Sort()
	data := &protocol.Advice{
		Uid:        uuid.New(),
		Rule:       p.rule.Name,
		Tiles:      tileStrings(hand),
		Candidates: make([]protocol.Candidate, len(cs)),
	}
	for i, c := range cs {
		data.Candidates[i] = protocol.Candidate{
			Discard:  c.Discard.String(),
			Distance: c.Distance,
			Ukeire:   tileStrings(c.Ukeire.Tiles()),
			Copies:   c.Copies,
		}
	}

	s.record(db.KindAdvise, meta, data.Uid, p.rule.Name, hand, cs[0].Distance, cs[0].Ukeire, began, data)
	s.store(key, data)
	return data, nil
}

func (s *service) CheckWin(ctx context.Context, req *protocol.AnalyzeRequest, meta Meta) (*protocol.WinResult, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	began := time.Now()
	win, err := p.analyzer.CheckWin(ctx, p.tiles, p.rule.Eye)
	if err != nil {
		return nil, timeout(err)
	}

	hand := p.tiles.Clone()
	hand.Sort()
	data := &protocol.WinResult{
		Uid:   uuid.New(),
		Rule:  p.rule.Name,
		Tiles: tileStrings(hand),
		Win:   win,
	}

	distance := 1
	if win {
		distance = 0
	}
	s.record(db.KindWin, meta, data.Uid, p.rule.Name, hand, distance, 0, began, data)
	return data, nil
}

// cached reports a cache hit, failures are logged and treated as a miss.
func (s *service) cached(key string, v interface{}) bool {
	ok, err := cache.Get(key, v)
	if err != nil {
		s.logger.Warnf("cache get %s: %v", key, err)
		return false
	}
	if ok {
		s.logger.Debugf("cache hit: %s", key)
	}
	return ok
}

func (s *service) store(key string, v interface{}) {
	if err := cache.Set(key, v); err != nil {
		s.logger.Warnf("cache set %s: %v", key, err)
	}
}

func (s *service) Rules() []string {
	return mahjong.RuleNames()
}

func (s *service) record(kind string, meta Meta, uid, rule string, hand mahjong.Tiles, distance int, ukeire mahjong.Set, began time.Time, payload interface{}) {
	elapsed := time.Since(began)
	s.logger.WithField("uid", uid).Debugf("%s %s: rule=%s distance=%d elapsed=%s", kind, hand, rule, distance, elapsed)

	if !db.Enabled() {
		return
	}
	result, err := json.Marshal(payload)
	if err != nil {
		s.logger.Errorf("marshal %s result: %v", kind, err)
		return
	}
	db.RecordAnalysis(&model.Analysis{
		Uid:       uid,
		Source:    meta.Source,
		Kind:      kind,
		Rule:      rule,
		Hand:      hand.String(),
		Distance:  distance,
		Ukeire:    ukeire.String(),
		Remote:    meta.Remote,
		Elapsed:   int64(elapsed / time.Microsecond),
		Result:    string(result),
		CreatedAt: time.Now().Unix(),
	})
}

func (s *service) HistoryByID(id int64) (*protocol.History, error) {
	a, err := db.QueryAnalysis(id)
	if err != nil {
		return nil, err
	}
	return &protocol.History{HistoryLite: historyLite(a), Result: a.Result}, nil
}

func (s *service) HistoryLiteList(f db.Filter) ([]protocol.HistoryLite, int64, error) {
	ps, total, err := db.QueryAnalyses(f)
	if err != nil {
		return nil, 0, err
	}
	list := make([]protocol.HistoryLite, len(ps))
	for i := range ps {
		list[i] = historyLite(&ps[i])
	}
	return list, total, nil
}

// HistoryByUID looks a record up by the uid returned to the client.
func (s *service) HistoryByUID(uid string) (*protocol.History, error) {
	a, err := db.QueryAnalysisByUID(uid)
	if err != nil {
		return nil, err
	}
	return &protocol.History{HistoryLite: historyLite(a), Result: a.Result}, nil
}
