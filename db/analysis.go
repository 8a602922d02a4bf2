package db

import (
	"github.com/lonng/mjeff/db/model"
	"github.com/lonng/mjeff/pkg/errutil"
	"github.com/pkg/errors"
)

// Filter selects recorded analyses, zero fields match everything.
type Filter struct {
	Rule   string
	Kind   string
	Begin  int64
	End    int64
	Offset int
	Count  int
}

func (f *Filter) condition() Condition {
	var conds []Condition
	if f.Rule != "" {
		conds = append(conds, EqCondition("rule", f.Rule))
	}
	if f.Kind != "" {
		conds = append(conds, EqCondition("kind", f.Kind))
	}
	if f.End > 0 {
		conds = append(conds, RangeCondition("created_at", f.Begin, f.End))
	}
	return Combined(conds...)
}

func InsertAnalysis(a *model.Analysis) error {
	if a == nil {
		return errutil.ErrIllegalParameter
	}
	if !Enabled() {
		return errutil.ErrDBOperation
	}
	if _, err := database.Insert(a); err != nil {
		logger.Error(err)
		return errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	return nil
}

// RecordAnalysis queues a for the async writer, it is dropped when the
// database is not started.
func RecordAnalysis(a *model.Analysis) {
	lock.RLock()
	defer lock.RUnlock()

	if chWrite == nil || a == nil {
		return
	}
	chWrite <- a
}

func QueryAnalysis(id int64) (*model.Analysis, error) {
	if !Enabled() {
		return nil, errutil.ErrNotFound
	}
	a := &model.Analysis{Id: id}
	has, err := database.Get(a)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrNotFound
	}
	return a, nil
}

func QueryAnalysisByUID(uid string) (*model.Analysis, error) {
	if !Enabled() {
		return nil, errutil.ErrNotFound
	}
	a := &model.Analysis{Uid: uid}
	has, err := database.Get(a)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrNotFound
	}
	return a, nil
}

// QueryAnalyses returns one page of records, newest first, and the total
// number of matching records.
func QueryAnalyses(f Filter) ([]model.Analysis, int64, error) {
	if !Enabled() {
		return []model.Analysis{}, 0, nil
	}
	offset, count := page(f.Offset, f.Count)
	cond := f.condition()
	if cond.Query == "" {
		cond.Query = "1=1"
	}

	total, err := database.Where(cond.Query, cond.Args...).Count(&model.Analysis{})
	if err != nil {
		logger.Error(err)
		return nil, 0, errutil.ErrDBOperation
	}

	result := make([]model.Analysis, 0)
	if err := database.Where(cond.Query, cond.Args...).Desc("id").Limit(count, offset).Find(&result); err != nil {
		logger.Error(err)
		return nil, 0, errutil.ErrDBOperation
	}
	return result, total, nil
}
