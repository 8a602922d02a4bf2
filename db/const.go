package db

const (
	defaultMaxConns  = 10
	asyncTaskBacklog = 128
	defaultPageSize  = 20
	maxPageSize      = 200
)

// Analysis.Kind
const (
	KindAnalyze = "analyze"
	KindAdvise  = "advise"
	KindWin     = "win"
)
