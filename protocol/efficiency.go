package protocol

// AnalyzeRequest carries a hand either as a tile list or as one string,
// e.g. {"hand": "123m 456p 789s EEE 1s", "rule": "default"}.
type AnalyzeRequest struct {
	Tiles []string `json:"tiles"`
	Hand  string   `json:"hand"`
	Rule  string   `json:"rule"` //规则名, 为空时使用配置的默认规则
}

type Step struct {
	Distance int      `json:"distance"`
	Tiles    []string `json:"tiles"`
}

type Combination struct {
	Kind  string   `json:"kind"`
	Shape string   `json:"shape"`
	Tiles []string `json:"tiles"`
}

type Decomposition struct {
	Melds         int           `json:"melds"`
	Eyes          int           `json:"eyes"`
	Partials      int           `json:"partials"`
	EyeCandidates int           `json:"eyeCandidates"`
	Combinations  []Combination `json:"combinations"`
	Singles       []string      `json:"singles"`
}

type Analysis struct {
	Uid         string         `json:"uid"`
	Rule        string         `json:"rule"`
	Tiles       []string       `json:"tiles"`
	Distance    int            `json:"distance"` //向听数
	Ukeire      []string       `json:"ukeire"`   //进张
	UkeireCount int            `json:"ukeireCount"`
	Steps       []Step         `json:"steps"`
	Best        *Decomposition `json:"best"`
	Branches    int            `json:"branches"`
}

type AnalyzeResponse struct {
	Code int       `json:"code"`
	Data *Analysis `json:"data"`
}

type Candidate struct {
	Discard  string   `json:"discard"`
	Distance int      `json:"distance"`
	Ukeire   []string `json:"ukeire"`
	Copies   int      `json:"copies"`
}

type Advice struct {
	Uid        string      `json:"uid"`
	Rule       string      `json:"rule"`
	Tiles      []string    `json:"tiles"`
	Candidates []Candidate `json:"candidates"`
}

type AdviseResponse struct {
	Code int     `json:"code"`
	Data *Advice `json:"data"`
}

type WinResult struct {
	Uid   string   `json:"uid"`
	Rule  string   `json:"rule"`
	Tiles []string `json:"tiles"`
	Win   bool     `json:"win"`
}

type WinResponse struct {
	Code int        `json:"code"`
	Data *WinResult `json:"data"`
}
