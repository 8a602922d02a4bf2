package protocol

type HistoryLite struct {
	Id           int64  `json:"id"`
	Uid          string `json:"uid"`
	Source       string `json:"source"`
	Kind         string `json:"kind"`
	Rule         string `json:"rule"`
	Hand         string `json:"hand"`
	Distance     int    `json:"distance"`
	Ukeire       string `json:"ukeire"`
	Elapsed      int64  `json:"elapsed"`
	CreatedAt    int64  `json:"createdAt"`
	CreatedAtStr string `json:"createdAtStr"`
}

type History struct {
	HistoryLite
	Result string `json:"result"`
}

type HistoryLiteListResponse struct {
	Code  int           `json:"code"`
	Total int64         `json:"total"`
	Data  []HistoryLite `json:"data"`
}

type HistoryByIDResponse struct {
	Code int      `json:"code"`
	Data *History `json:"data"`
}
