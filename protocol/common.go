package protocol

type StringResponse struct {
	Code int    `json:"code"` //状态码
	Data string `json:"data"` //字符串数据
}

var SuccessResponse = StringResponse{0, "success"}

type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type Version struct {
	Version int      `json:"version"`
	Rules   []string `json:"rules"` //支持的规则
}
