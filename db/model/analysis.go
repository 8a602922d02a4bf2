package model

// Analysis is one recorded efficiency query.
type Analysis struct {
	Id        int64
	Uid       string `xorm:"not null unique VARCHAR(36) default"`
	Source    string `xorm:"not null VARCHAR(16) default"` // http, nano, cli
	Kind      string `xorm:"not null index VARCHAR(16) default"`
	Rule      string `xorm:"not null index VARCHAR(32) default"`
	Hand      string `xorm:"not null VARCHAR(128) default"`
	Distance  int    `xorm:"not null INT(11) default 0"`
	Ukeire    string `xorm:"not null VARCHAR(255) default"`
	Remote    string `xorm:"not null VARCHAR(64) default"`
	Elapsed   int64  `xorm:"not null BIGINT(20) default 0"` // microseconds
	Result    string `xorm:"not null TEXT default"`        // json payload
	CreatedAt int64  `xorm:"not null index BIGINT(20) default 0"`
}
