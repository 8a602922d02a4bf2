package db

import (
	"fmt"
	"strings"
)

// BuildDSN builds a mysql data source name
func BuildDSN(host string, port int, username, password, dbname, args string) string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", username, password, host, port, dbname)
	if args != "" {
		dsn += "?" + args
	}
	return dsn
}

// Condition is a WHERE fragment, values are bound through Args and never
// inlined into Query.
type Condition struct {
	Query string
	Args  []interface{}
}

// 给定列, 返回起始时间条件, [begin, end)
func RangeCondition(column string, begin, end int64) Condition {
	return Condition{
		Query: fmt.Sprintf("(`%s` >= ? AND `%s` < ?)", column, column),
		Args:  []interface{}{begin, end},
	}
}

func EqCondition(column string, v interface{}) Condition {
	return Condition{
		Query: fmt.Sprintf("`%s` = ?", column),
		Args:  []interface{}{v},
	}
}

// Combined joins the non-empty conditions with AND.
func Combined(conds ...Condition) Condition {
	var (
		parts []string
		args  []interface{}
	)
	for _, c := range conds {
		if c.Query != "" {
			parts = append(parts, c.Query)
			args = append(args, c.Args...)
		}
	}
	return Condition{Query: strings.Join(parts, " AND "), Args: args}
}

// page normalizes an offset/count pair.
func page(offset, count int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if count <= 0 {
		count = defaultPageSize
	}
	if count > maxPageSize {
		count = maxPageSize
	}
	return offset, count
}
