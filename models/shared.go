package models

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListQuery carries DataTables-style pagination parameters as sent by the
// admin tables: draw/start/length plus a global search term and a single
// order clause.
type ListQuery struct {
	Draw     int
	Start    int64
	Length   int64
	Search   string
	OrderBy  string
	OrderDir string
}

// ListResult is the DataTables response envelope.
type ListResult[T any] struct {
	Draw            int   `json:"draw"`
	RecordsTotal    int64 `json:"recordsTotal"`
	RecordsFiltered int64 `json:"recordsFiltered"`
	Data            []T   `json:"data"`
}

// ParseListQuery reads DataTables parameters from the request. columns maps
// the numeric order column index to a sortable field name; indexes outside
// the map fall back to createdAt descending.
func ParseListQuery(c *gin.Context, columns map[int]string) ListQuery {
	q := ListQuery{
		Draw:     atoiDefault(c.Query("draw"), 0),
		Start:    int64(atoiDefault(c.Query("start"), 0)),
		Length:   int64(atoiDefault(c.Query("length"), 25)),
		Search:   c.Query("search[value]"),
		OrderBy:  "createdAt",
		OrderDir: "desc",
	}
	if q.Length <= 0 || q.Length > 200 {
		q.Length = 25
	}
	if q.Start < 0 {
		q.Start = 0
	}
	if col, err := strconv.Atoi(c.Query("order[0][column]")); err == nil {
		if field, ok := columns[col]; ok {
			q.OrderBy = field
			if dir := c.Query("order[0][dir]"); dir == "asc" {
				q.OrderDir = "asc"
			}
		}
	}
	return q
}

// SortValue returns the mongo sort direction for the query.
func (q ListQuery) SortValue() int {
	if q.OrderDir == "asc" {
		return 1
	}
	return -1
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
