package models

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/list?"+query, nil)
	return c
}

func TestParseListQueryDefaults(t *testing.T) {
	c := listContext(t, "")
	q := ParseListQuery(c, map[int]string{0: "name"})

	assert.Equal(t, 0, q.Draw)
	assert.Equal(t, int64(0), q.Start)
	assert.Equal(t, int64(25), q.Length)
	assert.Equal(t, "createdAt", q.OrderBy)
	assert.Equal(t, "desc", q.OrderDir)
	assert.Equal(t, -1, q.SortValue())
}

func TestParseListQueryDataTablesParams(t *testing.T) {
	c := listContext(t, "draw=3&start=50&length=10&search%5Bvalue%5D=lisbon&order%5B0%5D%5Bcolumn%5D=1&order%5B0%5D%5Bdir%5D=asc")
	q := ParseListQuery(c, map[int]string{0: "name", 1: "total"})

	assert.Equal(t, 3, q.Draw)
	assert.Equal(t, int64(50), q.Start)
	assert.Equal(t, int64(10), q.Length)
	assert.Equal(t, "lisbon", q.Search)
	assert.Equal(t, "total", q.OrderBy)
	assert.Equal(t, "asc", q.OrderDir)
	assert.Equal(t, 1, q.SortValue())
}

func TestParseListQueryClampsLength(t *testing.T) {
	c := listContext(t, "length=5000&start=-10")
	q := ParseListQuery(c, nil)

	assert.Equal(t, int64(25), q.Length)
	assert.Equal(t, int64(0), q.Start)
}

func TestParseListQueryUnknownOrderColumn(t *testing.T) {
	c := listContext(t, "order%5B0%5D%5Bcolumn%5D=9&order%5B0%5D%5Bdir%5D=asc")
	q := ParseListQuery(c, map[int]string{0: "name"})

	// Falls back to the default ordering.
	assert.Equal(t, "createdAt", q.OrderBy)
	assert.Equal(t, "desc", q.OrderDir)
}
