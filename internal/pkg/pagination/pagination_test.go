package pagination

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestFromContextDefaultsAndClamping(t *testing.T) {
	cases := []struct {
		raw  string
		want Query
	}{
		{"", Query{Page: DefaultPage, Size: DefaultSize}},
		{"page=3&size=5", Query{Page: 3, Size: 5}},
		{"page=0&size=-1", Query{Page: DefaultPage, Size: DefaultSize}},
		{"page=abc&size=xyz", Query{Page: DefaultPage, Size: DefaultSize}},
		{"size=5000", Query{Page: DefaultPage, Size: MaxSize}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FromContext(queryContext(t, tc.raw)), "query %q", tc.raw)
	}
}

type paginateRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestPaginate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pg.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&paginateRow{}))

	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&paginateRow{Name: "row"}).Error)
	}

	var rows []paginateRow
	pag, err := Paginate(db.Model(&paginateRow{}), Query{Page: 2, Size: 10}, &rows)
	require.NoError(t, err)

	assert.Len(t, rows, 10)
	assert.Equal(t, int64(25), pag.Total)
	assert.Equal(t, 2, pag.CurrentPage)
	assert.Equal(t, 3, pag.TotalPage)
	assert.True(t, pag.HasNextPage)

	rows = nil
	pag, err = Paginate(db.Model(&paginateRow{}), Query{Page: 3, Size: 10}, &rows)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.False(t, pag.HasNextPage)
}
