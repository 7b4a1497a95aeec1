package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brightpage/admin-core/internal/database"
	"github.com/brightpage/admin-core/internal/middleware"
	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/jwt"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	store  *imagestore.Store
	token  string
	cat    models.CategoryModel
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.SetSecret("news-test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "news.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := imagestore.New(t.TempDir(), zap.NewNop())

	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(db, store), store, zap.NewNop()).RegisterRoutes(api, middleware.Auth())

	token, err := jwt.Sign("admin-test", time.Minute)
	require.NoError(t, err)

	cat := models.CategoryModel{CatName: "Energy", CatURL: "energy"}
	require.NoError(t, db.Create(&cat).Error)

	return &testEnv{router: r, db: db, store: store, token: token, cat: cat}
}

func articleForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="Image"; filename=%q`, "cover.jpg"))
		header.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func (e *testEnv) post(t *testing.T, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) fields(title, slug string) map[string]string {
	return map[string]string{
		"CatId":                e.cat.ID,
		"NewsTitle":            title,
		"NewsURL":              slug,
		"NewsDescription":      "Full article body.",
		"NewsShortDescription": "Teaser.",
	}
}

func (e *testEnv) createArticle(t *testing.T, title, slug string) models.NewsModel {
	t.Helper()
	body, ct := articleForm(t, e.fields(title, slug), true)
	w := e.post(t, "/api/news", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var article models.NewsModel
	require.NoError(t, e.db.First(&article, "news_url = ?", slug).Error)
	return article
}

func TestCreateArticle(t *testing.T) {
	env := setup(t)
	article := env.createArticle(t, "Grid expansion announced", "grid-expansion")

	assert.Equal(t, env.cat.ID, article.CatID)
	assert.True(t, env.store.Exists(imagestore.PartitionNews, article.Image))
}

func TestCreateRequiresAllFields(t *testing.T) {
	env := setup(t)
	fields := env.fields("Title", "slug")
	delete(fields, "NewsShortDescription")

	body, ct := articleForm(t, fields, true)
	w := env.post(t, "/api/news", body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All news fields are required.")

	entries, _ := os.ReadDir(filepath.Join(env.store.Root(), imagestore.PartitionNews))
	assert.Empty(t, entries, "rejected submission must not leave a staged file")
}

func TestCreateRequiresImage(t *testing.T) {
	env := setup(t)
	body, ct := articleForm(t, env.fields("Title", "slug"), false)
	w := env.post(t, "/api/news", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUnknownCategoryRollsBackUpload(t *testing.T) {
	env := setup(t)
	fields := env.fields("Title", "slug")
	fields["CatId"] = "no-such-category"

	body, ct := articleForm(t, fields, true)
	w := env.post(t, "/api/news", body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category does not exist.")

	entries, _ := os.ReadDir(filepath.Join(env.store.Root(), imagestore.PartitionNews))
	assert.Empty(t, entries)
}

func TestDuplicateTitleIsConflict(t *testing.T) {
	env := setup(t)
	env.createArticle(t, "Grid expansion announced", "grid-expansion")

	body, ct := articleForm(t, env.fields("Grid expansion announced", "other-slug"), true)
	w := env.post(t, "/api/news", body, ct)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "A news article with that news title already exists.")

	var count int64
	require.NoError(t, env.db.Model(&models.NewsModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetBySlugIsPublicAndPreloadsCategory(t *testing.T) {
	env := setup(t)
	env.createArticle(t, "Grid expansion announced", "grid-expansion")

	w := env.get("/api/news/slug/grid-expansion", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grid expansion announced")
	assert.Contains(t, w.Body.String(), "Energy")
}

func TestGetByUnknownSlugIs404(t *testing.T) {
	env := setup(t)
	w := env.get("/api/news/slug/missing", false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "News article not found.")
}

func TestAdminListIsPaginated(t *testing.T) {
	env := setup(t)
	for i := 0; i < 3; i++ {
		env.createArticle(t, fmt.Sprintf("Article %d", i), fmt.Sprintf("article-%d", i))
	}

	w := env.get("/api/news?page=1&size=2", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []models.NewsModel  `json:"data"`
		Pagination response.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.True(t, resp.Pagination.HasNextPage)
}

func TestFrontendNewsIsPublic(t *testing.T) {
	env := setup(t)
	article := env.createArticle(t, "Public read", "public-read")

	w := env.get("/api/frontendnews", false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.get("/api/frontendnews/"+article.ID, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Public read")
}

func TestDeleteArticleRemovesImage(t *testing.T) {
	env := setup(t)
	article := env.createArticle(t, "Doomed", "doomed")

	req := httptest.NewRequest(http.MethodDelete, "/api/news/"+article.ID, nil)
	req.Header.Set("Authorization", "Bearer "+env.token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.store.Exists(imagestore.PartitionNews, article.Image))
}
