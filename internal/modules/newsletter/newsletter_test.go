package newsletter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brightpage/admin-core/internal/database"
	"github.com/brightpage/admin-core/internal/middleware"
	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/jwt"
	"github.com/brightpage/admin-core/internal/pkg/recaptcha"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.SetSecret("newsletter-test-secret")

	verify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success": true, "score": 0.9}`)
	}))
	t.Cleanup(verify.Close)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "nl.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	recaptchaMW := middleware.VerifyRecaptcha(recaptcha.New("secret", verify.URL), zap.NewNop())

	r := gin.New()
	api := r.Group("/api")
	NewHandler(db, zap.NewNop()).RegisterRoutes(api, middleware.Auth(), recaptchaMW)

	token, err := jwt.Sign("admin-test", time.Minute)
	require.NoError(t, err)
	return r, db, token
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	r, db, _ := setup(t)

	w := do(r, http.MethodPost, "/api/newsletter", `{"Email":"  Reader@Example.COM ","recaptchaToken":"tok"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sub models.NewsletterModel
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, "reader@example.com", sub.Email)
}

func TestDuplicateSubscriptionIsConflict(t *testing.T) {
	r, _, _ := setup(t)
	body := `{"Email":"reader@example.com","recaptchaToken":"tok"}`

	w := do(r, http.MethodPost, "/api/newsletter", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/newsletter", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "This email is already subscribed.")
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	r, _, _ := setup(t)
	w := do(r, http.MethodPost, "/api/newsletter", `{"Email":"not-an-email","recaptchaToken":"tok"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "A valid email address is required.")
}

func TestListRequiresAuth(t *testing.T) {
	r, _, _ := setup(t)
	w := do(r, http.MethodGet, "/api/newsletter", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBulkDelete(t *testing.T) {
	r, db, token := setup(t)
	var ids []string
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		sub := models.NewsletterModel{Email: email}
		require.NoError(t, db.Create(&sub).Error)
		if email != "c@x.com" {
			ids = append(ids, sub.ID)
		}
	}

	payload, err := json.Marshal(gin.H{"ids": ids})
	require.NoError(t, err)
	w := do(r, http.MethodDelete, "/api/newsletter", string(payload), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":2`)

	var count int64
	require.NoError(t, db.Model(&models.NewsletterModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBulkDeleteRequiresIDs(t *testing.T) {
	r, _, token := setup(t)
	w := do(r, http.MethodDelete, "/api/newsletter", `{"ids":[]}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ids is required.")
}
