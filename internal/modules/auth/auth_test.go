package auth

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
	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/jwt"
	"github.com/brightpage/admin-core/internal/pkg/mail"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.SetSecret("auth-test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	api := r.Group("/api")
	svc := NewService(db, mail.New(mail.Config{}), "https://admin.example.com/reset", zap.NewNop())
	NewHandler(svc, zap.NewNop()).RegisterRoutes(api)
	return r, db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string, status int) models.AdminModel {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	admin := models.AdminModel{Email: email, Password: hash, Status: status}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	r, db := setup(t)
	admin := seedAdmin(t, db, "admin@example.com", "s3cret", 1)

	w := post(r, "/api/auth/login", `{"email":"admin@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := jwt.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := setup(t)
	w := post(r, "/api/auth/login", `{"email":"ghost@example.com","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Credentials (Email)")
}

func TestLoginWrongPassword(t *testing.T) {
	r, db := setup(t)
	seedAdmin(t, db, "admin@example.com", "s3cret", 1)

	w := post(r, "/api/auth/login", `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Credentials (Password)")
}

func TestLoginInactiveAccount(t *testing.T) {
	r, db := setup(t)
	seedAdmin(t, db, "admin@example.com", "s3cret", 0)

	w := post(r, "/api/auth/login", `{"email":"admin@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Your account is not active.")
}

func TestLoginRequiresCredentials(t *testing.T) {
	r, _ := setup(t)
	w := post(r, "/api/auth/login", `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email and password are required.")
}

func TestForgotPasswordDoesNotLeakAccountExistence(t *testing.T) {
	r, db := setup(t)
	seedAdmin(t, db, "admin@example.com", "s3cret", 1)

	known := post(r, "/api/auth/forgot-password", `{"email":"admin@example.com"}`)
	unknown := post(r, "/api/auth/forgot-password", `{"email":"ghost@example.com"}`)

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
}

func TestPasswordResetFlow(t *testing.T) {
	r, db := setup(t)
	seedAdmin(t, db, "admin@example.com", "oldpass", 1)

	w := post(r, "/api/auth/forgot-password", `{"email":"admin@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var admin models.AdminModel
	require.NoError(t, db.First(&admin, "email = ?", "admin@example.com").Error)
	require.NotEmpty(t, admin.ResetToken)
	require.NotNil(t, admin.ResetTokenExpiry)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *admin.ResetTokenExpiry, time.Minute)

	body := fmt.Sprintf(`{"token":%q,"password":"newpass"}`, admin.ResetToken)
	w = post(r, "/api/auth/reset-password", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The token is single-use.
	w = post(r, "/api/auth/reset-password", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/api/auth/login", `{"email":"admin@example.com","password":"newpass"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = post(r, "/api/auth/login", `{"email":"admin@example.com","password":"oldpass"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetWithBogusToken(t *testing.T) {
	r, _ := setup(t)
	w := post(r, "/api/auth/reset-password", `{"token":"bogus","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired reset token.")
}
