package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/jwt"
	"github.com/brightpage/admin-core/internal/pkg/mail"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	errUnknownEmail  = errors.New("Invalid Credentials (Email)")
	errWrongPassword = errors.New("Invalid Credentials (Password)")
	errInactive      = errors.New("Your account is not active. Please contact support.")
	errBadResetToken = errors.New("Invalid or expired reset token.")
)

const resetTokenTTL = time.Hour

type Service struct {
	db       *gorm.DB
	mailer   *mail.Sender
	resetURL string
	log      *zap.Logger
}

func NewService(db *gorm.DB, mailer *mail.Sender, resetURL string, log *zap.Logger) *Service {
	return &Service{db: db, mailer: mailer, resetURL: resetURL, log: log}
}

// Login validates admin credentials and returns a signed one-hour token.
func (s *Service) Login(email, password string) (string, error) {
	var admin models.AdminModel
	if err := s.db.First(&admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errUnknownEmail
		}
		return "", err
	}
	if admin.Status != 1 {
		return "", errInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", errWrongPassword
	}
	return jwt.Sign(admin.ID, jwt.TokenTTL)
}

// RequestReset generates a reset token for the admin, stores it with a
// one-hour expiry and emails the reset link. An unknown email is not an
// error: the caller responds identically either way.
func (s *Service) RequestReset(email string) error {
	var admin models.AdminModel
	if err := s.db.First(&admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	expiry := time.Now().Add(resetTokenTTL)

	err := s.db.Model(&admin).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s?token=%s", s.resetURL, token)
	if err := s.mailer.Send(mail.PasswordReset(admin.Email, link)); err != nil {
		// The token is stored; a mail hiccup should not leak account existence.
		s.log.Error("reset mail send failed", zap.Error(err))
	}
	return nil
}

// ResetPassword exchanges a valid reset token for a new password and clears
// the token.
func (s *Service) ResetPassword(token, password string) error {
	if token == "" {
		return errBadResetToken
	}

	var admin models.AdminModel
	err := s.db.First(&admin, "reset_token = ? AND reset_token_expiry > ?", token, time.Now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errBadResetToken
		}
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.db.Model(&admin).Updates(map[string]interface{}{
		"password":           hash,
		"reset_token":        "",
		"reset_token_expiry": nil,
	}).Error
}
