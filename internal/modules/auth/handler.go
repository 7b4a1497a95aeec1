package auth

import (
	"errors"

	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/forgot-password", h.forgotPassword)
	auth.POST("/reset-password", h.resetPassword)
}

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.Email == "" || dto.Password == "" {
		response.BadRequest(c, "Email and password are required.")
		return
	}

	token, err := h.svc.Login(dto.Email, dto.Password)
	switch {
	case err == nil:
		response.OK(c, gin.H{"token": token})
	case errors.Is(err, errUnknownEmail), errors.Is(err, errWrongPassword):
		response.BadRequest(c, err.Error())
	case errors.Is(err, errInactive):
		response.Forbidden(c, err.Error())
	default:
		h.log.Error("login failed", zap.Error(err))
		response.InternalError(c)
	}
}

type forgotDTO struct {
	Email string `json:"email"`
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var dto forgotDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.Email == "" {
		response.BadRequest(c, "Email is required.")
		return
	}

	if err := h.svc.RequestReset(dto.Email); err != nil {
		h.log.Error("reset request failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	// Identical response whether or not the email exists.
	response.OK(c, gin.H{"message": "If that email is registered, a reset link has been sent."})
}

type resetDTO struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *Handler) resetPassword(c *gin.Context) {
	var dto resetDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.Token == "" || dto.Password == "" {
		response.BadRequest(c, "Token and new password are required.")
		return
	}

	if err := h.svc.ResetPassword(dto.Token, dto.Password); err != nil {
		if errors.Is(err, errBadResetToken) {
			response.BadRequest(c, err.Error())
			return
		}
		h.log.Error("password reset failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Password has been reset successfully."})
}

// HashPassword produces the bcrypt hash stored on admin rows. Exposed for
// seeding and tests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
