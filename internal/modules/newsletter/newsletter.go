package newsletter

import (
	"strings"

	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/pagination"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

// RegisterRoutes wires newsletter signups. Signup is public behind the
// bot-verification middleware; listing and bulk removal are admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, recaptchaMW gin.HandlerFunc) {
	nl := rg.Group("/newsletter")
	nl.POST("", recaptchaMW, h.subscribe)

	authed := nl.Group("", authMW)
	authed.GET("", h.list)
	authed.DELETE("", h.bulkDelete)
}

type subscribeDTO struct {
	Email          string `json:"Email"`
	RecaptchaToken string `json:"recaptchaToken"`
}

func (h *Handler) subscribe(c *gin.Context) {
	var dto subscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	email := strings.TrimSpace(strings.ToLower(dto.Email))
	if email == "" || !strings.Contains(email, "@") {
		response.BadRequest(c, "A valid email address is required.")
		return
	}

	sub := models.NewsletterModel{Email: email}
	if err := workflow.Translate(h.db.Create(&sub).Error, "This email is already subscribed."); err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Created(c, gin.H{"message": "Subscribed to the newsletter successfully.", "subscriber": sub})
}

func (h *Handler) list(c *gin.Context) {
	tx := h.db.Model(&models.NewsletterModel{}).Order("created_at DESC")
	var subs []models.NewsletterModel
	pag, err := pagination.Paginate(tx, pagination.FromContext(c), &subs)
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Paged(c, subs, pag)
}

type bulkDeleteDTO struct {
	IDs []string `json:"ids"`
}

func (h *Handler) bulkDelete(c *gin.Context) {
	var dto bulkDeleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil || len(dto.IDs) == 0 {
		response.BadRequest(c, "ids is required.")
		return
	}

	result := h.db.Where("id IN ?", dto.IDs).Delete(&models.NewsletterModel{})
	if result.Error != nil {
		workflow.Respond(c, h.log, result.Error, "")
		return
	}
	response.OK(c, gin.H{
		"message": "Newsletter subscribers deleted successfully.",
		"deleted": result.RowsAffected,
	})
}
