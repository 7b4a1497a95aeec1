package contact

import (
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

// RegisterRoutes wires the contact form. Submission is public but sits behind
// the bot-verification middleware; everything else is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, recaptchaMW gin.HandlerFunc) {
	contacts := rg.Group("/contact")
	contacts.POST("", recaptchaMW, h.create)

	authed := contacts.Group("", authMW)
	authed.GET("", h.list)
	authed.GET("/:id", h.getByID)
	authed.DELETE("/:id", h.delete)
}

type createDTO struct {
	FullName       string `json:"FullName"`
	Email          string `json:"Email"`
	Phone          string `json:"Phone"`
	Subject        string `json:"Subject"`
	Message        string `json:"Message"`
	RecaptchaToken string `json:"recaptchaToken"`
}

func (h *Handler) create(c *gin.Context) {
	var dto createDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	if dto.FullName == "" || dto.Email == "" || dto.Message == "" {
		response.BadRequest(c, "Full name, email and message are required.")
		return
	}

	msg := models.ContactModel{
		FullName: dto.FullName,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Subject:  dto.Subject,
		Message:  dto.Message,
	}
	if err := h.db.Create(&msg).Error; err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Created(c, gin.H{"message": "Contact message submitted successfully.", "contact": msg})
}

func (h *Handler) list(c *gin.Context) {
	tx := h.db.Model(&models.ContactModel{}).Order("created_at DESC")
	var messages []models.ContactModel
	pag, err := pagination.Paginate(tx, pagination.FromContext(c), &messages)
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Paged(c, messages, pag)
}

func (h *Handler) getByID(c *gin.Context) {
	var msg models.ContactModel
	if err := h.db.First(&msg, "id = ?", c.Param("id")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Contact message not found.")
		return
	}
	response.OK(c, msg)
}

func (h *Handler) delete(c *gin.Context) {
	var msg models.ContactModel
	if err := h.db.First(&msg, "id = ?", c.Param("id")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Contact message not found for deletion.")
		return
	}
	if err := workflow.Delete(h.db, nil, "", &msg, ""); err != nil {
		workflow.Respond(c, h.log, err, "Contact message not found for deletion.")
		return
	}
	response.OK(c, gin.H{"message": "Contact message deleted successfully."})
}
