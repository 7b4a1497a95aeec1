package cms

import (
	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler manages keyed CMS text blocks. Blocks are only ever updated in
// place; the API has no create path.
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cms := rg.Group("/cms")
	cms.GET("", h.list)
	cms.GET("/:pageName", h.getByPageName)
	cms.PUT("", authMW, h.update)
}

func (h *Handler) list(c *gin.Context) {
	var entries []models.CmsModel
	if err := h.db.Find(&entries).Error; err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.OK(c, entries)
}

func (h *Handler) getByPageName(c *gin.Context) {
	var entry models.CmsModel
	if err := h.db.First(&entry, "page_name = ?", c.Param("pageName")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "CMS entry not found for that page name.")
		return
	}
	response.OK(c, entry)
}

type updateDTO struct {
	PageName string `json:"CmsPageName"`
	Text     string `json:"CmsText"`
}

func (h *Handler) update(c *gin.Context) {
	var dto updateDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.PageName == "" || dto.Text == "" {
		response.BadRequest(c, "CmsPageName and CmsText are required fields.")
		return
	}

	result := h.db.Model(&models.CmsModel{}).
		Where("page_name = ?", dto.PageName).
		Update("text", dto.Text)
	if result.Error != nil {
		workflow.Respond(c, h.log, result.Error, "")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "CMS entry not found for that page name.")
		return
	}

	var entry models.CmsModel
	if err := h.db.First(&entry, "page_name = ?", dto.PageName).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "")
		return
	}
	response.OK(c, gin.H{"message": "Cms content updated successfully", "cms": entry})
}
