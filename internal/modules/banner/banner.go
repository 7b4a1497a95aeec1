package banner

import (
	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/brightpage/admin-core/internal/pkg/upload"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uploadField = "BannerImage"

type Handler struct {
	db    *gorm.DB
	store *imagestore.Store
	log   *zap.Logger
}

func NewHandler(db *gorm.DB, store *imagestore.Store, log *zap.Logger) *Handler {
	return &Handler{db: db, store: store, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	banners := rg.Group("/banners")
	banners.GET("", h.list)

	authed := banners.Group("", authMW)
	authed.POST("", h.create)
	authed.GET("/:id", h.getByID)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	var banners []models.BannerModel
	if err := h.db.Order("created_at ASC").Find(&banners).Error; err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.OK(c, banners)
}

func (h *Handler) getByID(c *gin.Context) {
	var banner models.BannerModel
	if err := h.db.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Banner not found.")
		return
	}
	response.OK(c, banner)
}

func (h *Handler) create(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionBanners, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}
	if staged == nil {
		response.BadRequest(c, "Banner image is required.")
		return
	}

	banner := models.BannerModel{
		BannerImage: staged.Name,
		BannerTitle: c.PostForm("BannerTitle"),
	}
	if err := workflow.Create(h.db, &banner, staged, ""); err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Created(c, gin.H{"message": "Banner created successfully.", "banner": banner})
}

func (h *Handler) update(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionBanners, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}

	var banner models.BannerModel
	if err := h.db.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
		staged.Discard()
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Banner not found for updating.")
		return
	}

	oldImage := banner.BannerImage
	if staged != nil {
		banner.BannerImage = staged.Name
	}
	// Full-field replace: an omitted title clears the stored one.
	banner.BannerTitle = c.PostForm("BannerTitle")

	if err := workflow.Update(h.db, h.store, imagestore.PartitionBanners, &banner, staged, oldImage, ""); err != nil {
		workflow.Respond(c, h.log, err, "Banner not found for updating.")
		return
	}
	response.OK(c, gin.H{"message": "Banner updated successfully", "banner": banner})
}

func (h *Handler) delete(c *gin.Context) {
	var banner models.BannerModel
	if err := h.db.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Banner not found for deletion.")
		return
	}

	if err := workflow.Delete(h.db, h.store, imagestore.PartitionBanners, &banner, banner.BannerImage); err != nil {
		workflow.Respond(c, h.log, err, "Banner not found for deletion.")
		return
	}
	response.OK(c, gin.H{"message": "Banner deleted successfully."})
}

