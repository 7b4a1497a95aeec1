package testimonial

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

const uploadField = "Image"

type Handler struct {
	db    *gorm.DB
	store *imagestore.Store
	log   *zap.Logger
}

func NewHandler(db *gorm.DB, store *imagestore.Store, log *zap.Logger) *Handler {
	return &Handler{db: db, store: store, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	t := rg.Group("/testimonials", authMW)
	t.POST("", h.create)
	t.GET("", h.list)
	t.GET("/:id", h.getByID)
	t.PUT("/toggle-featured/:id", h.toggleFeatured)
	t.PUT("/:id", h.update)
	t.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	var items []models.TestimonialModel
	if err := h.db.Order("created_at DESC").Find(&items).Error; err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.OK(c, items)
}

func (h *Handler) getByID(c *gin.Context) {
	var item models.TestimonialModel
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Testimonial not found.")
		return
	}
	response.OK(c, item)
}

func (h *Handler) create(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionTestimonial, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}

	fullName := c.PostForm("TFullName")
	designation := c.PostForm("designation")
	body := c.PostForm("testimonial")
	if fullName == "" || designation == "" || body == "" {
		staged.Discard()
		response.BadRequest(c, "All testimonial fields are required.")
		return
	}

	item := models.TestimonialModel{
		FullName:    fullName,
		Designation: designation,
		Testimonial: body,
	}
	if staged != nil {
		item.Image = staged.Name
	}
	if err := workflow.Create(h.db, &item, staged, ""); err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Created(c, gin.H{"message": "Testimonial successfully created.", "testimonial": item})
}

func (h *Handler) update(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionTestimonial, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}

	fullName := c.PostForm("TFullName")
	designation := c.PostForm("designation")
	body := c.PostForm("testimonial")
	if fullName == "" || designation == "" || body == "" {
		staged.Discard()
		response.BadRequest(c, "All testimonial fields are required.")
		return
	}

	var item models.TestimonialModel
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		staged.Discard()
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Testimonial not found for updating.")
		return
	}

	oldImage := item.Image
	item.FullName = fullName
	item.Designation = designation
	item.Testimonial = body
	if staged != nil {
		item.Image = staged.Name
	}

	if err := workflow.Update(h.db, h.store, imagestore.PartitionTestimonial, &item, staged, oldImage, ""); err != nil {
		workflow.Respond(c, h.log, err, "Testimonial not found for updating.")
		return
	}
	response.OK(c, gin.H{"message": "Testimonial updated successfully", "testimonial": item})
}

func (h *Handler) delete(c *gin.Context) {
	var item models.TestimonialModel
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Testimonial not found for deletion.")
		return
	}

	if err := workflow.Delete(h.db, h.store, imagestore.PartitionTestimonial, &item, item.Image); err != nil {
		workflow.Respond(c, h.log, err, "Testimonial not found for deletion.")
		return
	}
	response.OK(c, gin.H{"message": "Testimonial deleted successfully."})
}

func (h *Handler) toggleFeatured(c *gin.Context) {
	var item models.TestimonialModel
	if err := h.db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "Testimonial not found for toggling.")
		return
	}

	// Read-then-write, no guard: concurrent toggles race and last write wins.
	item.Featured = !item.Featured
	if err := h.db.Model(&item).Update("featured", item.Featured).Error; err != nil {
		workflow.Respond(c, h.log, workflow.Translate(err, ""), "")
		return
	}
	response.OK(c, gin.H{"message": "Testimonial featured status toggled successfully.", "testimonial": item})
}
