package category

import (
	"errors"
	"strings"

	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/brightpage/admin-core/internal/pkg/upload"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadField = "Image"

type Handler struct {
	svc   *Service
	store *imagestore.Store
	log   *zap.Logger
}

func NewHandler(svc *Service, store *imagestore.Store, log *zap.Logger) *Handler {
	return &Handler{svc: svc, store: store, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cats := rg.Group("/category")
	cats.GET("/listkeysector", h.list)

	authed := cats.Group("", authMW)
	authed.POST("", h.create)
	authed.GET("", h.list)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List()
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.OK(c, cats)
}

func (h *Handler) create(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionKeySector, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}

	in, ok := h.bindInput(c)
	if !ok {
		staged.Discard()
		return
	}

	cat, err := h.svc.Create(in, staged)
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Created(c, gin.H{"message": "Category created successfully", "category": cat})
}

func (h *Handler) update(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionKeySector, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}

	in, ok := h.bindInput(c)
	if !ok {
		staged.Discard()
		return
	}

	cat, err := h.svc.Update(c.Param("id"), in, staged)
	if err != nil {
		workflow.Respond(c, h.log, err, "Category not found for updating.")
		return
	}
	response.OK(c, gin.H{"message": "Category updated sucessfully.", "category": cat})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrCategoryInUse) {
			response.Conflict(c, err.Error())
			return
		}
		workflow.Respond(c, h.log, err, "Category not found for deletion.")
		return
	}
	response.OK(c, gin.H{"message": "Category deleted successfully"})
}

// bindInput reads the category fields from either a multipart form (image
// upload variant) or a JSON body. Both shapes exist in the wild.
func (h *Handler) bindInput(c *gin.Context) (Input, bool) {
	var in Input
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in.CatName = c.PostForm("CatName")
		in.CatURL = c.PostForm("CatURL")
	} else if err := c.ShouldBindJSON(&in); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body.")
		return in, false
	}

	if in.CatName == "" || in.CatURL == "" {
		response.BadRequest(c, "Category name and URL are required.")
		return in, false
	}
	return in, true
}
