package news

import (
	"errors"

	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/pagination"
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
	news := rg.Group("/news")
	news.GET("/listnews", h.listPublic)
	news.GET("/slug/:slug", h.getBySlug)

	authed := news.Group("", authMW)
	authed.POST("", h.create)
	authed.GET("", h.listAdmin)
	authed.GET("/:id", h.getByID)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)

	// The public site consumes news through its own prefix.
	front := rg.Group("/frontendnews")
	front.GET("", h.listPublic)
	front.GET("/:id", h.getByID)
}

func (h *Handler) listPublic(c *gin.Context) {
	articles, err := h.svc.List()
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.OK(c, articles)
}

func (h *Handler) listAdmin(c *gin.Context) {
	articles, pag, err := h.svc.ListPaged(pagination.FromContext(c))
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Paged(c, articles, pag)
}

func (h *Handler) getByID(c *gin.Context) {
	article, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		workflow.Respond(c, h.log, err, "News article not found.")
		return
	}
	response.OK(c, article)
}

func (h *Handler) getBySlug(c *gin.Context) {
	article, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		workflow.Respond(c, h.log, err, "News article not found.")
		return
	}
	response.OK(c, article)
}

func (h *Handler) create(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionNews, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}

	in := bindInput(c)
	if !in.complete() || staged == nil {
		staged.Discard()
		response.BadRequest(c, "All news fields are required.")
		return
	}

	article, err := h.svc.Create(in, staged)
	if err != nil {
		h.respondWriteError(c, err, "")
		return
	}
	response.Created(c, gin.H{"message": "News article created successfully.", "news": article})
}

func (h *Handler) update(c *gin.Context) {
	staged, err := upload.Stage(c, h.store, imagestore.PartitionNews, uploadField)
	if err != nil {
		upload.Reject(c, h.log, err)
		return
	}

	in := bindInput(c)
	if !in.complete() {
		staged.Discard()
		response.BadRequest(c, "All news fields are required.")
		return
	}

	article, err := h.svc.Update(c.Param("id"), in, staged)
	if err != nil {
		h.respondWriteError(c, err, "News article not found for updating.")
		return
	}
	response.OK(c, gin.H{"message": "News article updated successfully", "news": article})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		workflow.Respond(c, h.log, err, "News article not found for deletion.")
		return
	}
	response.OK(c, gin.H{"message": "News article deleted successfully."})
}

func (h *Handler) respondWriteError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, ErrUnknownCategory) {
		response.BadRequest(c, err.Error())
		return
	}
	workflow.Respond(c, h.log, err, notFoundMsg)
}

func bindInput(c *gin.Context) Input {
	return Input{
		CatID:                c.PostForm("CatId"),
		NewsTitle:            c.PostForm("NewsTitle"),
		NewsURL:              c.PostForm("NewsURL"),
		NewsDescription:      c.PostForm("NewsDescription"),
		NewsShortDescription: c.PostForm("NewsShortDescription"),
	}
}
