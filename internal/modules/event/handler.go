package event

import (
	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	events := rg.Group("/events")
	events.GET("/featured", h.topFeatured)

	authed := events.Group("", authMW)
	authed.POST("", h.create)
	authed.GET("", h.list)
	authed.GET("/:id", h.getByID)
	authed.PUT("/toggle-featured/:id", h.toggleFeatured)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

type eventDTO struct {
	EventTitle   string `json:"EventTitle"`
	EventURL     string `json:"EventURL"`
	Description  string `json:"Description"`
	EventDate    string `json:"EventDate"`
	EventEndDate string `json:"EventEndDate"`
	Location     string `json:"Location"`
}

// toModel validates the DTO and converts its date strings. A missing required
// field or unparseable date returns a client error message.
func (dto *eventDTO) toModel() (*models.EventModel, string) {
	if dto.EventTitle == "" || dto.EventURL == "" || dto.Description == "" ||
		dto.EventDate == "" || dto.Location == "" {
		return nil, "All event fields are required."
	}

	date, ok := ParseDate(dto.EventDate)
	if !ok {
		return nil, "EventDate is not a valid date."
	}

	ev := &models.EventModel{
		EventTitle:  dto.EventTitle,
		EventURL:    dto.EventURL,
		Description: dto.Description,
		EventDate:   date,
		Location:    dto.Location,
	}
	if dto.EventEndDate != "" {
		end, ok := ParseDate(dto.EventEndDate)
		if !ok {
			return nil, "EventEndDate is not a valid date."
		}
		ev.EventEndDate = &end
	}
	return ev, ""
}

func (h *Handler) create(c *gin.Context) {
	var dto eventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	ev, msg := dto.toModel()
	if msg != "" {
		response.BadRequest(c, msg)
		return
	}

	if err := h.svc.Create(ev); err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.Created(c, gin.H{"message": "Event created successfully.", "event": ev})
}

func (h *Handler) list(c *gin.Context) {
	events, err := h.svc.List()
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.OK(c, events)
}

func (h *Handler) getByID(c *gin.Context) {
	ev, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		workflow.Respond(c, h.log, err, "Event not found.")
		return
	}
	response.OK(c, ev)
}

func (h *Handler) update(c *gin.Context) {
	var dto eventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	ev, msg := dto.toModel()
	if msg != "" {
		response.BadRequest(c, msg)
		return
	}

	updated, err := h.svc.Update(c.Param("id"), ev)
	if err != nil {
		workflow.Respond(c, h.log, err, "Event not found for updating.")
		return
	}
	response.OK(c, gin.H{"message": "Event updated successfully", "event": updated})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		workflow.Respond(c, h.log, err, "Event not found for deletion.")
		return
	}
	response.OK(c, gin.H{"message": "Event deleted successfully."})
}

func (h *Handler) toggleFeatured(c *gin.Context) {
	ev, err := h.svc.ToggleFeatured(c.Param("id"))
	if err != nil {
		workflow.Respond(c, h.log, err, "Event not found for toggling.")
		return
	}
	response.OK(c, gin.H{"message": "Event featured status toggled successfully.", "event": ev})
}

func (h *Handler) topFeatured(c *gin.Context) {
	events, err := h.svc.TopFeatured()
	if err != nil {
		workflow.Respond(c, h.log, err, "")
		return
	}
	response.OK(c, events)
}
