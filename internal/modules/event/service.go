package event

import (
	"time"

	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"gorm.io/gorm"
)

const conflictMsg = "An event with that title already exists."

const featuredLimit = 10

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.EventModel, error) {
	var events []models.EventModel
	return events, s.db.Order("created_at DESC").Find(&events).Error
}

func (s *Service) GetByID(id string) (*models.EventModel, error) {
	var ev models.EventModel
	if err := s.db.First(&ev, "id = ?", id).Error; err != nil {
		return nil, workflow.Translate(err, "")
	}
	return &ev, nil
}

func (s *Service) Create(ev *models.EventModel) error {
	ev.Featured = false
	return workflow.Translate(s.db.Create(ev).Error, conflictMsg)
}

// Update replaces every writable field, including clearing EventEndDate when
// the submission omits it.
func (s *Service) Update(id string, in *models.EventModel) (*models.EventModel, error) {
	ev, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ev.EventTitle = in.EventTitle
	ev.EventURL = in.EventURL
	ev.Description = in.Description
	ev.EventDate = in.EventDate
	ev.EventEndDate = in.EventEndDate
	ev.Location = in.Location

	if err := workflow.Update(s.db, nil, "", ev, nil, "", conflictMsg); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *Service) Delete(id string) error {
	ev, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return workflow.Delete(s.db, nil, "", ev, "")
}

// ToggleFeatured flips the featured flag. Read-then-write without a guard:
// concurrent toggles race and last write wins, matching the documented
// behavior of the dashboard.
func (s *Service) ToggleFeatured(id string) (*models.EventModel, error) {
	ev, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	ev.Featured = !ev.Featured
	if err := s.db.Model(ev).Update("featured", ev.Featured).Error; err != nil {
		return nil, workflow.Translate(err, "")
	}
	return ev, nil
}

// TopFeatured returns up to ten featured events; when none are flagged it
// falls back to the ten most recent by event date.
func (s *Service) TopFeatured() ([]models.EventModel, error) {
	var events []models.EventModel
	err := s.db.Where("featured = ?", true).
		Order("created_at DESC").Limit(featuredLimit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		err = s.db.Order("event_date DESC").Limit(featuredLimit).Find(&events).Error
	}
	return events, err
}

// ParseDate accepts the date formats the dashboard sends.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
