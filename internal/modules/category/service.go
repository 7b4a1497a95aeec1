package category

import (
	"errors"

	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/upload"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"gorm.io/gorm"
)

const conflictMsg = "A category with that name already exists."

type Input struct {
	CatName string `json:"CatName"`
	CatURL  string `json:"CatURL"`
}

type Service struct {
	db    *gorm.DB
	store *imagestore.Store
}

func NewService(db *gorm.DB, store *imagestore.Store) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) List() ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	return cats, s.db.Order("created_at DESC").Find(&cats).Error
}

func (s *Service) GetByID(id string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		return nil, workflow.Translate(err, "")
	}
	return &cat, nil
}

// Create inserts a category; the staged key-sector image (if any) is rolled
// back when the insert fails.
func (s *Service) Create(in Input, staged *upload.Staged) (*models.CategoryModel, error) {
	cat := models.CategoryModel{CatName: in.CatName, CatURL: in.CatURL}
	if staged != nil {
		cat.Image = staged.Name
	}
	if err := workflow.Create(s.db, &cat, staged, conflictMsg); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Update replaces all fields. A newly staged image wins over the stored one;
// the stored file is removed only after the row write is durable.
func (s *Service) Update(id string, in Input, staged *upload.Staged) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil {
		staged.Discard()
		return nil, err
	}

	oldImage := cat.Image
	cat.CatName = in.CatName
	cat.CatURL = in.CatURL
	if staged != nil {
		cat.Image = staged.Name
	}

	if err := workflow.Update(s.db, s.store, imagestore.PartitionKeySector, cat, staged, oldImage, conflictMsg); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) Delete(id string) error {
	cat, err := s.GetByID(id)
	if err != nil {
		return err
	}
	// Articles keep their CatID; deleting a category with attached news is a
	// content decision the dashboard confirms separately.
	var attached int64
	if err := s.db.Model(&models.NewsModel{}).Where("cat_id = ?", id).Count(&attached).Error; err != nil {
		return err
	}
	if attached > 0 {
		return ErrCategoryInUse
	}
	return workflow.Delete(s.db, s.store, imagestore.PartitionKeySector, cat, cat.Image)
}

// ErrCategoryInUse rejects deleting a category that still has news attached.
var ErrCategoryInUse = errors.New("Category has news articles attached and cannot be deleted.")
