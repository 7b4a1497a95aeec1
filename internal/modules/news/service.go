package news

import (
	"errors"

	"github.com/brightpage/admin-core/internal/models"
	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/pagination"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/brightpage/admin-core/internal/pkg/upload"
	"github.com/brightpage/admin-core/internal/pkg/workflow"
	"gorm.io/gorm"
)

const conflictMsg = "A news article with that news title already exists."

// ErrUnknownCategory rejects articles pointing at a category that does not exist.
var ErrUnknownCategory = errors.New("Category does not exist.")

// Input is the full set of writable article fields; updates replace all of them.
type Input struct {
	CatID                string
	NewsTitle            string
	NewsURL              string
	NewsDescription      string
	NewsShortDescription string
}

func (in Input) complete() bool {
	return in.CatID != "" && in.NewsTitle != "" && in.NewsURL != "" &&
		in.NewsDescription != "" && in.NewsShortDescription != ""
}

type Service struct {
	db    *gorm.DB
	store *imagestore.Store
}

func NewService(db *gorm.DB, store *imagestore.Store) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) List() ([]models.NewsModel, error) {
	var articles []models.NewsModel
	err := s.db.Preload("Category").Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// ListPaged serves the admin table with offset pagination.
func (s *Service) ListPaged(q pagination.Query) ([]models.NewsModel, response.Pagination, error) {
	tx := s.db.Model(&models.NewsModel{}).Preload("Category").Order("created_at DESC")
	var articles []models.NewsModel
	pag, err := pagination.Paginate(tx, q, &articles)
	return articles, pag, err
}

func (s *Service) GetByID(id string) (*models.NewsModel, error) {
	var article models.NewsModel
	if err := s.db.Preload("Category").First(&article, "id = ?", id).Error; err != nil {
		return nil, workflow.Translate(err, "")
	}
	return &article, nil
}

func (s *Service) GetBySlug(slug string) (*models.NewsModel, error) {
	var article models.NewsModel
	if err := s.db.Preload("Category").First(&article, "news_url = ?", slug).Error; err != nil {
		return nil, workflow.Translate(err, "")
	}
	return &article, nil
}

func (s *Service) Create(in Input, staged *upload.Staged) (*models.NewsModel, error) {
	if err := s.checkCategory(in.CatID); err != nil {
		staged.Discard()
		return nil, err
	}

	article := models.NewsModel{
		CatID:                in.CatID,
		NewsTitle:            in.NewsTitle,
		NewsURL:              in.NewsURL,
		NewsDescription:      in.NewsDescription,
		NewsShortDescription: in.NewsShortDescription,
		Image:                staged.Name,
	}
	if err := workflow.Create(s.db, &article, staged, conflictMsg); err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *Service) Update(id string, in Input, staged *upload.Staged) (*models.NewsModel, error) {
	var article models.NewsModel
	if err := s.db.First(&article, "id = ?", id).Error; err != nil {
		staged.Discard()
		return nil, workflow.Translate(err, "")
	}
	if err := s.checkCategory(in.CatID); err != nil {
		staged.Discard()
		return nil, err
	}

	oldImage := article.Image
	article.CatID = in.CatID
	article.NewsTitle = in.NewsTitle
	article.NewsURL = in.NewsURL
	article.NewsDescription = in.NewsDescription
	article.NewsShortDescription = in.NewsShortDescription
	if staged != nil {
		article.Image = staged.Name
	}

	if err := workflow.Update(s.db, s.store, imagestore.PartitionNews, &article, staged, oldImage, conflictMsg); err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *Service) Delete(id string) error {
	var article models.NewsModel
	if err := s.db.First(&article, "id = ?", id).Error; err != nil {
		return workflow.Translate(err, "")
	}
	return workflow.Delete(s.db, s.store, imagestore.PartitionNews, &article, article.Image)
}

func (s *Service) checkCategory(catID string) error {
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).Where("id = ?", catID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUnknownCategory
	}
	return nil
}
