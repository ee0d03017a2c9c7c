package backend

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// ContentService blogs y FAQs del backend de pruebas.
type ContentService struct {
	content repository.ContentStore
}

// NewContentService construye el servicio de contenido del stub.
func NewContentService(content repository.ContentStore) *ContentService {
	return &ContentService{content: content}
}

// Blogs lista entradas publicadas.
func (s *ContentService) Blogs() ([]entity.Blog, error) {
	return s.content.ListBlogs(true)
}

// Blog entrada por slug.
func (s *ContentService) Blog(slug string) (*entity.Blog, error) {
	return s.content.GetBlog(slug)
}

// CreateBlog alta de blog.
func (s *ContentService) CreateBlog(in dto.BlogCreateRequest) (*entity.Blog, error) {
	now := time.Now().UTC()
	b := &entity.Blog{
		ID:          uuid.New().String(),
		Slug:        in.Slug,
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Author:      "Admin",
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.content.CreateBlog(b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBlog actualización parcial por slug.
func (s *ContentService) UpdateBlog(slug string, patch repository.BlogPatch) (*entity.Blog, error) {
	b, err := s.content.GetBlog(slug)
	if err != nil {
		return nil, err
	}
	if patch.Slug != nil {
		b.Slug = *patch.Slug
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Content != nil {
		b.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		b.Excerpt = *patch.Excerpt
	}
	if patch.IsPublished != nil {
		b.IsPublished = *patch.IsPublished
	}
	b.UpdatedAt = time.Now().UTC()
	if err := s.content.UpdateBlog(b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBlog borrado por slug.
func (s *ContentService) DeleteBlog(slug string) error {
	return s.content.DeleteBlog(slug)
}

// FAQs lista FAQs publicadas.
func (s *ContentService) FAQs() ([]entity.FAQ, error) {
	return s.content.ListFAQs(true)
}

// CreateFAQ alta de FAQ.
func (s *ContentService) CreateFAQ(in dto.FAQCreateRequest) (*entity.FAQ, error) {
	now := time.Now().UTC()
	f := &entity.FAQ{
		ID:          uuid.New().String(),
		Question:    in.Question,
		Answer:      in.Answer,
		Category:    in.Category,
		Order:       in.Order,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.content.CreateFAQ(f); err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateFAQ actualización parcial por id.
func (s *ContentService) UpdateFAQ(id string, patch repository.FAQPatch) (*entity.FAQ, error) {
	f, err := s.content.GetFAQ(id)
	if err != nil {
		return nil, err
	}
	if patch.Question != nil {
		f.Question = *patch.Question
	}
	if patch.Answer != nil {
		f.Answer = *patch.Answer
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Order != nil {
		f.Order = *patch.Order
	}
	if patch.IsPublished != nil {
		f.IsPublished = *patch.IsPublished
	}
	f.UpdatedAt = time.Now().UTC()
	if err := s.content.UpdateFAQ(f); err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFAQ borrado por id.
func (s *ContentService) DeleteFAQ(id string) error {
	return s.content.DeleteFAQ(id)
}
