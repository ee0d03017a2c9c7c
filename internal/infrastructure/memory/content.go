package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// ContentStore blogs y FAQs en memoria.
type ContentStore struct {
	mu    sync.RWMutex
	blogs map[string]*entity.Blog // clave: slug
	faqs  map[string]*entity.FAQ  // clave: id
}

// NewContentStore construye el store vacío.
func NewContentStore() *ContentStore {
	return &ContentStore{blogs: map[string]*entity.Blog{}, faqs: map[string]*entity.FAQ{}}
}

// CreateBlog inserta una entrada; ErrDuplicate si el slug ya existe.
func (s *ContentStore) CreateBlog(b *entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[b.Slug]; ok {
		return domain.ErrDuplicate
	}
	cp := *b
	s.blogs[b.Slug] = &cp
	return nil
}

// GetBlog devuelve una copia o ErrNotFound.
func (s *ContentStore) GetBlog(slug string) (*entity.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blogs[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

// ListBlogs lista entradas, más recientes primero.
func (s *ContentStore) ListBlogs(publishedOnly bool) ([]entity.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		if publishedOnly && !b.IsPublished {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpdateBlog sustituye la entrada existente (el slug puede cambiar).
func (s *ContentStore) UpdateBlog(b *entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := ""
	for slug, old := range s.blogs {
		if old.ID == b.ID {
			found = slug
			break
		}
	}
	if found == "" {
		return domain.ErrNotFound
	}
	delete(s.blogs, found)
	cp := *b
	s.blogs[b.Slug] = &cp
	return nil
}

// DeleteBlog elimina por slug.
func (s *ContentStore) DeleteBlog(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[slug]; !ok {
		return domain.ErrNotFound
	}
	delete(s.blogs, slug)
	return nil
}

// CreateFAQ inserta una FAQ.
func (s *ContentStore) CreateFAQ(f *entity.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *f
	s.faqs[f.ID] = &cp
	return nil
}

// GetFAQ devuelve una copia o ErrNotFound.
func (s *ContentStore) GetFAQ(id string) (*entity.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.faqs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

// ListFAQs lista FAQs por orden ascendente.
func (s *ContentStore) ListFAQs(publishedOnly bool) ([]entity.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.FAQ, 0, len(s.faqs))
	for _, f := range s.faqs {
		if publishedOnly && !f.IsPublished {
			continue
		}
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// UpdateFAQ sustituye la FAQ existente.
func (s *ContentStore) UpdateFAQ(f *entity.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.faqs[f.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *f
	s.faqs[f.ID] = &cp
	return nil
}

// DeleteFAQ elimina por id.
func (s *ContentStore) DeleteFAQ(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.faqs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.faqs, id)
	return nil
}

// PlanStore planes de precios en memoria.
type PlanStore struct {
	mu   sync.RWMutex
	byID map[string]*entity.Plan
}

// NewPlanStore construye el store vacío.
func NewPlanStore() *PlanStore {
	return &PlanStore{byID: map[string]*entity.Plan{}}
}

// Create inserta un plan; ErrDuplicate si ya existe uno con el mismo nombre.
func (s *PlanStore) Create(p *entity.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	s.byID[p.ID] = &cp
	return nil
}

// GetByID devuelve una copia o ErrNotFound.
func (s *PlanStore) GetByID(id string) (*entity.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// List lista los planes por precio ascendente.
func (s *PlanStore) List() ([]entity.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Plan, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	return out, nil
}

// Update sustituye el plan existente.
func (s *PlanStore) Update(p *entity.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	s.byID[p.ID] = &cp
	return nil
}

// Delete elimina por id.
func (s *PlanStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
