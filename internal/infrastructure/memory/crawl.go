package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// CrawlStore implementación en memoria de repository.CrawlStore.
type CrawlStore struct {
	mu   sync.RWMutex
	byID map[string]*entity.CrawlRequest
	seq  map[string]int
	next int
}

// NewCrawlStore construye el store vacío.
func NewCrawlStore() *CrawlStore {
	return &CrawlStore{byID: map[string]*entity.CrawlRequest{}, seq: map[string]int{}}
}

// Create inserta una petición.
func (s *CrawlStore) Create(r *entity.CrawlRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.byID[r.ID] = &cp
	s.next++
	s.seq[r.ID] = s.next
	return nil
}

// GetByID devuelve una copia o ErrNotFound.
func (s *CrawlStore) GetByID(id string) (*entity.CrawlRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

// ListByUser lista las peticiones de un usuario, más recientes primero.
func (s *CrawlStore) ListByUser(userID string, limit int) ([]entity.CrawlRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.CrawlRequest, 0)
	for _, r := range s.byID {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	// Desempate por orden de inserción: timestamps iguales no reordenan.
	sort.Slice(out, func(i, j int) bool { return s.seq[out[i].ID] > s.seq[out[j].ID] })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Update sustituye la petición existente.
func (s *CrawlStore) Update(r *entity.CrawlRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[r.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *r
	s.byID[r.ID] = &cp
	return nil
}

// CompanyStore ledger central de empresas en memoria.
type CompanyStore struct {
	mu   sync.RWMutex
	byID map[string]*entity.CompanyData
}

// NewCompanyStore construye el ledger vacío.
func NewCompanyStore() *CompanyStore {
	return &CompanyStore{byID: map[string]*entity.CompanyData{}}
}

// Upsert inserta o sustituye una empresa.
func (s *CompanyStore) Upsert(c *entity.CompanyData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.byID[c.ID] = &cp
	return nil
}

// List devuelve las empresas por fecha de crawl descendente, acotado.
func (s *CompanyStore) List(limit int) ([]entity.CompanyData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.CompanyData, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastCrawled.After(out[j].LastCrawled) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
