package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// TokenStore implementación en memoria de repository.TokenStore.
type TokenStore struct {
	mu   sync.RWMutex
	byID map[string]*repository.StubToken
}

// NewTokenStore construye el store vacío.
func NewTokenStore() *TokenStore {
	return &TokenStore{byID: map[string]*repository.StubToken{}}
}

// Create inserta un token.
func (s *TokenStore) Create(t *repository.StubToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.byID[t.ID] = &cp
	return nil
}

// GetByID devuelve una copia o ErrNotFound.
func (s *TokenStore) GetByID(id string) (*repository.StubToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// ListByUser lista los tokens de un usuario por fecha de alta.
func (s *TokenStore) ListByUser(userID string) ([]*repository.StubToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*repository.StubToken, 0)
	for _, t := range s.byID {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Update sustituye el token existente.
func (s *TokenStore) Update(t *repository.StubToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	s.byID[t.ID] = &cp
	return nil
}

// Delete elimina un token por id.
func (s *TokenStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
