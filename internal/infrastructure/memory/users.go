package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// UserStore implementación en memoria de repository.UserStore para el stub.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*repository.StubUser
	byEmail map[string]string // email normalizado -> id
}

// NewUserStore construye el store vacío.
func NewUserStore() *UserStore {
	return &UserStore{byID: map[string]*repository.StubUser{}, byEmail: map[string]string{}}
}

func normEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// Create inserta un usuario; ErrDuplicate si el email ya existe.
func (s *UserStore) Create(u *repository.StubUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normEmail(u.Email)
	if _, ok := s.byEmail[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	s.byID[u.ID] = &cp
	s.byEmail[key] = u.ID
	return nil
}

// GetByID devuelve una copia del usuario o ErrNotFound.
func (s *UserStore) GetByID(id string) (*repository.StubUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// GetByEmail devuelve una copia del usuario o ErrNotFound.
func (s *UserStore) GetByEmail(email string) (*repository.StubUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[normEmail(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

// Update sustituye el usuario existente.
func (s *UserStore) Update(u *repository.StubUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	s.byID[u.ID] = &cp
	return nil
}

// List devuelve todos los usuarios ordenados por fecha de alta.
func (s *UserStore) List() ([]*repository.StubUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*repository.StubUser, 0, len(s.byID))
	for _, u := range s.byID {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// AdjustCredits aplica el delta de forma atómica. Con saldo insuficiente no
// modifica nada y devuelve ErrInsufficientCredits.
func (s *UserStore) AdjustCredits(id string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	next := u.Credits + delta
	if next < 0 {
		return u.Credits, domain.ErrInsufficientCredits
	}
	u.Credits = next
	return next, nil
}
