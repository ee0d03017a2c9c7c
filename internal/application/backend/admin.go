package backend

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// AdminService operaciones de superadmin del backend de pruebas.
type AdminService struct {
	users repository.UserStore
	plans repository.PlanStore
}

// NewAdminService construye el servicio de admin del stub.
func NewAdminService(users repository.UserStore, plans repository.PlanStore) *AdminService {
	return &AdminService{users: users, plans: plans}
}

// Users lista todos los usuarios.
func (s *AdminService) Users() ([]entity.User, error) {
	stubs, err := s.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(stubs))
	for _, u := range stubs {
		out = append(out, u.User)
	}
	return out, nil
}

// SetCredits fija el saldo de un usuario.
func (s *AdminService) SetCredits(userID string, credits int) error {
	if credits < 0 {
		return fmt.Errorf("%w: los créditos no pueden ser negativos", domain.ErrInvalidInput)
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	u.Credits = credits
	return s.users.Update(u)
}

// SetStatus activa o desactiva un usuario.
func (s *AdminService) SetStatus(userID string, active bool) error {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	u.IsActive = active
	return s.users.Update(u)
}

// SetPlan asigna un plan conocido.
func (s *AdminService) SetPlan(userID, plan string) error {
	if !entity.ValidPlan(plan) {
		return fmt.Errorf("%w: plan %q desconocido", domain.ErrInvalidInput, plan)
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	u.CurrentPlan = plan
	return s.users.Update(u)
}

// Plans lista los planes.
func (s *AdminService) Plans() ([]entity.Plan, error) {
	return s.plans.List()
}

// CreatePlan alta de plan; el precio llega en texto decimal.
func (s *AdminService) CreatePlan(in dto.PlanCreateRequest) (*entity.Plan, error) {
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, in.Price)
	}
	p := &entity.Plan{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     price,
		Credits:   in.Credits,
		IsActive:  in.IsActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.plans.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePlan actualización parcial.
func (s *AdminService) UpdatePlan(id string, patch repository.PlanPatch) (*entity.Plan, error) {
	p, err := s.plans.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		price, err := decimal.NewFromString(*patch.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, *patch.Price)
		}
		p.Price = price
	}
	if patch.Credits != nil {
		p.Credits = *patch.Credits
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if err := s.plans.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePlan borrado por id.
func (s *AdminService) DeletePlan(id string) error {
	return s.plans.Delete(id)
}
