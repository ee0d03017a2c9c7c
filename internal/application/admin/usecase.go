package admin

import (
	"context"
	"fmt"

	"github.com/jhoicas/corpcrawl/internal/application/session"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// UseCase operaciones de superadmin. La autorización real la impone el
// backend; el predicado local sólo evita llamadas que van a fallar seguro.
type UseCase struct {
	gw   repository.AdminGateway
	sess *session.Session
}

// NewUseCase construye el caso de uso de administración.
func NewUseCase(gw repository.AdminGateway, sess *session.Session) *UseCase {
	return &UseCase{gw: gw, sess: sess}
}

func (uc *UseCase) guard() error {
	if !uc.sess.Superadmin() {
		return fmt.Errorf("%w: requiere rol superadmin", domain.ErrForbidden)
	}
	return nil
}

// Users lista todos los usuarios.
func (uc *UseCase) Users(ctx context.Context) ([]entity.User, error) {
	if err := uc.guard(); err != nil {
		return nil, err
	}
	return uc.gw.Users(ctx)
}

// SetUserCredits fija el saldo de créditos de un usuario.
func (uc *UseCase) SetUserCredits(ctx context.Context, userID string, credits int) error {
	if err := uc.guard(); err != nil {
		return err
	}
	if credits < 0 {
		return fmt.Errorf("%w: los créditos no pueden ser negativos", domain.ErrInvalidInput)
	}
	return uc.gw.SetUserCredits(ctx, userID, credits)
}

// SetUserStatus activa o desactiva un usuario.
func (uc *UseCase) SetUserStatus(ctx context.Context, userID string, active bool) error {
	if err := uc.guard(); err != nil {
		return err
	}
	return uc.gw.SetUserStatus(ctx, userID, active)
}

// SetUserPlan asigna un plan conocido a un usuario.
func (uc *UseCase) SetUserPlan(ctx context.Context, userID, plan string) error {
	if err := uc.guard(); err != nil {
		return err
	}
	if !entity.ValidPlan(plan) {
		return fmt.Errorf("%w: plan %q desconocido", domain.ErrInvalidInput, plan)
	}
	return uc.gw.SetUserPlan(ctx, userID, plan)
}

// CreatePlan alta de plan.
func (uc *UseCase) CreatePlan(ctx context.Context, p entity.Plan) (*entity.Plan, error) {
	if err := uc.guard(); err != nil {
		return nil, err
	}
	return uc.gw.CreatePlan(ctx, p)
}

// UpdatePlan actualización parcial de plan.
func (uc *UseCase) UpdatePlan(ctx context.Context, id string, patch repository.PlanPatch) (*entity.Plan, error) {
	if err := uc.guard(); err != nil {
		return nil, err
	}
	return uc.gw.UpdatePlan(ctx, id, patch)
}

// DeletePlan borrado de plan.
func (uc *UseCase) DeletePlan(ctx context.Context, id string) error {
	if err := uc.guard(); err != nil {
		return err
	}
	return uc.gw.DeletePlan(ctx, id)
}

// CentralLedger lectura del ledger transversal de empresas.
func (uc *UseCase) CentralLedger(ctx context.Context, limit int) ([]entity.CompanyData, error) {
	if err := uc.guard(); err != nil {
		return nil, err
	}
	return uc.gw.CentralLedger(ctx, limit)
}
