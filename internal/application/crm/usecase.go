package crm

import (
	"context"

	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// UseCase frontera con el CRM externo. Colaborador fuera del núcleo: sólo se
// especifica en su interfaz; el backend decide quién tiene acceso (plan
// Enterprise o superadmin) y este caso de uso no lo duplica.
type UseCase struct {
	gw repository.CRMGateway
}

// NewUseCase construye el caso de uso de CRM.
func NewUseCase(gw repository.CRMGateway) *UseCase {
	return &UseCase{gw: gw}
}

// Status estado de la conexión CRM.
func (uc *UseCase) Status(ctx context.Context) (*entity.CRMStatus, error) {
	return uc.gw.CRMStatus(ctx)
}

// AuthURL URL de autorización OAuth para iniciar la conexión.
func (uc *UseCase) AuthURL(ctx context.Context) (string, error) {
	return uc.gw.CRMAuthURL(ctx)
}

// Disconnect desconecta la integración.
func (uc *UseCase) Disconnect(ctx context.Context) error {
	return uc.gw.CRMDisconnect(ctx)
}

// SyncCompanies sincroniza un lote de empresas; devuelve contadores de éxito y fallo.
func (uc *UseCase) SyncCompanies(ctx context.Context, companies []entity.CompanyData) (*entity.SyncResult, error) {
	return uc.gw.CRMSyncCompanies(ctx, companies)
}
