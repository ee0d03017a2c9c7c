package tokens

import (
	"context"
	"fmt"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// UseCase gestión de tokens de API. El secreto crudo sólo existe en la
// respuesta de creación; este caso de uso lo entrega y no lo retiene.
type UseCase struct {
	gw repository.TokenGateway
}

// NewUseCase construye el caso de uso de tokens.
func NewUseCase(gw repository.TokenGateway) *UseCase {
	return &UseCase{gw: gw}
}

// List lista los tokens del usuario (sólo token_preview, nunca el secreto).
func (uc *UseCase) List(ctx context.Context) ([]entity.APIToken, error) {
	return uc.gw.ListTokens(ctx)
}

// Create crea un token y devuelve el secreto de un solo uso. expiresInDays
// cero significa sin expiración.
func (uc *UseCase) Create(ctx context.Context, name string, scopes []string, expiresInDays int) (*entity.CreatedAPIToken, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: el token necesita un nombre", domain.ErrInvalidInput)
	}
	if len(scopes) == 0 {
		scopes = entity.DefaultTokenScopes
	}
	return uc.gw.CreateToken(ctx, name, scopes, expiresInDays)
}

// Revoke elimina un token por id.
func (uc *UseCase) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id vacío", domain.ErrInvalidInput)
	}
	return uc.gw.RevokeToken(ctx, id)
}

// Toggle alterna el estado activo de un token.
func (uc *UseCase) Toggle(ctx context.Context, id string) (*entity.APIToken, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id vacío", domain.ErrInvalidInput)
	}
	return uc.gw.ToggleToken(ctx, id)
}
