package backend

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// TokenService tokens de API del backend de pruebas. El secreto se genera en
// la creación, se devuelve una única vez y después sólo se expone el preview.
type TokenService struct {
	tokens repository.TokenStore
}

// NewTokenService construye el servicio de tokens del stub.
func NewTokenService(tokens repository.TokenStore) *TokenService {
	return &TokenService{tokens: tokens}
}

// Create genera un token corp_<secreto> y lo persiste con su preview.
func (s *TokenService) Create(userID string, in dto.CreateTokenRequest) (*entity.CreatedAPIToken, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el token necesita un nombre", domain.ErrInvalidInput)
	}
	scopes := in.Scopes
	if len(scopes) == 0 {
		scopes = entity.DefaultTokenScopes
	}
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	secret := "corp_" + base64.RawURLEncoding.EncodeToString(raw)
	now := time.Now().UTC()
	var expires *time.Time
	if in.ExpiresInDays > 0 {
		e := now.AddDate(0, 0, in.ExpiresInDays)
		expires = &e
	}
	tok := &repository.StubToken{
		APIToken: entity.APIToken{
			ID:           uuid.New().String(),
			Name:         in.Name,
			TokenPreview: secret[len(secret)-4:],
			Scopes:       scopes,
			IsActive:     true,
			CreatedAt:    now,
			ExpiresAt:    expires,
		},
		UserID: userID,
		Secret: secret,
	}
	if err := s.tokens.Create(tok); err != nil {
		return nil, err
	}
	return &entity.CreatedAPIToken{APIToken: tok.APIToken, Token: secret}, nil
}

// List lista los tokens del usuario sin el secreto.
func (s *TokenService) List(userID string) ([]entity.APIToken, error) {
	toks, err := s.tokens.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.APIToken, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.APIToken)
	}
	return out, nil
}

// Revoke elimina un token del usuario.
func (s *TokenService) Revoke(userID, id string) error {
	tok, err := s.tokens.GetByID(id)
	if err != nil {
		return err
	}
	if tok.UserID != userID {
		return domain.ErrNotFound
	}
	return s.tokens.Delete(id)
}

// Toggle alterna el estado activo de un token del usuario.
func (s *TokenService) Toggle(userID, id string) (*entity.APIToken, error) {
	tok, err := s.tokens.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tok.UserID != userID {
		return nil, domain.ErrNotFound
	}
	tok.IsActive = !tok.IsActive
	if err := s.tokens.Update(tok); err != nil {
		return nil, err
	}
	return &tok.APIToken, nil
}
