package backend

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
	"github.com/jhoicas/corpcrawl/pkg/config"
	"github.com/jhoicas/corpcrawl/pkg/jwt"
)

// AuthService registro y login del backend de pruebas: hashea con bcrypt,
// emite JWT firmados y da de alta con los créditos iniciales configurados.
type AuthService struct {
	users          repository.UserStore
	jwtCfg         config.JWTConfig
	initialCredits int
}

// NewAuthService construye el servicio de auth del stub.
func NewAuthService(users repository.UserStore, jwtCfg config.JWTConfig, initialCredits int) *AuthService {
	return &AuthService{users: users, jwtCfg: jwtCfg, initialCredits: initialCredits}
}

// Register crea un usuario y devuelve credencial + identidad.
// ErrDuplicate si el email ya está registrado.
func (s *AuthService) Register(in dto.RegisterRequest) (string, *entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}
	now := time.Now().UTC()
	user := &repository.StubUser{
		User: entity.User{
			ID:          uuid.New().String(),
			Email:       in.Email,
			FullName:    in.FullName,
			Role:        entity.RoleUser,
			IsActive:    true,
			Credits:     s.initialCredits,
			CurrentPlan: entity.PlanFree,
			CreatedAt:   now,
		},
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return "", nil, err
	}
	token, err := jwt.Generate(s.jwtCfg.Secret, user.ID, user.Role, s.jwtCfg.Issuer, s.jwtCfg.Expiration)
	if err != nil {
		return "", nil, err
	}
	u := user.User
	return token, &u, nil
}

// Login verifica email/password y devuelve credencial + identidad.
func (s *AuthService) Login(in dto.LoginRequest) (string, *entity.User, error) {
	user, err := s.users.GetByEmail(in.Email)
	if err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return "", nil, fmt.Errorf("%w: cuenta desactivada", domain.ErrForbidden)
	}
	now := time.Now().UTC()
	user.LastLogin = &now
	_ = s.users.Update(user)
	token, err := jwt.Generate(s.jwtCfg.Secret, user.ID, user.Role, s.jwtCfg.Issuer, s.jwtCfg.Expiration)
	if err != nil {
		return "", nil, err
	}
	u := user.User
	return token, &u, nil
}

// Get devuelve la identidad autoritativa de un usuario.
func (s *AuthService) Get(userID string) (*entity.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	u := user.User
	return &u, nil
}
