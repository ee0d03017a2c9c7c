package session

import (
	"context"
	"sync"

	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

// Confidence etiqueta de procedencia del saldo cacheado: un valor optimista
// fue ajustado localmente tras un envío; uno confirmado viene del backend.
type Confidence string

const (
	ConfidenceConfirmed  Confidence = "confirmed"
	ConfidenceOptimistic Confidence = "optimistic"
)

// Store puerto de persistencia local de la sesión.
type Store interface {
	Save(token string, user *entity.User) error
	Load() (token string, user *entity.User, ok bool, err error)
	Clear() error
}

// Session es el único dueño de la identidad autenticada, la credencial bearer
// y la caché de créditos. Todos los componentes la reciben por inyección;
// el teardown por 401 puede llegar concurrentemente desde cualquier llamada
// del gateway y es idempotente.
type Session struct {
	mu    sync.Mutex
	store Store
	auth  repository.AuthGateway
	log   *logger.Logger

	token      string
	user       *entity.User
	confidence Confidence
}

// New construye la sesión sin estado autenticado; llamar Restore() al arrancar.
func New(store Store, auth repository.AuthGateway, log *logger.Logger) *Session {
	return &Session{store: store, auth: auth, log: log, confidence: ConfidenceConfirmed}
}

// Restore intenta cargar una sesión persistida. Nunca falla: estado ausente o
// corrupto deja la sesión sin autenticar.
func (s *Session) Restore() {
	token, user, ok, _ := s.store.Load()
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.confidence = ConfidenceConfirmed
	s.log.Debug().Str("email", user.Email).Msg("sesión restaurada")
}

// Login autentica y, sólo si el backend acepta, reemplaza atómicamente
// credencial e identidad y las persiste. Ante fallo el estado previo queda intacto.
func (s *Session) Login(ctx context.Context, email, password string) (*entity.User, error) {
	token, user, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.replace(token, user)
	return s.User(), nil
}

// Register da de alta un usuario y abre sesión con la credencial devuelta.
func (s *Session) Register(ctx context.Context, email, password, fullName string) (*entity.User, error) {
	token, user, err := s.auth.Register(ctx, email, password, fullName)
	if err != nil {
		return nil, err
	}
	s.replace(token, user)
	return s.User(), nil
}

func (s *Session) replace(token string, user *entity.User) {
	s.mu.Lock()
	s.token = token
	u := *user
	s.user = &u
	s.confidence = ConfidenceConfirmed
	s.mu.Unlock()
	if err := s.store.Save(token, user); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}
}

// Logout limpia credencial e identidad de memoria y persistencia; idempotente.
func (s *Session) Logout() {
	s.Teardown()
}

// Teardown invalida la sesión. Lo invoca el gateway al observar un 401; una
// segunda invocación concurrente sobre una sesión ya desmontada es un no-op.
func (s *Session) Teardown() {
	s.mu.Lock()
	already := s.token == "" && s.user == nil
	s.token = ""
	s.user = nil
	s.confidence = ConfidenceConfirmed
	s.mu.Unlock()
	if already {
		return
	}
	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo borrar la sesión persistida")
	}
	s.log.Debug().Msg("sesión invalidada")
}

// Token devuelve la credencial vigente (vacía si no hay sesión).
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User devuelve una copia de la identidad cacheada, o nil sin sesión.
func (s *Session) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated indica si hay identidad presente.
func (s *Session) Authenticated() bool {
	return s.User() != nil
}

// Superadmin indica si la identidad tiene rol privilegiado.
func (s *Session) Superadmin() bool {
	u := s.User()
	return u != nil && u.Role == entity.RoleSuperadmin
}

// Credits devuelve el saldo cacheado y su etiqueta de confianza. La caché es
// una ayuda de presentación: las decisiones de gasto bulk nunca salen de aquí.
func (s *Session) Credits() (int, Confidence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0, ConfidenceConfirmed
	}
	return s.user.Credits, s.confidence
}

// AdjustCreditsLocally aplica una corrección optimista al saldo cacheado tras
// un envío individual aceptado. No baja de cero y se persiste para que un
// reinicio no resucite el valor anterior; el siguiente RefreshIdentity
// sobrescribe con el valor autoritativo.
func (s *Session) AdjustCreditsLocally(delta int) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user.Credits += delta
	if s.user.Credits < 0 {
		s.user.Credits = 0
	}
	s.confidence = ConfidenceOptimistic
	token, u := s.token, *s.user
	s.mu.Unlock()
	if err := s.store.Save(token, &u); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo persistir el ajuste de créditos")
	}
}

// RefreshIdentity recarga la identidad desde el backend; el valor recibido
// sustituye cualquier ajuste optimista.
func (s *Session) RefreshIdentity(ctx context.Context) (*entity.User, error) {
	user, err := s.auth.Me(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	// El teardown puede haber vaciado la sesión mientras la llamada volaba;
	// en ese caso no se resucita la identidad.
	if s.token == "" {
		s.mu.Unlock()
		return user, nil
	}
	u := *user
	s.user = &u
	s.confidence = ConfidenceConfirmed
	token := s.token
	s.mu.Unlock()
	if err := s.store.Save(token, user); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo persistir la identidad refrescada")
	}
	return s.User(), nil
}
