package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/corpcrawl/internal/application/crawl"
	"github.com/jhoicas/corpcrawl/internal/application/session"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// nullStore store de sesión que no persiste nada.
type nullStore struct{}

func (nullStore) Save(string, *entity.User) error           { return nil }
func (nullStore) Load() (string, *entity.User, bool, error) { return "", nil, false, nil }
func (nullStore) Clear() error                              { return nil }

// loginAuth gateway de auth fijo para abrir sesión en los tests.
type loginAuth struct{ user *entity.User }

func (a loginAuth) Register(context.Context, string, string, string) (string, *entity.User, error) {
	return "tok", a.user, nil
}
func (a loginAuth) Login(context.Context, string, string) (string, *entity.User, error) {
	return "tok", a.user, nil
}
func (a loginAuth) Me(context.Context) (*entity.User, error) { return a.user, nil }

func sessionWithCredits(t *testing.T, credits int) *session.Session {
	t.Helper()
	user := &entity.User{ID: "u-1", Email: "ana@example.com", Credits: credits, IsActive: true}
	s := session.New(nullStore{}, loginAuth{user: user}, testLogger())
	_, err := s.Login(context.Background(), user.Email, "secreta123")
	require.NoError(t, err)
	return s
}

// Un envío aceptado descuenta un crédito de la caché de forma optimista.
func TestService_SubmitDescuentaOptimista(t *testing.T) {
	gw := &fakeGateway{submitResult: &entity.CrawlRequest{ID: "r-1", Status: entity.StatusCompleted}}
	sess := sessionWithCredits(t, 5)
	svc := crawl.NewService(gw, sess, testLogger())

	req, err := svc.Submit(context.Background(), entity.InputDomain, "acme.com")
	require.NoError(t, err)
	assert.Equal(t, "r-1", req.ID)

	credits, confidence := sess.Credits()
	assert.Equal(t, 4, credits)
	assert.Equal(t, session.ConfidenceOptimistic, confidence)
}

// Un envío rechazado no toca la caché de créditos.
func TestService_SubmitRechazadoNoDescuenta(t *testing.T) {
	gw := &fakeGateway{submitErr: domain.ErrInsufficientCredits}
	sess := sessionWithCredits(t, 5)
	svc := crawl.NewService(gw, sess, testLogger())

	_, err := svc.Submit(context.Background(), entity.InputDomain, "acme.com")
	require.ErrorIs(t, err, domain.ErrInsufficientCredits)

	credits, confidence := sess.Credits()
	assert.Equal(t, 5, credits)
	assert.Equal(t, session.ConfidenceConfirmed, confidence)
}

// La validación local corta antes de llamar al backend.
func TestService_SubmitValidaEntrada(t *testing.T) {
	gw := &fakeGateway{}
	svc := crawl.NewService(gw, sessionWithCredits(t, 5), testLogger())

	_, err := svc.Submit(context.Background(), "telefono", "600123123")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Submit(context.Background(), entity.InputDomain, "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_GetExigeID(t *testing.T) {
	svc := crawl.NewService(&fakeGateway{}, sessionWithCredits(t, 1), testLogger())
	_, err := svc.Get(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Los glifos de estado cubren los cuatro estados más el desconocido.
func TestStatusGlyph(t *testing.T) {
	assert.Equal(t, "·", crawl.StatusGlyph(entity.StatusPending))
	assert.Equal(t, "~", crawl.StatusGlyph(entity.StatusProcessing))
	assert.Equal(t, "✓", crawl.StatusGlyph(entity.StatusCompleted))
	assert.Equal(t, "✗", crawl.StatusGlyph(entity.StatusFailed))
	assert.Equal(t, "?", crawl.StatusGlyph("otro"))
}
