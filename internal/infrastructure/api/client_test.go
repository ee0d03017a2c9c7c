package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/infrastructure/api"
	"github.com/jhoicas/corpcrawl/pkg/config"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

// fakeSession binding de sesión que cuenta los teardowns.
type fakeSession struct {
	token     string
	teardowns atomic.Int32
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) Teardown()     { f.teardowns.Add(1); f.token = "" }

func newClient(t *testing.T, baseURL string) (*api.Client, *fakeSession) {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "disabled"})
	c := api.New(config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 5}, log)
	sess := &fakeSession{token: "tok-1"}
	c.BindSession(sess)
	return c, sess
}

// La credencial vigente viaja como Bearer en cada operación.
func TestClient_AdjuntaBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","email":"ana@example.com"}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv.URL)
	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

// Un 401 desmonta la sesión y mapea a ErrUnauthorized. Dos rechazos seguidos
// producen dos llamadas a Teardown, pero el teardown en sí es idempotente
// (eso lo garantiza la sesión, no el cliente).
func TestClient_401DesmontaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"credenciales inválidas"}`))
	}))
	defer srv.Close()

	c, sess := newClient(t, srv.URL)
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, int32(1), sess.teardowns.Load())
	assert.Empty(t, sess.token, "la credencial debe quedar invalidada")
}

// Un 402 es rechazo de negocio Y falta de saldo: ambas marcas distinguibles.
func TestClient_402EsRechazoYFaltaDeSaldo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"code":"INSUFFICIENT_CREDITS","message":"se requieren 5 y hay 2"}`))
	}))
	defer srv.Close()

	c, sess := newClient(t, srv.URL)
	_, err := c.SubmitSingle(context.Background(), "domain", "acme.com")
	require.ErrorIs(t, err, domain.ErrRejected)
	require.ErrorIs(t, err, domain.ErrInsufficientCredits)
	assert.Contains(t, err.Error(), "se requieren 5")
	assert.Zero(t, sess.teardowns.Load(), "un 402 no invalida la sesión")
}

// Un backend estilo FastAPI que sólo devuelve {"detail": ...} también se entiende.
func TestClient_ExtraeDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Invalid file format. Use CSV"}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv.URL)
	_, err := c.BulkCheck(context.Background(), "empresas.xlsx", []byte("x"))
	require.ErrorIs(t, err, domain.ErrRejected)
	assert.Contains(t, err.Error(), "Invalid file format")
}

// 403 y 404 mapean a sus centinelas sin tocar la sesión.
func TestClient_Mapeo403y404(t *testing.T) {
	status := http.StatusForbidden
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c, sess := newClient(t, srv.URL)
	_, err := c.Users(context.Background())
	require.ErrorIs(t, err, domain.ErrForbidden)

	status = http.StatusNotFound
	_, err = c.GetRequest(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, sess.teardowns.Load())
}

// Un fallo de red es ErrTransport, nunca un rechazo de negocio.
func TestClient_FalloDeRedEsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // servidor caído

	c, _ := newClient(t, srv.URL)
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrRejected)
}

// El flujo bulk envía el fichero como multipart con el input_type como campo.
func TestClient_BulkUploadMultipart(t *testing.T) {
	var gotType, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotType = r.FormValue("input_type")
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		buf := make([]byte, 32)
		n, _ := f.Read(buf)
		gotFile = string(buf[:n])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","total_processed":2,"total_failed":0}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv.URL)
	result, err := c.BulkUpload(context.Background(), "empresas.csv", []byte("domain\nacme.com\n"), "domain")
	require.NoError(t, err)
	assert.Equal(t, "domain", gotType)
	assert.Equal(t, "domain\nacme.com\n", gotFile)
	assert.Equal(t, 2, result.TotalProcessed)
}
