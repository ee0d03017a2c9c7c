package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/corpcrawl/internal/interfaces/http"
	"github.com/jhoicas/corpcrawl/pkg/config"
)

// buildStubEnv expone además el store de usuarios para poder promover a
// superadmin (en el stub nadie nace superadmin).
func buildStubEnv(t *testing.T, initialCredits int) (*fiber.App, *memory.UserStore) {
	t.Helper()
	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer}
	users := memory.NewUserStore()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Auth:      backend.NewAuthService(users, jwtCfg, initialCredits),
		Crawl:     backend.NewCrawlService(users, memory.NewCrawlStore(), memory.NewCompanyStore(), 1000),
		Tokens:    backend.NewTokenService(memory.NewTokenStore()),
		Content:   backend.NewContentService(memory.NewContentStore()),
		Admin:     backend.NewAdminService(users, memory.NewPlanStore()),
		CRM:       backend.NewCRMService("https://example.com/oauth"),
		JWTSecret: testJWTSecret,
	})
	return app, users
}

// superadminBearer registra un usuario, lo promueve y devuelve un token con el
// rol ya incluido en los claims (re-login tras la promoción).
func superadminBearer(t *testing.T, app *fiber.App, users *memory.UserStore, email string) string {
	t.Helper()
	_, user := registerUser(t, app, email)
	stub, err := users.GetByID(user.ID)
	require.NoError(t, err)
	stub.Role = entity.RoleSuperadmin
	require.NoError(t, users.Update(stub))

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: email, Password: "secreta123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.TokenResponse](t, resp).AccessToken
}

// Un usuario normal no llega a las rutas de admin.
func TestStub_AdminExigeSuperadmin(t *testing.T) {
	app, _ := buildStubEnv(t, 5)
	bearer, _ := registerUser(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/admin/users", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// El superadmin lista usuarios y fija saldos.
func TestStub_AdminFijaCreditos(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	_, user := registerUser(t, app, "ana@example.com")
	root := superadminBearer(t, app, users, "root@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/admin/users/"+user.ID+"/credits", root,
		dto.CreditsUpdate{Credits: 100})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	list := decode[[]entity.User](t, doJSON(t, app, http.MethodGet, "/api/admin/users", root, nil))
	var found *entity.User
	for i := range list {
		if list[i].ID == user.ID {
			found = &list[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 100, found.Credits)
}

// Desactivar un usuario le cierra el login con 403.
func TestStub_AdminDesactivaUsuario(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	_, user := registerUser(t, app, "ana@example.com")
	root := superadminBearer(t, app, users, "root@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/admin/users/"+user.ID+"/status", root,
		dto.StatusUpdate{IsActive: false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "ana@example.com", Password: "secreta123",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Asignación de plan valida contra el catálogo conocido.
func TestStub_AdminAsignaPlan(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	_, user := registerUser(t, app, "ana@example.com")
	root := superadminBearer(t, app, users, "root@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/admin/users/"+user.ID+"/plan", root,
		dto.PlanAssign{CurrentPlan: entity.PlanPro})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/admin/users/"+user.ID+"/plan", root,
		dto.PlanAssign{CurrentPlan: "Platino"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Alta de plan con precio decimal en texto; el catálogo público lo refleja.
func TestStub_AdminCreaPlan(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	root := superadminBearer(t, app, users, "root@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/admin/plans", root, dto.PlanCreateRequest{
		Name: "Starter", Price: "29.99", Credits: 100, IsActive: true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	plan := decode[entity.Plan](t, resp)
	assert.Equal(t, "29.99", plan.Price.StringFixed(2))

	plans := decode[[]entity.Plan](t, doJSON(t, app, http.MethodGet, "/api/payment/plans", "", nil))
	require.Len(t, plans, 1)
	assert.Equal(t, "Starter", plans[0].Name)
}

// El ledger central agrega las empresas enriquecidas de todos los usuarios.
func TestStub_AdminLedgerCentral(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	bearer, _ := registerUser(t, app, "ana@example.com")
	root := superadminBearer(t, app, users, "root@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/crawl/single", bearer, dto.CrawlSubmitRequest{
		InputType: entity.InputDomain, InputValue: "acme.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	ledger := decode[[]entity.CompanyData](t, doJSON(t, app, http.MethodGet, "/api/admin/central-ledger", root, nil))
	require.Len(t, ledger, 1)
	assert.Equal(t, "acme.com", ledger[0].Domain)
}
