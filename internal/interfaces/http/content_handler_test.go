package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// El listado público sólo muestra contenido publicado; la escritura es de superadmin.
func TestStub_BlogsPublicadosYPermisos(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	bearer, _ := registerUser(t, app, "ana@example.com")
	root := superadminBearer(t, app, users, "root@example.com")

	// Un usuario normal no puede crear contenido.
	resp := doJSON(t, app, http.MethodPost, "/api/content/blogs", bearer, dto.BlogCreateRequest{
		Slug: "hola", Title: "Hola", Content: "…", IsPublished: true,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// El superadmin crea una publicada y un borrador.
	resp = doJSON(t, app, http.MethodPost, "/api/content/blogs", root, dto.BlogCreateRequest{
		Slug: "publicada", Title: "Publicada", Content: "contenido", IsPublished: true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/content/blogs", root, dto.BlogCreateRequest{
		Slug: "borrador", Title: "Borrador", Content: "wip", IsPublished: false,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// El listado público (sin token) sólo ve la publicada.
	blogs := decode[[]entity.Blog](t, doJSON(t, app, http.MethodGet, "/api/content/blogs", "", nil))
	require.Len(t, blogs, 1)
	assert.Equal(t, "publicada", blogs[0].Slug)
}

// Slug duplicado → 409.
func TestStub_BlogSlugDuplicado(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	root := superadminBearer(t, app, users, "root@example.com")

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/content/blogs", root, dto.BlogCreateRequest{
			Slug: "repetido", Title: "T", Content: "c", IsPublished: true,
		})
		if i == 0 {
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		} else {
			assert.Equal(t, http.StatusConflict, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

// Las FAQs publicadas llegan ordenadas por Order ascendente.
func TestStub_FAQsOrdenadas(t *testing.T) {
	app, users := buildStubEnv(t, 5)
	root := superadminBearer(t, app, users, "root@example.com")

	for _, f := range []dto.FAQCreateRequest{
		{Question: "¿Tercera?", Answer: "c", Order: 3, IsPublished: true},
		{Question: "¿Primera?", Answer: "a", Order: 1, IsPublished: true},
		{Question: "¿Oculta?", Answer: "x", Order: 2, IsPublished: false},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/content/faqs", root, f)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	faqs := decode[[]entity.FAQ](t, doJSON(t, app, http.MethodGet, "/api/content/faqs", "", nil))
	require.Len(t, faqs, 2, "los borradores no se listan")
	assert.Equal(t, "¿Primera?", faqs[0].Question)
	assert.Equal(t, "¿Tercera?", faqs[1].Question)
}

// La integración CRM del stub: conectar, sincronizar, desconectar.
func TestStub_HubSpotCicloCompleto(t *testing.T) {
	app, _ := buildStubEnv(t, 5)
	bearer, _ := registerUser(t, app, "ana@example.com")

	// Desconectado por defecto.
	st := decode[entity.CRMStatus](t, doJSON(t, app, http.MethodGet, "/api/hubspot/status", bearer, nil))
	assert.False(t, st.Connected)

	// Sincronizar sin conexión → 403.
	resp := doJSON(t, app, http.MethodPost, "/api/hubspot/sync/companies", bearer, dto.CRMSyncRequest{
		Companies: []entity.CompanyData{{CompanyName: "Acme"}},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Conectar vía URL de autorización.
	auth := decode[dto.CRMAuthURLResponse](t, doJSON(t, app, http.MethodGet, "/api/hubspot/auth/url", bearer, nil))
	assert.NotEmpty(t, auth.AuthURL)

	result := decode[entity.SyncResult](t, doJSON(t, app, http.MethodPost, "/api/hubspot/sync/companies", bearer, dto.CRMSyncRequest{
		Companies: []entity.CompanyData{{CompanyName: "Acme"}, {}},
	}))
	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)

	resp = doJSON(t, app, http.MethodPost, "/api/hubspot/disconnect", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	st = decode[entity.CRMStatus](t, doJSON(t, app, http.MethodGet, "/api/hubspot/status", bearer, nil))
	assert.False(t, st.Connected)
}
