package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// El secreto completo sólo viaja en la respuesta de creación; los listados
// posteriores exponen únicamente el preview.
func TestStub_TokenSecretoUnaSolaVez(t *testing.T) {
	app := buildStubApp(t, 5)
	bearer, _ := registerUser(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/api-tokens", bearer, dto.CreateTokenRequest{
		Name: "integración CI",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[entity.CreatedAPIToken](t, resp)
	require.True(t, strings.HasPrefix(created.Token, "corp_"), "el secreto lleva el prefijo corp_")
	assert.Equal(t, created.Token[len(created.Token)-4:], created.TokenPreview)
	assert.Equal(t, entity.DefaultTokenScopes, created.Scopes)
	assert.True(t, created.IsActive)

	resp = doJSON(t, app, http.MethodGet, "/api/api-tokens", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]entity.APIToken](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.TokenPreview, list[0].TokenPreview)
	assert.NotContains(t, list[0].TokenPreview, "corp_", "el listado nunca incluye el secreto")
}

// Toggle alterna el estado; revoke elimina.
func TestStub_TokenToggleYRevoke(t *testing.T) {
	app := buildStubApp(t, 5)
	bearer, _ := registerUser(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/api-tokens", bearer, dto.CreateTokenRequest{Name: "t1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[entity.CreatedAPIToken](t, resp)

	resp = doJSON(t, app, http.MethodPut, "/api/api-tokens/"+created.ID+"/toggle", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	toggled := decode[entity.APIToken](t, resp)
	assert.False(t, toggled.IsActive)

	resp = doJSON(t, app, http.MethodDelete, "/api/api-tokens/"+created.ID, bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	list := decode[[]entity.APIToken](t, doJSON(t, app, http.MethodGet, "/api/api-tokens", bearer, nil))
	assert.Empty(t, list)
}

// Los tokens de otro usuario no existen para mí.
func TestStub_TokenAjenoEs404(t *testing.T) {
	app := buildStubApp(t, 5)
	bearerAna, _ := registerUser(t, app, "ana@example.com")
	bearerEva, _ := registerUser(t, app, "eva@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/api-tokens", bearerAna, dto.CreateTokenRequest{Name: "t1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[entity.CreatedAPIToken](t, resp)

	resp = doJSON(t, app, http.MethodDelete, "/api/api-tokens/"+created.ID, bearerEva, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Sin nombre no hay token.
func TestStub_TokenSinNombre(t *testing.T) {
	app := buildStubApp(t, 5)
	bearer, _ := registerUser(t, app, "ana@example.com")
	resp := doJSON(t, app, http.MethodPost, "/api/api-tokens", bearer, dto.CreateTokenRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
