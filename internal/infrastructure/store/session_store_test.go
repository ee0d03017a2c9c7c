package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/infrastructure/store"
)

func newStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	require.NoError(t, err)
	return s, dir
}

func sampleUser() *entity.User {
	return &entity.User{
		ID:       "u-1",
		Email:    "ana@example.com",
		FullName: "Ana Pérez",
		Role:     entity.RoleUser,
		IsActive: true,
		Credits:  10,
	}
}

// Guardar y recargar debe devolver exactamente la pareja {token, identidad}.
func TestFileStore_GuardarYRecargar(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Save("tok-123", sampleUser()))

	token, user, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok, "una sesión guardada debe recuperarse")
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, 10, user.Credits)
}

// Sin fichero no hay sesión, y no es un error.
func TestFileStore_SinFichero_NoHaySesion(t *testing.T) {
	s, _ := newStore(t)
	_, _, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

// Un fichero corrupto se descarta en silencio y además se borra.
func TestFileStore_FicheroCorrupto_SeDescarta(t *testing.T) {
	s, dir := newStore(t)
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	_, _, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok, "estado corrupto es 'no hay sesión'")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "el fichero corrupto debe borrarse")
}

// Identidad sin credencial es estado corrupto: las dos claves van juntas.
func TestFileStore_IdentidadSinCredencial_EsCorrupto(t *testing.T) {
	s, dir := newStore(t)
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"","user":{"id":"u-1"}}`), 0o600))

	_, _, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

// Clear es idempotente: borrar dos veces no falla.
func TestFileStore_ClearIdempotente(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Save("tok", sampleUser()))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	_, _, ok, _ := s.Load()
	assert.False(t, ok)
}
