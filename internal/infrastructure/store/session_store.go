package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// persistedSession las dos claves de la sesión persistida. Se escriben y se
// borran siempre juntas: nunca debe quedar identidad sin credencial ni al revés.
type persistedSession struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// FileStore persiste la sesión en un fichero JSON dentro del directorio de
// configuración del usuario (equivalente local a un almacenamiento por dominio).
type FileStore struct {
	path string
}

// NewFileStore crea el directorio si no existe y devuelve el store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("crear directorio de sesión: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, "session.json")}, nil
}

// Save escribe la pareja {credencial, identidad} de forma atómica (tmp + rename).
func (s *FileStore) Save(token string, user *entity.User) error {
	data, err := json.Marshal(persistedSession{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("publicar sesión: %w", err)
	}
	return nil
}

// Load recupera la sesión persistida. Un fichero ausente o corrupto se trata
// como "no hay sesión" (ok=false), nunca como error: el estado local dañado
// se descarta en silencio.
func (s *FileStore) Load() (token string, user *entity.User, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, false, nil
		}
		return "", nil, false, nil
	}
	var p persistedSession
	if err := json.Unmarshal(data, &p); err != nil {
		_ = s.Clear()
		return "", nil, false, nil
	}
	// Identidad sin credencial (o al revés) es estado corrupto: fuera las dos.
	if p.Token == "" || p.User == nil {
		_ = s.Clear()
		return "", nil, false, nil
	}
	return p.Token, p.User, true, nil
}

// Clear borra la sesión persistida; idempotente.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
