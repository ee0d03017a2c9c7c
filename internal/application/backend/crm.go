package backend

import (
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// CRMService integración CRM simulada. El backend de pruebas no habla con
// ningún HubSpot real: mantiene por usuario un flag de conexión y cuenta
// las empresas sincronizadas.
type CRMService struct {
	mu      sync.Mutex
	authURL string
	status  map[string]*entity.CRMStatus
}

// NewCRMService construye el servicio CRM del stub.
func NewCRMService(authURL string) *CRMService {
	return &CRMService{
		authURL: authURL,
		status:  map[string]*entity.CRMStatus{},
	}
}

// Status estado de la integración del usuario; desconectado por defecto.
func (s *CRMService) Status(userID string) *entity.CRMStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.status[userID]; ok {
		cp := *st
		return &cp
	}
	return &entity.CRMStatus{Connected: false}
}

// AuthURL URL de autorización OAuth. El stub marca al usuario como conectado
// en el mismo paso porque no hay callback real que completar.
func (s *CRMService) AuthURL(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[userID] = &entity.CRMStatus{Connected: true, PortalID: "stub-portal"}
	return s.authURL
}

// Disconnect borra la conexión del usuario; idempotente.
func (s *CRMService) Disconnect(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.status, userID)
}

// SyncCompanies simula la sincronización de un lote: todas las empresas con
// nombre cuentan como éxito, el resto como fallo.
func (s *CRMService) SyncCompanies(userID string, companies []entity.CompanyData) (*entity.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.status[userID]
	if !ok || !st.Connected {
		return nil, fmt.Errorf("%w: la integración CRM no está conectada", domain.ErrForbidden)
	}
	result := &entity.SyncResult{}
	for _, c := range companies {
		if c.CompanyName != "" {
			result.Successful++
		} else {
			result.Failed++
		}
	}
	now := time.Now().UTC()
	st.SyncedAt = &now
	return result, nil
}
