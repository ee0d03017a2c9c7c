package entity

import "time"

// CRMStatus estado de la integración CRM del usuario (colaborador externo;
// el cliente sólo lo refleja).
type CRMStatus struct {
	Connected bool       `json:"connected"`
	PortalID  string     `json:"portal_id,omitempty"`
	SyncedAt  *time.Time `json:"synced_at,omitempty"`
}

// SyncResult contadores de una sincronización por lotes hacia el CRM.
type SyncResult struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}
