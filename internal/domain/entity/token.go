package entity

import "time"

// Scopes por defecto de un token de API.
var DefaultTokenScopes = []string{"crawl:read", "crawl:write"}

// APIToken token de acceso programático. El secreto crudo se entrega una sola
// vez en la creación; los listados sólo exponen TokenPreview.
type APIToken struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TokenPreview string     `json:"token_preview,omitempty"` // últimos 4 caracteres
	Scopes       []string   `json:"scopes"`
	IsActive     bool       `json:"is_active"`
	LastUsed     *time.Time `json:"last_used,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// CreatedAPIToken respuesta de creación: incluye el secreto completo.
// El cliente no debe cachearlo más allá de la vida de esta respuesta.
type CreatedAPIToken struct {
	APIToken
	Token string `json:"token"`
}
