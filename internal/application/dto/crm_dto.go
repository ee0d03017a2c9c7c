package dto

import "github.com/jhoicas/corpcrawl/internal/domain/entity"

// CRMSyncRequest lote de empresas a sincronizar hacia el CRM externo.
type CRMSyncRequest struct {
	Companies []entity.CompanyData `json:"companies" validate:"required,min=1"`
}

// CRMAuthURLResponse URL de autorización OAuth del CRM.
type CRMAuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}
