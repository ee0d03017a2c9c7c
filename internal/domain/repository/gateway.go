package repository

import (
	"context"

	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// Puertos del gateway remoto (DIP): la capa de aplicación depende de estas
// interfaces; internal/infrastructure/api las implementa sobre HTTP.
// Todas las operaciones adjuntan la credencial vigente si existe y propagan
// la taxonomía de domain: ErrUnauthorized, ErrRejected, ErrNotFound, ErrTransport.

// AuthGateway registro, login y refresco de identidad.
type AuthGateway interface {
	Register(ctx context.Context, email, password, fullName string) (token string, user *entity.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *entity.User, err error)
	Me(ctx context.Context) (*entity.User, error)
}

// CrawlGateway envío y consulta de peticiones de crawl.
type CrawlGateway interface {
	SubmitSingle(ctx context.Context, inputType, inputValue string) (*entity.CrawlRequest, error)
	GetRequest(ctx context.Context, id string) (*entity.CrawlRequest, error)
	History(ctx context.Context, limit int) ([]entity.CrawlRequest, error)
	// BulkCheck y BulkUpload reciben el mismo payload inmutable: las dos fases
	// nunca releen el fichero del disco.
	BulkCheck(ctx context.Context, filename string, file []byte) (*entity.BulkCheckResult, error)
	BulkUpload(ctx context.Context, filename string, file []byte, inputType string) (*entity.BulkUploadResult, error)
}

// TokenGateway gestión de tokens de API.
type TokenGateway interface {
	ListTokens(ctx context.Context) ([]entity.APIToken, error)
	CreateToken(ctx context.Context, name string, scopes []string, expiresInDays int) (*entity.CreatedAPIToken, error)
	RevokeToken(ctx context.Context, id string) error
	ToggleToken(ctx context.Context, id string) (*entity.APIToken, error)
}

// BlogPatch campos opcionales para actualización parcial de un blog.
type BlogPatch struct {
	Slug        *string `json:"slug,omitempty"`
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

// FAQPatch campos opcionales para actualización parcial de una FAQ.
type FAQPatch struct {
	Question    *string `json:"question,omitempty"`
	Answer      *string `json:"answer,omitempty"`
	Category    *string `json:"category,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

// ContentGateway CRUD de contenido público (blogs, FAQs) y lectura de planes.
type ContentGateway interface {
	Blogs(ctx context.Context) ([]entity.Blog, error)
	Blog(ctx context.Context, slug string) (*entity.Blog, error)
	CreateBlog(ctx context.Context, b entity.Blog) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, slug string, patch BlogPatch) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, slug string) error
	FAQs(ctx context.Context) ([]entity.FAQ, error)
	CreateFAQ(ctx context.Context, f entity.FAQ) (*entity.FAQ, error)
	UpdateFAQ(ctx context.Context, id string, patch FAQPatch) (*entity.FAQ, error)
	DeleteFAQ(ctx context.Context, id string) error
	Plans(ctx context.Context) ([]entity.Plan, error)
}

// PlanPatch campos opcionales para actualización parcial de un plan.
type PlanPatch struct {
	Name     *string `json:"name,omitempty"`
	Price    *string `json:"price,omitempty"` // decimal en texto
	Credits  *int    `json:"credits,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AdminGateway operaciones de superadmin.
type AdminGateway interface {
	Users(ctx context.Context) ([]entity.User, error)
	SetUserCredits(ctx context.Context, userID string, credits int) error
	SetUserStatus(ctx context.Context, userID string, active bool) error
	SetUserPlan(ctx context.Context, userID, plan string) error
	CreatePlan(ctx context.Context, p entity.Plan) (*entity.Plan, error)
	UpdatePlan(ctx context.Context, id string, patch PlanPatch) (*entity.Plan, error)
	DeletePlan(ctx context.Context, id string) error
	CentralLedger(ctx context.Context, limit int) ([]entity.CompanyData, error)
}

// CRMGateway frontera con el CRM externo: sólo lectura de estado, redirección
// OAuth, desconexión y sync por lotes.
type CRMGateway interface {
	CRMStatus(ctx context.Context) (*entity.CRMStatus, error)
	CRMAuthURL(ctx context.Context) (string, error)
	CRMDisconnect(ctx context.Context) error
	CRMSyncCompanies(ctx context.Context, companies []entity.CompanyData) (*entity.SyncResult, error)
}
