package repository

import "github.com/jhoicas/corpcrawl/internal/domain/entity"

// Puertos de persistencia del backend de pruebas (cmd/stubserver). El stub
// los implementa en memoria; la forma de las interfaces sigue el mismo patrón
// DIP que los gateways.

// StubUser usuario tal como lo persiste el stub (incluye el hash bcrypt que
// nunca sale del backend).
type StubUser struct {
	entity.User
	PasswordHash string
}

// UserStore persistencia de usuarios del stub.
type UserStore interface {
	Create(u *StubUser) error
	GetByID(id string) (*StubUser, error)
	GetByEmail(email string) (*StubUser, error)
	Update(u *StubUser) error
	List() ([]*StubUser, error)
	// AdjustCredits descuenta (o suma) créditos de forma atómica; devuelve el
	// saldo resultante o ErrInsufficientCredits sin modificar nada.
	AdjustCredits(id string, delta int) (int, error)
}

// CrawlStore persistencia de peticiones de crawl del stub.
type CrawlStore interface {
	Create(r *entity.CrawlRequest) error
	GetByID(id string) (*entity.CrawlRequest, error)
	ListByUser(userID string, limit int) ([]entity.CrawlRequest, error)
	Update(r *entity.CrawlRequest) error
}

// CompanyStore ledger central de empresas enriquecidas.
type CompanyStore interface {
	Upsert(c *entity.CompanyData) error
	List(limit int) ([]entity.CompanyData, error)
}

// StubToken token de API con su secreto completo (sólo vive en el stub).
type StubToken struct {
	entity.APIToken
	UserID string
	Secret string
}

// TokenStore persistencia de tokens de API del stub.
type TokenStore interface {
	Create(t *StubToken) error
	GetByID(id string) (*StubToken, error)
	ListByUser(userID string) ([]*StubToken, error)
	Update(t *StubToken) error
	Delete(id string) error
}

// ContentStore blogs y FAQs del stub.
type ContentStore interface {
	CreateBlog(b *entity.Blog) error
	GetBlog(slug string) (*entity.Blog, error)
	ListBlogs(publishedOnly bool) ([]entity.Blog, error)
	UpdateBlog(b *entity.Blog) error
	DeleteBlog(slug string) error
	CreateFAQ(f *entity.FAQ) error
	GetFAQ(id string) (*entity.FAQ, error)
	ListFAQs(publishedOnly bool) ([]entity.FAQ, error)
	UpdateFAQ(f *entity.FAQ) error
	DeleteFAQ(id string) error
}

// PlanStore planes de precios del stub.
type PlanStore interface {
	Create(p *entity.Plan) error
	GetByID(id string) (*entity.Plan, error)
	List() ([]entity.Plan, error)
	Update(p *entity.Plan) error
	Delete(id string) error
}
