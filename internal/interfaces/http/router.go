package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
)

// RouterDeps dependencias para el router del backend de pruebas.
type RouterDeps struct {
	Auth      *backend.AuthService
	Crawl     *backend.CrawlService
	Tokens    *backend.TokenService
	Content   *backend.ContentService
	Admin     *backend.AdminService
	CRM       *backend.CRMService
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos; /me requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Auth)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Contenido público
	contentHandler := NewContentHandler(deps.Content, deps.Admin)
	content := api.Group("/content")
	content.Get("/blogs", contentHandler.Blogs)
	content.Get("/blogs/:slug", contentHandler.Blog)
	content.Get("/faqs", contentHandler.FAQs)
	api.Get("/payment/plans", contentHandler.Plans)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Crawl (protegido)
	crawlGroup := protected.Group("/crawl")
	crawlHandler := NewCrawlHandler(deps.Crawl)
	crawlGroup.Post("/single", crawlHandler.Single)
	crawlGroup.Get("/request/:id", crawlHandler.Get)
	crawlGroup.Get("/history", crawlHandler.History)
	crawlGroup.Post("/bulk-check", crawlHandler.BulkCheck)
	crawlGroup.Post("/bulk-upload", crawlHandler.BulkUpload)

	// API tokens (protegido)
	tokens := protected.Group("/api-tokens")
	tokenHandler := NewTokenHandler(deps.Tokens)
	tokens.Get("/", tokenHandler.List)
	tokens.Post("/", tokenHandler.Create)
	tokens.Delete("/:id", tokenHandler.Revoke)
	tokens.Put("/:id/toggle", tokenHandler.Toggle)

	// HubSpot (protegido)
	hubspot := protected.Group("/hubspot")
	hubspotHandler := NewHubSpotHandler(deps.CRM)
	hubspot.Get("/status", hubspotHandler.Status)
	hubspot.Get("/auth/url", hubspotHandler.AuthURL)
	hubspot.Post("/disconnect", hubspotHandler.Disconnect)
	hubspot.Post("/sync/companies", hubspotHandler.SyncCompanies)

	// Admin (protegido + superadmin)
	admin := protected.Group("/admin", RequireSuperadmin())
	adminHandler := NewAdminHandler(deps.Admin, deps.Crawl)
	admin.Get("/users", adminHandler.Users)
	admin.Put("/users/:id/credits", adminHandler.SetCredits)
	admin.Put("/users/:id/status", adminHandler.SetStatus)
	admin.Put("/users/:id/plan", adminHandler.SetPlan)
	admin.Post("/plans", adminHandler.CreatePlan)
	admin.Put("/plans/:id", adminHandler.UpdatePlan)
	admin.Delete("/plans/:id", adminHandler.DeletePlan)
	admin.Get("/central-ledger", adminHandler.CentralLedger)

	// Contenido de escritura (superadmin)
	contentAdmin := protected.Group("/content", RequireSuperadmin())
	contentAdmin.Post("/blogs", contentHandler.CreateBlog)
	contentAdmin.Put("/blogs/:slug", contentHandler.UpdateBlog)
	contentAdmin.Delete("/blogs/:slug", contentHandler.DeleteBlog)
	contentAdmin.Post("/faqs", contentHandler.CreateFAQ)
	contentAdmin.Put("/faqs/:id", contentHandler.UpdateFAQ)
	contentAdmin.Delete("/faqs/:id", contentHandler.DeleteFAQ)
}
