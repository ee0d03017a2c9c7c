package entity

import "time"

// Tipos de entrada aceptados para una petición de crawl.
const (
	InputDomain      = "domain"
	InputCompanyName = "company_name"
	InputLinkedInURL = "linkedin_url"
)

// Estados de una CrawlRequest. Los estados terminales son completed y failed;
// el cliente nunca infiere transiciones, sólo refleja lo que reporta el backend.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// CrawlRequest es una unidad de trabajo de enriquecimiento. Se crea en el
// backend al enviarla; el cliente sólo la lee o la lista.
type CrawlRequest struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id,omitempty"`
	InputType   string       `json:"input_type"`
	InputValue  string       `json:"input_value"`
	Status      string       `json:"status"`
	Result      *CompanyData `json:"result,omitempty"`
	Error       string       `json:"error,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// Terminal indica si la petición ya no cambiará de estado.
func (r CrawlRequest) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}

// ValidInputType valida el tipo de entrada.
func ValidInputType(t string) bool {
	switch t {
	case InputDomain, InputCompanyName, InputLinkedInURL:
		return true
	}
	return false
}

// CompanyData es la bolsa desnormalizada de campos de enriquecimiento.
// Inmutable una vez adjunta a una CrawlRequest completada.
type CompanyData struct {
	ID              string     `json:"id"`
	CompanyName     string     `json:"company_name,omitempty"`
	Domain          string     `json:"domain,omitempty"`
	LinkedInURL     string     `json:"linkedin_url,omitempty"`
	Industry        string     `json:"industry,omitempty"`
	EmployeeSize    string     `json:"employee_size,omitempty"`
	FoundedOn       string     `json:"founded_on,omitempty"`
	Founders        []string   `json:"founders,omitempty"`
	Description     string     `json:"description,omitempty"`
	Country         string     `json:"country,omitempty"`
	Location        string     `json:"location,omitempty"`
	LatestNews      []NewsItem `json:"latest_news,omitempty"`
	ConfidenceScore float64    `json:"confidence_score"` // [0,1]
	DataSources     []string   `json:"data_sources,omitempty"`
	LastCrawled     time.Time  `json:"last_crawled"`
}

// NewsItem noticia asociada a una empresa enriquecida.
type NewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Date  string `json:"date,omitempty"`
}

// BulkCheckResult es la proyección consultiva de una comprobación de fichero:
// no persistente, válida sólo hasta la siguiente comprobación o cancelación.
type BulkCheckResult struct {
	TotalRows        int  `json:"total_rows"`
	ValidRows        int  `json:"valid_rows"`
	RequiredCredits  int  `json:"required_credits"`
	AvailableCredits int  `json:"available_credits"`
	CanProceed       bool `json:"can_proceed"`
	CreditsNeeded    int  `json:"credits_needed"`
}

// BulkUploadResult resultado del commit de un fichero: puede reportar fallos
// por fila distintos de la estimación previa.
type BulkUploadResult struct {
	Message        string   `json:"message"`
	RequestIDs     []string `json:"request_ids,omitempty"`
	TotalProcessed int      `json:"total_processed"`
	TotalFailed    int      `json:"total_failed"`
}
