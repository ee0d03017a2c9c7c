package dto

// CrawlSubmitRequest entrada para crear una petición de crawl individual.
type CrawlSubmitRequest struct {
	InputType  string `json:"input_type" validate:"required,oneof=domain company_name linkedin_url"`
	InputValue string `json:"input_value" validate:"required,min=1"`
}
