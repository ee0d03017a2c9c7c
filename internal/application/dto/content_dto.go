package dto

// BlogCreateRequest alta de una entrada de blog.
type BlogCreateRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Excerpt     string `json:"excerpt,omitempty"`
	IsPublished bool   `json:"is_published"`
}

// FAQCreateRequest alta de una FAQ.
type FAQCreateRequest struct {
	Question    string `json:"question" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
	Category    string `json:"category,omitempty"`
	Order       int    `json:"order"`
	IsPublished bool   `json:"is_published"`
}
