package models

// PaginationLinks mirror the backend's page cursor fields. The site only
// ever consumes the first page.
type PaginationLinks struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

type ProjectsResponse struct {
	Links       PaginationLinks `json:"links"`
	Count       int             `json:"count"`
	TotalPages  int             `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
	Results     []Project       `json:"results"`
}

type TeamResponse struct {
	Links       PaginationLinks `json:"links"`
	Count       int             `json:"count"`
	TotalPages  int             `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
	Results     []TeamMember    `json:"results"`
}

type TestimonialsResponse struct {
	Links       PaginationLinks `json:"links"`
	Count       int             `json:"count"`
	TotalPages  int             `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
	Results     []Testimonial   `json:"results"`
}

type CompaniesResponse struct {
	Links       PaginationLinks `json:"links"`
	Count       int             `json:"count"`
	TotalPages  int             `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
	Results     []Company       `json:"results"`
}
