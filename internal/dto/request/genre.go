package request

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	// Slug is derived from Name when omitted
	Slug string `json:"slug,omitempty" validate:"omitempty,max=60"`
}
