package author

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength = 100
	MaxBioLength  = 5000
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Bio       *string `json:"bio,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	r.Firstname = strings.TrimSpace(r.Firstname)
	r.Lastname = strings.TrimSpace(r.Lastname)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Firstname, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Lastname, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Bio, validation.NilOrNotEmpty, validation.Length(0, MaxBioLength)),
	)
}

// ToEntity converts CreateAuthorRequest to Author entity
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Firstname: strings.TrimSpace(r.Firstname),
		Lastname:  strings.TrimSpace(r.Lastname),
		Bio:       r.Bio,
	}
}

// UpdateAuthorRequest - PUT /api/v1/authors/:id
// Full replacement, ID phải khớp với path
type UpdateAuthorRequest struct {
	ID        int64   `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Bio       *string `json:"bio,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	r.Firstname = strings.TrimSpace(r.Firstname)
	r.Lastname = strings.TrimSpace(r.Lastname)
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Firstname, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Lastname, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Bio, validation.NilOrNotEmpty, validation.Length(0, MaxBioLength)),
	)
}

func (r *UpdateAuthorRequest) ToEntity() *Author {
	return &Author{
		ID:        r.ID,
		Firstname: strings.TrimSpace(r.Firstname),
		Lastname:  strings.TrimSpace(r.Lastname),
		Bio:       r.Bio,
	}
}

// AuthorResponse is the public shape of an author.
type AuthorResponse struct {
	ID        int64   `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Bio       *string `json:"bio,omitempty"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Firstname: a.Firstname,
		Lastname:  a.Lastname,
		Bio:       a.Bio,
	}
}

func ToResponses(authors []*Author) []*AuthorResponse {
	out := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = a.ToResponse()
	}
	return out
}
