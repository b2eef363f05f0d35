package book

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Constants for validation
const (
	MaxTitleLength   = 255
	MaxIsbnLength    = 20
	MaxSummaryLength = 500
	MaxImageLength   = 255
	MaxYear          = 9999
)

var (
	// cột price là NUMERIC(10,2): phần nguyên tối đa 8 chữ số
	maxPriceExclusive = decimal.New(1, 8)

	errNegativePrice = errors.New("must not be negative")
	errPriceTooLarge = errors.New("must be less than 100000000")
)

func validPrice(value interface{}) error {
	p, _ := value.(*decimal.Decimal)
	switch {
	case p == nil:
		return nil
	case p.IsNegative():
		return errNegativePrice
	case p.GreaterThanOrEqual(maxPriceExclusive):
		return errPriceTooLarge
	}
	return nil
}

// CreateBookRequest - POST /api/v1/books
type CreateBookRequest struct {
	Title    string           `json:"title"`
	Year     *int32           `json:"year,omitempty"`
	Isbn     string           `json:"isbn"`
	Summary  *string          `json:"summary,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID *int64           `json:"author_id"`
}

// Validate checks the trimmed values, the same ones ToEntity stores.
func (r CreateBookRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Isbn = strings.TrimSpace(r.Isbn)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Year, validation.Min(0), validation.Max(MaxYear)),
		validation.Field(&r.Isbn, validation.Required, validation.Length(1, MaxIsbnLength)),
		validation.Field(&r.Summary, validation.Length(0, MaxSummaryLength)),
		validation.Field(&r.Image, validation.Length(0, MaxImageLength)),
		validation.Field(&r.Price, validation.By(validPrice)),
		validation.Field(&r.AuthorID, validation.Required, validation.Min(1)),
	)
}

// ToEntity converts CreateBookRequest to Book entity
func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    strings.TrimSpace(r.Title),
		Year:     r.Year,
		Isbn:     strings.TrimSpace(r.Isbn),
		Summary:  r.Summary,
		Image:    r.Image,
		Price:    r.Price,
		AuthorID: r.AuthorID,
	}
}

// UpdateBookRequest - PUT /api/v1/books/:id
// ISBN không được đổi sau khi tạo nên không có trong request
type UpdateBookRequest struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Year     *int32           `json:"year,omitempty"`
	Summary  *string          `json:"summary,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID *int64           `json:"author_id,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Year, validation.Min(0), validation.Max(MaxYear)),
		validation.Field(&r.Summary, validation.Length(0, MaxSummaryLength)),
		validation.Field(&r.Image, validation.Length(0, MaxImageLength)),
		validation.Field(&r.Price, validation.By(validPrice)),
		validation.Field(&r.AuthorID, validation.Min(1)),
	)
}

// ApplyTo ghi đè các field có thể sửa, giữ nguyên ID và ISBN
func (r *UpdateBookRequest) ApplyTo(b *Book) {
	b.Title = strings.TrimSpace(r.Title)
	b.Year = r.Year
	b.Summary = r.Summary
	b.Image = r.Image
	b.Price = r.Price
	b.AuthorID = r.AuthorID
}

// BookResponse is the public shape of a book.
type BookResponse struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Year     *int32           `json:"year,omitempty"`
	Isbn     string           `json:"isbn"`
	Summary  *string          `json:"summary,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID *int64           `json:"author_id,omitempty"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		Isbn:     b.Isbn,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    b.Price,
		AuthorID: b.AuthorID,
	}
}

func ToResponses(books []*Book) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = b.ToResponse()
	}
	return out
}
