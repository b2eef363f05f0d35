package book

import "github.com/shopspring/decimal"

// Book là entity lưu trong bảng books
// AuthorID nullable: xoá author sẽ set NULL chứ không xoá sách
type Book struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Year     *int32           `json:"year,omitempty"`
	Isbn     string           `json:"isbn"`
	Summary  *string          `json:"summary,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID *int64           `json:"author_id,omitempty"`
}
