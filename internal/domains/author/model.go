package author

// Author là entity lưu trong bảng authors
type Author struct {
	ID        int64   `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Bio       *string `json:"bio,omitempty"`
}
