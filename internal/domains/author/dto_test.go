package author

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthorRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateAuthorRequest
		badFields []string
	}{
		{name: "valid", req: CreateAuthorRequest{Firstname: "Leo", Lastname: "Tolstoy"}},
		{name: "empty", req: CreateAuthorRequest{}, badFields: []string{"firstname", "lastname"}},
		{name: "whitespace only", req: CreateAuthorRequest{Firstname: "   ", Lastname: "\t"}, badFields: []string{"firstname", "lastname"}},
		{name: "padded name fits", req: CreateAuthorRequest{Firstname: "  Leo  ", Lastname: "Tolstoy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if len(tt.badFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			for _, f := range tt.badFields {
				assert.Contains(t, verrs, f)
			}
		})
	}
}

func TestUpdateAuthorRequest_RejectsBlankNames(t *testing.T) {
	err := UpdateAuthorRequest{ID: 1, Firstname: "Leo", Lastname: " \n "}.Validate()

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "lastname")
	assert.NotContains(t, verrs, "firstname")
}

func TestCreateAuthorRequest_ToEntityTrims(t *testing.T) {
	req := CreateAuthorRequest{Firstname: " Leo ", Lastname: "Tolstoy\t"}
	require.NoError(t, req.Validate())

	a := req.ToEntity()

	assert.Equal(t, "Leo", a.Firstname)
	assert.Equal(t, "Tolstoy", a.Lastname)
}
