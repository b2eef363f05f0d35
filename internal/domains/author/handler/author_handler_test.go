package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/author"
	authorRepo "bookstore-api/internal/domains/author/repository"
	"bookstore-api/internal/domains/author/service"
	"bookstore-api/internal/shared/middleware"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/jwt"
	"bookstore-api/pkg/repository/repositorytest"
)

var now = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	router *gin.Engine
	mem    *repositorytest.Memory[author.Author]
	admin  string
	member string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := repositorytest.NewMemory(authorRepo.Table(),
		author.Author{ID: 1, Firstname: "Leo", Lastname: "Tolstoy"},
		author.Author{ID: 2, Firstname: "Jane", Lastname: "Austen"},
	)
	tokens := jwt.NewManager("handler-test-secret-0123456789abcdef", "https://bookstore.test", 5*time.Minute)

	r := gin.New()
	NewAuthorHandler(service.NewAuthorService(mem.Factory())).
		RegisterRoutes(r.Group("/api/v1"), middleware.NewGuards(tokens, clockwork.NewFakeClockAt(now)))

	admin, err := tokens.Issue("admin@bookstore.com", "a", []string{"Administrator"}, now)
	require.NoError(t, err)
	member, err := tokens.Issue("customer1@gmail.com", "c", []string{"Customer"}, now)
	require.NoError(t, err)

	return &fixture{router: r, mem: mem, admin: admin, member: member}
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAuthorHandler_GetAllIsAnonymous(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/v1/authors", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []author.AuthorResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Tolstoy", body.Data[0].Lastname)
}

func TestAuthorHandler_GetByID(t *testing.T) {
	f := setup(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/authors/1", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/authors/1", f.member, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/authors/99", f.member, "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/authors/abc", f.member, "").Code)
}

func TestAuthorHandler_Create(t *testing.T) {
	f := setup(t)
	body := `{"firstname":"Toni","lastname":"Morrison"}`

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/authors", "", body).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/authors", f.member, body).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/v1/authors", f.admin, `{"firstname":"Toni"}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/v1/authors", f.admin, `not json`).Code)

	w := f.do(http.MethodPost, "/api/v1/authors", f.admin, body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
	assert.Equal(t, 3, f.mem.Len())
}

func TestAuthorHandler_Update(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name  string
		path  string
		token string
		body  string
		want  int
	}{
		{name: "customer may update", path: "/api/v1/authors/1", token: "member", body: `{"id":1,"firstname":"Lev","lastname":"Tolstoy"}`, want: http.StatusNoContent},
		{name: "id mismatch", path: "/api/v1/authors/1", token: "admin", body: `{"id":2,"firstname":"Lev","lastname":"Tolstoy"}`, want: http.StatusBadRequest},
		{name: "zero id", path: "/api/v1/authors/0", token: "admin", body: `{"id":0,"firstname":"Lev","lastname":"Tolstoy"}`, want: http.StatusBadRequest},
		{name: "unknown id", path: "/api/v1/authors/77", token: "admin", body: `{"id":77,"firstname":"Lev","lastname":"Tolstoy"}`, want: http.StatusNotFound},
		{name: "anonymous", path: "/api/v1/authors/1", body: `{"id":1,"firstname":"Lev","lastname":"Tolstoy"}`, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := map[string]string{"admin": f.admin, "member": f.member}[tt.token]
			w := f.do(http.MethodPut, tt.path, token, tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	stored, _ := f.mem.Get(1)
	assert.Equal(t, "Lev", stored.Firstname)
}

func TestAuthorHandler_Delete(t *testing.T) {
	f := setup(t)

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/api/v1/authors/1", f.member, "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodDelete, "/api/v1/authors/0", f.admin, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/v1/authors/50", f.admin, "").Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/v1/authors/1", f.admin, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/v1/authors/1", f.admin, "").Code)
}

func TestAuthorHandler_FaultsAreGeneric(t *testing.T) {
	f := setup(t)
	f.mem.Err = errors.New("pq: relation authors does not exist")

	w := f.do(http.MethodGet, "/api/v1/authors", "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), response.GenericErrorMessage)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestAuthorHandler_NoRowsAffectedIsServerError(t *testing.T) {
	f := setup(t)
	f.mem.NoOp = true

	w := f.do(http.MethodPost, "/api/v1/authors", f.admin, `{"firstname":"Toni","lastname":"Morrison"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
