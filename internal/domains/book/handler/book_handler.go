package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/domains/book"
	"bookstore-api/internal/shared/middleware"
	"bookstore-api/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// parseID đọc :id; lỗi parse trả 400 luôn
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return 0, false
	}
	return id, true
}

// GetAll - GET /api/v1/books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, "get all", err)
		return
	}

	log.Info().Int("count", len(books)).Msg("books: got all records")
	response.Success(c, http.StatusOK, "Success", book.ToResponses(books))
}

// GetByID - GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get by id", err)
		return
	}

	response.Success(c, http.StatusOK, "Get book successfully", b.ToResponse())
}

// Create - POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	log.Info().Int64("book_id", b.ID).Msg("books: create success")
	response.Success(c, http.StatusCreated, "Create book successfully", b.ToResponse())
}

// Update - PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.fail(c, "update", err)
		return
	}

	log.Info().Int64("book_id", id).Msg("books: update success")
	response.NoContent(c)
}

// Delete - DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}

	log.Info().Int64("book_id", id).Msg("books: delete success")
	response.NoContent(c)
}

func (h *BookHandler) fail(c *gin.Context, action string, err error) {
	switch book.ToHTTPStatus(err) {
	case http.StatusBadRequest:
		log.Warn().Err(err).Str("action", action).Msg("books: bad request")
		response.BadRequest(c, response.Details(err))
	case http.StatusNotFound:
		log.Warn().Str("action", action).Msg("books: record not found")
		response.NotFound(c, book.ErrBookNotFound.Error())
	default:
		log.Error().Err(err).Str("action", action).Msg("books: operation failed")
		response.InternalServerError(c)
	}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup, g middleware.Guards) {
	books := rg.Group("/books")
	{
		books.GET("", h.GetAll)
		books.GET("/:id", g.Authenticated, h.GetByID)
		books.POST("", g.Authenticated, g.Admin, h.Create)
		books.PUT("/:id", g.Authenticated, g.AdminOrCustomer, h.Update)
		books.DELETE("/:id", g.Authenticated, g.Admin, h.Delete)
	}
}
