package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/shared/middleware"
	"bookstore-api/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /api/v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, "get all", err)
		return
	}

	log.Info().Int("count", len(authors)).Msg("authors: got all records")
	response.Success(c, http.StatusOK, "Success", author.ToResponses(authors))
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get by id", err)
		return
	}

	response.Success(c, http.StatusOK, "Get author successfully", a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	log.Info().Int64("author_id", a.ID).Msg("authors: create success")
	response.Success(c, http.StatusCreated, "Create author successfully", a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.fail(c, "update", err)
		return
	}

	log.Info().Int64("author_id", id).Msg("authors: update success")
	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}

	log.Info().Int64("author_id", id).Msg("authors: delete success")
	response.NoContent(c)
}

// fail maps service errors to responses; server faults are logged and
// answered with the generic message only.
func (h *AuthorHandler) fail(c *gin.Context, action string, err error) {
	status := author.ToHTTPStatus(err)
	switch status {
	case http.StatusBadRequest:
		log.Warn().Err(err).Str("action", action).Msg("authors: bad request")
		response.BadRequest(c, response.Details(err))
	case http.StatusNotFound:
		log.Warn().Str("action", action).Msg("authors: record not found")
		response.NotFound(c, author.ErrAuthorNotFound.Error())
	default:
		event := log.Error().Err(err).Str("action", action)
		if errors.Is(err, author.ErrOperationFailed) {
			event = event.Bool("no_rows_affected", true)
		}
		event.Msg("authors: operation failed")
		response.InternalServerError(c)
	}
}

// ════════════════════════════════════════════════════════════════
// ROUTES REGISTRATION
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup, g middleware.Guards) {
	authors := rg.Group("/authors")
	{
		authors.GET("", h.GetAll)
		authors.GET("/:id", g.Authenticated, h.GetByID)
		authors.POST("", g.Authenticated, g.Admin, h.Create)
		authors.PUT("/:id", g.Authenticated, g.AdminOrCustomer, h.Update)
		authors.DELETE("/:id", g.Authenticated, g.Admin, h.Delete)
	}
}
