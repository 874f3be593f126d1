package reviewer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reviewboard/internal/pkg/response"
	"reviewboard/internal/repository"
)

type Handler struct {
	reviewers repository.ReviewerRepository
	maxPage   int
}

func NewHandler(reviewers repository.ReviewerRepository, maxPage int) *Handler {
	return &Handler{reviewers: reviewers, maxPage: maxPage}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviewers", h.Create)
	rg.GET("/reviewers", h.List)
	rg.GET("/reviewers/:id", h.GetByID)
	rg.PATCH("/reviewers/:id", h.Update)
	rg.DELETE("/reviewers/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	created, err := h.reviewers.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List returns a page of reviewers. The username and email query parameters
// switch it to a single exact-match lookup.
func (h *Handler) List(c *gin.Context) {
	if username := c.Query("username"); username != "" {
		found, err := h.reviewers.GetByUsername(c.Request.Context(), username)
		if err != nil {
			response.DomainError(c, err)
			return
		}
		response.Success(c, http.StatusOK, found)
		return
	}
	if email := c.Query("email"); email != "" {
		found, err := h.reviewers.GetByEmail(c.Request.Context(), email)
		if err != nil {
			response.DomainError(c, err)
			return
		}
		response.Success(c, http.StatusOK, found)
		return
	}

	page, ok := h.pageFromQuery(c)
	if !ok {
		return
	}
	items, total, err := h.reviewers.List(c.Request.Context(), page)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"offset": page.Offset,
		"limit":  page.Limit,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reviewer ID")
		return
	}

	found, err := h.reviewers.GetByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reviewer ID")
		return
	}

	var req UpdateReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	updated, err := h.reviewers.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reviewer ID")
		return
	}

	if err := h.reviewers.Delete(c.Request.Context(), id); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// pageFromQuery parses offset/limit and writes the error response itself
// when either is not a number.
func (h *Handler) pageFromQuery(c *gin.Context) (repository.Page, bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid offset")
		return repository.Page{}, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid limit")
		return repository.Page{}, false
	}
	if limit > h.maxPage {
		limit = h.maxPage
	}
	return repository.Page{Offset: offset, Limit: limit}, true
}
