package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reviewboard/internal/pkg/response"
	"reviewboard/internal/repository"
)

type Handler struct {
	reviews repository.ReviewRepository
	maxPage int
}

func NewHandler(reviews repository.ReviewRepository, maxPage int) *Handler {
	return &Handler{reviews: reviews, maxPage: maxPage}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
	rg.GET("/reviews", h.List)
	rg.GET("/reviews/:id", h.GetByID)
	rg.PATCH("/reviews/:id", h.Update)
	rg.DELETE("/reviews/:id", h.Delete)

	rg.GET("/objects/:id/reviews", h.ListByObject)
	rg.GET("/objects/:id/statistics", h.Statistics)
	rg.GET("/reviewers/:id/reviews", h.ListByReviewer)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	created, err := h.reviews.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List returns a page of reviews, optionally filtered by reviewer_id and
// reviewed_object_id. Both filters together collapse to the unique pair
// lookup.
func (h *Handler) List(c *gin.Context) {
	var filter repository.ReviewFilter

	if raw := c.Query("reviewer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reviewer_id")
			return
		}
		filter.ReviewerID = &id
	}
	if raw := c.Query("reviewed_object_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reviewed_object_id")
			return
		}
		filter.ReviewedObjectID = &id
	}

	if filter.ReviewerID != nil && filter.ReviewedObjectID != nil {
		found, err := h.reviews.GetByReviewerAndObject(c.Request.Context(), *filter.ReviewerID, *filter.ReviewedObjectID)
		if err != nil {
			response.DomainError(c, err)
			return
		}
		response.Success(c, http.StatusOK, found)
		return
	}

	h.listPage(c, filter)
}

func (h *Handler) ListByObject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid object ID")
		return
	}
	h.listPage(c, repository.ReviewFilter{ReviewedObjectID: &id})
}

func (h *Handler) ListByReviewer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reviewer ID")
		return
	}
	h.listPage(c, repository.ReviewFilter{ReviewerID: &id})
}

func (h *Handler) listPage(c *gin.Context, filter repository.ReviewFilter) {
	page, ok := h.pageFromQuery(c)
	if !ok {
		return
	}
	items, total, err := h.reviews.List(c.Request.Context(), filter, page)
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
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	found, err := h.reviews.GetByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	updated, err := h.reviews.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) Statistics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid object ID")
		return
	}

	stats, err := h.reviews.Statistics(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
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
