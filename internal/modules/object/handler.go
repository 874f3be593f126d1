package object

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reviewboard/internal/pkg/response"
	"reviewboard/internal/repository"
)

type Handler struct {
	objects repository.ReviewedObjectRepository
	maxPage int
}

func NewHandler(objects repository.ReviewedObjectRepository, maxPage int) *Handler {
	return &Handler{objects: objects, maxPage: maxPage}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/objects", h.Create)
	rg.GET("/objects", h.List)
	rg.GET("/objects/:id", h.GetByID)
	rg.PATCH("/objects/:id", h.Update)
	rg.DELETE("/objects/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	created, err := h.objects.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List returns a page of objects, optionally filtered by object_type. When
// both object_type and object_key are given it becomes an exact lookup.
func (h *Handler) List(c *gin.Context) {
	objectType := c.Query("object_type")
	objectKey := c.Query("object_key")

	if objectType != "" && objectKey != "" {
		found, err := h.objects.GetByTypeAndKey(c.Request.Context(), objectType, objectKey)
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
	items, total, err := h.objects.List(c.Request.Context(), repository.ObjectFilter{ObjectType: objectType}, page)
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
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid object ID")
		return
	}

	found, err := h.objects.GetByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid object ID")
		return
	}

	var req UpdateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	updated, err := h.objects.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid object ID")
		return
	}

	if err := h.objects.Delete(c.Request.Context(), id); err != nil {
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
