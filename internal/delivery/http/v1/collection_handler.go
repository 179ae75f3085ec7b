package v1

import (
	"context"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/metrics"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// collectionUsecase is the shape every ordered portfolio collection
// exposes. The concrete usecases (experiences, skills, projects, ...)
// all satisfy it structurally.
type collectionUsecase[T any, I any, P any] interface {
	Create(ctx context.Context, input I) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ascending bool) ([]T, error)
	Reorder(ctx context.Context, id string, newIndex int) error
	Compact(ctx context.Context) error
}

// CollectionHandler serves one ordered collection: public listing,
// protected mutations, and the reorder/compact position operations.
type CollectionHandler[T any, I any, P any] struct {
	uc      collectionUsecase[T, I, P]
	noun    string
	collect *metrics.Collector
}

type ReorderRequest struct {
	NewIndex int `json:"new_index" binding:"min=0"`
}

// RegisterCollection wires the standard route set for one collection
// under its path segment, e.g. /v1/skills and /v1/skills/:id/reorder.
func RegisterCollection[T any, I any, P any](
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
	path string,
	noun string,
	uc collectionUsecase[T, I, P],
	collect *metrics.Collector,
) {
	handler := &CollectionHandler[T, I, P]{uc: uc, noun: noun, collect: collect}

	public.GET("/"+path, handler.List)

	group := protected.Group("/" + path)
	{
		group.POST("", handler.Create)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
		group.POST("/:id/reorder", handler.Reorder)
		group.POST("/compact", handler.Compact)
	}
}

// List returns the collection in curated order. ?order=desc flips it.
func (h *CollectionHandler[T, I, P]) List(c *gin.Context) {
	ascending := c.DefaultQuery("order", "asc") != "desc"

	items, err := h.uc.List(c.Request.Context(), ascending)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.noun+" list retrieved", items)
}

func (h *CollectionHandler[T, I, P]) Create(c *gin.Context) {
	var input I
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, err := h.uc.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, h.noun+" created", item)
}

func (h *CollectionHandler[T, I, P]) Update(c *gin.Context) {
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, err := h.uc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.noun+" updated", item)
}

func (h *CollectionHandler[T, I, P]) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.noun+" deleted", nil)
}

// Reorder moves one entry to a new position, shifting its neighbors.
func (h *CollectionHandler[T, I, P]) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.uc.Reorder(c.Request.Context(), c.Param("id"), req.NewIndex); err != nil {
		c.Error(err)
		return
	}
	h.collect.RecordReorder()
	response.Success(c, http.StatusOK, h.noun+" reordered", nil)
}

// Compact renumbers the collection to a gapless 0..n-1 sequence.
func (h *CollectionHandler[T, I, P]) Compact(c *gin.Context) {
	if err := h.uc.Compact(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.noun+" positions compacted", nil)
}
