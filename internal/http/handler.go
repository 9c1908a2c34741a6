// Package http exposes the camp service over a gin REST API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/middleware"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
)

// ResourceOption configures a ResourceHandler.
type ResourceOption func(*resourceOptions)

type resourceOptions struct {
	companyFilter bool
	readOnly      bool
	audit         middleware.LogSink
	createAction  string
	deleteAction  string
}

// WithCompanyFilter lets List narrow the result with ?company_id.
func WithCompanyFilter() ResourceOption {
	return func(o *resourceOptions) { o.companyFilter = true }
}

// ReadOnly registers only the List and Get routes.
func ReadOnly() ResourceOption {
	return func(o *resourceOptions) { o.readOnly = true }
}

// WithAudit records successful creates and deletes under the given actions.
// An empty action is not recorded.
func WithAudit(sink middleware.LogSink, createAction, deleteAction string) ResourceOption {
	return func(o *resourceOptions) {
		o.audit = sink
		o.createAction = createAction
		o.deleteAction = deleteAction
	}
}

// ResourceHandler serves the CRUD routes of one entity.
type ResourceHandler[T any] struct {
	svc  service.ResourceService[T]
	opts resourceOptions
}

// NewResourceHandler creates a CRUD handler over svc.
func NewResourceHandler[T any](svc service.ResourceService[T], opts ...ResourceOption) *ResourceHandler[T] {
	h := &ResourceHandler[T]{svc: svc}
	for _, opt := range opts {
		opt(&h.opts)
	}
	return h
}

// Register mounts the routes on rg. Both "" and "/" serve the collection.
func (h *ResourceHandler[T]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	if h.opts.readOnly {
		return
	}
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns every record, optionally narrowed to one company.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q := repository.Query{}
	if h.opts.companyFilter {
		companyID, ok := QueryID(c, "company_id")
		if !ok {
			builder.InvalidID("company_id")
			return
		}
		q = repository.ByCompany(companyID)
	}

	items, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(items)
}

// Get returns the record addressed by :id.
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(item)
}

// Create stores the record of the body and returns it with its id.
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	item, err := BuildRequest[T](c)
	if err != nil {
		builder.HandleError(err)
		return
	}
	if err := h.svc.Create(c.Request.Context(), item); err != nil {
		builder.HandleError(err)
		return
	}
	if h.opts.createAction != "" {
		middleware.AuditLog(h.opts.audit, c, h.opts.createAction, "Record created", nil)
	}
	builder.SuccessCreated(item)
}

// Update replaces the record addressed by :id with the body.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	item, err := BuildRequest[T](c)
	if err != nil {
		builder.HandleError(err)
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, item)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(updated)
}

// Delete removes the record addressed by :id.
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		builder.HandleError(err)
		return
	}
	if h.opts.deleteAction != "" {
		middleware.AuditLog(h.opts.audit, c, h.opts.deleteAction, "Record deleted",
			map[string]interface{}{"id": id})
	}
	c.Status(http.StatusNoContent)
}
