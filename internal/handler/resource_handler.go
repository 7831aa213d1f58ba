package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner-api/internal/middleware"
	"github.com/noah-isme/study-planner-api/pkg/export"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
	"github.com/noah-isme/study-planner-api/pkg/response"
)

type resourceService[R any, C any, P any] interface {
	Name() string
	List(ctx context.Context, callerID string, params url.Values) ([]R, error)
	Get(ctx context.Context, callerID, id string) (*R, error)
	Create(ctx context.Context, callerID string, payload C) (*R, error)
	Update(ctx context.Context, callerID, id string, patch P) (*R, error)
	Delete(ctx context.Context, callerID, id string) error
}

// ExportLayout maps records onto the columns of a CSV or PDF export.
type ExportLayout[R any] struct {
	Title   string
	Columns []string
	Row     func(record R) []string
}

// ResourceHandler binds one owner-scoped resource to HTTP.
type ResourceHandler[R any, C any, P any] struct {
	service resourceService[R, C, P]
	layout  *ExportLayout[R]
	now     func() time.Time
}

// NewResourceHandler constructs a handler. layout may be nil for resources without export.
func NewResourceHandler[R any, C any, P any](svc resourceService[R, C, P], layout *ExportLayout[R]) *ResourceHandler[R, C, P] {
	return &ResourceHandler[R, C, P]{service: svc, layout: layout, now: time.Now}
}

// List responds with the caller's records matching the query filters.
func (h *ResourceHandler[R, C, P]) List(c *gin.Context) {
	callerID, ok := callerFrom(c)
	if !ok {
		return
	}
	records, err := h.service.List(c.Request.Context(), callerID, c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}

// Get responds with one record.
func (h *ResourceHandler[R, C, P]) Get(c *gin.Context) {
	callerID, ok := callerFrom(c)
	if !ok {
		return
	}
	record, err := h.service.Get(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// Create stores a new record owned by the caller.
func (h *ResourceHandler[R, C, P]) Create(c *gin.Context) {
	callerID, ok := callerFrom(c)
	if !ok {
		return
	}
	var payload C
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, payloadError(err, h.service.Name()))
		return
	}
	record, err := h.service.Create(c.Request.Context(), callerID, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Update applies the fields present in the body to the caller's record.
func (h *ResourceHandler[R, C, P]) Update(c *gin.Context) {
	callerID, ok := callerFrom(c)
	if !ok {
		return
	}
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, payloadError(err, h.service.Name()))
		return
	}
	record, err := h.service.Update(c.Request.Context(), callerID, c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// Delete removes the caller's record.
func (h *ResourceHandler[R, C, P]) Delete(c *gin.Context) {
	callerID, ok := callerFrom(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), callerID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, h.service.Name()+" deleted")
}

// Export renders the filtered list as CSV (default) or PDF.
func (h *ResourceHandler[R, C, P]) Export(c *gin.Context) {
	callerID, ok := callerFrom(c)
	if !ok {
		return
	}
	if h.layout == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export is not available for this resource"))
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error()))
		return
	}

	params := c.Request.URL.Query()
	params.Del("format")
	records, err := h.service.List(c.Request.Context(), callerID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	table := export.Table{Title: h.layout.Title, Columns: h.layout.Columns}
	for _, record := range records {
		table.Rows = append(table.Rows, h.layout.Row(record))
	}
	body, err := export.RendererFor(format).Render(table)
	if err != nil {
		response.Error(c, appErrors.Internal(err, "failed to render export"))
		return
	}

	filename := fmt.Sprintf("%s-%s.%s", strings.ToLower(h.layout.Title), h.now().UTC().Format("20060102-150405"), format)
	response.File(c, filename, format.ContentType(), body)
}

// callerFrom reads the authenticated identity placed by the JWT middleware and writes 401 when absent.
func callerFrom(c *gin.Context) (string, bool) {
	claims := middleware.Claims(c)
	if claims == nil || strings.TrimSpace(claims.UserID) == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

func payloadError(err error, resource string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest,
		fmt.Sprintf("invalid %s payload: %s", strings.ToLower(resource), err.Error()))
}
