package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"jobdesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: message})
}

// writeError maps domain errors to responses. Store errors fall
// through to a generic 500; the driver message is never echoed.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIAL", "invalid or expired token")
	case errors.Is(err, domain.ErrForbidden):
		writeErrorCode(c, http.StatusForbidden, "FORBIDDEN", "not a member of this company")
	case errors.Is(err, domain.ErrNotFound):
		writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrConflict):
		writeErrorCode(c, http.StatusConflict, "CONFLICT", "already exists")
	case errors.Is(err, domain.ErrInvalidArgument):
		writeErrorCode(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

// writeBindingError turns gin/validator binding failures into the
// field-level 400 shape the API promises.
func writeBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[strings.ToLower(fe.Field())] = bindingReason(fe)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION_FAILED",
			Message: "invalid request body",
			Details: details,
		})
		return
	}
	writeErrorCode(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
}

func bindingReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must have at least " + fe.Param() + " entries"
	default:
		return "invalid value"
	}
}

func writeFieldError(c *gin.Context, field, reason string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "invalid request body",
		Details: map[string]string{field: reason},
	})
}

const (
	defaultPerPage = 10
	maxPerPage     = 50
)

type pageMeta struct {
	Page     int    `json:"page"`
	PerPage  int    `json:"per_page"`
	Total    int64  `json:"total"`
	Pages    int    `json:"pages"`
	HasNext  bool   `json:"has_next"`
	HasPrev  bool   `json:"has_prev"`
	NextPage *int   `json:"next_page"`
	PrevPage *int   `json:"prev_page"`
}

func parsePageQuery(c *gin.Context) (page, perPage int) {
	page = queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage = queryInt(c, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func buildPageMeta(page, perPage int, total int64) pageMeta {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	meta := pageMeta{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
	if meta.HasNext {
		next := page + 1
		meta.NextPage = &next
	}
	if meta.HasPrev {
		prev := page - 1
		meta.PrevPage = &prev
	}
	return meta
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeErrorCode(c, http.StatusBadRequest, "VALIDATION_FAILED", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
