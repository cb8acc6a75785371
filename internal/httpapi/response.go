// Package httpapi exposes the catalogue over HTTP. Handlers are thin:
// they bind input, call the store and translate its outcomes into status
// codes. All validation failures map to 422, absence on a point lookup to
// 404, upstream database failures to 500.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
	"github.com/openmusicarchive/catalogue/internal/catalogue/store"
	"github.com/openmusicarchive/catalogue/internal/supabase"
)

const (
	minQueryLen = 2
	maxQueryLen = 50
	minLimit    = 1
	maxLimit    = 100
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError maps a store or validation failure to a response. The order
// matters: a PartialFailureError wraps the upstream cause and must win
// over the plain APIError match.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *model.ValidationError
		partialErr    *store.PartialFailureError
		apiErr        *supabase.APIError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: validationErr.Message})
	case errors.As(err, &partialErr):
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: partialErr.Error()})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: apiErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: err.Error()})
	}
}

func writeNotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, errorResponse{Detail: what + " not found"})
}

func writeBadBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body: " + err.Error()})
}

// searchQuery extracts and bounds-checks the query parameter. A false
// return means the response has already been written.
func searchQuery(c *gin.Context) (string, bool) {
	query := c.Query("query")
	if n := utf8.RuneCountInString(query); n < minQueryLen || n > maxQueryLen {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Detail: "Query must be between 2 and 50 characters",
		})
		return "", false
	}
	return query, true
}

// searchLimit extracts and bounds-checks the limit parameter, defaulting
// when absent.
func searchLimit(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < minLimit || limit > maxLimit {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Detail: "Limit must be between 1 and 100",
		})
		return 0, false
	}
	return limit, true
}
