package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

const defaultSearchLimit = 20

// GET /search?query=&entity_types=&limit=
func (h *Handler) UnifiedSearch(c *gin.Context) {
	query, ok := searchQuery(c)
	if !ok {
		return
	}
	limit, ok := searchLimit(c, defaultSearchLimit)
	if !ok {
		return
	}

	var entityTypes []model.EntityType
	if raw := c.Query("entity_types"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			t, err := model.ParseEntityType(strings.TrimSpace(part))
			if err != nil {
				writeError(c, err)
				return
			}
			entityTypes = append(entityTypes, t)
		}
	}

	results, err := h.store.UnifiedSearch(c.Request.Context(), query, entityTypes, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
