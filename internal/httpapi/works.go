package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

// GET /works/:id
func (h *Handler) GetWork(c *gin.Context) {
	work, err := h.store.GetWorkByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if work == nil {
		writeNotFound(c, "Work")
		return
	}
	c.JSON(http.StatusOK, work)
}

// GET /works?query=
func (h *Handler) SearchWorks(c *gin.Context) {
	query, ok := searchQuery(c)
	if !ok {
		return
	}
	works, err := h.store.SearchWorks(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, works)
}

// POST /works
func (h *Handler) CreateWork(c *gin.Context) {
	var in model.WorkCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBadBody(c, err)
		return
	}
	work, err := h.store.CreateWork(c.Request.Context(), &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, work)
}

// GET /works/:id/links
func (h *Handler) GetWorkLinks(c *gin.Context) {
	links, err := h.store.GetExternalLinks(c.Request.Context(), model.EntityTypeWork, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}
