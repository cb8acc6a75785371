package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

// GET /artists/:id
func (h *Handler) GetArtist(c *gin.Context) {
	artist, err := h.store.GetArtistByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if artist == nil {
		writeNotFound(c, "Artist")
		return
	}
	c.JSON(http.StatusOK, artist)
}

// GET /artists?query=
func (h *Handler) SearchArtists(c *gin.Context) {
	query, ok := searchQuery(c)
	if !ok {
		return
	}
	artists, err := h.store.SearchArtists(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

// POST /artists
func (h *Handler) CreateArtist(c *gin.Context) {
	var in model.ArtistCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBadBody(c, err)
		return
	}
	artist, err := h.store.CreateArtist(c.Request.Context(), &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artist)
}
