package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

// GET /persons/:id
func (h *Handler) GetPerson(c *gin.Context) {
	person, err := h.store.GetPersonByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if person == nil {
		writeNotFound(c, "Person")
		return
	}
	c.JSON(http.StatusOK, person)
}

// GET /persons?query=
func (h *Handler) SearchPersons(c *gin.Context) {
	query, ok := searchQuery(c)
	if !ok {
		return
	}
	persons, err := h.store.SearchPersons(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

// POST /persons
func (h *Handler) CreatePerson(c *gin.Context) {
	var in model.PersonCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBadBody(c, err)
		return
	}
	person, err := h.store.CreatePerson(c.Request.Context(), &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, person)
}

// POST /persons/bulk
//
// Creates run sequentially; a failure stops the loop and earlier creates
// are not rolled back.
func (h *Handler) BulkCreatePersons(c *gin.Context) {
	var inputs []model.PersonCreate
	if err := c.ShouldBindJSON(&inputs); err != nil {
		writeBadBody(c, err)
		return
	}

	created := make([]model.Person, 0, len(inputs))
	for i := range inputs {
		person, err := h.store.CreatePerson(c.Request.Context(), &inputs[i])
		if err != nil {
			writeError(c, err)
			return
		}
		created = append(created, *person)
	}
	c.JSON(http.StatusCreated, created)
}
