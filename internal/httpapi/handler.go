package httpapi

import (
	"github.com/openmusicarchive/catalogue/internal/catalogue/store"
	"github.com/openmusicarchive/catalogue/pkg/logger"
)

// Handler carries the shared dependencies of all route handlers.
type Handler struct {
	store *store.Store
	log   *logger.Logger
}

// NewHandler creates the route handler set.
func NewHandler(st *store.Store, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{store: st, log: log}
}
