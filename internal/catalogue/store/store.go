// Package store implements the data-access layer of the catalogue. It
// builds PostgREST queries against the hosted database, maps the nested
// rows it returns into domain objects, and runs multi-step creates as
// sagas with compensating deletes.
package store

import (
	"net/http"
	"strings"

	"github.com/openmusicarchive/catalogue/internal/supabase"
	"github.com/openmusicarchive/catalogue/pkg/logger"
)

// Store is the catalogue data-access layer. It holds the single shared
// Supabase client, injected at construction.
type Store struct {
	db  *supabase.Client
	log *logger.Logger
}

// New creates a Store around an existing Supabase client.
func New(db *supabase.Client, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{db: db, log: log}
}

// compact strips the whitespace out of a multi-line projection literal so
// it can be written readably but sent as a single select parameter.
func compact(projection string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, projection)
}

// normalizeQuery joins a free-text query into a single conjunction the
// full-text engine understands.
func normalizeQuery(query string) string {
	return strings.ReplaceAll(query, " ", "+")
}

// upstreamf reports a malformed upstream response, such as an insert that
// returned no row, as an API failure.
func upstreamf(message string) error {
	return &supabase.APIError{Status: http.StatusInternalServerError, Message: message}
}
