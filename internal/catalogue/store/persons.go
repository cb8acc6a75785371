package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

// GetPersonByID looks up a person by primary key. Absence is a nil result,
// not an error.
func (s *Store) GetPersonByID(ctx context.Context, id string) (*model.Person, error) {
	if err := model.ValidateUUID(id); err != nil {
		return nil, err
	}

	data, err := s.db.From("persons").
		Select("*").
		Eq("person_id", id).
		Limit(1).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.PersonRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode persons response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return model.PersonFromRow(rows[0])
}

// SearchPersons runs a full-text search over persons. Spaces in the query
// become AND conjunctions. No match is an empty list.
func (s *Store) SearchPersons(ctx context.Context, query string) ([]model.Person, error) {
	data, err := s.db.From("persons").
		Select("*").
		TextSearch("search_text", normalizeQuery(query)).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.PersonRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode persons response: %w", err)
	}
	return model.PersonsFromRows(rows)
}

// CreatePerson validates and inserts a person, returning the stored row.
func (s *Store) CreatePerson(ctx context.Context, in *model.PersonCreate) (*model.Person, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	data, err := s.db.From("persons").ExecuteInsert(ctx, in)
	if err != nil {
		return nil, err
	}

	var rows []*model.PersonRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode persons response: %w", err)
	}
	if len(rows) == 0 || rows[0].PersonID == "" {
		return nil, upstreamf("persons insert returned no row")
	}
	s.log.Info("person created", "person_id", rows[0].PersonID)
	return model.PersonFromRow(rows[0])
}
