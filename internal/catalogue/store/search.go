package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

const defaultSearchLimit = 20

// UnifiedSearch runs the cross-entity ranked search. Matching and ranking
// live in the unified_search procedure server-side; this only passes the
// normalized query through and maps the rows back.
func (s *Store) UnifiedSearch(ctx context.Context, query string, entityTypes []model.EntityType, limit int) ([]model.UnifiedSearchResult, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := map[string]any{
		"query_text":  normalizeQuery(query),
		"fetch_limit": limit,
	}

	values := url.Values{}
	values.Set("select", "*")
	if len(entityTypes) > 0 {
		types := make([]string, 0, len(entityTypes))
		for _, t := range entityTypes {
			types = append(types, string(t))
		}
		values.Set("entity_type", "in.("+strings.Join(types, ",")+")")
	}

	data, err := s.db.RPC(ctx, "unified_search", params, values.Encode())
	if err != nil {
		return nil, err
	}

	var rows []*model.UnifiedSearchResultRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode unified_search response: %w", err)
	}
	return model.UnifiedSearchResultsFromRows(rows)
}
