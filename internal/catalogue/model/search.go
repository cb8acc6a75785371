package model

// UnifiedSearchResult is one ranked hit of the cross-entity search
// procedure. It is not a stored entity.
type UnifiedSearchResult struct {
	EntityType  EntityType `json:"entity_type"`
	EntityID    string     `json:"entity_id"`
	DisplayText string     `json:"display_text"`
	Rank        float64    `json:"rank"`
}

// UnifiedSearchResultRow mirrors a row returned by the unified_search
// procedure.
type UnifiedSearchResultRow struct {
	EntityType  string  `json:"entity_type"`
	EntityID    string  `json:"entity_id"`
	DisplayText string  `json:"display_text"`
	Rank        float64 `json:"rank"`
}

// UnifiedSearchResultFromRow maps a raw procedure row.
func UnifiedSearchResultFromRow(r *UnifiedSearchResultRow) (*UnifiedSearchResult, error) {
	if r == nil {
		return nil, nil
	}
	if r.EntityID == "" {
		return nil, integrityf("search result row is missing entity_id")
	}
	return &UnifiedSearchResult{
		EntityType:  EntityType(r.EntityType),
		EntityID:    r.EntityID,
		DisplayText: r.DisplayText,
		Rank:        r.Rank,
	}, nil
}

// UnifiedSearchResultsFromRows maps a list of raw rows, skipping nil
// entries.
func UnifiedSearchResultsFromRows(rows []*UnifiedSearchResultRow) ([]UnifiedSearchResult, error) {
	out := make([]UnifiedSearchResult, 0, len(rows))
	for _, r := range rows {
		res, err := UnifiedSearchResultFromRow(r)
		if err != nil {
			return nil, err
		}
		if res != nil {
			out = append(out, *res)
		}
	}
	return out, nil
}
