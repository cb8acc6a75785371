package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

// GetExternalLinks fetches the external links attached to an entity. An
// entity without links yields an empty list.
func (s *Store) GetExternalLinks(ctx context.Context, entityType model.EntityType, entityID string) ([]model.WorkExternalLink, error) {
	if err := model.ValidateUUID(entityID); err != nil {
		return nil, err
	}

	data, err := s.db.From("external_links").
		Select("link_id,label,url,source_verified").
		Eq("entity_type", string(entityType)).
		Eq("entity_id", entityID).
		Order("label", true).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.WorkExternalLinkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode external_links response: %w", err)
	}
	return model.WorkExternalLinksFromRows(rows), nil
}
