package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

// workProjection fetches a work with its versions (one based-on level,
// primary artist, release tracks, credits), genres and credits in one
// round trip.
var workProjection = compact(`
	*,
	versions(
		*,
		based_on_version:versions!based_on_version_id(*, primary_artist:artists(*)),
		primary_artist:artists(*, person:persons(*), artist_memberships(*, person:persons(*))),
		release_tracks(*, release:releases(*, release_media_items(*))),
		credits(
			*,
			person:persons(*),
			artist:artists(*, person:persons(*), artist_memberships(*, person:persons(*)))
		)
	),
	work_genres(genre:genres(*)),
	credits(*, person:persons(*), artist:artists(*, artist_memberships(*, person:persons(*))))
`)

// GetWorkByID looks up a work with its nested relations. Absence is a nil
// result, not an error.
func (s *Store) GetWorkByID(ctx context.Context, id string) (*model.Work, error) {
	if err := model.ValidateUUID(id); err != nil {
		return nil, err
	}

	data, err := s.db.From("works").
		Select(workProjection).
		Eq("work_id", id).
		Limit(1).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.WorkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode works response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return model.WorkFromRow(rows[0])
}

// SearchWorks runs a full-text search over works with the same nested
// projection as the point lookup.
func (s *Store) SearchWorks(ctx context.Context, query string) ([]model.Work, error) {
	data, err := s.db.From("works").
		Select(workProjection).
		TextSearch("search_text", normalizeQuery(query)).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.WorkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode works response: %w", err)
	}
	return model.WorksFromRows(rows)
}

// CreateWork validates and inserts a work, then its versions, credits,
// genre links and external links, each scoped by the new work's ID. Child
// insert failures roll the earlier steps back in reverse order; the
// created work is re-read at the end so the response carries the full
// nested shape.
func (s *Store) CreateWork(ctx context.Context, in *model.WorkCreate) (*model.Work, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var workID string

	deleteByWorkID := func(table string) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			_, err := s.db.From(table).Eq("work_id", workID).ExecuteDelete(ctx)
			return err
		}
	}

	steps := []sagaStep{
		{
			name: "insert work",
			run: func(ctx context.Context) error {
				data, err := s.db.From("works").ExecuteInsert(ctx, in.InsertRow())
				if err != nil {
					return err
				}
				var rows []*model.WorkRow
				if err := json.Unmarshal(data, &rows); err != nil {
					return fmt.Errorf("decode works response: %w", err)
				}
				if len(rows) == 0 || rows[0].WorkID == "" {
					return upstreamf("works insert returned no row")
				}
				workID = rows[0].WorkID
				return nil
			},
			compensate: func(ctx context.Context) error {
				_, err := s.db.From("works").Eq("work_id", workID).ExecuteDelete(ctx)
				return err
			},
		},
	}

	if len(in.Versions) > 0 {
		steps = append(steps, sagaStep{
			name: "insert versions",
			run: func(ctx context.Context) error {
				payload := make([]model.VersionInsertRow, 0, len(in.Versions))
				for _, v := range in.Versions {
					payload = append(payload, model.VersionInsertRow{WorkVersionCreate: v, WorkID: workID})
				}
				_, err := s.db.From("versions").ExecuteInsert(ctx, payload)
				return err
			},
			compensate: deleteByWorkID("versions"),
		})
	}

	if len(in.Credits) > 0 {
		steps = append(steps, sagaStep{
			name: "insert credits",
			run: func(ctx context.Context) error {
				payload := make([]model.CreditInsertRow, 0, len(in.Credits))
				for _, c := range in.Credits {
					payload = append(payload, model.CreditInsertRow{WorkCreditCreate: c, WorkID: workID})
				}
				_, err := s.db.From("credits").ExecuteInsert(ctx, payload)
				return err
			},
			compensate: deleteByWorkID("credits"),
		})
	}

	if len(in.GenreIDs) > 0 {
		steps = append(steps, sagaStep{
			name: "insert work genres",
			run: func(ctx context.Context) error {
				payload := make([]model.WorkGenreInsertRow, 0, len(in.GenreIDs))
				for _, id := range in.GenreIDs {
					payload = append(payload, model.WorkGenreInsertRow{WorkID: workID, GenreID: id})
				}
				_, err := s.db.From("work_genres").ExecuteInsert(ctx, payload)
				return err
			},
			compensate: deleteByWorkID("work_genres"),
		})
	}

	if len(in.ExternalLinks) > 0 {
		steps = append(steps, sagaStep{
			name: "insert external links",
			run: func(ctx context.Context) error {
				payload := make([]model.ExternalLinkInsertRow, 0, len(in.ExternalLinks))
				for _, l := range in.ExternalLinks {
					payload = append(payload, model.ExternalLinkInsertRow{
						WorkExternalLinkCreate: l,
						EntityType:             model.EntityTypeWork,
						EntityID:               workID,
					})
				}
				_, err := s.db.From("external_links").ExecuteInsert(ctx, payload)
				return err
			},
			compensate: func(ctx context.Context) error {
				_, err := s.db.From("external_links").
					Eq("entity_type", string(model.EntityTypeWork)).
					Eq("entity_id", workID).
					ExecuteDelete(ctx)
				return err
			},
		})
	}

	if err := s.runSaga(ctx, steps); err != nil {
		return nil, err
	}

	s.log.Info("work created", "work_id", workID,
		"versions", len(in.Versions), "credits", len(in.Credits))
	return s.GetWorkByID(ctx, workID)
}
