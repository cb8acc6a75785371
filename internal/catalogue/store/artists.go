package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
)

// artistProjection fetches an artist with its person, memberships and
// credits in one round trip. Embeds are aliased to the relation names the
// row types decode.
var artistProjection = compact(`
	*,
	person:persons(*),
	artist_memberships(*, person:persons(*)),
	credits(*, work:works(*), version:versions(*))
`)

// GetArtistByID looks up an artist with its nested relations. Absence is
// a nil result, not an error.
func (s *Store) GetArtistByID(ctx context.Context, id string) (*model.Artist, error) {
	if err := model.ValidateUUID(id); err != nil {
		return nil, err
	}

	data, err := s.db.From("artists").
		Select(artistProjection).
		Eq("artist_id", id).
		Limit(1).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.ArtistRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode artists response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return model.ArtistFromRow(rows[0])
}

// SearchArtists runs a full-text search over artists with the same nested
// projection as the point lookup.
func (s *Store) SearchArtists(ctx context.Context, query string) ([]model.Artist, error) {
	data, err := s.db.From("artists").
		Select(artistProjection).
		TextSearch("search_text", normalizeQuery(query)).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.ArtistRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode artists response: %w", err)
	}
	return model.ArtistsFromRows(rows)
}

// CreateArtist validates and inserts an artist; for groups the members
// follow in a batch insert scoped by the new artist's ID. A failed member
// insert deletes the artist row again before the failure is surfaced.
func (s *Store) CreateArtist(ctx context.Context, in *model.ArtistCreate) (*model.Artist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var artistID string

	steps := []sagaStep{
		{
			name: "insert artist",
			run: func(ctx context.Context) error {
				data, err := s.db.From("artists").ExecuteInsert(ctx, in.InsertRow())
				if err != nil {
					return err
				}
				var rows []*model.ArtistRow
				if err := json.Unmarshal(data, &rows); err != nil {
					return fmt.Errorf("decode artists response: %w", err)
				}
				if len(rows) == 0 || rows[0].ArtistID == "" {
					return upstreamf("artists insert returned no row")
				}
				artistID = rows[0].ArtistID
				return nil
			},
			compensate: func(ctx context.Context) error {
				_, err := s.db.From("artists").Eq("artist_id", artistID).ExecuteDelete(ctx)
				return err
			},
		},
	}

	if len(in.Members) > 0 {
		steps = append(steps, sagaStep{
			name: "insert artist memberships",
			run: func(ctx context.Context) error {
				payload := make([]model.MembershipInsertRow, 0, len(in.Members))
				for _, m := range in.Members {
					payload = append(payload, model.MembershipInsertRow{
						ArtistMembershipCreate: m,
						GroupID:                artistID,
					})
				}
				_, err := s.db.From("artist_memberships").ExecuteInsert(ctx, payload)
				return err
			},
		})
	}

	if err := s.runSaga(ctx, steps); err != nil {
		return nil, err
	}

	s.log.Info("artist created", "artist_id", artistID, "artist_type", in.ArtistType)
	return s.GetArtistByID(ctx, artistID)
}
