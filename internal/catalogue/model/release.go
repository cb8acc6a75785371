package model

// Release is a physical or digital release carrying media items and a
// track listing.
type Release struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	ReleaseDate     *Date              `json:"release_date,omitempty"`
	ReleaseCategory ReleaseCategory    `json:"release_category"`
	CatalogNumber   *string            `json:"catalog_number,omitempty"`
	PublisherNumber *string            `json:"publisher_number,omitempty"`
	Label           *string            `json:"label,omitempty"`
	Region          *string            `json:"region,omitempty"`
	ReleaseStage    ReleaseStage       `json:"release_stage"`
	CoverArtURL     *string            `json:"cover_art_url,omitempty"`
	TotalDiscs      int                `json:"total_discs"`
	TotalTracks     int                `json:"total_tracks"`
	Notes           *string            `json:"notes,omitempty"`
	MediaItems      []ReleaseMediaItem `json:"media_items"`
}

// ReleaseMediaItem is one medium a release was issued on.
type ReleaseMediaItem struct {
	ID                 string             `json:"id"`
	MediumType         MediumType         `json:"medium_type"`
	FormatName         string             `json:"format_name"`
	Release            *Release           `json:"release,omitempty"`
	PlatformOrVendor   *string            `json:"platform_or_vendor,omitempty"`
	BitrateKbps        *int               `json:"bitrate_kbps,omitempty"`
	SampleRateHz       *int               `json:"sample_rate_hz,omitempty"`
	BitDepth           *int               `json:"bit_depth,omitempty"`
	RPM                *float64           `json:"rpm,omitempty"`
	Channels           *AudioChannel      `json:"channels,omitempty"`
	Packaging          *string            `json:"packaging,omitempty"`
	Accessories        *string            `json:"accessories,omitempty"`
	PressingDetails    map[string]any     `json:"pressing_details,omitempty"`
	SKU                *string            `json:"sku,omitempty"`
	Barcode            *string            `json:"barcode,omitempty"`
	CatalogVariation   *string            `json:"catalog_variation,omitempty"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	Notes              *string            `json:"notes,omitempty"`
}

// ReleaseTrack binds a version to a position within a release.
type ReleaseTrack struct {
	ID          string   `json:"id"`
	TrackNumber int      `json:"track_number"`
	DiscNumber  int      `json:"disc_number"`
	Side        *string  `json:"side,omitempty"`
	Release     *Release `json:"release,omitempty"`
	IsHidden    bool     `json:"is_hidden"`
	Notes       *string  `json:"notes,omitempty"`
}

// ReleaseRow mirrors a row of the releases table with its embeds.
type ReleaseRow struct {
	ReleaseID       string                 `json:"release_id"`
	Title           string                 `json:"title"`
	ReleaseDate     *Date                  `json:"release_date"`
	ReleaseCategory string                 `json:"release_category"`
	CatalogNumber   *string                `json:"catalog_number"`
	PublisherNumber *string                `json:"publisher_number"`
	Label           *string                `json:"label"`
	Region          *string                `json:"region"`
	ReleaseStage    string                 `json:"release_stage"`
	CoverArtURL     *string                `json:"cover_art_url"`
	TotalDiscs      int                    `json:"total_discs"`
	TotalTracks     int                    `json:"total_tracks"`
	Notes           *string                `json:"notes"`
	MediaItems      []*ReleaseMediaItemRow `json:"release_media_items"`
}

// ReleaseMediaItemRow mirrors a row of the release_media_items table.
type ReleaseMediaItemRow struct {
	MediaItemID        string         `json:"media_item_id"`
	MediumType         string         `json:"medium_type"`
	FormatName         string         `json:"format_name"`
	Release            *ReleaseRow    `json:"release"`
	PlatformOrVendor   *string        `json:"platform_or_vendor"`
	BitrateKbps        *int           `json:"bitrate_kbps"`
	SampleRateHz       *int           `json:"sample_rate_hz"`
	BitDepth           *int           `json:"bit_depth"`
	RPM                *float64       `json:"rpm"`
	Channels           *string        `json:"channels"`
	Packaging          *string        `json:"packaging"`
	Accessories        *string        `json:"accessories"`
	PressingDetails    map[string]any `json:"pressing_details"`
	SKU                *string        `json:"sku"`
	Barcode            *string        `json:"barcode"`
	CatalogVariation   *string        `json:"catalog_variation"`
	AvailabilityStatus string         `json:"availability_status"`
	Notes              *string        `json:"notes"`
}

// ReleaseTrackRow mirrors a row of the release_tracks table.
type ReleaseTrackRow struct {
	ReleaseTrackID string      `json:"release_track_id"`
	TrackNumber    int         `json:"track_number"`
	DiscNumber     int         `json:"disc_number"`
	Side           *string     `json:"side"`
	Release        *ReleaseRow `json:"release"`
	IsHidden       bool        `json:"is_hidden"`
	Notes          *string     `json:"notes"`
}

// ReleaseFromRow maps a raw releases row and its media items.
func ReleaseFromRow(r *ReleaseRow) (*Release, error) {
	if r == nil {
		return nil, nil
	}
	if r.ReleaseID == "" {
		return nil, integrityf("release row is missing release_id")
	}
	items := make([]ReleaseMediaItem, 0, len(r.MediaItems))
	for _, ir := range r.MediaItems {
		item, err := ReleaseMediaItemFromRow(ir)
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, *item)
		}
	}
	category := ReleaseCategory(r.ReleaseCategory)
	if category == "" {
		category = ReleaseCategorySingle
	}
	stage := ReleaseStage(r.ReleaseStage)
	if stage == "" {
		stage = ReleaseStageInitial
	}
	return &Release{
		ID:              r.ReleaseID,
		Title:           r.Title,
		ReleaseDate:     r.ReleaseDate,
		ReleaseCategory: category,
		CatalogNumber:   r.CatalogNumber,
		PublisherNumber: r.PublisherNumber,
		Label:           r.Label,
		Region:          r.Region,
		ReleaseStage:    stage,
		CoverArtURL:     r.CoverArtURL,
		TotalDiscs:      r.TotalDiscs,
		TotalTracks:     r.TotalTracks,
		Notes:           r.Notes,
		MediaItems:      items,
	}, nil
}

// ReleaseMediaItemFromRow maps a raw release_media_items row.
func ReleaseMediaItemFromRow(r *ReleaseMediaItemRow) (*ReleaseMediaItem, error) {
	if r == nil {
		return nil, nil
	}
	if r.MediaItemID == "" {
		return nil, integrityf("release media item row is missing media_item_id")
	}
	release, err := ReleaseFromRow(r.Release)
	if err != nil {
		return nil, err
	}
	var channels *AudioChannel
	if r.Channels != nil {
		c := AudioChannel(*r.Channels)
		channels = &c
	}
	availability := AvailabilityStatus(r.AvailabilityStatus)
	if availability == "" {
		availability = AvailabilityInPrint
	}
	return &ReleaseMediaItem{
		ID:                 r.MediaItemID,
		MediumType:         MediumType(r.MediumType),
		FormatName:         r.FormatName,
		Release:            release,
		PlatformOrVendor:   r.PlatformOrVendor,
		BitrateKbps:        r.BitrateKbps,
		SampleRateHz:       r.SampleRateHz,
		BitDepth:           r.BitDepth,
		RPM:                r.RPM,
		Channels:           channels,
		Packaging:          r.Packaging,
		Accessories:        r.Accessories,
		PressingDetails:    r.PressingDetails,
		SKU:                r.SKU,
		Barcode:            r.Barcode,
		CatalogVariation:   r.CatalogVariation,
		AvailabilityStatus: availability,
		Notes:              r.Notes,
	}, nil
}

// ReleaseTrackFromRow maps a raw release_tracks row.
func ReleaseTrackFromRow(r *ReleaseTrackRow) (*ReleaseTrack, error) {
	if r == nil {
		return nil, nil
	}
	if r.ReleaseTrackID == "" {
		return nil, integrityf("release track row is missing release_track_id")
	}
	release, err := ReleaseFromRow(r.Release)
	if err != nil {
		return nil, err
	}
	disc := r.DiscNumber
	if disc == 0 {
		disc = 1
	}
	return &ReleaseTrack{
		ID:          r.ReleaseTrackID,
		TrackNumber: r.TrackNumber,
		DiscNumber:  disc,
		Side:        r.Side,
		Release:     release,
		IsHidden:    r.IsHidden,
		Notes:       r.Notes,
	}, nil
}

// ReleaseTracksFromRows maps a list of raw rows, skipping nil entries.
func ReleaseTracksFromRows(rows []*ReleaseTrackRow) ([]ReleaseTrack, error) {
	out := make([]ReleaseTrack, 0, len(rows))
	for _, r := range rows {
		t, err := ReleaseTrackFromRow(r)
		if err != nil {
			return nil, err
		}
		if t != nil {
			out = append(out, *t)
		}
	}
	return out, nil
}
