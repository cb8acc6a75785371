package model

// Genre is a tag applied to works through a join relation.
type Genre struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// GenreRow mirrors a row of the genres table.
type GenreRow struct {
	GenreID     string  `json:"genre_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// GenreFromRow maps a raw genres row.
func GenreFromRow(r *GenreRow) (*Genre, error) {
	if r == nil {
		return nil, nil
	}
	if r.GenreID == "" {
		return nil, integrityf("genre row is missing genre_id")
	}
	return &Genre{ID: r.GenreID, Name: r.Name, Description: r.Description}, nil
}

// WorkGenreRow mirrors a row of the work_genres join table with its
// embedded genre.
type WorkGenreRow struct {
	Genre *GenreRow `json:"genre"`
}

// GenresFromWorkGenreRows unwraps work_genres join rows into genres,
// skipping rows whose genre embed is absent.
func GenresFromWorkGenreRows(rows []*WorkGenreRow) ([]Genre, error) {
	out := make([]Genre, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		g, err := GenreFromRow(r.Genre)
		if err != nil {
			return nil, err
		}
		if g != nil {
			out = append(out, *g)
		}
	}
	return out, nil
}

// WorkExternalLink is a labelled outbound URL attached to a work.
type WorkExternalLink struct {
	Label          string `json:"label"`
	URL            string `json:"url"`
	SourceVerified bool   `json:"source_verified"`
}

// WorkExternalLinkRow mirrors a row of the external_links table.
type WorkExternalLinkRow struct {
	LinkID         string `json:"link_id"`
	Label          string `json:"label"`
	URL            string `json:"url"`
	SourceVerified bool   `json:"source_verified"`
}

// WorkExternalLinksFromRows maps raw external_links rows, skipping nil
// entries.
func WorkExternalLinksFromRows(rows []*WorkExternalLinkRow) []WorkExternalLink {
	out := make([]WorkExternalLink, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, WorkExternalLink{Label: r.Label, URL: r.URL, SourceVerified: r.SourceVerified})
	}
	return out
}

// Work is an abstract musical work with its renditions, genres, credits
// and external links.
type Work struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Language        *string            `json:"language,omitempty"`
	Titles          []map[string]any   `json:"titles,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Identifiers     []map[string]any   `json:"identifiers,omitempty"`
	OriginYearStart *int               `json:"origin_year_start,omitempty"`
	OriginYearEnd   *int               `json:"origin_year_end,omitempty"`
	OriginCountry   *string            `json:"origin_country,omitempty"`
	Themes          []string           `json:"themes,omitempty"`
	Sentiment       *string            `json:"sentiment,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	Versions        []Version          `json:"versions"`
	Genres          []Genre            `json:"genres"`
	Credits         []Credit           `json:"credits"`
	ExternalLinks   []WorkExternalLink `json:"external_links"`
}

// Version is a specific rendition of a work. BasedOnVersion is resolved
// exactly one level deep; a deeper chain is reachable only through
// follow-up lookups.
type Version struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Work              *Work             `json:"work,omitempty"`
	VersionType       VersionType       `json:"version_type"`
	BasedOnVersion    *Version          `json:"based_on_version,omitempty"`
	PrimaryArtist     *Artist           `json:"primary_artist,omitempty"`
	ReleaseDate       *Date             `json:"release_date,omitempty"`
	ReleaseYear       *int              `json:"release_year,omitempty"`
	DurationSeconds   *int              `json:"duration_seconds,omitempty"`
	BPM               *int              `json:"bpm,omitempty"`
	KeySignature      *string           `json:"key_signature,omitempty"`
	LyricsReference   *string           `json:"lyrics_reference,omitempty"`
	CompletenessLevel CompletenessLevel `json:"completeness_level"`
	Notes             *string           `json:"notes,omitempty"`
	ReleaseTracks     []ReleaseTrack    `json:"release_tracks"`
}

// Credit attributes a contribution to either a person or an artist,
// scoped to a work or a version.
type Credit struct {
	ID          string   `json:"id"`
	Work        *Work    `json:"work,omitempty"`
	Version     *Version `json:"version,omitempty"`
	Artist      *Artist  `json:"artist,omitempty"`
	Person      *Person  `json:"person,omitempty"`
	Role        *string  `json:"role,omitempty"`
	IsPrimary   bool     `json:"is_primary"`
	CreditOrder *int     `json:"credit_order,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// WorkRow mirrors a row of the works table with its aliased embeds.
type WorkRow struct {
	WorkID          string           `json:"work_id"`
	Title           string           `json:"title"`
	Language        *string          `json:"language"`
	Titles          []map[string]any `json:"titles"`
	Description     *string          `json:"description"`
	Identifiers     []map[string]any `json:"identifiers"`
	OriginYearStart *int             `json:"origin_year_start"`
	OriginYearEnd   *int             `json:"origin_year_end"`
	OriginCountry   *string          `json:"origin_country"`
	Themes          []string         `json:"themes"`
	Sentiment       *string          `json:"sentiment"`
	Notes           *string          `json:"notes"`
	Versions        []*VersionRow    `json:"versions"`
	WorkGenres      []*WorkGenreRow  `json:"work_genres"`
	Credits         []*CreditRow     `json:"credits"`
}

// VersionRow mirrors a row of the versions table with its aliased embeds.
type VersionRow struct {
	VersionID         string             `json:"version_id"`
	Title             string             `json:"title"`
	Work              *WorkRow           `json:"work"`
	VersionType       string             `json:"version_type"`
	BasedOnVersion    *VersionRow        `json:"based_on_version"`
	PrimaryArtist     *ArtistRow         `json:"primary_artist"`
	ReleaseDate       *Date              `json:"release_date"`
	ReleaseYear       *int               `json:"release_year"`
	DurationSeconds   *int               `json:"duration_seconds"`
	BPM               *int               `json:"bpm"`
	KeySignature      *string            `json:"key_signature"`
	LyricsReference   *string            `json:"lyrics_reference"`
	CompletenessLevel string             `json:"completeness_level"`
	Notes             *string            `json:"notes"`
	ReleaseTracks     []*ReleaseTrackRow `json:"release_tracks"`
}

// CreditRow mirrors a row of the credits table with its aliased embeds.
type CreditRow struct {
	CreditID    string      `json:"credit_id"`
	Work        *WorkRow    `json:"work"`
	Version     *VersionRow `json:"version"`
	Artist      *ArtistRow  `json:"artist"`
	Person      *PersonRow  `json:"person"`
	Role        *string     `json:"role"`
	IsPrimary   bool        `json:"is_primary"`
	CreditOrder *int        `json:"credit_order"`
	Instruments []string    `json:"instruments"`
	Notes       *string     `json:"notes"`
}

// WorkFromRow maps a raw works row and its nested versions, genres and
// credits. A nil row maps to nil; a missing work_id fails.
func WorkFromRow(r *WorkRow) (*Work, error) {
	if r == nil {
		return nil, nil
	}
	if r.WorkID == "" {
		return nil, integrityf("work row is missing work_id")
	}
	versions, err := VersionsFromRows(r.Versions)
	if err != nil {
		return nil, err
	}
	genres, err := GenresFromWorkGenreRows(r.WorkGenres)
	if err != nil {
		return nil, err
	}
	credits, err := CreditsFromRows(r.Credits)
	if err != nil {
		return nil, err
	}
	return &Work{
		ID:              r.WorkID,
		Title:           r.Title,
		Language:        r.Language,
		Titles:          r.Titles,
		Description:     r.Description,
		Identifiers:     r.Identifiers,
		OriginYearStart: r.OriginYearStart,
		OriginYearEnd:   r.OriginYearEnd,
		OriginCountry:   r.OriginCountry,
		Themes:          r.Themes,
		Sentiment:       r.Sentiment,
		Notes:           r.Notes,
		Versions:        versions,
		Genres:          genres,
		Credits:         credits,
		ExternalLinks:   []WorkExternalLink{},
	}, nil
}

// WorksFromRows maps a list of raw rows, skipping nil entries.
func WorksFromRows(rows []*WorkRow) ([]Work, error) {
	out := make([]Work, 0, len(rows))
	for _, r := range rows {
		w, err := WorkFromRow(r)
		if err != nil {
			return nil, err
		}
		if w != nil {
			out = append(out, *w)
		}
	}
	return out, nil
}

// VersionFromRow maps a raw versions row. The based-on chain is cut after
// one level regardless of how deep the embed goes.
func VersionFromRow(r *VersionRow) (*Version, error) {
	return versionFromRow(r, 1)
}

func versionFromRow(r *VersionRow, basedOnDepth int) (*Version, error) {
	if r == nil {
		return nil, nil
	}
	if r.VersionID == "" {
		return nil, integrityf("version row is missing version_id")
	}
	work, err := WorkFromRow(r.Work)
	if err != nil {
		return nil, err
	}
	var basedOn *Version
	if basedOnDepth > 0 {
		basedOn, err = versionFromRow(r.BasedOnVersion, basedOnDepth-1)
		if err != nil {
			return nil, err
		}
	}
	artist, err := ArtistFromRow(r.PrimaryArtist)
	if err != nil {
		return nil, err
	}
	tracks, err := ReleaseTracksFromRows(r.ReleaseTracks)
	if err != nil {
		return nil, err
	}
	completeness := CompletenessLevel(r.CompletenessLevel)
	if completeness == "" {
		completeness = CompletenessComplete
	}
	return &Version{
		ID:                r.VersionID,
		Title:             r.Title,
		Work:              work,
		VersionType:       VersionType(r.VersionType),
		BasedOnVersion:    basedOn,
		PrimaryArtist:     artist,
		ReleaseDate:       r.ReleaseDate,
		ReleaseYear:       r.ReleaseYear,
		DurationSeconds:   r.DurationSeconds,
		BPM:               r.BPM,
		KeySignature:      r.KeySignature,
		LyricsReference:   r.LyricsReference,
		CompletenessLevel: completeness,
		Notes:             r.Notes,
		ReleaseTracks:     tracks,
	}, nil
}

// VersionsFromRows maps a list of raw rows, skipping nil entries.
func VersionsFromRows(rows []*VersionRow) ([]Version, error) {
	out := make([]Version, 0, len(rows))
	for _, r := range rows {
		v, err := VersionFromRow(r)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out = append(out, *v)
		}
	}
	return out, nil
}

// CreditFromRow maps a raw credits row.
func CreditFromRow(r *CreditRow) (*Credit, error) {
	if r == nil {
		return nil, nil
	}
	if r.CreditID == "" {
		return nil, integrityf("credit row is missing credit_id")
	}
	work, err := WorkFromRow(r.Work)
	if err != nil {
		return nil, err
	}
	version, err := VersionFromRow(r.Version)
	if err != nil {
		return nil, err
	}
	artist, err := ArtistFromRow(r.Artist)
	if err != nil {
		return nil, err
	}
	person, err := PersonFromRow(r.Person)
	if err != nil {
		return nil, err
	}
	return &Credit{
		ID:          r.CreditID,
		Work:        work,
		Version:     version,
		Artist:      artist,
		Person:      person,
		Role:        r.Role,
		IsPrimary:   r.IsPrimary,
		CreditOrder: r.CreditOrder,
		Instruments: r.Instruments,
		Notes:       r.Notes,
	}, nil
}

// CreditsFromRows maps a list of raw rows, skipping nil entries.
func CreditsFromRows(rows []*CreditRow) ([]Credit, error) {
	out := make([]Credit, 0, len(rows))
	for _, r := range rows {
		c, err := CreditFromRow(r)
		if err != nil {
			return nil, err
		}
		if c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

// WorkCreditCreate is one credit entry of a work create request.
type WorkCreditCreate struct {
	ArtistID    string   `json:"artist_id,omitempty"`
	PersonID    string   `json:"person_id,omitempty"`
	Role        *string  `json:"role,omitempty"`
	IsPrimary   bool     `json:"is_primary,omitempty"`
	CreditOrder *int     `json:"credit_order,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// Validate enforces that exactly one of person or artist is credited.
func (in *WorkCreditCreate) Validate() error {
	if (in.ArtistID == "" && in.PersonID == "") || (in.ArtistID != "" && in.PersonID != "") {
		return NewValidationError("Either person or artist ID is required for credits")
	}
	return nil
}

// WorkVersionCreate is one version entry of a work create request.
type WorkVersionCreate struct {
	Title             string            `json:"title"`
	VersionType       VersionType       `json:"version_type,omitempty"`
	PrimaryArtistID   string            `json:"primary_artist_id"`
	ReleaseDate       *string           `json:"release_date,omitempty"`
	ReleaseYear       int               `json:"release_year,omitempty"`
	DurationSeconds   *int              `json:"duration_seconds,omitempty"`
	BPM               *int              `json:"bpm,omitempty"`
	KeySignature      *string           `json:"key_signature,omitempty"`
	LyricsReference   *string           `json:"lyrics_reference,omitempty"`
	CompletenessLevel CompletenessLevel `json:"completeness_level,omitempty"`
	Notes             *string           `json:"notes,omitempty"`
}

// Validate checks the primary artist reference, the enum fields and the
// release date/year. Empty enum fields mean the column defaults apply.
func (in *WorkVersionCreate) Validate() error {
	if err := ValidateUUID(in.PrimaryArtistID); err != nil {
		return err
	}
	if in.VersionType != "" {
		if _, err := ParseVersionType(string(in.VersionType)); err != nil {
			return err
		}
	}
	if in.CompletenessLevel != "" {
		if _, err := ParseCompletenessLevel(string(in.CompletenessLevel)); err != nil {
			return err
		}
	}
	if in.ReleaseDate != nil && *in.ReleaseDate != "" {
		if _, err := ValidateDate(*in.ReleaseDate); err != nil {
			return err
		}
	}
	if in.ReleaseYear != 0 {
		if err := ValidateYear(in.ReleaseYear); err != nil {
			return err
		}
	}
	return nil
}

// WorkExternalLinkCreate is one external link entry of a work create
// request.
type WorkExternalLinkCreate struct {
	Label          string `json:"label"`
	URL            string `json:"url"`
	SourceVerified bool   `json:"source_verified,omitempty"`
}

// WorkCreate is the request payload for creating a work with its child
// versions, credits, genre links and external links.
type WorkCreate struct {
	Title           string                   `json:"title"`
	Language        *string                  `json:"language,omitempty"`
	Titles          []map[string]any         `json:"titles,omitempty"`
	Description     *string                  `json:"description,omitempty"`
	Identifiers     []map[string]any         `json:"identifiers,omitempty"`
	OriginYearStart int                      `json:"origin_year_start,omitempty"`
	OriginYearEnd   int                      `json:"origin_year_end,omitempty"`
	OriginCountry   *string                  `json:"origin_country,omitempty"`
	Themes          []string                 `json:"themes,omitempty"`
	Sentiment       *string                  `json:"sentiment,omitempty"`
	Notes           *string                  `json:"notes,omitempty"`
	GenreIDs        []string                 `json:"genre_ids,omitempty"`
	Versions        []WorkVersionCreate      `json:"versions,omitempty"`
	Credits         []WorkCreditCreate       `json:"credits,omitempty"`
	ExternalLinks   []WorkExternalLinkCreate `json:"external_links,omitempty"`
}

// Validate checks the origin year span and every child entry.
func (in *WorkCreate) Validate() error {
	if err := ValidateStartAndEndYears(in.OriginYearStart, in.OriginYearEnd); err != nil {
		return err
	}
	for i := range in.Credits {
		if err := in.Credits[i].Validate(); err != nil {
			return err
		}
	}
	for i := range in.Versions {
		if err := in.Versions[i].Validate(); err != nil {
			return err
		}
	}
	for _, id := range in.GenreIDs {
		if err := ValidateUUID(id); err != nil {
			return err
		}
	}
	return nil
}

// WorkInsertRow is the insert payload for the works table. Child
// collections are inserted separately, scoped by the new work_id.
type WorkInsertRow struct {
	Title           string           `json:"title"`
	Language        *string          `json:"language,omitempty"`
	Titles          []map[string]any `json:"titles,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Identifiers     []map[string]any `json:"identifiers,omitempty"`
	OriginYearStart int              `json:"origin_year_start,omitempty"`
	OriginYearEnd   int              `json:"origin_year_end,omitempty"`
	OriginCountry   *string          `json:"origin_country,omitempty"`
	Themes          []string         `json:"themes,omitempty"`
	Sentiment       *string          `json:"sentiment,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// InsertRow builds the works insert payload, excluding child collections.
func (in *WorkCreate) InsertRow() WorkInsertRow {
	return WorkInsertRow{
		Title:           in.Title,
		Language:        in.Language,
		Titles:          in.Titles,
		Description:     in.Description,
		Identifiers:     in.Identifiers,
		OriginYearStart: in.OriginYearStart,
		OriginYearEnd:   in.OriginYearEnd,
		OriginCountry:   in.OriginCountry,
		Themes:          in.Themes,
		Sentiment:       in.Sentiment,
		Notes:           in.Notes,
	}
}

// VersionInsertRow is the insert payload for the versions table.
type VersionInsertRow struct {
	WorkVersionCreate
	WorkID string `json:"work_id"`
}

// CreditInsertRow is the insert payload for the credits table.
type CreditInsertRow struct {
	WorkCreditCreate
	WorkID string `json:"work_id"`
}

// WorkGenreInsertRow is the insert payload for the work_genres join table.
type WorkGenreInsertRow struct {
	WorkID  string `json:"work_id"`
	GenreID string `json:"genre_id"`
}

// ExternalLinkInsertRow is the insert payload for the external_links
// table, tagged with the owning entity.
type ExternalLinkInsertRow struct {
	WorkExternalLinkCreate
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
}
