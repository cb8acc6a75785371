package model

// Artist is either a solo act backed by a single person or a group with
// one or more memberships. Which of the two references is populated is
// governed by ArtistType and enforced during input validation.
type Artist struct {
	ID               string             `json:"id"`
	Person           *Person            `json:"person,omitempty"`
	ArtistType       ArtistType         `json:"artist_type"`
	DisplayName      string             `json:"display_name"`
	SortName         *string            `json:"sort_name,omitempty"`
	AlternativeNames []string           `json:"alternative_names,omitempty"`
	StartYear        *int               `json:"start_year,omitempty"`
	EndYear          *int               `json:"end_year,omitempty"`
	Members          []ArtistMembership `json:"members"`
	Credits          []Credit           `json:"credits"`
}

// ArtistMembership links a person to a group artist for a span of years.
type ArtistMembership struct {
	ID        string  `json:"id"`
	Artist    *Artist `json:"artist,omitempty"`
	Person    *Person `json:"person,omitempty"`
	StartYear *int    `json:"start_year,omitempty"`
	EndYear   *int    `json:"end_year,omitempty"`
	Role      *string `json:"role,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ArtistRow mirrors a row of the artists table with its aliased embeds.
type ArtistRow struct {
	ArtistID         string                 `json:"artist_id"`
	Person           *PersonRow             `json:"person"`
	ArtistType       string                 `json:"artist_type"`
	DisplayName      string                 `json:"display_name"`
	SortName         *string                `json:"sort_name"`
	AlternativeNames []string               `json:"alternative_names"`
	StartYear        *int                   `json:"start_year"`
	EndYear          *int                   `json:"end_year"`
	Memberships      []*ArtistMembershipRow `json:"artist_memberships"`
	Credits          []*CreditRow           `json:"credits"`
}

// ArtistMembershipRow mirrors a row of the artist_memberships table.
type ArtistMembershipRow struct {
	MembershipID string     `json:"membership_id"`
	Artist       *ArtistRow `json:"artist"`
	Person       *PersonRow `json:"person"`
	StartYear    *int       `json:"start_year"`
	EndYear      *int       `json:"end_year"`
	Role         *string    `json:"role"`
	Notes        *string    `json:"notes"`
}

// ArtistFromRow maps a raw artists row, including its person, memberships
// and credits. A nil row maps to nil; a missing artist_id fails.
func ArtistFromRow(r *ArtistRow) (*Artist, error) {
	if r == nil {
		return nil, nil
	}
	if r.ArtistID == "" {
		return nil, integrityf("artist row is missing artist_id")
	}
	person, err := PersonFromRow(r.Person)
	if err != nil {
		return nil, err
	}
	members, err := ArtistMembershipsFromRows(r.Memberships)
	if err != nil {
		return nil, err
	}
	credits, err := CreditsFromRows(r.Credits)
	if err != nil {
		return nil, err
	}
	return &Artist{
		ID:               r.ArtistID,
		Person:           person,
		ArtistType:       ArtistType(r.ArtistType),
		DisplayName:      r.DisplayName,
		SortName:         r.SortName,
		AlternativeNames: r.AlternativeNames,
		StartYear:        r.StartYear,
		EndYear:          r.EndYear,
		Members:          members,
		Credits:          credits,
	}, nil
}

// ArtistsFromRows maps a list of raw rows, skipping nil entries.
func ArtistsFromRows(rows []*ArtistRow) ([]Artist, error) {
	out := make([]Artist, 0, len(rows))
	for _, r := range rows {
		a, err := ArtistFromRow(r)
		if err != nil {
			return nil, err
		}
		if a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

// ArtistMembershipFromRow maps a raw artist_memberships row.
func ArtistMembershipFromRow(r *ArtistMembershipRow) (*ArtistMembership, error) {
	if r == nil {
		return nil, nil
	}
	if r.MembershipID == "" {
		return nil, integrityf("artist membership row is missing membership_id")
	}
	artist, err := ArtistFromRow(r.Artist)
	if err != nil {
		return nil, err
	}
	person, err := PersonFromRow(r.Person)
	if err != nil {
		return nil, err
	}
	return &ArtistMembership{
		ID:        r.MembershipID,
		Artist:    artist,
		Person:    person,
		StartYear: r.StartYear,
		EndYear:   r.EndYear,
		Role:      r.Role,
		Notes:     r.Notes,
	}, nil
}

// ArtistMembershipsFromRows maps a list of raw rows, skipping nil entries.
func ArtistMembershipsFromRows(rows []*ArtistMembershipRow) ([]ArtistMembership, error) {
	out := make([]ArtistMembership, 0, len(rows))
	for _, r := range rows {
		m, err := ArtistMembershipFromRow(r)
		if err != nil {
			return nil, err
		}
		if m != nil {
			out = append(out, *m)
		}
	}
	return out, nil
}

// ArtistMembershipCreate is one member entry of a group artist create
// request.
type ArtistMembershipCreate struct {
	PersonID  string  `json:"person_id"`
	StartYear int     `json:"start_year,omitempty"`
	EndYear   int     `json:"end_year,omitempty"`
	Role      *string `json:"role,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Validate checks the member's person ID and year span, wrapping any
// failure with the offending person ID.
func (in *ArtistMembershipCreate) Validate() error {
	if err := ValidateUUID(in.PersonID); err != nil {
		return validationf("Invalid member configuration for person with ID %s: %v", in.PersonID, err)
	}
	if err := ValidateStartAndEndYears(in.StartYear, in.EndYear); err != nil {
		return validationf("Invalid member configuration for person with ID %s: %v", in.PersonID, err)
	}
	return nil
}

// ArtistCreate is the request payload for creating an artist.
type ArtistCreate struct {
	ArtistType       ArtistType               `json:"artist_type"`
	DisplayName      string                   `json:"display_name"`
	SortName         *string                  `json:"sort_name,omitempty"`
	AlternativeNames []string                 `json:"alternative_names,omitempty"`
	StartYear        int                      `json:"start_year,omitempty"`
	EndYear          int                      `json:"end_year,omitempty"`
	PersonID         string                   `json:"person_id,omitempty"`
	Members          []ArtistMembershipCreate `json:"members,omitempty"`
}

// Validate enforces the solo/group shape rules before any network call.
func (in *ArtistCreate) Validate() error {
	if _, err := ParseArtistType(string(in.ArtistType)); err != nil {
		return err
	}
	if err := ValidateStartAndEndYears(in.StartYear, in.EndYear); err != nil {
		return err
	}

	if in.ArtistType == ArtistTypeSolo {
		if in.PersonID == "" {
			return NewValidationError("Missing person ID for SOLO type artist")
		}
		if err := ValidateUUID(in.PersonID); err != nil {
			return err
		}
		if len(in.Members) > 0 {
			return NewValidationError("There cannot be members for a SOLO type artist")
		}
		return nil
	}

	if len(in.Members) == 0 {
		return NewValidationError("Missing members for GROUP type artist")
	}
	if in.PersonID != "" {
		return NewValidationError("Invalid assignment of person to GROUP type artist")
	}
	for i := range in.Members {
		if err := in.Members[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ArtistInsertRow is the insert payload for the artists table. Members are
// inserted separately into artist_memberships.
type ArtistInsertRow struct {
	ArtistType       ArtistType `json:"artist_type"`
	DisplayName      string     `json:"display_name"`
	SortName         *string    `json:"sort_name,omitempty"`
	AlternativeNames []string   `json:"alternative_names,omitempty"`
	StartYear        int        `json:"start_year,omitempty"`
	EndYear          int        `json:"end_year,omitempty"`
	PersonID         string     `json:"person_id,omitempty"`
}

// InsertRow builds the artists insert payload, excluding members.
func (in *ArtistCreate) InsertRow() ArtistInsertRow {
	return ArtistInsertRow{
		ArtistType:       in.ArtistType,
		DisplayName:      in.DisplayName,
		SortName:         in.SortName,
		AlternativeNames: in.AlternativeNames,
		StartYear:        in.StartYear,
		EndYear:          in.EndYear,
		PersonID:         in.PersonID,
	}
}

// MembershipInsertRow is the insert payload for the artist_memberships
// table, scoped to the group it belongs to.
type MembershipInsertRow struct {
	ArtistMembershipCreate
	GroupID string `json:"group_id"`
}
