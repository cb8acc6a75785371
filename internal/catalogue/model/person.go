package model

// Person is a natural person referenced by artists, memberships and credits.
type Person struct {
	ID        string  `json:"id"`
	LegalName string  `json:"legal_name"`
	BirthDate *Date   `json:"birth_date,omitempty"`
	DeathDate *Date   `json:"death_date,omitempty"`
	Pronouns  *string `json:"pronouns,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// PersonRow mirrors a row of the persons table as PostgREST returns it.
type PersonRow struct {
	PersonID  string  `json:"person_id"`
	LegalName string  `json:"legal_name"`
	BirthDate *Date   `json:"birth_date"`
	DeathDate *Date   `json:"death_date"`
	Pronouns  *string `json:"pronouns"`
	Notes     *string `json:"notes"`
}

// PersonFromRow maps a raw persons row into a Person. A nil row maps to nil;
// a row without a person_id is a data-integrity failure.
func PersonFromRow(r *PersonRow) (*Person, error) {
	if r == nil {
		return nil, nil
	}
	if r.PersonID == "" {
		return nil, integrityf("person row is missing person_id")
	}
	return &Person{
		ID:        r.PersonID,
		LegalName: r.LegalName,
		BirthDate: r.BirthDate,
		DeathDate: r.DeathDate,
		Pronouns:  r.Pronouns,
		Notes:     r.Notes,
	}, nil
}

// PersonsFromRows maps a list of raw rows, skipping nil entries. An absent
// input yields an empty list, never an error.
func PersonsFromRows(rows []*PersonRow) ([]Person, error) {
	out := make([]Person, 0, len(rows))
	for _, r := range rows {
		p, err := PersonFromRow(r)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

// PersonCreate is the request payload for creating a person. Its field
// layout doubles as the insert payload, so absent optional fields are
// omitted from the row sent upstream.
type PersonCreate struct {
	LegalName string  `json:"legal_name"`
	BirthDate *string `json:"birth_date,omitempty"`
	DeathDate *string `json:"death_date,omitempty"`
	Pronouns  *string `json:"pronouns,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Validate checks the birth/death date combination.
func (in *PersonCreate) Validate() error {
	var birth, death string
	if in.BirthDate != nil {
		birth = *in.BirthDate
	}
	if in.DeathDate != nil {
		death = *in.DeathDate
	}
	return ValidateStartAndEndDates(birth, death)
}
