package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPersonID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	testArtistID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	testGenreID  = "9e107d9d-3720-41f2-b2a1-0e02b2c3d479"
)

func TestPersonCreateValidate(t *testing.T) {
	birth := "1865-06-09"
	death := "1931-10-03"

	in := &PersonCreate{LegalName: "Carl Nielsen", BirthDate: &birth, DeathDate: &death}
	assert.NoError(t, in.Validate())

	in = &PersonCreate{LegalName: "Carl Nielsen"}
	assert.NoError(t, in.Validate())

	in = &PersonCreate{LegalName: "Carl Nielsen", BirthDate: &death, DeathDate: &birth}
	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Start date should be before or equal to end date.")
}

func TestArtistCreateValidateSolo(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := &ArtistCreate{
			ArtistType:  ArtistTypeSolo,
			DisplayName: "Carl Nielsen",
			PersonID:    testPersonID,
		}
		assert.NoError(t, in.Validate())
	})

	t.Run("missing person", func(t *testing.T) {
		in := &ArtistCreate{ArtistType: ArtistTypeSolo, DisplayName: "Carl Nielsen"}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "Missing person ID for SOLO type artist", err.Error())
	})

	t.Run("bad person UUID", func(t *testing.T) {
		in := &ArtistCreate{ArtistType: ArtistTypeSolo, DisplayName: "X", PersonID: "nope"}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid UUID")
	})

	t.Run("members forbidden", func(t *testing.T) {
		in := &ArtistCreate{
			ArtistType:  ArtistTypeSolo,
			DisplayName: "Carl Nielsen",
			PersonID:    testPersonID,
			Members:     []ArtistMembershipCreate{{PersonID: testPersonID}},
		}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "There cannot be members for a SOLO type artist", err.Error())
	})
}

func TestArtistCreateValidateGroup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := &ArtistCreate{
			ArtistType:  ArtistTypeGroup,
			DisplayName: "The Danish Quartet",
			Members: []ArtistMembershipCreate{
				{PersonID: testPersonID, StartYear: 1891},
				{PersonID: testArtistID},
			},
		}
		assert.NoError(t, in.Validate())
	})

	t.Run("missing members", func(t *testing.T) {
		in := &ArtistCreate{ArtistType: ArtistTypeGroup, DisplayName: "X"}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "Missing members for GROUP type artist", err.Error())
	})

	t.Run("person forbidden", func(t *testing.T) {
		in := &ArtistCreate{
			ArtistType:  ArtistTypeGroup,
			DisplayName: "X",
			PersonID:    testPersonID,
			Members:     []ArtistMembershipCreate{{PersonID: testPersonID}},
		}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "Invalid assignment of person to GROUP type artist", err.Error())
	})

	t.Run("member error names the person", func(t *testing.T) {
		in := &ArtistCreate{
			ArtistType:  ArtistTypeGroup,
			DisplayName: "X",
			Members:     []ArtistMembershipCreate{{PersonID: "not-a-uuid"}},
		}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid member configuration for person with ID not-a-uuid")
	})

	t.Run("member year span", func(t *testing.T) {
		in := &ArtistCreate{
			ArtistType:  ArtistTypeGroup,
			DisplayName: "X",
			Members:     []ArtistMembershipCreate{{PersonID: testPersonID, StartYear: 1950, EndYear: 1940}},
		}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid member configuration for person with ID "+testPersonID)
		assert.Contains(t, err.Error(), "Start year should be before or equal to end year.")
	})

	t.Run("bad artist type", func(t *testing.T) {
		in := &ArtistCreate{ArtistType: "orchestra", DisplayName: "X"}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid artist type")
	})
}

func TestWorkCreditCreateValidate(t *testing.T) {
	err := (&WorkCreditCreate{}).Validate()
	require.Error(t, err)
	assert.Equal(t, "Either person or artist ID is required for credits", err.Error())

	err = (&WorkCreditCreate{PersonID: testPersonID, ArtistID: testArtistID}).Validate()
	require.Error(t, err)
	assert.Equal(t, "Either person or artist ID is required for credits", err.Error())

	assert.NoError(t, (&WorkCreditCreate{PersonID: testPersonID}).Validate())
	assert.NoError(t, (&WorkCreditCreate{ArtistID: testArtistID}).Validate())
}

func TestWorkVersionCreateValidate(t *testing.T) {
	in := &WorkVersionCreate{Title: "Symphony No. 4", PrimaryArtistID: testArtistID}
	assert.NoError(t, in.Validate())

	in = &WorkVersionCreate{Title: "X", PrimaryArtistID: "nope"}
	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid UUID")

	badDate := "01-01-1916"
	in = &WorkVersionCreate{Title: "X", PrimaryArtistID: testArtistID, ReleaseDate: &badDate}
	err = in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid date format")

	in = &WorkVersionCreate{Title: "X", PrimaryArtistID: testArtistID, ReleaseYear: -3}
	err = in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid year")
}

func TestWorkVersionCreateValidateEnums(t *testing.T) {
	in := &WorkVersionCreate{
		Title:             "Live at Odd Fellow Mansion",
		PrimaryArtistID:   testArtistID,
		VersionType:       VersionTypeLive,
		CompletenessLevel: CompletenessPartial,
	}
	assert.NoError(t, in.Validate())

	// Empty enum fields fall back to the column defaults.
	in = &WorkVersionCreate{Title: "X", PrimaryArtistID: testArtistID}
	assert.NoError(t, in.Validate())

	in = &WorkVersionCreate{Title: "X", PrimaryArtistID: testArtistID, VersionType: "bootleg"}
	err := in.Validate()
	require.Error(t, err)
	assert.Equal(t, `Invalid version type "bootleg"`, err.Error())
	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))

	in = &WorkVersionCreate{Title: "X", PrimaryArtistID: testArtistID, CompletenessLevel: "full"}
	err = in.Validate()
	require.Error(t, err)
	assert.Equal(t, `Invalid completeness level "full"`, err.Error())

	work := &WorkCreate{
		Title:    "X",
		Versions: []WorkVersionCreate{{Title: "Y", PrimaryArtistID: testArtistID, VersionType: "bootleg"}},
	}
	err = work.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid version type")
}

func TestWorkCreateValidate(t *testing.T) {
	in := &WorkCreate{
		Title:           "Symphony No. 4 'The Inextinguishable'",
		OriginYearStart: 1914,
		OriginYearEnd:   1916,
		GenreIDs:        []string{testGenreID},
		Versions:        []WorkVersionCreate{{Title: "Original", PrimaryArtistID: testArtistID}},
		Credits:         []WorkCreditCreate{{PersonID: testPersonID, IsPrimary: true}},
	}
	assert.NoError(t, in.Validate())

	in = &WorkCreate{Title: "X", OriginYearStart: 1920, OriginYearEnd: 1910}
	err := in.Validate()
	require.Error(t, err)
	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))

	in = &WorkCreate{Title: "X", GenreIDs: []string{"not-a-uuid"}}
	err = in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid UUID")

	in = &WorkCreate{Title: "X", Credits: []WorkCreditCreate{{}}}
	err = in.Validate()
	require.Error(t, err)
	assert.Equal(t, "Either person or artist ID is required for credits", err.Error())
}
