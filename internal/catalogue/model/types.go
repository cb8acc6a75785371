package model

// EntityType tags the kind of catalogue entity a cross-entity result or
// link refers to.
type EntityType string

const (
	EntityTypePerson    EntityType = "person"
	EntityTypeArtist    EntityType = "artist"
	EntityTypeWork      EntityType = "work"
	EntityTypeVersion   EntityType = "version"
	EntityTypeRelease   EntityType = "release"
	EntityTypeMediaItem EntityType = "media_item"
	EntityTypeCredit    EntityType = "credit"
	EntityTypeGenre     EntityType = "genre"
)

// ParseEntityType validates an entity type string.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityTypePerson, EntityTypeArtist, EntityTypeWork, EntityTypeVersion,
		EntityTypeRelease, EntityTypeMediaItem, EntityTypeCredit, EntityTypeGenre:
		return EntityType(s), nil
	}
	return "", validationf("Invalid entity type %q", s)
}

// ArtistType distinguishes solo acts from groups.
type ArtistType string

const (
	ArtistTypeSolo  ArtistType = "solo"
	ArtistTypeGroup ArtistType = "group"
)

// ParseArtistType validates an artist type string.
func ParseArtistType(s string) (ArtistType, error) {
	switch ArtistType(s) {
	case ArtistTypeSolo, ArtistTypeGroup:
		return ArtistType(s), nil
	}
	return "", validationf("Invalid artist type %q", s)
}

// VersionType classifies a rendition of a work.
type VersionType string

const (
	VersionTypeOriginal  VersionType = "original"
	VersionTypeCover     VersionType = "cover"
	VersionTypeRemix     VersionType = "remix"
	VersionTypeLive      VersionType = "live"
	VersionTypeMashup    VersionType = "mashup"
	VersionTypeDemo      VersionType = "demo"
	VersionTypeRadioEdit VersionType = "radio_edit"
	VersionTypeOther     VersionType = "other"
)

// ParseVersionType validates a version type string.
func ParseVersionType(s string) (VersionType, error) {
	switch VersionType(s) {
	case VersionTypeOriginal, VersionTypeCover, VersionTypeRemix, VersionTypeLive,
		VersionTypeMashup, VersionTypeDemo, VersionTypeRadioEdit, VersionTypeOther:
		return VersionType(s), nil
	}
	return "", validationf("Invalid version type %q", s)
}

// CompletenessLevel describes how much of a version's metadata is filled in.
type CompletenessLevel string

const (
	CompletenessSparse   CompletenessLevel = "sparse"
	CompletenessPartial  CompletenessLevel = "partial"
	CompletenessComplete CompletenessLevel = "complete"
)

// ParseCompletenessLevel validates a completeness level string.
func ParseCompletenessLevel(s string) (CompletenessLevel, error) {
	switch CompletenessLevel(s) {
	case CompletenessSparse, CompletenessPartial, CompletenessComplete:
		return CompletenessLevel(s), nil
	}
	return "", validationf("Invalid completeness level %q", s)
}

// ReleaseCategory classifies a release.
type ReleaseCategory string

const (
	ReleaseCategorySingle      ReleaseCategory = "single"
	ReleaseCategoryEP          ReleaseCategory = "ep"
	ReleaseCategoryAlbum       ReleaseCategory = "album"
	ReleaseCategoryCompilation ReleaseCategory = "compilation"
	ReleaseCategoryLive        ReleaseCategory = "live"
	ReleaseCategorySoundtrack  ReleaseCategory = "soundtrack"
	ReleaseCategoryDeluxe      ReleaseCategory = "deluxe"
	ReleaseCategoryOther       ReleaseCategory = "other"
)

// ReleaseStage distinguishes first issues from reissues and remasters.
type ReleaseStage string

const (
	ReleaseStageInitial     ReleaseStage = "initial"
	ReleaseStageReissue     ReleaseStage = "reissue"
	ReleaseStageRemaster    ReleaseStage = "remaster"
	ReleaseStageAnniversary ReleaseStage = "anniversary"
	ReleaseStageOther       ReleaseStage = "other"
)

// MediumType distinguishes digital from physical media.
type MediumType string

const (
	MediumTypeDigital  MediumType = "digital"
	MediumTypePhysical MediumType = "physical"
)

// AudioChannel describes the channel layout of a media item.
type AudioChannel string

const (
	AudioChannelMono       AudioChannel = "mono"
	AudioChannelStereo     AudioChannel = "stereo"
	AudioChannelSurround   AudioChannel = "surround"
	AudioChannelDolbyAtmos AudioChannel = "dolby_atmos"
)

// AvailabilityStatus describes whether a media item is still obtainable.
type AvailabilityStatus string

const (
	AvailabilityInPrint     AvailabilityStatus = "in_print"
	AvailabilityLimited     AvailabilityStatus = "limited"
	AvailabilityOutOfPrint  AvailabilityStatus = "out_of_print"
	AvailabilityDigitalOnly AvailabilityStatus = "digital_only"
)
