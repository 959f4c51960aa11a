package discovery

// EventQueryParams are the raw query string values of an event search.
type EventQueryParams struct {
	Q         string `form:"q" json:"q,omitempty" validate:"max=200"`
	Genre     string `form:"genre" json:"genre,omitempty" validate:"max=100"`
	StartDate string `form:"start_date" json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Distance  string `form:"distance" json:"distance,omitempty" validate:"omitempty,numeric"`
	FreeOnly  string `form:"free_only" json:"free_only,omitempty" validate:"omitempty,boolean"`
	VenueID   string `form:"venue_id" json:"venue_id,omitempty" validate:"omitempty,number"`
}

// VenueQueryParams are the raw query string values of a venue search.
type VenueQueryParams struct {
	Q        string `form:"q" json:"q,omitempty" validate:"max=200"`
	Distance string `form:"distance" json:"distance,omitempty" validate:"omitempty,numeric"`
}

type ArtistQueryParams struct {
	Q string `form:"q" json:"q,omitempty" validate:"max=200"`
}

type PopularQueryParams struct {
	Limit string `form:"limit" json:"limit,omitempty" validate:"omitempty,number"`
}
