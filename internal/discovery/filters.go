package discovery

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"bandacious/internal/catalog"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxDistanceKm matches the upper end of the homepage distance slider.
const DefaultMaxDistanceKm = 50

// Filters is the structured part of an event search.
type Filters struct {
	Genre         string
	StartDate     *time.Time
	EndDate       *time.Time
	MaxDistanceKm float64
	FreeOnly      bool
}

// EventQuery is a free-text query plus filters and an optional venue restriction.
type EventQuery struct {
	Query   string
	VenueID *int
	Filters
}

// Defaults fill in parameters the caller left out.
type Defaults struct {
	MaxDistanceKm float64
	PopularLimit  int
}

func DefaultDefaults() Defaults {
	return Defaults{MaxDistanceKm: DefaultMaxDistanceKm, PopularLimit: DefaultPopularLimit}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report query parameter names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateParams runs the struct validator and converts the first failure
// into an *InvalidFilterValueError.
func validateParams(params interface{}) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		value, _ := fe.Value().(string)
		return &InvalidFilterValueError{Field: fe.Field(), Value: value, Reason: describeTag(fe)}
	}
	return err
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "datetime":
		return "expected a date in YYYY-MM-DD format"
	case "numeric":
		return "expected a number"
	case "number":
		return "expected a whole number"
	case "boolean":
		return "expected true or false"
	case "max":
		return "too long"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// ParseEventQuery validates raw parameters and builds an EventQuery.
// Malformed values are rejected, never ignored.
func ParseEventQuery(params EventQueryParams, defaults Defaults) (EventQuery, error) {
	if err := validateParams(params); err != nil {
		return EventQuery{}, err
	}

	q := EventQuery{
		Query: params.Q,
		Filters: Filters{
			Genre:         params.Genre,
			MaxDistanceKm: defaults.MaxDistanceKm,
		},
	}

	var err error
	if q.StartDate, err = parseOptionalDate("start_date", params.StartDate); err != nil {
		return EventQuery{}, err
	}
	if q.EndDate, err = parseOptionalDate("end_date", params.EndDate); err != nil {
		return EventQuery{}, err
	}
	if params.Distance != "" {
		if q.MaxDistanceKm, err = parseDistance(params.Distance); err != nil {
			return EventQuery{}, err
		}
	}
	if params.FreeOnly != "" {
		// validated as boolean above
		q.FreeOnly, _ = strconv.ParseBool(params.FreeOnly)
	}
	if params.VenueID != "" {
		id, err := strconv.Atoi(params.VenueID)
		if err != nil {
			return EventQuery{}, &InvalidFilterValueError{Field: "venue_id", Value: params.VenueID, Reason: "expected a whole number"}
		}
		q.VenueID = &id
	}

	return q, nil
}

// ParseVenueQuery returns the trimmed query and the distance limit of a venue search.
func ParseVenueQuery(params VenueQueryParams, defaults Defaults) (string, float64, error) {
	if err := validateParams(params); err != nil {
		return "", 0, err
	}
	if params.Distance == "" {
		return params.Q, defaults.MaxDistanceKm, nil
	}
	d, err := parseDistance(params.Distance)
	if err != nil {
		return "", 0, err
	}
	return params.Q, d, nil
}

func ParseArtistQuery(params ArtistQueryParams) (string, error) {
	if err := validateParams(params); err != nil {
		return "", err
	}
	return params.Q, nil
}

// ParsePopularLimit returns the requested strip length, or the default when unset.
func ParsePopularLimit(params PopularQueryParams, defaults Defaults) (int, error) {
	if err := validateParams(params); err != nil {
		return 0, err
	}
	if params.Limit == "" {
		return defaults.PopularLimit, nil
	}
	n, err := strconv.Atoi(params.Limit)
	if err != nil || n <= 0 {
		return 0, &InvalidFilterValueError{Field: "limit", Value: params.Limit, Reason: "expected a positive whole number"}
	}
	return n, nil
}

func parseOptionalDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := catalog.ParseDate(raw)
	if err != nil {
		return nil, &InvalidFilterValueError{Field: field, Value: raw, Reason: "expected a date in YYYY-MM-DD format"}
	}
	return &t, nil
}

func parseDistance(raw string) (float64, error) {
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &InvalidFilterValueError{Field: "distance", Value: raw, Reason: "expected a number"}
	}
	if d < 0 {
		return 0, &InvalidFilterValueError{Field: "distance", Value: raw, Reason: "must not be negative"}
	}
	return d, nil
}

// normalizeQuery trims and lowercases a free-text query.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

// matches applies every event condition. needle must already be normalised.
func (q EventQuery) matches(ev catalog.Event, venue catalog.Venue, artist catalog.Artist, distanceKm float64, needle string) bool {
	if needle != "" && !containsFold(ev.Title, needle) && !containsFold(artist.Name, needle) && !containsFold(venue.Name, needle) {
		return false
	}
	if q.VenueID != nil && ev.VenueID != *q.VenueID {
		return false
	}
	if q.Genre != "" && ev.Genre != q.Genre {
		return false
	}
	if q.StartDate != nil && ev.Date.Before(*q.StartDate) {
		return false
	}
	if q.EndDate != nil && ev.Date.After(*q.EndDate) {
		return false
	}
	if q.FreeOnly && !ev.IsFree() {
		return false
	}
	return distanceKm <= q.MaxDistanceKm
}
