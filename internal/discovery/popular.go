package discovery

import "sort"

// DefaultPopularLimit is the length of the homepage popularity strips.
const DefaultPopularLimit = 6

// PopularVenues returns the top n venues by upcoming event count.
// Venues with equal counts keep their catalog order.
func (e *Engine) PopularVenues(n int) []VenueView {
	venues := e.catalog.Venues()
	ranked := make([]VenueView, 0, len(venues))
	for _, v := range venues {
		ranked = append(ranked, e.venueView(v))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UpcomingCount > ranked[j].UpcomingCount
	})

	return ranked[:clampLimit(n, len(ranked))]
}

// PopularArtists returns the top n artists by event count, ties in catalog order.
func (e *Engine) PopularArtists(n int) []ArtistView {
	artists := e.catalog.Artists()
	ranked := make([]ArtistView, 0, len(artists))
	for _, a := range artists {
		ranked = append(ranked, e.artistView(a))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EventCount > ranked[j].EventCount
	})

	return ranked[:clampLimit(n, len(ranked))]
}

func clampLimit(n, size int) int {
	if n <= 0 {
		n = DefaultPopularLimit
	}
	if n > size {
		return size
	}
	return n
}
