package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	c, err := Sample()
	require.NoError(t, err)

	assert.Equal(t, Stats{Venues: 30, Artists: 15, Events: 20}, c.Stats())
	assert.NotEmpty(t, c.Version())

	ev, ok := c.Event(1)
	require.True(t, ok)
	assert.Equal(t, "Live Gig 1", ev.Title)
	assert.Equal(t, 3, ev.VenueID)
	assert.True(t, ev.IsFree())
	assert.Equal(t, "2025-11-09", ev.Date.Format(DateLayout))
}

func TestNew_KeepsInsertionOrder(t *testing.T) {
	venues := []Venue{{ID: 9, Name: "Nine"}, {ID: 2, Name: "Two"}}
	artists := []Artist{{ID: 1, Name: "One"}}
	events := []Event{
		{ID: 5, Title: "B", VenueID: 2, ArtistID: 1},
		{ID: 3, Title: "A", VenueID: 9, ArtistID: 1},
	}

	c, err := New(venues, artists, events)
	require.NoError(t, err)

	assert.Equal(t, venues, c.Venues())
	got := c.Events()
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestNew_DataIntegrity(t *testing.T) {
	venues := []Venue{{ID: 1, Name: "Hall"}}
	artists := []Artist{{ID: 1, Name: "Band"}}

	tests := []struct {
		name    string
		venues  []Venue
		artists []Artist
		events  []Event
		entity  string
		id      int
	}{
		{
			name:    "unknown venue",
			venues:  venues,
			artists: artists,
			events:  []Event{{ID: 7, VenueID: 2, ArtistID: 1}},
			entity:  "event",
			id:      7,
		},
		{
			name:    "unknown artist",
			venues:  venues,
			artists: artists,
			events:  []Event{{ID: 8, VenueID: 1, ArtistID: 99}},
			entity:  "event",
			id:      8,
		},
		{
			name:    "duplicate venue id",
			venues:  []Venue{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}},
			artists: artists,
			entity:  "venue",
			id:      1,
		},
		{
			name:    "duplicate event id",
			venues:  venues,
			artists: artists,
			events:  []Event{{ID: 4, VenueID: 1, ArtistID: 1}, {ID: 4, VenueID: 1, ArtistID: 1}},
			entity:  "event",
			id:      4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.venues, tt.artists, tt.events)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrDataIntegrity)

			var integrityErr *DataIntegrityError
			require.True(t, errors.As(err, &integrityErr))
			assert.Equal(t, tt.entity, integrityErr.Entity)
			assert.Equal(t, tt.id, integrityErr.ID)
		})
	}
}

func TestNew_IdSpacesAreIndependent(t *testing.T) {
	c, err := New(
		[]Venue{{ID: 1, Name: "Hall"}},
		[]Artist{{ID: 1, Name: "Band"}},
		[]Event{{ID: 1, VenueID: 1, ArtistID: 1}},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Stats().Events)
}

func TestEventCounts(t *testing.T) {
	c, err := Sample()
	require.NoError(t, err)

	assert.Equal(t, 4, c.VenueEventCount(22))
	assert.Equal(t, 2, c.VenueEventCount(6))
	assert.Equal(t, 1, c.VenueEventCount(3))
	assert.Equal(t, 0, c.VenueEventCount(1))
	assert.Equal(t, 0, c.VenueEventCount(1000))

	assert.Equal(t, 4, c.ArtistEventCount(9))
	assert.Equal(t, 3, c.ArtistEventCount(15))
	assert.Equal(t, 0, c.ArtistEventCount(6))
}

func TestGenres(t *testing.T) {
	c, err := Sample()
	require.NoError(t, err)

	assert.Equal(t, []string{"Hip Hop", "Folk", "Electronic", "Blues", "Rock", "Jazz", "Pop"}, c.Genres())
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, err := Sample()
	require.NoError(t, err)

	venues := c.Venues()
	venues[0].Name = "changed"

	v, ok := c.Venue(venues[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Camden House", v.Name)
}

func TestVersion_ChangesWithContent(t *testing.T) {
	a, err := New([]Venue{{ID: 1, Name: "Hall"}}, nil, nil)
	require.NoError(t, err)
	b, err := New([]Venue{{ID: 1, Name: "Hall"}}, nil, nil)
	require.NoError(t, err)
	c, err := New([]Venue{{ID: 1, Name: "Other Hall"}}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Version(), b.Version())
	assert.NotEqual(t, a.Version(), c.Version())
}
