package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
venues:
  - id: 1
    name: Camden House
    lat: 51.52
    lon: -0.17
  - id: 2
    name: Soho Spot
    lat: 51.48
    lon: -0.12
artists:
  - id: 1
    name: Electric Beats
events:
  - id: 10
    title: Opening Night
    date: "2025-10-01"
    venue_id: 2
    artist_id: 1
    price: 0
    genre: Jazz
`

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o600))

	c, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Stats{Venues: 2, Artists: 1, Events: 1}, c.Stats())
	ev, ok := c.Event(10)
	require.True(t, ok)
	assert.Equal(t, "2025-10-01", ev.Date.Format(DateLayout))
	assert.Equal(t, 1, c.VenueEventCount(2))
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.yaml")}.Load(context.Background())
	require.Error(t, err)
}

func TestParseYAML_BadDate(t *testing.T) {
	doc := `
venues: [{id: 1, name: Hall, lat: 0, lon: 0}]
artists: [{id: 1, name: Band}]
events: [{id: 3, title: Gig, date: "10/01/2025", venue_id: 1, artist_id: 1}]
`
	_, err := ParseYAML([]byte(doc))
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestParseYAML_DanglingReference(t *testing.T) {
	doc := `
venues: [{id: 1, name: Hall, lat: 0, lon: 0}]
artists: [{id: 1, name: Band}]
events: [{id: 3, title: Gig, date: "2025-10-01", venue_id: 5, artist_id: 1}]
`
	_, err := ParseYAML([]byte(doc))
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestBuiltinSource(t *testing.T) {
	src := BuiltinSource{}
	c, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "builtin", src.Name())
	assert.Equal(t, 20, c.Stats().Events)
}
