package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source produces a fresh catalog on every Load.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Catalog, error)
}

// BuiltinSource serves the hardcoded London sample catalog.
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return "builtin" }

func (BuiltinSource) Load(context.Context) (*Catalog, error) {
	return Sample()
}

// FileSource reads a YAML catalog file.
type FileSource struct {
	Path string
}

type fileCatalog struct {
	Venues []struct {
		ID   int     `yaml:"id"`
		Name string  `yaml:"name"`
		Lat  float64 `yaml:"lat"`
		Lon  float64 `yaml:"lon"`
	} `yaml:"venues"`
	Artists []struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"artists"`
	Events []struct {
		ID       int     `yaml:"id"`
		Title    string  `yaml:"title"`
		Date     string  `yaml:"date"`
		VenueID  int     `yaml:"venue_id"`
		ArtistID int     `yaml:"artist_id"`
		Price    float64 `yaml:"price"`
		Genre    string  `yaml:"genre"`
	} `yaml:"events"`
}

func (f FileSource) Name() string { return "file" }

func (f FileSource) Load(context.Context) (*Catalog, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a catalog document. Event dates use YYYY-MM-DD.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	venues := make([]Venue, 0, len(doc.Venues))
	for _, v := range doc.Venues {
		venues = append(venues, Venue{ID: v.ID, Name: v.Name, Lat: v.Lat, Lon: v.Lon})
	}
	artists := make([]Artist, 0, len(doc.Artists))
	for _, a := range doc.Artists {
		artists = append(artists, Artist{ID: a.ID, Name: a.Name})
	}
	events := make([]Event, 0, len(doc.Events))
	for _, e := range doc.Events {
		date, err := ParseDate(e.Date)
		if err != nil {
			return nil, &DataIntegrityError{Entity: "event", ID: e.ID, Reason: fmt.Sprintf("invalid date %q", e.Date)}
		}
		events = append(events, Event{
			ID:       e.ID,
			Title:    e.Title,
			Date:     date,
			VenueID:  e.VenueID,
			ArtistID: e.ArtistID,
			Price:    e.Price,
			Genre:    e.Genre,
		})
	}

	return New(venues, artists, events)
}
