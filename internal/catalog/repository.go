package catalog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type VenueRecord struct {
	ID        int     `gorm:"primaryKey;autoIncrement:false"`
	Name      string  `gorm:"uniqueIndex;not null;size:255"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

func (VenueRecord) TableName() string {
	return "venues"
}

type ArtistRecord struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"not null;size:255"`
}

func (ArtistRecord) TableName() string {
	return "artists"
}

type EventRecord struct {
	ID       int       `gorm:"primaryKey;autoIncrement:false"`
	Title    string    `gorm:"not null;size:255"`
	Date     time.Time `gorm:"type:date;not null;index"`
	VenueID  int       `gorm:"not null;index"`
	ArtistID int       `gorm:"not null;index"`
	Price    float64   `gorm:"not null;check:price >= 0"`
	Genre    string    `gorm:"size:100;index"`
}

func (EventRecord) TableName() string {
	return "events"
}

// Models lists the tables owned by the catalog, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&VenueRecord{}, &ArtistRecord{}, &EventRecord{}}
}

type Repository interface {
	ListVenues(ctx context.Context) ([]VenueRecord, error)
	ListArtists(ctx context.Context) ([]ArtistRecord, error)
	ListEvents(ctx context.Context) ([]EventRecord, error)
	ReplaceAll(ctx context.Context, c *Catalog) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListVenues(ctx context.Context) ([]VenueRecord, error) {
	var rows []VenueRecord
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) ListArtists(ctx context.Context) ([]ArtistRecord, error) {
	var rows []ArtistRecord
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) ListEvents(ctx context.Context) ([]EventRecord, error) {
	var rows []EventRecord
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// ReplaceAll swaps the stored catalog for c inside one transaction.
func (r *repository) ReplaceAll(ctx context.Context, c *Catalog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&EventRecord{}, &ArtistRecord{}, &VenueRecord{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}

		venues := make([]VenueRecord, 0, len(c.venues))
		for _, v := range c.venues {
			venues = append(venues, VenueRecord{ID: v.ID, Name: v.Name, Latitude: v.Lat, Longitude: v.Lon})
		}
		artists := make([]ArtistRecord, 0, len(c.artists))
		for _, a := range c.artists {
			artists = append(artists, ArtistRecord{ID: a.ID, Name: a.Name})
		}
		events := make([]EventRecord, 0, len(c.events))
		for _, e := range c.events {
			events = append(events, EventRecord{
				ID: e.ID, Title: e.Title, Date: e.Date, VenueID: e.VenueID,
				ArtistID: e.ArtistID, Price: e.Price, Genre: e.Genre,
			})
		}

		if len(venues) > 0 {
			if err := tx.Create(&venues).Error; err != nil {
				return fmt.Errorf("failed to insert venues: %w", err)
			}
		}
		if len(artists) > 0 {
			if err := tx.Create(&artists).Error; err != nil {
				return fmt.Errorf("failed to insert artists: %w", err)
			}
		}
		if len(events) > 0 {
			if err := tx.Create(&events).Error; err != nil {
				return fmt.Errorf("failed to insert events: %w", err)
			}
		}
		return nil
	})
}

// PostgresSource builds catalogs from the venues, artists and events tables.
type PostgresSource struct {
	repo Repository
}

func NewPostgresSource(repo Repository) *PostgresSource {
	return &PostgresSource{repo: repo}
}

func (p *PostgresSource) Name() string { return "postgres" }

func (p *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	venueRows, err := p.repo.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	artistRows, err := p.repo.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	eventRows, err := p.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	venues := make([]Venue, 0, len(venueRows))
	for _, v := range venueRows {
		venues = append(venues, Venue{ID: v.ID, Name: v.Name, Lat: v.Latitude, Lon: v.Longitude})
	}
	artists := make([]Artist, 0, len(artistRows))
	for _, a := range artistRows {
		artists = append(artists, Artist{ID: a.ID, Name: a.Name})
	}
	events := make([]Event, 0, len(eventRows))
	for _, e := range eventRows {
		y, m, d := e.Date.Date()
		events = append(events, Event{
			ID:       e.ID,
			Title:    e.Title,
			Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			VenueID:  e.VenueID,
			ArtistID: e.ArtistID,
			Price:    e.Price,
			Genre:    e.Genre,
		})
	}

	return New(venues, artists, events)
}
