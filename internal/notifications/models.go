package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeCatalogReloaded NotificationType = "CATALOG_RELOADED"
)

// CatalogNotification announces that a new catalog snapshot is live.
type CatalogNotification struct {
	ID              uuid.UUID        `json:"id"`
	Type            NotificationType `json:"type"`
	Source          string           `json:"source"`
	Version         string           `json:"version"`
	PreviousVersion string           `json:"previous_version,omitempty"`
	Venues          int              `json:"venues"`
	Artists         int              `json:"artists"`
	Events          int              `json:"events"`
	OccurredAt      time.Time        `json:"occurred_at"`
}

// NewCatalogReloaded builds a reload notification with a fresh id.
func NewCatalogReloaded(source, version, previous string, venues, artists, events int, at time.Time) *CatalogNotification {
	return &CatalogNotification{
		ID:              uuid.New(),
		Type:            NotificationTypeCatalogReloaded,
		Source:          source,
		Version:         version,
		PreviousVersion: previous,
		Venues:          venues,
		Artists:         artists,
		Events:          events,
		OccurredAt:      at.UTC(),
	}
}

// GetPartitionKey keeps every message for one catalog version on one partition.
func (n *CatalogNotification) GetPartitionKey() string {
	return n.Version
}

func (n *CatalogNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}
