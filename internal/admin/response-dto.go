package admin

import (
	"time"

	"bandacious/internal/catalog"
)

// CatalogStatusResponse describes the live catalog snapshot.
type CatalogStatusResponse struct {
	Loaded   bool          `json:"loaded"`
	Version  string        `json:"version,omitempty"`
	Source   string        `json:"source,omitempty"`
	LoadedAt *time.Time    `json:"loaded_at,omitempty"`
	Stats    catalog.Stats `json:"stats"`
}

func newCatalogStatusResponse(snap *catalog.Snapshot) *CatalogStatusResponse {
	if snap == nil || snap.Catalog == nil {
		return &CatalogStatusResponse{}
	}
	loadedAt := snap.LoadedAt
	return &CatalogStatusResponse{
		Loaded:   true,
		Version:  snap.Catalog.Version(),
		Source:   snap.Source,
		LoadedAt: &loadedAt,
		Stats:    snap.Catalog.Stats(),
	}
}
