package admin

import (
	"context"
	"errors"
	"net/http"

	"bandacious/internal/catalog"
	"bandacious/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Reloader swaps in a freshly loaded catalog.
type Reloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

type Controller struct {
	reloader Reloader
	store    *catalog.Store
}

func NewController(reloader Reloader, store *catalog.Store) *Controller {
	return &Controller{
		reloader: reloader,
		store:    store,
	}
}

// GetCatalogStatus reports the version and size of the live catalog.
func (c *Controller) GetCatalogStatus(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Catalog status retrieved successfully",
		newCatalogStatusResponse(c.store.Snapshot()), nil)
}

// ReloadCatalog reloads from the configured source. On failure the previous catalog stays live.
func (c *Controller) ReloadCatalog(ctx *gin.Context) {
	snap, err := c.reloader.Reload(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrDataIntegrity) {
			response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Catalog data failed integrity checks", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to reload catalog", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Catalog reloaded successfully", newCatalogStatusResponse(snap), nil)
}
