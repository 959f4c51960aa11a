package discovery

import (
	"errors"
	"net/http"
	"strconv"

	"bandacious/internal/catalog"
	"bandacious/internal/shared/utils/response"
	"bandacious/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	ListEvents(c *gin.Context)
	GetEvent(c *gin.Context)
	ListArtists(c *gin.Context)
	ListVenues(c *gin.Context)
	ListGenres(c *gin.Context)
	PopularVenues(c *gin.Context)
	PopularArtists(c *gin.Context)
}

type controller struct {
	service  Service
	defaults Defaults
	logger   *logger.Logger
}

func NewController(service Service, defaults Defaults) Controller {
	return &controller{service: service, defaults: defaults, logger: logger.GetDefault()}
}

func (ctrl *controller) ListEvents(c *gin.Context) {
	var params EventQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	query, err := ParseEventQuery(params, ctrl.defaults)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	events, err := ctrl.service.SearchEvents(c.Request.Context(), query)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully",
		EventListResponse{Events: events, Total: len(events)}, nil)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	event, err := ctrl.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

func (ctrl *controller) ListArtists(c *gin.Context) {
	var params ArtistQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	query, err := ParseArtistQuery(params)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	artists, err := ctrl.service.SearchArtists(c.Request.Context(), query)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Artists retrieved successfully",
		ArtistListResponse{Artists: artists, Total: len(artists)}, nil)
}

func (ctrl *controller) ListVenues(c *gin.Context) {
	var params VenueQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	query, distance, err := ParseVenueQuery(params, ctrl.defaults)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	venues, err := ctrl.service.SearchVenues(c.Request.Context(), query, distance)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venues retrieved successfully",
		VenueListResponse{Venues: venues, Total: len(venues)}, nil)
}

func (ctrl *controller) ListGenres(c *gin.Context) {
	genres, err := ctrl.service.Genres(c.Request.Context())
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genres retrieved successfully", genres, nil)
}

func (ctrl *controller) PopularVenues(c *gin.Context) {
	limit, ok := ctrl.popularLimit(c)
	if !ok {
		return
	}

	venues, err := ctrl.service.PopularVenues(c.Request.Context(), limit)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Popular venues retrieved successfully", venues, nil)
}

func (ctrl *controller) PopularArtists(c *gin.Context) {
	limit, ok := ctrl.popularLimit(c)
	if !ok {
		return
	}

	artists, err := ctrl.service.PopularArtists(c.Request.Context(), limit)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Popular artists retrieved successfully", artists, nil)
}

func (ctrl *controller) popularLimit(c *gin.Context) (int, bool) {
	var params PopularQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return 0, false
	}

	limit, err := ParsePopularLimit(params, ctrl.defaults)
	if err != nil {
		ctrl.respondError(c, err)
		return 0, false
	}
	return limit, true
}

// respondError maps domain errors onto the response envelope.
func (ctrl *controller) respondError(c *gin.Context, err error) {
	var invalid *InvalidFilterValueError

	switch {
	case errors.As(err, &invalid):
		ctrl.logger.LogInvalidFilter(c.Request.Context(), invalid.Field, invalid.Value)
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid filter value", nil, gin.H{
			"field":  invalid.Field,
			"value":  invalid.Value,
			"reason": invalid.Reason,
		})
	case errors.Is(err, catalog.ErrEventNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
	case errors.Is(err, catalog.ErrNotLoaded):
		response.RespondJSON(c, "error", http.StatusServiceUnavailable, "Catalog is not loaded yet", nil, nil)
	default:
		ctrl.logger.LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Internal server error", nil, nil)
	}
}
