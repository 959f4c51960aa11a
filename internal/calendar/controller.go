package calendar

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"bandacious/internal/catalog"
	"bandacious/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	DownloadICS(c *gin.Context)
	GetCalendarLink(c *gin.Context)
}

type controller struct {
	service  Service
	basePath string
}

// NewController serves calendar exports. basePath prefixes the ics_url it reports.
func NewController(service Service, basePath string) Controller {
	return &controller{service: service, basePath: basePath}
}

func (ctrl *controller) DownloadICS(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	file, err := ctrl.service.ICS(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(file.Body))
}

func (ctrl *controller) GetCalendarLink(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	link, err := ctrl.service.GoogleURL(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Calendar link generated successfully", CalendarLinkResponse{
		EventID:   id,
		GoogleURL: link,
		ICSURL:    fmt.Sprintf("%s/events/%d/calendar.ics", ctrl.basePath, id),
	}, nil)
}

func eventID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrEventNotFound), errors.Is(err, catalog.ErrVenueNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, nil)
	case errors.Is(err, catalog.ErrNotLoaded):
		response.RespondJSON(c, "error", http.StatusServiceUnavailable, "Catalog is not loaded yet", nil, nil)
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Internal server error", nil, nil)
	}
}
