package home

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"bandacious/internal/catalog"
	"bandacious/internal/shared/utils/response"
	"bandacious/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Page *Page
	Tabs []string
}

type Controller interface {
	Index(c *gin.Context)
	GetHome(c *gin.Context)
}

type controller struct {
	service Service
	logger  *logger.Logger
}

func NewController(service Service) Controller {
	return &controller{service: service, logger: logger.GetDefault()}
}

// Index renders the homepage.
func (ctrl *controller) Index(c *gin.Context) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.String(http.StatusBadRequest, "invalid query parameters")
		return
	}

	page, err := ctrl.service.Build(c.Request.Context(), q)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrNotLoaded) {
			status = http.StatusServiceUnavailable
		}
		ctrl.logger.LogHTTPError(c, err, status)
		c.String(status, http.StatusText(status))
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{Page: page, Tabs: Tabs}); err != nil {
		ctrl.logger.LogHTTPError(c, err, http.StatusInternalServerError)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetHome returns the homepage view model as JSON.
func (ctrl *controller) GetHome(c *gin.Context) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	page, err := ctrl.service.Build(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, catalog.ErrNotLoaded) {
			response.RespondJSON(c, "error", http.StatusServiceUnavailable, "Catalog is not loaded yet", nil, nil)
			return
		}
		ctrl.logger.LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Internal server error", nil, nil)
		return
	}

	if page.FilterError != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid filter value", page, page.FilterError)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Homepage retrieved successfully", page, nil)
}
