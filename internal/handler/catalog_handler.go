package handler

import (
	"net/http"

	"uniformes/internal/catalog"
	"uniformes/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static form options that drive the client UI
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/catalog", h.GetCatalog)
}

// GetCatalog handles GET /api/catalog
// @Summary      Get the form catalog
// @Description  Items, sizes, colors, areas and request reasons in display order
// @Tags         catalog
// @Produce      json
// @Success      200 {object} response.Response{data=object}
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"items":              catalog.Items,
		"colors":             catalog.Colors,
		"areas":              catalog.Areas,
		"reasons":            catalog.Reasons,
		"default_reason_key": catalog.DefaultReasonKey,
	}))
}
