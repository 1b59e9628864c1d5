package theme

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/respond"
)

// Handler exposes theme endpoints.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches theme routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/theme", h.getTheme)
	rg.PUT("/theme/accent-color", h.setAccentColor)
	rg.PUT("/theme/font-theme", h.setFontTheme)
	rg.POST("/theme/reset", h.reset)
}

type valueRequest struct {
	Value string `json:"value" binding:"required"`
}

func (h *Handler) getTheme(c *gin.Context) {
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) setAccentColor(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "value is required", nil)
		return
	}
	h.Store.SetAccentColor(req.Value)
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) setFontTheme(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "value is required", nil)
		return
	}
	if !isKnownFontTheme(req.Value) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "value must be modern, classic or creative", nil)
		return
	}
	h.Store.SetFontTheme(req.Value)
	respond.OK(c, h.Store.Snapshot())
}

func (h *Handler) reset(c *gin.Context) {
	h.Store.Reset()
	respond.OK(c, h.Store.Snapshot())
}
