package pathways

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"visapath-backend/internal/shared/server/respond"
)

// Handler serves the read-only pathway catalog.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pathways", h.listPathways)
	rg.GET("/pathways/:id", h.getPathway)
}

func (h *Handler) listPathways(c *gin.Context) {
	respond.OK(c, gin.H{"pathways": h.Catalog.List()})
}

func (h *Handler) getPathway(c *gin.Context) {
	id := c.Param("id")
	def, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "pathway not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch pathway", nil)
		return
	}
	respond.OK(c, def)
}
