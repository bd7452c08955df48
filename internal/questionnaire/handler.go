package questionnaire

import (
	"github.com/gin-gonic/gin"

	"visapath-backend/internal/shared/server/respond"
)

// Handler serves the assessment question set.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches questionnaire routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.listQuestions)
}

func (h *Handler) listQuestions(c *gin.Context) {
	respond.OK(c, gin.H{"questions": DefaultQuestions()})
}
