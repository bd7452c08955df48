package forms

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visapath-backend/internal/shared/server/respond"
)

// Handler serves the intake form schema and batch validation.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches form routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/forms", h.listFields)
	rg.POST("/forms/validate", h.validate)
}

func (h *Handler) listFields(c *gin.Context) {
	respond.OK(c, gin.H{"fields": IntakeFields()})
}

type validateRequest struct {
	Answers map[string]string `json:"answers"`
}

// FieldResult is the per-field outcome of a batch validation.
type FieldResult struct {
	Key     string `json:"key"`
	Visible bool   `json:"visible"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid request body", nil)
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}

	results := make([]FieldResult, 0, len(intakeFields))
	valid := true
	for _, f := range intakeFields {
		r := FieldResult{Key: f.Key, Visible: ShouldShow(f, req.Answers)}
		if r.Visible {
			r.Error = Validate(f, req.Answers[f.Key], req.Answers)
			if r.Error != "" {
				valid = false
			}
		}
		results = append(results, r)
	}
	respond.OK(c, gin.H{"valid": valid, "fields": results})
}
