package followup

import (
	"github.com/gin-gonic/gin"

	"github.com/techtool/opd-api/internal/model"
	followupService "github.com/techtool/opd-api/internal/service/followup"
	"github.com/techtool/opd-api/pkg/httputil"
)

type Handler struct {
	service followupService.FollowupServicer
}

func NewHandler(service followupService.FollowupServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	followup := r.Group("/followup")
	{
		followup.POST("/from-text", h.FromText)
	}
}

type fromTextRequest struct {
	ClinicKey   string `json:"clinic_key"`
	ContextText string `json:"context_text"`
	RiskLevel   string `json:"risk_level" binding:"omitempty,risklevel"`
}

func (h *Handler) FromText(c *gin.Context) {
	var req fromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "risk_level must be one of routine, high, urgent")
		return
	}

	result, err := h.service.Plan(c.Request.Context(), req.ClinicKey, req.ContextText, model.RiskLevel(req.RiskLevel))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}
