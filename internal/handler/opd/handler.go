package opd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	opdService "github.com/techtool/opd-api/internal/service/opd"
	apperrors "github.com/techtool/opd-api/pkg/errors"
	"github.com/techtool/opd-api/pkg/httputil"
)

type Handler struct {
	service opdService.OPDServicer
}

func NewHandler(service opdService.OPDServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	opd := r.Group("/opd")
	{
		opd.POST("/from-text", h.FromText)
		opd.POST("/from-audio", h.FromAudio)
	}
}

type fromTextRequest struct {
	RawText   string `json:"raw_text" binding:"required"`
	ClinicKey string `json:"clinic_key"`
}

func (h *Handler) FromText(c *gin.Context) {
	var req fromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "raw_text is required")
		return
	}

	summary, err := h.service.SummarizeText(c.Request.Context(), req.ClinicKey, req.RawText)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, summary)
}

func (h *Handler) FromAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		httputil.RespondWithValidationError(c, "audio file is required")
		return
	}

	// MIME check comes before reading the upload so a bad type never
	// reaches the provider.
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		httputil.RespondWithError(c, apperrors.UnsupportedMedia(
			fmt.Sprintf("unsupported content type %q, expected audio/*", contentType)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}

	clinicKey := c.PostForm("clinic_key")
	summary, err := h.service.SummarizeAudio(c.Request.Context(), clinicKey, audio, fileHeader.Filename)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, summary)
}
