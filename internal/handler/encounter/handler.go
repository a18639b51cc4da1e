package encounter

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techtool/opd-api/internal/repository"
	apperrors "github.com/techtool/opd-api/pkg/errors"
	"github.com/techtool/opd-api/pkg/httputil"
)

// Handler exposes the archive. It is only registered when a database is
// configured.
type Handler struct {
	repo repository.EncounterRepository
}

func NewHandler(repo repository.EncounterRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	encounters := r.Group("/encounters")
	{
		encounters.GET("", h.ListEncounters)
		encounters.GET("/:id", h.GetEncounter)
	}
}

func (h *Handler) ListEncounters(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httputil.RespondWithValidationError(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	encounters, err := h.repo.List(c.Request.Context(), c.Query("clinic_key"), limit)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	httputil.RespondWithSuccess(c, encounters)
}

func (h *Handler) GetEncounter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithValidationError(c, "invalid encounter id")
		return
	}

	encounter, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, encounter)
}
