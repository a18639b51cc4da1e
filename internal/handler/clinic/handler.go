package clinic

import (
	"github.com/gin-gonic/gin"

	"github.com/techtool/opd-api/internal/catalog"
	"github.com/techtool/opd-api/internal/model"
	"github.com/techtool/opd-api/pkg/httputil"
)

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clinics := r.Group("/clinics")
	{
		clinics.GET("", h.ListClinics)
		clinics.GET("/:key", h.GetClinic)
	}
}

func (h *Handler) ListClinics(c *gin.Context) {
	profiles := h.catalog.List()
	summaries := make([]model.ClinicSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, p.Summary())
	}
	httputil.RespondWithSuccess(c, summaries)
}

// GetClinic resolves leniently, like the summarization paths: an unknown key
// returns the default clinic profile instead of a 404.
func (h *Handler) GetClinic(c *gin.Context) {
	profile := h.catalog.Resolve(c.Param("key"))
	httputil.RespondWithSuccess(c, profile)
}
