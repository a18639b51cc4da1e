package clinic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtool/opd-api/internal/catalog"
	"github.com/techtool/opd-api/internal/model"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(catalog.Default()).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestListClinics(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []model.ClinicSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	keys := make([]string, 0, len(resp.Data))
	for _, s := range resp.Data {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"neuromed", "neurosx", "oph", "psych", "rehab"}, keys)
}

func TestGetClinic(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clinics/rehab", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data model.ClinicProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rehab", resp.Data.Key)
	assert.Equal(t, 21, resp.Data.Followup.WindowDays)
}

func TestGetClinicUnknownKeyResolvesToDefault(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clinics/cardiology", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data model.ClinicProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, catalog.DefaultClinicKey, resp.Data.Key)
}
