package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/commerce-survey/api/mocks"
	"github.com/bitmark-inc/commerce-survey/schema"
	"github.com/bitmark-inc/commerce-survey/store"
)

func completeSubmission() map[string]interface{} {
	return map[string]interface{}{
		"distrito":               "Tamarindo",
		"edad":                   38,
		"sexo":                   "Hombre",
		"escolaridad":            "Universitaria",
		"tipo_local":             "Restaurante / Soda",
		"ubicacion":              map[string]float64{"latitude": 10.3, "longitude": -85.8},
		"percepcion_seguridad":   "Inseguro(a)",
		"factores_inseguridad":   []string{"Robos frecuentes", "Poca iluminación en la zona"},
		"victima":                "No",
		"motivo_no_denuncia":     []string{"Falta de tiempo"},
		"horario_delito":         "18:00 - 20:59 p.m.",
		"exigencia_cuota":        "No",
		"opinion_fp":             "Regular",
		"cambio_servicio":        "Igual",
		"conocimiento_policias":  "No",
		"participacion_programa": "No lo conozco",
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func surveyRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/form", s.surveyForm)
	router.POST("/visibility", s.surveyVisibility)
	router.POST("/responses", s.submitResponse)
	return router
}

func TestSubmitResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockResponseStore(ctl)
	s := Server{store: m}

	var appended []string
	m.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, row []string) error {
		appended = row
		return nil
	}).Times(1)

	w := postJSON(surveyRouter(&s), "/responses", completeSubmission())
	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	assert.Len(t, appended, len(schema.Fields))
	assert.NotEmpty(t, appended[0])
	assert.Equal(t, "Santa Cruz", appended[1])
	assert.Equal(t, "Tamarindo", appended[2])
	assert.Equal(t, "38", appended[3])
	assert.Equal(t, "https://www.google.com/maps?q=10.3,-85.8", appended[7])
	assert.Equal(t, "Robos frecuentes, Poca iluminación en la zona", appended[9])
	// hidden because the respondent was not a victim
	assert.Equal(t, "", appended[24])
}

func TestSubmitResponseWithoutLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockResponseStore(ctl)
	s := Server{store: m}
	m.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	body := completeSubmission()
	delete(body, "ubicacion")

	w := postJSON(surveyRouter(&s), "/responses", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, int64(1200), jResp.Code)
	assert.Equal(t, []string{"Ubicación en el mapa"}, jResp.Missing)
	assert.Contains(t, jResp.Detail, "Ubicación en el mapa")
}

func TestSubmitResponseInvalidOption(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockResponseStore(ctl)
	s := Server{store: m}
	m.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	body := completeSubmission()
	body["distrito"] = "Liberia"

	w := postJSON(surveyRouter(&s), "/responses?lang=en", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, []string{"Distrito"}, jResp.Invalid)
	assert.Equal(t, "There are invalid answers in: Distrito", jResp.Detail)
}

func TestSubmitResponseStoreFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockResponseStore(ctl)
	s := Server{store: m}
	m.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&store.Error{Op: store.OpAppend, Err: errors.New("quota")}).Times(1)

	w := postJSON(surveyRouter(&s), "/responses", completeSubmission())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, int64(1301), jResp.Code)
	assert.True(t, jResp.Retryable)
	assert.NotContains(t, w.Body.String(), "quota")
}

func TestSubmitResponseBadJSON(t *testing.T) {
	s := Server{}
	req := httptest.NewRequest("POST", "/responses", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	surveyRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestSubmitResponsesAppendInOrder(t *testing.T) {
	responses := store.NewMemoryStore(schema.Header())
	s := Server{store: responses}
	router := surveyRouter(&s)

	first := completeSubmission()
	second := completeSubmission()
	second["distrito"] = "Cabo Velas"
	missing := completeSubmission()
	delete(missing, "ubicacion")

	assert.Equal(t, http.StatusCreated, postJSON(router, "/responses", first).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(router, "/responses", missing).Code)
	assert.Equal(t, http.StatusCreated, postJSON(router, "/responses", second).Code)

	records, err := responses.ReadAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Tamarindo", records[0]["Distrito"])
	assert.Equal(t, "Cabo Velas", records[1]["Distrito"])
}

func TestSurveyVisibility(t *testing.T) {
	s := Server{}
	w := postJSON(surveyRouter(&s), "/visibility", map[string]interface{}{
		"victima":         "Sí, y presenté la denuncia",
		"exigencia_cuota": "Sí",
	})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Visible []string `json:"visible"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Contains(t, jResp.Visible, schema.FieldCrimeType)
	assert.Contains(t, jResp.Visible, schema.FieldQuotaDescription)
	assert.NotContains(t, jResp.Visible, schema.FieldNoReportReasons)
	assert.NotContains(t, jResp.Visible, schema.FieldInsecurityFactors)
}

func TestSurveyForm(t *testing.T) {
	s := Server{}
	req := httptest.NewRequest("GET", "/form", nil)
	w := httptest.NewRecorder()
	surveyRouter(&s).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Canton string         `json:"canton"`
		Fields []schema.Field `json:"fields"`
		Map    struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Zoom      int     `json:"zoom"`
		} `json:"map"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "Santa Cruz", jResp.Canton)
	assert.Len(t, jResp.Fields, len(schema.Fields)-2)
	assert.Equal(t, schema.FieldDistrict, jResp.Fields[0].Key)
	assert.Equal(t, 10.3, jResp.Map.Latitude)
	assert.Equal(t, 13, jResp.Map.Zoom)
}
