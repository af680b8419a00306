package uscs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCalc(t *testing.T) {
	body := `{"liquid_limit":34.1,"plastic_limit":21.1,"fines":47.88,"sand":37.84}`
	req := httptest.NewRequest(http.MethodPost, "/tools/uscs/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "SC", res.Symbol)
	assert.Equal(t, "Clayey sands", res.Description)
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/uscs/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCalc_InvalidLimits(t *testing.T) {
	body := `{"liquid_limit":20,"plastic_limit":30,"fines":60}`
	req := httptest.NewRequest(http.MethodPost, "/tools/uscs/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
