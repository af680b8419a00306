package aashto

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
	body := `{"liquid_limit":45,"plasticity_index":29,"fines":60}`
	req := httptest.NewRequest(http.MethodPost, "/tools/aashto/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "A-7-6(13)", res.Symbol)
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/aashto/calc", strings.NewReader("nope"))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
