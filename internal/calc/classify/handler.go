package classify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type Handler struct{}

// Calc handles the authenticated JSON endpoint.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Classification error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Classify handles the Excel add-in pass-through: classifier arguments come
// in as query parameters and only the bare classification goes back. Errors
// are surfaced verbatim since the add-in has no other diagnostics.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	input, err := parseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"classification": res.Classification})
}

func parseQuery(q url.Values) (Input, error) {
	in := Input{Type: q.Get("type")}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"liquid_limit", &in.LiquidLimit},
		{"plastic_limit", &in.PlasticLimit},
		{"plasticity_index", &in.PlasticityIndex},
		{"fines", &in.Fines},
		{"sand", &in.Sand},
		{"d10", &in.D10},
		{"d30", &in.D30},
		{"d60", &in.D60},
	}
	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Input{}, fmt.Errorf("parameter %s: not a number", f.name)
		}
		*f.dst = v
	}

	if raw := q.Get("organic"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Input{}, fmt.Errorf("parameter organic: not a boolean")
		}
		in.Organic = v
	}
	if raw := q.Get("add_group_idx"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Input{}, fmt.Errorf("parameter add_group_idx: not a boolean")
		}
		in.OmitGroupIdx = !v
	}
	return in, nil
}
