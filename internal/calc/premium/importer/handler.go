package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	aashto "Stratum/internal/calc/aashto"
	uscs "Stratum/internal/calc/uscs"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SampleRecord struct {
	Sample string        `json:"sample"`
	USCS   uscs.Result   `json:"uscs"`
	AASHTO aashto.Result `json:"aashto"`
}

type SampleImportResult struct {
	Count   int            `json:"count"`
	Results []SampleRecord `json:"results"`
}

func (h *Handler) Samples(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []SampleRecord
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 4 {
			continue
		}
		name, input, err := parseSampleRow(row)
		if err != nil {
			continue
		}
		ures, err := uscs.Calculate(input)
		if err != nil {
			continue
		}
		ares, err := aashto.Calculate(aashto.Input{
			LiquidLimit:  input.LiquidLimit,
			PlasticLimit: input.PlasticLimit,
			Fines:        input.Fines,
		})
		if err != nil {
			continue
		}
		results = append(results, SampleRecord{Sample: name, USCS: ures, AASHTO: ares})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SampleImportResult{Count: len(results), Results: results})
}

func parseSampleRow(row []string) (string, uscs.Input, error) {
	// expected: sample, liquid_limit, plastic_limit, fines, sand(optional),
	// d10, d30, d60(optional), organic(optional)
	if len(row) < 4 {
		return "", uscs.Input{}, fmt.Errorf("bad row")
	}
	name := row[0]
	ll, err := toFloat(row[1])
	if err != nil {
		return "", uscs.Input{}, err
	}
	pl, err := toFloat(row[2])
	if err != nil {
		return "", uscs.Input{}, err
	}
	fines, err := toFloat(row[3])
	if err != nil {
		return "", uscs.Input{}, err
	}
	sand := 0.0
	if len(row) > 4 && row[4] != "" {
		sand, _ = toFloat(row[4])
	}
	d10 := 0.0
	if len(row) > 5 && row[5] != "" {
		d10, _ = toFloat(row[5])
	}
	d30 := 0.0
	if len(row) > 6 && row[6] != "" {
		d30, _ = toFloat(row[6])
	}
	d60 := 0.0
	if len(row) > 7 && row[7] != "" {
		d60, _ = toFloat(row[7])
	}
	organic := false
	if len(row) > 8 && row[8] != "" {
		organic = toBool(row[8])
	}
	return name, uscs.Input{
		LiquidLimit:  ll,
		PlasticLimit: pl,
		Fines:        fines,
		Sand:         sand,
		D10:          d10,
		D30:          d30,
		D60:          d60,
		Organic:      organic,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
