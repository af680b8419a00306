package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	aashto "Stratum/internal/calc/aashto"
	uscs "Stratum/internal/calc/uscs"
	"github.com/phpdave11/gofpdf"
)

type Sample struct {
	Name         string  `json:"name"`
	LiquidLimit  float64 `json:"liquid_limit"`
	PlasticLimit float64 `json:"plastic_limit"`
	Fines        float64 `json:"fines"`
	Sand         float64 `json:"sand"`
	D10          float64 `json:"d10,omitempty"`
	D30          float64 `json:"d30,omitempty"`
	D60          float64 `json:"d60,omitempty"`
	Organic      bool    `json:"organic,omitempty"`
}

type Input struct {
	Project string   `json:"project"`
	Author  string   `json:"author"`
	Title   string   `json:"title"`
	Notes   string   `json:"notes"`
	Samples []Sample `json:"samples"`
}

type classified struct {
	sample Sample
	uscs   uscs.Result
	aashto aashto.Result
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Soil Classification Report"
	}

	// Classify everything up front so a bad sample fails the request
	// instead of truncating the document.
	rows := make([]classified, 0, len(input.Samples))
	for _, s := range input.Samples {
		ures, err := uscs.Calculate(uscs.Input{
			LiquidLimit:  s.LiquidLimit,
			PlasticLimit: s.PlasticLimit,
			Fines:        s.Fines,
			Sand:         s.Sand,
			D10:          s.D10,
			D30:          s.D30,
			D60:          s.D60,
			Organic:      s.Organic,
		})
		if err != nil {
			http.Error(w, "Classification error", http.StatusBadRequest)
			return
		}
		ares, err := aashto.Calculate(aashto.Input{
			LiquidLimit:  s.LiquidLimit,
			PlasticLimit: s.PlasticLimit,
			Fines:        s.Fines,
		})
		if err != nil {
			http.Error(w, "Classification error", http.StatusBadRequest)
			return
		}
		rows = append(rows, classified{sample: s, uscs: ures, aashto: ares})
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if len(rows) > 0 {
		widths := []float64{30, 14, 14, 14, 16, 16, 40, 36}
		headers := []string{"Sample", "LL", "PL", "PI", "Fines", "Sand", "USCS", "AASHTO"}
		pdf.SetFont("Helvetica", "B", 9)
		for i, hd := range headers {
			pdf.CellFormat(widths[i], 7, hd, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		for _, row := range rows {
			pdf.CellFormat(widths[0], 6, row.sample.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.0f", row.sample.LiquidLimit), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.0f", row.sample.PlasticLimit), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f", row.uscs.PlasticityIndex), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.0f", row.sample.Fines), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.0f", row.sample.Sand), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[6], 6, row.uscs.Symbol, "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[7], 6, row.aashto.Symbol, "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, input.Notes, "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
