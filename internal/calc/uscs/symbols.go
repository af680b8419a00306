package uscs

import "strings"

// descriptions maps every resolvable USCS symbol to its reference wording.
// Built once at startup; never mutated.
var descriptions = map[string]string{
	"GW":    "Well graded gravels",
	"GP":    "Poorly graded gravels",
	"GM":    "Silty gravels",
	"GC":    "Clayey gravels",
	"GM-GC": "Gravelly clayey silt",
	"GW-GM": "Well graded gravel with silt",
	"GP-GM": "Poorly graded gravel with silt",
	"GW-GC": "Well graded gravel with clay",
	"GP-GC": "Poorly graded gravel with clay",

	"SW":    "Well graded sands",
	"SP":    "Poorly graded sands",
	"SM":    "Silty sands",
	"SC":    "Clayey sands",
	"SM-SC": "Sandy clayey silt",
	"SW-SM": "Well graded sand with silt",
	"SP-SM": "Poorly graded sand with silt",
	"SW-SC": "Well graded sand with clay",
	"SP-SC": "Poorly graded sand with clay",

	"ML":    "Inorganic silts of low plasticity",
	"CL":    "Inorganic clays of low plasticity",
	"OL":    "Organic silts of low plasticity",
	"MH":    "Inorganic silts of high plasticity",
	"CH":    "Inorganic clays of high plasticity",
	"OH":    "Organic silts of high plasticity",
	"ML-CL": "Clayey silt with low plasticity",
}

// Describe resolves a classification symbol to its description. Ambiguous
// results enumerate candidate symbols ("SW or SP", or the four-way listing
// produced when gradation data is missing); their descriptions are composed
// from the per-symbol table with the same separators.
func Describe(symbol string) string {
	if d, ok := descriptions[symbol]; ok {
		return d
	}
	if strings.Contains(symbol, ", ") {
		return describeEach(symbol, ", ")
	}
	if strings.Contains(symbol, " or ") {
		return describeEach(symbol, " or ")
	}
	return ""
}

func describeEach(symbol, sep string) string {
	parts := strings.Split(symbol, sep)
	for i, p := range parts {
		parts[i] = Describe(p)
	}
	return strings.Join(parts, sep)
}
