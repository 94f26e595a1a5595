package features

import (
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"
)

var (
	citationRe = regexp.MustCompile(`\[\d+(?:\s*[,\x{2013}-]\s*\d+)*\]`)
	figureRe   = regexp.MustCompile(`(?i)\b(?:fig\.|figure)\s*\d+`)
	tableRe    = regexp.MustCompile(`(?i)\btable\s*\d+`)
)

// equationRunes are operator/relation symbols counted as equation markers.
const equationRunes = "=≈≤≥±∑∫√∂"

// technicalTerms are content words whose density approximates how technical
// the paper's vocabulary is.
var technicalTerms = map[string]struct{}{
	"algorithm": {}, "analysis": {}, "approach": {}, "coefficient": {},
	"data": {}, "dataset": {}, "empirical": {}, "equation": {},
	"evaluation": {}, "experiment": {}, "framework": {}, "hypothesis": {},
	"method": {}, "methodology": {}, "metric": {}, "model": {},
	"optimization": {}, "parameter": {}, "probability": {}, "regression": {},
	"significance": {}, "simulation": {}, "statistical": {}, "theorem": {},
	"variable": {},
}

// Extract scans the raw (un-normalized) text and returns the full structural
// Set. Empty text yields zero counts, a zero ratio and zero averages.
func Extract(raw string) Set {
	lower := strings.ToLower(raw)
	words := strings.Fields(raw)
	wordCount := len(words)

	set := Set{
		"has_abstract":     sectionFlag(lower, "abstract"),
		"has_introduction": sectionFlag(lower, "introduction"),
		"has_methodology":  sectionFlag(lower, "methodology", "methods"),
		"has_results":      sectionFlag(lower, "results"),
		"has_conclusion":   sectionFlag(lower, "conclusion"),
		"num_citations":    float64(len(citationRe.FindAllString(raw, -1))),
		"num_equations":    float64(countRunes(raw, equationRunes)),
		"num_figures":      float64(len(figureRe.FindAllString(raw, -1))),
		"num_tables":       float64(len(tableRe.FindAllString(raw, -1))),
		"readability":      fleschReadingEase(raw, words),
		"word_count":       float64(wordCount),
		"avg_word_length":  averageWordLength(words),
		"technical_word_ratio": technicalRatio(words, wordCount),
	}
	return set
}

func sectionFlag(lower string, keywords ...string) float64 {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return 1
		}
	}
	return 0
}

func countRunes(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

// averageWordLength is defined as 0 for zero words.
func averageWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	lengths := make([]float64, len(words))
	for i, w := range words {
		lengths[i] = float64(len([]rune(w)))
	}
	return stat.Mean(lengths, nil)
}

// technicalRatio divides by max(1, wordCount), so it is 0 for empty text
// and always within [0, 1].
func technicalRatio(words []string, wordCount int) float64 {
	technical := 0
	for _, w := range words {
		token := strings.ToLower(strings.Trim(w, ".,;:!?()"))
		if _, ok := technicalTerms[token]; ok {
			technical++
		}
	}
	denom := wordCount
	if denom < 1 {
		denom = 1
	}
	return float64(technical) / float64(denom)
}
