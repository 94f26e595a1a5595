// Package features computes the structural feature block of a paper's
// feature vector and assembles it with the semantic embedding.
package features

// Schema lists the structural fields in their fixed vector positions.
// The assembler validates every Set against it, so the numeric block's
// ordering is an explicit contract rather than map insertion order.
var Schema = []string{
	"has_abstract",
	"has_introduction",
	"has_methodology",
	"has_results",
	"has_conclusion",
	"num_citations",
	"num_equations",
	"num_figures",
	"num_tables",
	"readability",
	"word_count",
	"avg_word_length",
	"technical_word_ratio",
}

// Set maps schema field names to values. Extract always produces exactly
// the Schema fields.
type Set map[string]float64
