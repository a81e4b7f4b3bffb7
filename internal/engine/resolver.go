package engine

import (
	"strings"

	"doctor-finder-server/internal/models"
)

// greetings are short conversational messages that carry no medical
// content. Matching one (or any input under 5 characters) means the
// user has not described a symptom yet.
var greetings = []string{"hi", "hello", "hey", "thanks", "thank you", "ok", "okay", "bye", "good", "fine"}

// keywordEntry maps a free-text keyword to the specialties that treat
// it. Kept as an ordered slice, not a map: the scan order decides the
// specialty ordering in the result, which in turn drives doctor ranking.
type keywordEntry struct {
	Keyword     string
	Specialties []string
}

var specialtyKeywords = []keywordEntry{
	{"heart", []string{"Cardiologist"}},
	{"chest pain", []string{"Cardiologist"}},
	{"bone", []string{"Orthopedic Surgeon"}},
	{"joint", []string{"Orthopedic Surgeon"}},
	{"skin", []string{"Dermatologist"}},
	{"rash", []string{"Dermatologist"}},
	{"child", []string{"Pediatrician"}},
	{"children", []string{"Pediatrician"}},
	{"brain", []string{"Neurologist"}},
	{"headache", []string{"Neurologist", "General Physician"}},
	{"migraine", []string{"Neurologist"}},
	{"women", []string{"Gynecologist"}},
	{"pregnancy", []string{"Gynecologist"}},
	{"ear", []string{"ENT Specialist"}},
	{"nose", []string{"ENT Specialist"}},
	{"throat", []string{"ENT Specialist"}},
	{"mental", []string{"Psychiatrist"}},
	{"anxiety", []string{"Psychiatrist"}},
	{"depression", []string{"Psychiatrist"}},
	{"fever", []string{"General Physician"}},
	{"cold", []string{"General Physician", "ENT Specialist"}},
	{"cough", []string{"General Physician", "ENT Specialist"}},
}

// ResolveResult is the outcome of mapping free text to specialties.
type ResolveResult struct {
	// Specialties in first-seen order, deduplicated.
	Specialties []string
	// MatchedSymptoms holds the names of catalog symptoms found in the
	// text; empty when the keyword fallback or default kicked in.
	MatchedSymptoms []string
	// NeedsMoreDetail is set when the input is a greeting or too short
	// to analyze. No specialties are inferred in that case.
	NeedsMoreDetail bool
}

// ResolveSpecialties maps a free-text symptom description to a ranked
// set of specialties using the symptom catalog, falling back to a fixed
// keyword table and finally to General Physician.
func ResolveSpecialties(symptoms []models.Symptom, text string) ResolveResult {
	lower := strings.ToLower(text)

	if isGeneralMessage(lower) || len(lower) < 5 {
		return ResolveResult{NeedsMoreDetail: true}
	}

	var result ResolveResult
	for _, s := range symptoms {
		if strings.Contains(lower, strings.ToLower(s.Name)) {
			result.MatchedSymptoms = append(result.MatchedSymptoms, s.Name)
			result.Specialties = append(result.Specialties, s.RelatedSpecialties...)
		}
	}

	if len(result.MatchedSymptoms) == 0 {
		for _, entry := range specialtyKeywords {
			if strings.Contains(lower, entry.Keyword) {
				result.Specialties = append(result.Specialties, entry.Specialties...)
			}
		}
	}

	result.Specialties = dedupe(result.Specialties)

	if len(result.Specialties) == 0 {
		result.Specialties = []string{"General Physician"}
	}

	return result
}

// isGeneralMessage reports whether the lowercased input is one of the
// known greetings, standalone or with adjacent space/punctuation.
func isGeneralMessage(lower string) bool {
	for _, g := range greetings {
		if lower == g ||
			strings.Contains(lower, g+" ") ||
			strings.Contains(lower, " "+g) ||
			strings.Contains(lower, g+".") ||
			strings.Contains(lower, g+"!") {
			return true
		}
	}
	return false
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
