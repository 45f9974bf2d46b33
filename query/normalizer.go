// Copyright 2026 Resqnet Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package query canonicalizes free-text queries before retrieval.
//
// Normalization is deterministic and total: it lower-cases, collapses
// whitespace, corrects a fixed set of misspellings, expands EMS shorthand
// to full clinical terms, and extracts signal (intent class, domain terms,
// a complexity flag) that downstream components use to pick retrieval
// budget. Running the output through Normalize again yields the same
// canonical string.
package query

import "strings"

// Intent classifies what kind of answer a query is after.
type Intent int

const (
	// IntentGeneral is the fallback for queries with no stronger signal.
	IntentGeneral Intent = iota
	// IntentDosing asks for a drug dose or concentration.
	IntentDosing
	// IntentContraindication asks when a treatment must be withheld.
	IntentContraindication
	// IntentProcedure asks how to perform a skill.
	IntentProcedure
)

// String returns the string representation of an Intent.
func (i Intent) String() string {
	switch i {
	case IntentDosing:
		return "dosing"
	case IntentContraindication:
		return "contraindication"
	case IntentProcedure:
		return "procedure"
	default:
		return "general"
	}
}

// SafetySensitive reports whether the intent warrants spending extra
// retrieval budget.
func (i Intent) SafetySensitive() bool {
	return i == IntentDosing || i == IntentContraindication
}

// Normalized is the canonical form of a raw query plus extracted signal.
type Normalized struct {
	// Normalized is the canonical query string used for scoring and for
	// cache key derivation. Never derived from raw input directly.
	Normalized string
	// OriginalLower is the raw input lower-cased, kept for telemetry.
	OriginalLower string
	// ExpandedAbbreviations lists the full terms substituted for shorthand.
	ExpandedAbbreviations []string
	// CorrectedTypos lists the corrected words.
	CorrectedTypos []string
	// Intent classifies the query.
	Intent Intent
	// DomainTerms are the clinical terms found in the canonical string.
	DomainTerms []string
	// IsComplex marks queries that merit the high-recall path.
	IsComplex bool
}

const edgePunctuation = ".,!?;:'\"()[]{}"

// complexWordThreshold is the word count above which a query is treated
// as complex.
const complexWordThreshold = 6

// Normalize turns a raw query into its canonical form. It never fails;
// empty or whitespace-only input yields an empty canonical string with no
// extracted signal, which downstream treats as "no results".
func Normalize(raw string) Normalized {
	lower := strings.ToLower(raw)

	result := Normalized{
		OriginalLower: lower,
		Intent:        IntentGeneral,
	}

	words := strings.Fields(lower)
	if len(words) == 0 {
		return result
	}

	out := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.Trim(word, edgePunctuation)
		if cleaned == "" {
			continue
		}

		if corrected, ok := typoCorrections[cleaned]; ok {
			result.CorrectedTypos = append(result.CorrectedTypos, corrected)
			cleaned = corrected
		}

		if expansion, ok := abbreviations[cleaned]; ok {
			result.ExpandedAbbreviations = append(result.ExpandedAbbreviations, expansion)
			cleaned = expansion
		}

		out = append(out, cleaned)
	}

	result.Normalized = strings.Join(out, " ")
	result.Intent = classifyIntent(result.Normalized)
	result.DomainTerms = extractDomainTerms(result.Normalized)
	result.IsComplex = len(out) > complexWordThreshold ||
		len(result.DomainTerms) >= 2 ||
		strings.Contains(result.Normalized, " and ")

	return result
}

// classifyIntent picks the first matching category; contraindication wins
// over dosing so "can i give aspirin, contraindications" is not read as a
// dose lookup.
func classifyIntent(normalized string) Intent {
	if containsAnyWord(normalized, contraindicationMarkers) {
		return IntentContraindication
	}
	if containsAnyWord(normalized, dosingMarkers) {
		return IntentDosing
	}
	if containsAnyWord(normalized, procedureMarkers) {
		return IntentProcedure
	}
	return IntentGeneral
}

// extractDomainTerms collects the known clinical terms present in the
// canonical string, longest phrases first.
func extractDomainTerms(normalized string) []string {
	var found []string
	for _, term := range domainTerms {
		if ContainsWord(normalized, term) {
			found = append(found, term)
		}
	}
	return found
}

func containsAnyWord(text string, terms []string) bool {
	for _, term := range terms {
		if ContainsWord(text, term) {
			return true
		}
	}
	return false
}

// ContainsWord reports whether term occurs in text on word boundaries.
// Both arguments are assumed lower-cased and whitespace-collapsed.
func ContainsWord(text, term string) bool {
	return strings.Contains(" "+text+" ", " "+term+" ")
}
