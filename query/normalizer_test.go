package query

import (
	"strings"
	"testing"
)

func TestNormalizeBasics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Cardiac Arrest", "cardiac arrest"},
		{"collapses whitespace", "cardiac   arrest\t protocol", "cardiac arrest protocol"},
		{"trims punctuation", "cardiac arrest?", "cardiac arrest"},
		{"empty input", "", ""},
		{"whitespace only", "   \t  ", ""},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got.Normalized != tt.want {
			t.Errorf("%s: Normalize(%q).Normalized = %q, want %q",
				tt.name, tt.input, got.Normalized, tt.want)
		}
	}
}

func TestNormalizeEmptyInputHasNoSignal(t *testing.T) {
	got := Normalize("   ")
	if got.Normalized != "" {
		t.Fatalf("Expected empty canonical string, got %q", got.Normalized)
	}
	if len(got.ExpandedAbbreviations) != 0 || len(got.CorrectedTypos) != 0 || len(got.DomainTerms) != 0 {
		t.Fatal("Expected no extracted signal for whitespace input")
	}
	if got.Intent != IntentGeneral || got.IsComplex {
		t.Fatal("Expected general, non-complex classification for whitespace input")
	}
}

func TestNormalizeExpandsAbbreviations(t *testing.T) {
	got := Normalize("peds epi dose")

	if got.Normalized != "pediatric epinephrine dose" {
		t.Fatalf("Expected expansion, got %q", got.Normalized)
	}
	if len(got.ExpandedAbbreviations) != 2 {
		t.Fatalf("Expected 2 expansions, got %v", got.ExpandedAbbreviations)
	}
}

func TestNormalizeCorrectsTypos(t *testing.T) {
	got := Normalize("cardaic arrest")

	if got.Normalized != "cardiac arrest" {
		t.Fatalf("Expected correction, got %q", got.Normalized)
	}
	if len(got.CorrectedTypos) != 1 || got.CorrectedTypos[0] != "cardiac" {
		t.Fatalf("Expected corrected typo recorded, got %v", got.CorrectedTypos)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Cardiac   Arrest!",
		"peds epi dose",
		"cardaic arrest with SOB",
		"contraindications for NTG?",
		"how to perform RSI",
		"",
		"   ",
		"chest pain and shortness of breath after MVC",
	}

	for _, input := range inputs {
		first := Normalize(input)
		second := Normalize(first.Normalized)

		if second.Normalized != first.Normalized {
			t.Errorf("Normalize(%q) not idempotent: %q then %q",
				input, first.Normalized, second.Normalized)
		}
		if second.Intent != first.Intent {
			t.Errorf("Normalize(%q): intent changed on re-normalization", input)
		}
		if second.IsComplex != first.IsComplex {
			t.Errorf("Normalize(%q): complexity changed on re-normalization", input)
		}
		if strings.Join(second.DomainTerms, "|") != strings.Join(first.DomainTerms, "|") {
			t.Errorf("Normalize(%q): domain terms changed on re-normalization", input)
		}
	}
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		input string
		want  Intent
	}{
		{"epinephrine dose for anaphylaxis", IntentDosing},
		{"how much fentanyl for an adult", IntentDosing},
		{"nitroglycerin contraindications", IntentContraindication},
		{"when should i avoid aspirin", IntentContraindication},
		{"how to perform needle decompression", IntentProcedure},
		{"cardiac arrest", IntentGeneral},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got.Intent != tt.want {
			t.Errorf("Normalize(%q).Intent = %s, want %s", tt.input, got.Intent, tt.want)
		}
	}
}

func TestIntentSafetySensitive(t *testing.T) {
	if !IntentDosing.SafetySensitive() || !IntentContraindication.SafetySensitive() {
		t.Fatal("Expected dosing and contraindication to be safety sensitive")
	}
	if IntentGeneral.SafetySensitive() || IntentProcedure.SafetySensitive() {
		t.Fatal("Expected general and procedure to not be safety sensitive")
	}
}

func TestExtractDomainTerms(t *testing.T) {
	got := Normalize("cardiac arrest with ventricular fibrillation")

	want := map[string]bool{"cardiac arrest": true, "ventricular fibrillation": true}
	if len(got.DomainTerms) != 2 {
		t.Fatalf("Expected 2 domain terms, got %v", got.DomainTerms)
	}
	for _, term := range got.DomainTerms {
		if !want[term] {
			t.Fatalf("Unexpected domain term %q", term)
		}
	}
}

func TestIsComplex(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"cardiac arrest", false},
		{"stroke", false},
		{"cardiac arrest with ventricular fibrillation", true}, // two domain terms
		{"chest pain and dizziness", true},                     // conjunction
		{"what is the correct procedure for a patient refusing transport", true}, // long
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got.IsComplex != tt.want {
			t.Errorf("Normalize(%q).IsComplex = %v, want %v", tt.input, got.IsComplex, tt.want)
		}
	}
}
