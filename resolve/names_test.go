package resolve

import "testing"

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips filler suffix", "Hamilton County EMS", "hamilton"},
		{"expanded filler words", "Hamilton County Emergency Medical Services", "hamilton"},
		{"punctuation and abbreviation", "Davidson Co. EMS", "davidson"},
		{"fire department", "Springfield Fire Department", "springfield"},
		{"multi-word identity kept", "New Albany Township EMS", "new albany township"},
		{"all filler", "EMS Department", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		if got := canonicalName(tt.input); got != tt.want {
			t.Errorf("%s: canonicalName(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}
