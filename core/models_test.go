package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "Begin chest compressions at a rate of 100-120 per minute and attach the monitor",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Tier
	}{
		{name: "free", in: "free", want: TierFree},
		{name: "pro", in: "pro", want: TierPro},
		{name: "enterprise", in: "enterprise", want: TierEnterprise},
		{name: "mixed case", in: " Pro ", want: TierPro},
		{name: "unknown falls back to free", in: "platinum", want: TierFree},
		{name: "empty falls back to free", in: "", want: TierFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTier(tt.in); got != tt.want {
				t.Errorf("ParseTier(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTier_RoundTrip(t *testing.T) {
	for _, tier := range []Tier{TierFree, TierPro, TierEnterprise} {
		if got := ParseTier(tier.String()); got != tier {
			t.Errorf("ParseTier(%q) = %v, want %v", tier.String(), got, tier)
		}
	}
}

func TestDailyLimit_Allows(t *testing.T) {
	tests := []struct {
		name  string
		limit DailyLimit
		count int64
		want  bool
	}{
		{name: "under finite limit", limit: FiniteLimit(10), count: 9, want: true},
		{name: "at finite limit", limit: FiniteLimit(10), count: 10, want: true},
		{name: "over finite limit", limit: FiniteLimit(10), count: 11, want: false},
		{name: "unlimited small count", limit: Unlimited(), count: 1, want: true},
		{name: "unlimited huge count", limit: Unlimited(), count: 1 << 30, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.limit.Allows(tt.count); got != tt.want {
				t.Errorf("Allows(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestDailyLimit_Value(t *testing.T) {
	if n, finite := FiniteLimit(200).Value(); !finite || n != 200 {
		t.Errorf("FiniteLimit(200).Value() = %d, %v", n, finite)
	}
	if _, finite := Unlimited().Value(); finite {
		t.Errorf("Unlimited().Value() reported finite")
	}
}

func TestTier_DailyQueryLimit(t *testing.T) {
	if l := TierFree.DailyQueryLimit(); l.IsUnlimited() {
		t.Errorf("free tier should have a finite limit")
	}
	if l := TierEnterprise.DailyQueryLimit(); !l.IsUnlimited() {
		t.Errorf("enterprise tier should be unlimited")
	}
}

func TestPreview(t *testing.T) {
	short := "Administer aspirin 324 mg PO."
	if got := Preview(short); got != short {
		t.Errorf("Preview() changed short body: %q", got)
	}

	long := ""
	for i := 0; i < 50; i++ {
		long += "compressions "
	}
	got := Preview(long)
	if len(got) > PreviewLength+len("…") {
		t.Errorf("Preview() too long: %d bytes", len(got))
	}
}
