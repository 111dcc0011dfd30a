package deduplication

import (
	"testing"

	"edmwatch/types"
)

func TestFingerprint(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"lowercases and strips", "CFTC Approves Kalshi!", "cftcapproveskalshi"},
		{"punctuation ignored", "cease-and-desist order, issued", "ceaseanddesistorderissued"},
		{"unicode dropped", "Kalshi — wins", "kalshiwins"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Fingerprint(c.title, 50); got != c.want {
				t.Fatalf("Fingerprint(%q) = %q; want %q", c.title, got, c.want)
			}
		})
	}

	long := "This is a very long headline that keeps going and going and going beyond the prefix"
	if got := Fingerprint(long, 20); len(got) != 20 {
		t.Fatalf("Fingerprint should truncate to 20 chars, got %d", len(got))
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("CFTC Approves Kalshi Designation", 50)
	b := Fingerprint("CFTC Approves Kalshi Designation", 50)
	if a != b {
		t.Fatalf("fingerprint must be deterministic: %q vs %q", a, b)
	}
}

func TestDedupeKeepsFirstArrival(t *testing.T) {
	items := []types.Item{
		{Title: "CFTC Approves Kalshi Designation", URL: "https://cftc.gov/press/123"},
		{Title: "CFTC approves Kalshi designation!", URL: "https://syndicator.com/copy"},
		{Title: "Polymarket faces state scrutiny", URL: "https://example.com/poly"},
	}

	unique := Dedupe(items, 50)
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique items, got %d", len(unique))
	}
	if unique[0].URL != "https://cftc.gov/press/123" {
		t.Fatalf("first-arriving instance must win, got %q", unique[0].URL)
	}
	if unique[1].URL != "https://example.com/poly" {
		t.Fatalf("distinct story must survive, got %q", unique[1].URL)
	}
}

func TestGenerateIDStable(t *testing.T) {
	a := types.GenerateID("CFTC Approves Kalshi Designation", "https://cftc.gov/press/123")
	b := types.GenerateID("CFTC Approves Kalshi Designation", "https://cftc.gov/press/123")
	if a == "" || a != b {
		t.Fatalf("GenerateID must be deterministic: %q vs %q", a, b)
	}

	c := types.GenerateID("Different title", "https://cftc.gov/press/123")
	if a == c {
		t.Fatalf("different titles must not collide trivially")
	}
}
