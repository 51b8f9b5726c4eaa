package detect

import (
	"math"
	"testing"

	"github.com/hakim/fahis/internal/registry"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"faceb00k.com", "facebook.com", 0.9},
		{"abc", "bca", 1.0},
		{"aaa", "a", 1.0},
		{"ab", "cd", 0},
		{"", "", 0},
		{"googIe.com", "google.com", 0.75},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if rev := Similarity(tt.b, tt.a); math.Abs(rev-got) > 1e-9 {
			t.Errorf("Similarity is not symmetric for %q, %q", tt.a, tt.b)
		}
	}
}

func TestFindTyposquat(t *testing.T) {
	d := NewTyposquatDetector(registry.New().SafeDomains())

	tests := []struct {
		name    string
		domain  string
		match   bool
		matched string
	}{
		{"digit swap", "faceb00k.com", true, "facebook.com"},
		{"identical never matches", "facebook.com", false, ""},
		{"anagram collides", "elgoog.com", true, "google.com"},
		{"unrelated", "example.org", false, ""},
		{"capital I lookalike below threshold", "googIe.com", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, matched := d.FindTyposquat(tt.domain)
			if match != tt.match || matched != tt.matched {
				t.Errorf("FindTyposquat(%q) = (%v, %q), want (%v, %q)", tt.domain, match, matched, tt.match, tt.matched)
			}
			if match && Similarity(tt.domain, matched) <= TyposquatThreshold {
				t.Errorf("matched %q with similarity <= threshold", matched)
			}
		})
	}
}

func TestFindTyposquatFirstMatchWins(t *testing.T) {
	d := NewTyposquatDetector([]string{"abc.com", "cba.com"})

	_, matched := d.FindTyposquat("bac.com")
	if matched != "abc.com" {
		t.Errorf("matched = %q, want abc.com (list order, not closeness)", matched)
	}
}

func TestNewTyposquatDetectorCopiesInput(t *testing.T) {
	safe := []string{"facebook.com"}
	d := NewTyposquatDetector(safe)
	safe[0] = "example.com"

	if match, _ := d.FindTyposquat("faceb00k.com"); !match {
		t.Error("detector should not observe caller mutations")
	}
}
