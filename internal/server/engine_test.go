package server

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestClassifyObviousSpam(t *testing.T) {
	e := NewEngine(0.5, nil, zap.NewNop())

	result := e.Classify("WIN FREE MONEY NOW")
	if !result.IsSpam {
		t.Error("expected spam verdict")
	}
	if result.SpamProbability <= 0.5 {
		t.Errorf("spam probability: got %v, want > 0.5", result.SpamProbability)
	}
	if got := result.SpamProbability + result.HamProbability; got < 0.999 || got > 1.001 {
		t.Errorf("probabilities must sum to 1, got %v", got)
	}
}

func TestClassifyPlainText(t *testing.T) {
	e := NewEngine(0.5, nil, zap.NewNop())

	result := e.Classify("Looking forward to seeing you at the team lunch on Thursday.")
	if result.IsSpam {
		t.Error("plain text must not be spam")
	}
}

func TestClassifyEmptyTextScoresZero(t *testing.T) {
	e := NewEngine(0.5, nil, zap.NewNop())

	result := e.Classify("")
	if result.SpamProbability != 0 {
		t.Errorf("empty text probability: got %v, want 0", result.SpamProbability)
	}
	if result.IsSpam {
		t.Error("empty text must not be spam")
	}
}

func TestClassifyDensityIsCapped(t *testing.T) {
	e := NewEngine(0.5, nil, zap.NewNop())

	result := e.Classify("free money cash prize lottery")
	if result.SpamProbability != 1 {
		t.Errorf("all-keyword text probability: got %v, want 1", result.SpamProbability)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	e := NewEngine(0.5, nil, zap.NewNop())

	upper := e.Classify("FREE MONEY")
	lower := e.Classify("free money")
	if upper.SpamProbability != lower.SpamProbability {
		t.Errorf("case must not matter: %v vs %v", upper.SpamProbability, lower.SpamProbability)
	}
}

func TestIndicatorsStayInRange(t *testing.T) {
	e := NewEngine(0.5, nil, zap.NewNop())

	texts := []string{
		"URGENT!!! Click here NOW http://scam.example www.scam.example act today deadline expires",
		"hello",
		strings.Repeat("free money click now!!! ", 100),
		"Normal note about the quarterly report.\n\nSee attachment.",
	}
	for _, text := range texts {
		ind := e.Classify(text).Indicators
		for name, v := range map[string]float64{
			"urgency": ind.Urgency, "links": ind.Links,
			"grammar": ind.Grammar, "formatting": ind.Formatting,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s indicator out of range: %v", name, v)
			}
		}
	}
}

func TestIndicatorsReflectContent(t *testing.T) {
	e := NewEngine(0.5, nil, zap.NewNop())

	urgent := e.Classify("URGENT act now deadline expires today hurry").Indicators
	calm := e.Classify("the meeting notes are attached for your review thanks").Indicators
	if urgent.Urgency <= calm.Urgency {
		t.Errorf("urgency must track content: urgent=%v calm=%v", urgent.Urgency, calm.Urgency)
	}

	linked := e.Classify("visit http://a.example and www.b.example and click here").Indicators
	if linked.Links <= calm.Links {
		t.Errorf("links must track content: linked=%v calm=%v", linked.Links, calm.Links)
	}
}

func TestTrustedSenderBypass(t *testing.T) {
	e := NewEngine(0.5, []string{"Example.COM"}, zap.NewNop())

	text := "From: promotions@example.com\n\nWIN FREE MONEY NOW click here"
	result := e.Classify(text)
	if result.IsSpam {
		t.Error("trusted sender must bypass scoring")
	}
	if result.SpamProbability != 0 {
		t.Errorf("trusted sender probability: got %v, want 0", result.SpamProbability)
	}

	// Same text from an untrusted domain still scores
	other := e.Classify("From: promotions@evil.example\n\nWIN FREE MONEY NOW click here free cash prize")
	if !other.IsSpam {
		t.Error("untrusted sender must still be scored")
	}
}
