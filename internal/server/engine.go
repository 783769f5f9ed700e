package server

import (
	"regexp"
	"strings"
	"time"

	"github.com/spamlens/spamlens/internal/core"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// spamKeywords is the fixed keyword set the classifier scores against
var spamKeywords = map[string]struct{}{
	"free": {}, "win": {}, "winner": {}, "won": {}, "prize": {}, "money": {},
	"cash": {}, "lottery": {}, "million": {}, "dollar": {}, "investment": {},
	"profit": {}, "guaranteed": {}, "casino": {}, "gambling": {}, "click": {},
	"limited": {}, "offer": {}, "expires": {}, "urgent": {}, "congratulations": {},
	"inheritance": {}, "bank": {}, "account": {}, "password": {}, "verify": {},
	"suspicious": {}, "unusual": {}, "security": {}, "update": {}, "confirm": {},
	"login": {}, "credential": {},
}

// urgencyKeywords drive the urgency feature indicator
var urgencyKeywords = map[string]struct{}{
	"urgent": {}, "now": {}, "immediately": {}, "expires": {}, "limited": {},
	"hurry": {}, "act": {}, "today": {}, "deadline": {},
}

var (
	wordPattern = regexp.MustCompile(`\w+`)
	linkPattern = regexp.MustCompile(`(?i)https?://|www\.|click here`)
	bangPattern = regexp.MustCompile(`!{2,}|\?{2,}`)
	fromPattern = regexp.MustCompile(`(?im)^from:.*@([\w.-]+)`)
)

// Engine scores email text with the keyword-density heuristic and derives the
// per-feature indicators the dashboard renders
type Engine struct {
	threshold float64
	trusted   []string
	logger    *zap.Logger
}

// NewEngine creates a new classification engine
func NewEngine(threshold float64, trustedDomains []string, logger *zap.Logger) *Engine {
	// Normalize domains (lowercase)
	normalized := make([]string, 0, len(trustedDomains))
	for _, domain := range trustedDomains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain != "" {
			normalized = append(normalized, domain)
		}
	}

	if len(normalized) > 0 {
		logger.Info("Loaded trusted sender domains", zap.Strings("domains", normalized))
	}

	return &Engine{
		threshold: threshold,
		trusted:   normalized,
		logger:    logger,
	}
}

// Classify scores the given email text and returns the verdict with indicators
func (e *Engine) Classify(text string) core.ClassificationResult {
	if domain, ok := senderDomain(text); ok && e.isTrusted(domain) {
		e.logger.Info("Skipping score for trusted sender domain", zap.String("domain", domain))
		return core.ClassificationResult{
			IsSpam:          false,
			SpamProbability: 0,
			HamProbability:  1,
			AnalyzedAt:      time.Now(),
		}
	}

	normalized := strings.ToLower(norm.NFKC.String(text))
	words := wordPattern.FindAllString(normalized, -1)

	probability := keywordDensity(words, spamKeywords, 0.1)

	return core.ClassificationResult{
		IsSpam:          probability > e.threshold,
		SpamProbability: probability,
		HamProbability:  1 - probability,
		Indicators:      deriveIndicators(text, normalized, words),
		AnalyzedAt:      time.Now(),
	}
}

// keywordDensity implements the density heuristic: hits relative to a tenth
// (or the given share) of the total word count, capped at 1
func keywordDensity(words []string, keywords map[string]struct{}, share float64) float64 {
	if len(words) == 0 {
		return 0
	}

	hits := 0
	for _, word := range words {
		if _, ok := keywords[word]; ok {
			hits++
		}
	}

	density := float64(hits) / (float64(len(words)) * share)
	if density > 1 {
		return 1
	}
	return density
}

// deriveIndicators computes the feature-level explanation from the content
// itself; nothing here is a client-side placeholder
func deriveIndicators(raw, normalized string, words []string) core.FeatureIndicators {
	total := len(words)
	if total == 0 {
		return core.FeatureIndicators{}
	}

	urgency := keywordDensity(words, urgencyKeywords, 0.05)

	links := float64(len(linkPattern.FindAllString(normalized, -1))) / (float64(total) * 0.05)
	if links > 1 {
		links = 1
	}

	// Shouting and stacked punctuation as a grammar proxy
	caps := 0
	for _, word := range wordPattern.FindAllString(raw, -1) {
		if len(word) > 2 && word == strings.ToUpper(word) && word != strings.ToLower(word) {
			caps++
		}
	}
	grammar := float64(caps+len(bangPattern.FindAllString(raw, -1))) / (float64(total) * 0.25)
	if grammar > 1 {
		grammar = 1
	}

	// Line-length irregularity as a formatting proxy
	lines := strings.Split(raw, "\n")
	irregular := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > 200 {
			irregular++
		}
	}
	formatting := float64(irregular) / float64(len(lines))
	if formatting > 1 {
		formatting = 1
	}

	return core.FeatureIndicators{
		Urgency:    urgency,
		Links:      links,
		Grammar:    grammar,
		Formatting: formatting,
	}
}

// senderDomain extracts the domain of a "From:" header line when present
func senderDomain(text string) (string, bool) {
	match := fromPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.ToLower(match[1]), true
}

func (e *Engine) isTrusted(domain string) bool {
	for _, trusted := range e.trusted {
		if strings.EqualFold(domain, trusted) {
			return true
		}
	}
	return false
}
