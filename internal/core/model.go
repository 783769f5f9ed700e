package core

import (
	"fmt"
	"time"
)

// Session represents the authenticated identity persisted across restarts
type Session struct {
	Authenticated bool
	Email         string
	Name          string
}

// RequestStatus represents the lifecycle state of an asynchronous request
type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

// String returns the human-readable name of the status
func (s RequestStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FeatureIndicators carries the per-feature explanation of a classification.
// Values are produced by the classification service and are in [0,1].
type FeatureIndicators struct {
	Urgency    float64
	Links      float64
	Grammar    float64
	Formatting float64
}

// ClassificationResult represents the outcome of one classification call
type ClassificationResult struct {
	IsSpam          bool
	SpamProbability float64
	HamProbability  float64
	Indicators      FeatureIndicators
	AnalyzedAt      time.Time
}

// ProbabilityPercent formats the spam probability for display, e.g. "93.0%"
func (r *ClassificationResult) ProbabilityPercent() string {
	return fmt.Sprintf("%.1f%%", r.SpamProbability*100)
}

// ClassificationState is a point-in-time snapshot of the classification controller
type ClassificationState struct {
	Status RequestStatus
	Input  string
	Result *ClassificationResult
	Err    string
}

// Sender identifies who produced a chat turn
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatTurn represents a single message in the chat transcript
type ChatTurn struct {
	Text   string
	Sender Sender
	At     time.Time
}
