package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// classifyFailedMessage is the generic user-facing message for any gateway
// failure; callers are not given structured error codes to distinguish.
const classifyFailedMessage = "Classification failed. Please try again."

// ClassifierController owns the lifecycle of one classification request at a
// time. A submission while a request is pending is rejected, not queued.
type ClassifierController struct {
	gateway Gateway
	logger  *zap.Logger
	timeout time.Duration

	mu     sync.Mutex
	status RequestStatus
	input  string
	result *ClassificationResult
	errMsg string
	token  uint64

	updates chan struct{}
}

// NewClassifierController creates a new classification controller
func NewClassifierController(gateway Gateway, timeout time.Duration, logger *zap.Logger) *ClassifierController {
	return &ClassifierController{
		gateway: gateway,
		logger:  logger,
		timeout: timeout,
		status:  StatusIdle,
		updates: make(chan struct{}, 1),
	}
}

// Submit dispatches one classification call for the given text. Blank input
// and submissions while a request is pending are no-ops.
func (c *ClassifierController) Submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.status == StatusPending {
		c.mu.Unlock()
		c.logger.Debug("Submission suppressed while request pending")
		return
	}

	c.token++
	token := c.token
	c.status = StatusPending
	c.input = text
	c.result = nil
	c.errMsg = ""
	c.mu.Unlock()

	c.signal()
	go c.dispatch(token, text)
}

// Reset returns the controller to Idle and invalidates any in-flight request,
// used when the classifier view unmounts.
func (c *ClassifierController) Reset() {
	c.mu.Lock()
	c.token++
	c.status = StatusIdle
	c.input = ""
	c.result = nil
	c.errMsg = ""
	c.mu.Unlock()

	c.signal()
}

// State returns a point-in-time snapshot of the request lifecycle
func (c *ClassifierController) State() ClassificationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ClassificationState{
		Status: c.status,
		Input:  c.input,
		Result: c.result,
		Err:    c.errMsg,
	}
}

// Updates returns a channel that receives a signal whenever the controller
// state changes. Signals are coalesced.
func (c *ClassifierController) Updates() <-chan struct{} {
	return c.updates
}

func (c *ClassifierController) dispatch(token uint64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	result, err := c.gateway.Classify(ctx, text)
	c.resolve(token, result, err)
}

// resolve applies a gateway resolution, dropping it when the carried token is
// no longer current so a slow earlier request cannot clobber newer state.
func (c *ClassifierController) resolve(token uint64, result *ClassificationResult, err error) {
	c.mu.Lock()
	if token != c.token {
		c.mu.Unlock()
		c.logger.Debug("Dropping stale classification response",
			zap.Uint64("token", token))
		return
	}

	if err != nil {
		c.status = StatusFailed
		c.errMsg = classifyFailedMessage
		c.mu.Unlock()
		c.signal()
		c.logger.Warn("Classification request failed", zap.Error(err))
		return
	}

	c.status = StatusSucceeded
	c.result = result
	c.mu.Unlock()
	c.signal()

	c.logger.Info("Classification completed",
		zap.Bool("is_spam", result.IsSpam),
		zap.Float64("spam_probability", result.SpamProbability))
}

func (c *ClassifierController) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
