package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeGateway struct {
	mu            sync.Mutex
	classifyCalls int
	chatCalls     int
	result        *ClassificationResult
	reply         string
	err           error
	block         chan struct{}
}

func (g *fakeGateway) Classify(ctx context.Context, text string) (*ClassificationResult, error) {
	g.mu.Lock()
	g.classifyCalls++
	block := g.block
	g.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func (g *fakeGateway) Chat(ctx context.Context, message string) (string, error) {
	g.mu.Lock()
	g.chatCalls++
	block := g.block
	g.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func (g *fakeGateway) calls() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.classifyCalls, g.chatCalls
}

// waitFor polls until cond holds or the deadline passes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func TestSubmitBlankInputIsNoOp(t *testing.T) {
	gw := &fakeGateway{}
	c := NewClassifierController(gw, time.Second, zap.NewNop())

	for _, input := range []string{"", "   ", "\n\t  "} {
		c.Submit(input)
	}

	if got := c.State().Status; got != StatusIdle {
		t.Errorf("status after blank submits: got %v, want %v", got, StatusIdle)
	}
	if n, _ := gw.calls(); n != 0 {
		t.Errorf("gateway calls after blank submits: got %d, want 0", n)
	}
}

func TestSubmitWhilePendingIsSuppressed(t *testing.T) {
	release := make(chan struct{})
	gw := &fakeGateway{block: release, result: &ClassificationResult{}}
	c := NewClassifierController(gw, time.Second, zap.NewNop())

	c.Submit("first email")
	waitFor(t, func() bool { n, _ := gw.calls(); return n == 1 })

	// Rapid repeated submits while pending
	c.Submit("second email")
	c.Submit("third email")

	if n, _ := gw.calls(); n != 1 {
		t.Fatalf("gateway calls while pending: got %d, want 1", n)
	}

	close(release)
	waitFor(t, func() bool { return c.State().Status == StatusSucceeded })

	if got := c.State().Input; got != "first email" {
		t.Errorf("input: got %q, want %q", got, "first email")
	}
}

func TestSubmitSuccess(t *testing.T) {
	gw := &fakeGateway{result: &ClassificationResult{
		IsSpam:          true,
		SpamProbability: 0.93,
		HamProbability:  0.07,
	}}
	c := NewClassifierController(gw, time.Second, zap.NewNop())

	c.Submit("WIN FREE MONEY NOW")
	waitFor(t, func() bool { return c.State().Status == StatusSucceeded })

	state := c.State()
	if state.Result == nil {
		t.Fatal("expected a result")
	}
	if !state.Result.IsSpam {
		t.Error("expected spam verdict")
	}
	if got := state.Result.ProbabilityPercent(); got != "93.0%" {
		t.Errorf("probability: got %q, want %q", got, "93.0%")
	}
	if state.Err != "" {
		t.Errorf("unexpected error message %q", state.Err)
	}
}

func TestSubmitFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	c := NewClassifierController(gw, time.Second, zap.NewNop())

	c.Submit("some email text")
	waitFor(t, func() bool { return c.State().Status == StatusFailed })

	state := c.State()
	if state.Result != nil {
		t.Error("no result should be stored on failure")
	}
	if state.Err == "" {
		t.Error("expected a generic error message")
	}

	// Failure leaves the controller retryable
	gw.err = nil
	gw.result = &ClassificationResult{SpamProbability: 0.1}
	c.Submit("another email")
	waitFor(t, func() bool { return c.State().Status == StatusSucceeded })
}

func TestResetDiscardsLateResponse(t *testing.T) {
	release := make(chan struct{})
	gw := &fakeGateway{block: release, result: &ClassificationResult{IsSpam: true}}
	c := NewClassifierController(gw, time.Second, zap.NewNop())

	c.Submit("slow email")
	waitFor(t, func() bool { n, _ := gw.calls(); return n == 1 })

	// Leaving the view invalidates the in-flight token
	c.Reset()
	close(release)

	// The late resolution must not clobber the reset state
	time.Sleep(20 * time.Millisecond)
	state := c.State()
	if state.Status != StatusIdle {
		t.Errorf("status: got %v, want %v", state.Status, StatusIdle)
	}
	if state.Result != nil {
		t.Error("stale result must be discarded")
	}
}

func TestPendingIsBoundedByTimeout(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{})} // never released
	c := NewClassifierController(gw, 10*time.Millisecond, zap.NewNop())

	c.Submit("email that hangs")
	waitFor(t, func() bool { return c.State().Status == StatusFailed })

	if got := c.State().Err; got == "" {
		t.Error("timeout must surface as a failed state with a message")
	}
}
