package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestRouter(assistant Assistant) http.Handler {
	logger := zap.NewNop()
	engine := NewEngine(0.5, nil, logger)
	responder := NewResponder(engine, assistant, logger)
	return NewRouter(NewHandler(engine, responder, logger))
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestClassifyEndpoint(t *testing.T) {
	rec := postJSON(t, newTestRouter(nil), "/api/classify", `{"email":"WIN FREE MONEY NOW"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp struct {
		IsSpam          bool               `json:"is_spam"`
		SpamProbability float64            `json:"spam_probability"`
		HamProbability  float64            `json:"ham_probability"`
		Indicators      map[string]float64 `json:"indicators"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !resp.IsSpam {
		t.Error("expected spam verdict")
	}
	for _, field := range []string{"urgency", "links", "grammar", "formatting"} {
		if _, ok := resp.Indicators[field]; !ok {
			t.Errorf("missing indicator field %q", field)
		}
	}
}

func TestClassifyEndpointRejectsMissingField(t *testing.T) {
	handler := newTestRouter(nil)

	for _, body := range []string{`{}`, `not json`, `{"message":"wrong field"}`} {
		rec := postJSON(t, handler, "/api/classify", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status for %q: got %d, want 400", body, rec.Code)
		}
	}
}

func TestChatbotGreetingRule(t *testing.T) {
	rec := postJSON(t, newTestRouter(nil), "/api/chatbot", `{"message":"hello"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp["response"], "spam classification assistant") {
		t.Errorf("unexpected greeting reply %q", resp["response"])
	}
}

func TestChatbotAnalyzesEmailShapedMessage(t *testing.T) {
	body := `{"message":"From: x@y.example\nWIN FREE MONEY NOW click here free cash prize guaranteed"}`
	rec := postJSON(t, newTestRouter(nil), "/api/chatbot", body)

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp["response"], "SPAM") {
		t.Errorf("expected spam analysis, got %q", resp["response"])
	}
	if !strings.Contains(resp["response"], "%") {
		t.Errorf("analysis must include the probability percentage, got %q", resp["response"])
	}
}

func TestChatbotRejectsMissingMessage(t *testing.T) {
	rec := postJSON(t, newTestRouter(nil), "/api/chatbot", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

type stubAssistant struct {
	reply string
	err   error
	calls int
}

func (a *stubAssistant) Reply(ctx context.Context, message string) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

func TestChatbotPrefersAssistantForConversation(t *testing.T) {
	assistant := &stubAssistant{reply: "Here is what I know about phishing."}
	rec := postJSON(t, newTestRouter(assistant), "/api/chatbot", `{"message":"tell me about phishing"}`)

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["response"] != assistant.reply {
		t.Errorf("reply: got %q, want assistant reply", resp["response"])
	}
	if assistant.calls != 1 {
		t.Errorf("assistant calls: got %d, want 1", assistant.calls)
	}
}

func TestChatbotFallsBackWhenAssistantFails(t *testing.T) {
	assistant := &stubAssistant{err: errors.New("provider unavailable")}
	rec := postJSON(t, newTestRouter(assistant), "/api/chatbot", `{"message":"hello"}`)

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp["response"], "spam classification assistant") {
		t.Errorf("expected rule fallback, got %q", resp["response"])
	}
}

func TestChatbotDoesNotConsultAssistantForEmailContent(t *testing.T) {
	assistant := &stubAssistant{reply: "should not be used"}
	body := `{"message":"From: x@y.example\nWIN FREE MONEY NOW click here free cash"}`
	postJSON(t, newTestRouter(assistant), "/api/chatbot", body)

	if assistant.calls != 0 {
		t.Errorf("assistant calls for email content: got %d, want 0", assistant.calls)
	}
}
