package server

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Assistant defines the interface for an LLM-backed chat reply. When no
// provider is configured the rule table below answers instead.
type Assistant interface {
	// Reply answers one free-text message
	Reply(ctx context.Context, message string) (string, error)
}

// Responder produces the chatbot reply for one message: email-shaped content
// is classified, everything else is answered by the assistant or rule table.
type Responder struct {
	engine    *Engine
	assistant Assistant
	logger    *zap.Logger
}

// NewResponder creates a new responder; assistant may be nil
func NewResponder(engine *Engine, assistant Assistant, logger *zap.Logger) *Responder {
	return &Responder{
		engine:    engine,
		assistant: assistant,
		logger:    logger,
	}
}

// Respond computes the reply for a chatbot message
func (r *Responder) Respond(ctx context.Context, message string) string {
	if looksLikeEmail(message) {
		return r.analyzeEmail(message)
	}

	if r.assistant != nil {
		reply, err := r.assistant.Reply(ctx, message)
		if err == nil {
			return reply
		}
		r.logger.Warn("Assistant reply failed, falling back to rules", zap.Error(err))
	}

	return ruleReply(strings.ToLower(message))
}

// looksLikeEmail reports whether the message is pasted email content rather
// than a conversational question
func looksLikeEmail(message string) bool {
	return len(strings.Fields(message)) > 20 ||
		strings.Contains(message, "\n") ||
		strings.Contains(message, "@")
}

func (r *Responder) analyzeEmail(message string) string {
	result := r.engine.Classify(message)

	if result.IsSpam {
		return fmt.Sprintf("I've analyzed this email and it appears to be SPAM (probability: %s).\n\n"+
			"This email contains characteristics commonly found in spam messages, such as "+
			"promotional language, urgency, or calls to action. "+
			"I recommend being cautious with this email and not clicking on any links.",
			result.ProbabilityPercent())
	}

	return fmt.Sprintf("I've analyzed this email and it appears to be legitimate (spam probability: %s).\n\n"+
		"However, always verify the sender and be cautious with any links or attachments.",
		result.ProbabilityPercent())
}

// ruleReply answers conversational messages from the fixed intent table
func ruleReply(message string) string {
	switch {
	case strings.Contains(message, "hello") || strings.Contains(message, "hi") || strings.Contains(message, "hey"):
		return "Hello! I'm your spam classification assistant. How can I help you today?"
	case strings.Contains(message, "spam") && strings.Contains(message, "what"):
		return "Spam emails are unsolicited messages that often contain misleading information, " +
			"scams, or unwanted advertisements. They can be identified by suspicious sender " +
			"addresses, urgent language, or requests for personal information."
	case strings.Contains(message, "how") && strings.Contains(message, "identify"):
		return "To identify spam emails, look for: 1) Suspicious sender addresses, 2) Urgent or " +
			"threatening language, 3) Requests for personal information, 4) Too-good-to-be-true " +
			"offers, 5) Poor grammar or formatting, and 6) Unusual attachments."
	case strings.Contains(message, "help"):
		return "I can help you identify spam emails. Just paste the email content in the chat or " +
			"in the main interface to analyze it. You can also ask me questions about spam " +
			"detection and email security."
	case strings.Contains(message, "thank"):
		return "You're welcome! Feel free to ask if you have any other questions about spam " +
			"detection or email security."
	case strings.Contains(message, "bye") || strings.Contains(message, "goodbye"):
		return "Goodbye! Stay safe from spam emails!"
	default:
		return "I'm your spam classification assistant. You can paste email content here to " +
			"analyze it for spam, or ask me questions about spam detection and email security."
	}
}
