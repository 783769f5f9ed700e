package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WelcomeMessage seeds every new transcript
const WelcomeMessage = "Hello! I'm your spam classification assistant. How can I help you today?"

// fallbackReply closes a user turn when the gateway fails; the transcript is
// never left without a bot reply for a sent message.
const fallbackReply = "I'm sorry, I'm having trouble connecting to the server. Please try again later."

// ChatController owns the ordered transcript and the lifecycle of one
// in-flight chat call at a time.
type ChatController struct {
	gateway Gateway
	logger  *zap.Logger
	timeout time.Duration

	mu      sync.Mutex
	turns   []ChatTurn
	pending bool

	updates chan struct{}
}

// NewChatController creates a chat controller with the seeded greeting turn
func NewChatController(gateway Gateway, timeout time.Duration, logger *zap.Logger) *ChatController {
	return &ChatController{
		gateway: gateway,
		logger:  logger,
		timeout: timeout,
		turns: []ChatTurn{
			{Text: WelcomeMessage, Sender: SenderBot, At: time.Now()},
		},
		updates: make(chan struct{}, 1),
	}
}

// Send appends the user turn and dispatches one chat call. Blank messages and
// sends while a call is pending are no-ops.
func (c *ChatController) Send(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		c.logger.Debug("Send suppressed while reply pending")
		return
	}

	c.turns = append(c.turns, ChatTurn{Text: message, Sender: SenderUser, At: time.Now()})
	c.pending = true
	c.mu.Unlock()

	c.signal()
	go c.dispatch(message)
}

// Transcript returns a copy of the transcript in insertion order
func (c *ChatController) Transcript() []ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()

	turns := make([]ChatTurn, len(c.turns))
	copy(turns, c.turns)
	return turns
}

// Pending reports whether a chat call is in flight
func (c *ChatController) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Updates returns a channel that receives a signal whenever the transcript or
// pending flag changes. Signals are coalesced.
func (c *ChatController) Updates() <-chan struct{} {
	return c.updates
}

func (c *ChatController) dispatch(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	reply, err := c.gateway.Chat(ctx, message)
	if err != nil {
		c.logger.Warn("Chat request failed", zap.Error(err))
		reply = fallbackReply
	}

	c.mu.Lock()
	c.turns = append(c.turns, ChatTurn{Text: reply, Sender: SenderBot, At: time.Now()})
	c.pending = false
	c.mu.Unlock()

	c.signal()
}

func (c *ChatController) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
