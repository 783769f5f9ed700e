package assistant

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/spamlens/spamlens/internal/utils"
	"go.uber.org/zap"
)

// systemPrompt fixes the assistant persona for every provider
const systemPrompt = "You are a helpful assistant for an email spam classification tool. " +
	"Answer questions about spam detection, phishing, and email security concisely. " +
	"Respond in plain text."

// OpenAIAssistant answers chatbot messages using OpenAI
type OpenAIAssistant struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	topP          float32
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewOpenAIAssistant creates a new OpenAI-backed assistant
func NewOpenAIAssistant(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIAssistant {
	return &OpenAIAssistant{
		client:        openai.NewClient(apiKey),
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Reply answers one free-text message
func (a *OpenAIAssistant) Reply(ctx context.Context, message string) (string, error) {
	processed := a.textProcessor.ProcessText(message, a.maxBodySize)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: processed,
			},
		},
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
		TopP:        a.topP,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	a.logger.Debug("OpenAI assistant replied",
		zap.String("model", a.modelName),
		zap.String("id", resp.ID))

	return resp.Choices[0].Message.Content, nil
}
