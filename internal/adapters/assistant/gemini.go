package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/spamlens/spamlens/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiAssistant answers chatbot messages using Google Gemini
type GeminiAssistant struct {
	client        *genai.Client
	model         *genai.GenerativeModel
	modelName     string
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGeminiAssistant creates a new Gemini-backed assistant
func NewGeminiAssistant(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*GeminiAssistant, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &GeminiAssistant{
		client:        client,
		model:         model,
		modelName:     modelName,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

// Reply answers one free-text message
func (a *GeminiAssistant) Reply(ctx context.Context, message string) (string, error) {
	processed := a.textProcessor.ProcessText(message, a.maxBodySize)

	resp, err := a.model.GenerateContent(ctx, genai.Text(processed))
	if err != nil {
		return "", fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("no text content in Gemini response")
	}

	a.logger.Debug("Gemini assistant replied", zap.String("model", a.modelName))
	return reply, nil
}

// Close releases the underlying client
func (a *GeminiAssistant) Close() error {
	return a.client.Close()
}
