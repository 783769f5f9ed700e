package factory

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/spamlens/spamlens/internal/adapters/assistant"
	"github.com/spamlens/spamlens/internal/config"
	"github.com/spamlens/spamlens/internal/server"
	"github.com/spamlens/spamlens/internal/utils"
	"go.uber.org/zap"
)

// AssistantFactory creates the optional LLM chat backend for the server
type AssistantFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewAssistantFactory creates a new assistant factory
func NewAssistantFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *AssistantFactory {
	return &AssistantFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateAssistant creates an assistant based on the configuration. The
// "rules" provider returns nil: the responder answers from its rule table.
func (f *AssistantFactory) CreateAssistant() (server.Assistant, error) {
	provider := f.cfg.GetAssistant().Provider

	switch provider {
	case "", "rules":
		f.logger.Info("No LLM assistant configured, using rule-based replies")
		return nil, nil
	case "gemini":
		geminiConfig := f.cfg.GetGemini()
		return assistant.NewGeminiAssistant(
			geminiConfig.APIKey,
			geminiConfig.ModelName,
			geminiConfig.MaxTokens,
			geminiConfig.Temperature,
			geminiConfig.TopP,
			geminiConfig.MaxBodySize,
			f.logger,
			f.textProcessor,
		)
	case "openai":
		openaiConfig := f.cfg.GetOpenAI()
		return assistant.NewOpenAIAssistant(
			openaiConfig.APIKey,
			openaiConfig.ModelName,
			openaiConfig.MaxTokens,
			openaiConfig.Temperature,
			openaiConfig.TopP,
			openaiConfig.MaxBodySize,
			f.logger,
			f.textProcessor,
		), nil
	case "bedrock":
		bedrockConfig := f.cfg.GetBedrock()
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(bedrockConfig.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		return assistant.NewBedrockAssistant(
			bedrockruntime.NewFromConfig(awsCfg),
			bedrockConfig.ModelID,
			bedrockConfig.MaxTokens,
			bedrockConfig.Temperature,
			bedrockConfig.TopP,
			bedrockConfig.MaxBodySize,
			f.logger,
			f.textProcessor,
		), nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", provider)
	}
}
