package config

import "time"

// GatewayConfig represents the configuration for the remote service gateway
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StoreConfig represents the configuration for the persisted session store
type StoreConfig struct {
	Type       string
	SQLitePath string
	MySQLDSN   string
	RedisURL   string
}

// AuthConfig represents the configuration for the authentication service
type AuthConfig struct {
	Provider       string
	SimulatedDelay time.Duration
}

// ClassifierConfig represents the configuration for the classification controller
type ClassifierConfig struct {
	Timeout      time.Duration
	MaxInputSize int
}

// ServerConfig represents the configuration for the bundled classification server
type ServerConfig struct {
	ListenAddress  string
	SpamThreshold  float64
	TrustedDomains []string
}

// AssistantConfig represents the configuration for the chat assistant backend
type AssistantConfig struct {
	Provider string
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GetGateway returns the gateway configuration
func (c *Config) GetGateway() GatewayConfig {
	timeout, err := c.GetDuration("gateway.timeout")
	if err != nil {
		timeout = 15 * time.Second
	}
	return GatewayConfig{
		BaseURL: c.GetString("gateway.base_url"),
		Timeout: timeout,
	}
}

// GetStore returns the session store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:       c.GetString("store.type"),
		SQLitePath: c.GetString("store.sqlite_path"),
		MySQLDSN:   c.GetString("store.mysql_dsn"),
		RedisURL:   c.GetString("store.redis_url"),
	}
}

// GetAuth returns the authentication configuration
func (c *Config) GetAuth() AuthConfig {
	delay, err := c.GetDuration("auth.simulated_delay")
	if err != nil {
		delay = time.Second
	}
	return AuthConfig{
		Provider:       c.GetString("auth.provider"),
		SimulatedDelay: delay,
	}
}

// GetClassifier returns the classification controller configuration
func (c *Config) GetClassifier() ClassifierConfig {
	timeout, err := c.GetDuration("classifier.timeout")
	if err != nil {
		timeout = 15 * time.Second
	}
	return ClassifierConfig{
		Timeout:      timeout,
		MaxInputSize: c.GetInt("classifier.max_input_size"),
	}
}

// GetServer returns the server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress:  c.GetString("server.listen_address"),
		SpamThreshold:  c.GetFloat64("server.spam_threshold"),
		TrustedDomains: c.GetStringSlice("server.trusted_domains"),
	}
}

// GetAssistant returns the assistant configuration
func (c *Config) GetAssistant() AssistantConfig {
	return AssistantConfig{
		Provider: c.GetString("assistant.provider"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
		MaxBodySize: c.GetInt("openai.max_body_size"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
		MaxBodySize: c.GetInt("bedrock.max_body_size"),
	}
}
