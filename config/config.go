package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Chat     ChatConfig     `mapstructure:"chat"`
	Tts      TtsConfig      `mapstructure:"tts"`
	Persona  PersonaConfig  `mapstructure:"persona"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Chat provider selection
type ChatConfig struct {
	Provider  string          `mapstructure:"provider"` // "anthropic" or "ollama"
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Ollama    OllamaConfig    `mapstructure:"ollama"`
}

type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"` // Optional, defaults to Anthropic API
	MaxTokens int    `mapstructure:"max_tokens"`
	Timeout   int    `mapstructure:"timeout"` // seconds
}

type OllamaConfig struct {
	Host    string `mapstructure:"host"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

type TtsConfig struct {
	Engine     string           `mapstructure:"engine"` // "elevenlabs", "google" or "dummy"
	Timeout    int              `mapstructure:"timeout"`
	ElevenLabs ElevenLabsConfig `mapstructure:"elevenlabs"`
	Google     GoogleTtsConfig  `mapstructure:"google"`
}

type ElevenLabsConfig struct {
	APIKey  string `mapstructure:"api_key"`
	VoiceID string `mapstructure:"voice_id"`
	BaseURL string `mapstructure:"base_url"` // Optional, defaults to ElevenLabs API
}

type GoogleTtsConfig struct {
	Voice           string `mapstructure:"voice"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type PersonaConfig struct {
	TemplatePath   string `mapstructure:"template_path"` // Optional, built-in template otherwise
	UserLabel      string `mapstructure:"user_label"`
	AssistantLabel string `mapstructure:"assistant_label"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SessionSecret     string `mapstructure:"session_secret"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"` // bcrypt
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.BindEnv("chat.anthropic.api_key", "ANTHROPIC_API_KEY")
	viper.BindEnv("chat.provider", "CHAT_PROVIDER")
	viper.BindEnv("tts.elevenlabs.api_key", "ELEVENLABS_API_KEY")
	viper.BindEnv("tts.elevenlabs.voice_id", "ELEVENLABS_VOICE_ID")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("chat.provider", "anthropic")
	viper.SetDefault("chat.anthropic.model", "claude-3-5-sonnet-20241022")
	viper.SetDefault("chat.anthropic.max_tokens", 1000)
	viper.SetDefault("chat.anthropic.timeout", 30)

	viper.SetDefault("chat.ollama.host", "http://localhost:11434")
	viper.SetDefault("chat.ollama.model", "llama3.2")
	viper.SetDefault("chat.ollama.timeout", 30)

	viper.SetDefault("tts.engine", "elevenlabs")
	viper.SetDefault("tts.timeout", 30)

	viper.SetDefault("persona.user_label", "Visitor")
	viper.SetDefault("persona.assistant_label", "Me")

	viper.SetDefault("database.path", "./portfolio.db")
	viper.SetDefault("auth.session_secret", "change-this-in-production")

	// Allow environment variables
	viper.SetEnvPrefix("PORTFOLIO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, use defaults
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
