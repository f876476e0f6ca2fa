// Package config handles loading and validating the TextSense configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names accepted for every capability.
const (
	BackendAzure  = "azure"
	BackendOpenAI = "openai"
	BackendStub   = "stub"
)

// Config is the root configuration for TextSense.
type Config struct {
	UI         UIConfig         `mapstructure:"ui"`
	Web        WebConfig        `mapstructure:"web"`
	Inputs     InputsConfig     `mapstructure:"inputs"`
	Backends   BackendsConfig   `mapstructure:"backends"`
	Azure      AzureConfig      `mapstructure:"azure"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Microphone MicrophoneConfig `mapstructure:"microphone"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// UIConfig selects the interactive shell.
type UIConfig struct {
	Mode string `mapstructure:"mode"` // console, web, desktop
}

// WebConfig configures the web form shell.
type WebConfig struct {
	Port        int `mapstructure:"port"`
	MaxUploadMB int `mapstructure:"max_upload_mb"`
}

// InputsConfig toggles optional input sources.
type InputsConfig struct {
	Voice bool `mapstructure:"voice"`
}

// BackendsConfig selects the implementation of each remote capability.
type BackendsConfig struct {
	Sentiment  string `mapstructure:"sentiment"`
	Vision     string `mapstructure:"vision"`
	Translator string `mapstructure:"translator"`
	Speech     string `mapstructure:"speech"`
}

// AzureConfig holds the Azure AI services credentials.
type AzureConfig struct {
	TextAnalytics EndpointConfig   `mapstructure:"text_analytics"`
	Vision        EndpointConfig   `mapstructure:"vision"`
	Translator    TranslatorConfig `mapstructure:"translator"`
	Speech        SpeechConfig     `mapstructure:"speech"`
}

// EndpointConfig is an endpoint URL plus subscription key.
type EndpointConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Key      string `mapstructure:"key"`
}

// TranslatorConfig holds Azure Translator settings. Endpoint defaults to the
// global translator host.
type TranslatorConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Key      string `mapstructure:"key"`
	Region   string `mapstructure:"region"`
}

// SpeechConfig holds Azure Speech settings.
type SpeechConfig struct {
	Key      string `mapstructure:"key"`
	Region   string `mapstructure:"region"`
	Language string `mapstructure:"language"` // BCP-47 recognition locale, e.g. "en-US"
}

// OpenAIConfig holds OpenAI (or OpenAI-compatible) API settings.
type OpenAIConfig struct {
	APIKey             string `mapstructure:"api_key"`
	BaseURL            string `mapstructure:"base_url"`
	Model              string `mapstructure:"model"`
	TranscriptionModel string `mapstructure:"transcription_model"`
}

// MicrophoneConfig configures the external recorder used for voice capture.
type MicrophoneConfig struct {
	Command    string        `mapstructure:"command"`
	Format     string        `mapstructure:"format"` // ffmpeg input format: alsa, avfoundation, dshow, pulse
	Device     string        `mapstructure:"device"`
	Duration   time.Duration `mapstructure:"duration"`
	SampleRate int           `mapstructure:"sample_rate"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// envBindings maps config keys to the plain Azure variable names found in
// existing .env files. The TEXTSENSE_ prefixed form is always accepted first.
var envBindings = map[string]string{
	"azure.text_analytics.endpoint": "TEXT_ANALYTICS_ENDPOINT",
	"azure.text_analytics.key":      "TEXT_ANALYTICS_KEY",
	"azure.vision.endpoint":         "AI_SERVICE_ENDPOINT",
	"azure.vision.key":              "AI_SERVICE_KEY",
	"azure.translator.key":          "TRANSLATOR_KEY",
	"azure.translator.region":       "TRANSLATOR_REGION",
	"azure.speech.key":              "SPEECH_API_KEY",
	"azure.speech.region":           "SPEECH_REGION",
	"openai.api_key":                "OPENAI_API_KEY",
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. A missing file is not an error; variables that are already
// set are left untouched.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	slog.Debug("loaded env file", "path", path)
	return nil
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./textsense.yaml, ./configs/textsense.yaml, /etc/textsense/textsense.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	format, device := defaultMicrophoneInput(runtime.GOOS)

	// Defaults
	v.SetDefault("ui.mode", "console")
	v.SetDefault("web.port", 8501)
	v.SetDefault("web.max_upload_mb", 20)
	v.SetDefault("inputs.voice", true)
	v.SetDefault("backends.sentiment", BackendAzure)
	v.SetDefault("backends.vision", BackendAzure)
	v.SetDefault("backends.translator", BackendAzure)
	v.SetDefault("backends.speech", BackendAzure)
	v.SetDefault("azure.translator.endpoint", "https://api.cognitive.microsofttranslator.com")
	v.SetDefault("azure.speech.language", "en-US")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.transcription_model", "whisper-1")
	v.SetDefault("microphone.command", "ffmpeg")
	v.SetDefault("microphone.format", format)
	v.SetDefault("microphone.device", device)
	v.SetDefault("microphone.duration", 5*time.Second)
	v.SetDefault("microphone.sample_rate", 16000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("textsense")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/textsense")
	}

	// Environment variables: TEXTSENSE_UI_MODE, TEXTSENSE_BACKENDS_SENTIMENT, etc.
	v.SetEnvPrefix("TEXTSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		prefixed := "TEXTSENSE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
		v.SetDefault(key, "")
	}

	// Read config file (optional: env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Debug("no config file found, using defaults and environment variables")
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${TRANSLATOR_KEY}")
	cfg.Azure.TextAnalytics.Key = resolveEnvRef(cfg.Azure.TextAnalytics.Key)
	cfg.Azure.Vision.Key = resolveEnvRef(cfg.Azure.Vision.Key)
	cfg.Azure.Translator.Key = resolveEnvRef(cfg.Azure.Translator.Key)
	cfg.Azure.Speech.Key = resolveEnvRef(cfg.Azure.Speech.Key)
	cfg.OpenAI.APIKey = resolveEnvRef(cfg.OpenAI.APIKey)

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))

	return &cfg, nil
}

// defaultMicrophoneInput returns the ffmpeg input format and device that
// address the default microphone on the given OS.
func defaultMicrophoneInput(goos string) (format, device string) {
	switch goos {
	case "darwin":
		return "avfoundation", ":0"
	case "windows":
		return "dshow", "audio=default"
	default:
		return "alsa", "default"
	}
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var value.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		envKey := val[2 : len(val)-1]
		if envVal := os.Getenv(envKey); envVal != "" {
			return envVal
		}
	}
	return val
}

// SetupLogging configures the global slog logger based on config. The
// interactive shells own stdout, so log output goes to w.
func SetupLogging(cfg LoggingConfig, w io.Writer) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}
