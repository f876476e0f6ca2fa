package config

import (
	"fmt"
	"strings"
)

// MissingError lists required settings that are absent. Names are the
// environment variables a user would set.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Keys, ", ")
}

// Validate checks that every value needed by the selected shell and backends
// is present. It never contacts a remote service.
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case "console", "web", "desktop":
	default:
		return fmt.Errorf("unknown ui mode %q (want console, web or desktop)", c.UI.Mode)
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("invalid web port %d", c.Web.Port)
	}

	var missing []string
	need := func(val, name string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, name)
		}
	}
	needOpenAI := false

	type capability struct {
		name    string
		backend string
		azure   func()
	}
	caps := []capability{
		{"sentiment", c.Backends.Sentiment, func() {
			need(c.Azure.TextAnalytics.Endpoint, "TEXT_ANALYTICS_ENDPOINT")
			need(c.Azure.TextAnalytics.Key, "TEXT_ANALYTICS_KEY")
		}},
		{"vision", c.Backends.Vision, func() {
			need(c.Azure.Vision.Endpoint, "AI_SERVICE_ENDPOINT")
			need(c.Azure.Vision.Key, "AI_SERVICE_KEY")
		}},
		{"translator", c.Backends.Translator, func() {
			need(c.Azure.Translator.Endpoint, "TEXTSENSE_AZURE_TRANSLATOR_ENDPOINT")
			need(c.Azure.Translator.Key, "TRANSLATOR_KEY")
			need(c.Azure.Translator.Region, "TRANSLATOR_REGION")
		}},
	}
	if c.Inputs.Voice {
		caps = append(caps, capability{"speech", c.Backends.Speech, func() {
			need(c.Azure.Speech.Key, "SPEECH_API_KEY")
			need(c.Azure.Speech.Region, "SPEECH_REGION")
		}})
	}

	for _, cp := range caps {
		switch cp.backend {
		case BackendAzure:
			cp.azure()
		case BackendOpenAI:
			needOpenAI = true
		case BackendStub:
		default:
			return fmt.Errorf("unknown %s backend %q (want azure, openai or stub)", cp.name, cp.backend)
		}
	}
	if needOpenAI {
		need(c.OpenAI.APIKey, "OPENAI_API_KEY")
		need(c.OpenAI.Model, "TEXTSENSE_OPENAI_MODEL")
	}
	if c.Inputs.Voice && c.UI.Mode != "web" {
		need(c.Microphone.Command, "TEXTSENSE_MICROPHONE_COMMAND")
		if c.Microphone.Duration <= 0 {
			return fmt.Errorf("microphone duration must be positive, got %s", c.Microphone.Duration)
		}
	}

	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}
