package docxml

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration options for go-docxml
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error off"`
	// DefaultFontSize in half-points is applied to declarative runs that set no size. 0 leaves size unset.
	DefaultFontSize uint `yaml:"default_font_size" validate:"lte=3276"`
	// ValidateInput enables struct validation of declarative run descriptions
	ValidateInput bool `yaml:"validate_input"`
	// HTMLLineBreaks turns newlines inside HTML text into line breaks
	HTMLLineBreaks bool `yaml:"html_line_breaks"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		DefaultFontSize: 0,
		ValidateInput:   true,
		HTMLLineBreaks:  false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCXML_LOG_LEVEL
	if val := os.Getenv("DOCXML_LOG_LEVEL"); val != "" {
		config.LogLevel = strings.ToLower(val)
	}

	// DOCXML_DEFAULT_FONT_SIZE
	if val := os.Getenv("DOCXML_DEFAULT_FONT_SIZE"); val != "" {
		if size, err := strconv.ParseUint(val, 10, 32); err == nil {
			config.DefaultFontSize = uint(size)
		}
	}

	// DOCXML_VALIDATE_INPUT
	if val := os.Getenv("DOCXML_VALIDATE_INPUT"); val != "" {
		config.ValidateInput = parseBool(val)
	}

	// DOCXML_HTML_LINE_BREAKS
	if val := os.Getenv("DOCXML_HTML_LINE_BREAKS"); val != "" {
		config.HTMLLineBreaks = parseBool(val)
	}

	return config
}

// ParseConfig decodes a YAML configuration. Keys that are absent keep their defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFile reads and validates a YAML configuration file
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validateStruct(c)
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
