package docxml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, uint(0), config.DefaultFontSize)
	assert.True(t, config.ValidateInput)
	assert.False(t, config.HTMLLineBreaks)
	assert.NoError(t, config.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, c *Config)
	}{
		{
			name: "all variables",
			env: map[string]string{
				"DOCXML_LOG_LEVEL":         "DEBUG",
				"DOCXML_DEFAULT_FONT_SIZE": "22",
				"DOCXML_VALIDATE_INPUT":    "off",
				"DOCXML_HTML_LINE_BREAKS":  "yes",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "debug", c.LogLevel)
				assert.Equal(t, uint(22), c.DefaultFontSize)
				assert.False(t, c.ValidateInput)
				assert.True(t, c.HTMLLineBreaks)
			},
		},
		{
			name: "unparseable size keeps default",
			env:  map[string]string{"DOCXML_DEFAULT_FONT_SIZE": "large"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, uint(0), c.DefaultFontSize)
			},
		},
		{
			name: "nothing set",
			env:  map[string]string{},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultConfig(), c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DOCXML_LOG_LEVEL", "DOCXML_DEFAULT_FONT_SIZE", "DOCXML_VALIDATE_INPUT", "DOCXML_HTML_LINE_BREAKS"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, ConfigFromEnvironment())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantField string
	}{
		{name: "valid", config: Config{LogLevel: "warn", DefaultFontSize: 24}},
		{name: "off is a valid level", config: Config{LogLevel: "off"}},
		{name: "bad level", config: Config{LogLevel: "verbose"}, wantField: "log_level"},
		{name: "size too large", config: Config{LogLevel: "info", DefaultFontSize: 5000}, wantField: "default_font_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			require.Len(t, vErr.Issues, 1)
			assert.Equal(t, tt.wantField, vErr.Issues[0].Field)
		})
	}
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte("log_level: debug\ndefault_font_size: 28\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, uint(28), config.DefaultFontSize)
	assert.True(t, config.ValidateInput, "absent keys keep defaults")

	_, err = ParseConfig([]byte("log_level: [unterminated"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("log_level: loud\n"))
	assert.True(t, IsValidationError(err))
}

func TestLoadConfigFile(t *testing.T) {
	path := writeTempFile(t, "docxml.yaml", "log_level: error\nhtml_line_breaks: true\n")
	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
	assert.True(t, config.HTMLLineBreaks)

	_, err = LoadConfigFile(path + ".missing")
	assert.Error(t, err)
}

func TestGlobalConfig(t *testing.T) {
	withConfig(t, func(c *Config) { c.DefaultFontSize = 18 })

	got := GetGlobalConfig()
	assert.Equal(t, uint(18), got.DefaultFontSize)

	got.DefaultFontSize = 99
	assert.Equal(t, uint(18), GetGlobalConfig().DefaultFontSize, "GetGlobalConfig returns a copy")
}

func TestSetGlobalConfigUpdatesLogger(t *testing.T) {
	captureLogs(t, LogInfo)
	withConfig(t, func(c *Config) { c.LogLevel = "debug" })
	assert.True(t, GetLogger().IsDebugMode())
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "1", "yes", "on", " TRUE "} {
		assert.True(t, parseBool(s), s)
	}
	for _, s := range []string{"false", "0", "no", "", "maybe"} {
		assert.False(t, parseBool(s), s)
	}
}
