package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/practice-text/internal/locale"
)

const (
	minSnippetLength = 5
	maxSnippetLength = 200
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (s *StudyConfig) validate() error {
	if !locale.Default().Supports(s.Language) {
		return fmt.Errorf("language %q is not supported", s.Language)
	}
	if s.SnippetLength < minSnippetLength || s.SnippetLength > maxSnippetLength {
		return fmt.Errorf("snippet_length must be in [%d, %d] (got %d)", minSnippetLength, maxSnippetLength, s.SnippetLength)
	}
	if s.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be > 0 (got %d)", s.MaxInputBytes)
	}
	return nil
}
