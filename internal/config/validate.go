package config

import (
	"errors"
	"fmt"
)

var knownTranslators = map[string]struct{}{
	"g": {},
	"d": {},
	"l": {},
	"n": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranslator(); err != nil {
		return err
	}
	if err := c.validateSynthesis(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranslator() error {
	if _, ok := knownTranslators[c.Translator.Default]; !ok {
		return fmt.Errorf("translator.default %q is not one of g (OpenAI), d (DeepL), l (Lara), n (none)", c.Translator.Default)
	}
	if _, err := c.TargetLanguageTag(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSynthesis() error {
	if c.Synthesis.RetryAttempts < 1 {
		return errors.New("synthesis.retry_attempts must be at least 1")
	}
	if c.Synthesis.MinClipBytes < 0 {
		return errors.New("synthesis.min_clip_bytes must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.VideoWidth < 16 || c.Output.VideoHeight < 16 {
		return errors.New("output.video_width and output.video_height must be at least 16")
	}
	if c.Output.VideoFramerate < 1 {
		return errors.New("output.video_framerate must be at least 1")
	}
	return nil
}
