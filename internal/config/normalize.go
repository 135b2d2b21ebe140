package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTranscriber()
	c.normalizeTranslator()
	c.normalizeSynthesis()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ScratchDir) == "" {
		c.Paths.ScratchDir = defaultScratchDir
	}
	if c.Paths.ScratchDir, err = expandPath(c.Paths.ScratchDir); err != nil {
		return fmt.Errorf("paths.scratch_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTranscriber() {
	c.Transcriber.Binary = strings.TrimSpace(c.Transcriber.Binary)
	if c.Transcriber.Binary == "" {
		c.Transcriber.Binary = defaultTranscriberBinary
	}
	c.Transcriber.Model = strings.TrimSpace(c.Transcriber.Model)
	if c.Transcriber.Model == "" {
		c.Transcriber.Model = defaultTranscriberModel
	}
	c.Transcriber.Language = strings.ToLower(strings.TrimSpace(c.Transcriber.Language))
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = defaultSourceLanguage
	}
}

func (c *Config) normalizeTranslator() {
	c.Translator.Default = strings.ToLower(strings.TrimSpace(c.Translator.Default))
	if c.Translator.Default == "" {
		c.Translator.Default = defaultTranslator
	}
	c.Translator.TargetLanguage = strings.TrimSpace(c.Translator.TargetLanguage)
	if c.Translator.TargetLanguage == "" {
		c.Translator.TargetLanguage = defaultTargetLanguage
	}

	c.Translator.OpenAI.APIKey = strings.TrimSpace(c.Translator.OpenAI.APIKey)
	if c.Translator.OpenAI.APIKey == "" {
		if value, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
			c.Translator.OpenAI.APIKey = strings.TrimSpace(value)
		}
	}
	c.Translator.OpenAI.Model = strings.TrimSpace(c.Translator.OpenAI.Model)
	if c.Translator.OpenAI.Model == "" {
		c.Translator.OpenAI.Model = defaultOpenAIModel
	}
	c.Translator.OpenAI.BaseURL = strings.TrimSpace(c.Translator.OpenAI.BaseURL)
	if c.Translator.OpenAI.BaseURL == "" {
		c.Translator.OpenAI.BaseURL = defaultOpenAIBaseURL
	}

	c.Translator.DeepL.AuthKey = strings.TrimSpace(c.Translator.DeepL.AuthKey)
	if c.Translator.DeepL.AuthKey == "" {
		if value, ok := os.LookupEnv("DEEPL_AUTH_KEY"); ok {
			c.Translator.DeepL.AuthKey = strings.TrimSpace(value)
		}
	}
	c.Translator.DeepL.BaseURL = strings.TrimSpace(c.Translator.DeepL.BaseURL)
	if c.Translator.DeepL.BaseURL == "" {
		c.Translator.DeepL.BaseURL = defaultDeepLBaseURL
	}

	c.Translator.Lara.AccessKeyID = strings.TrimSpace(c.Translator.Lara.AccessKeyID)
	if c.Translator.Lara.AccessKeyID == "" {
		if value, ok := os.LookupEnv("LARA_API_ID"); ok {
			c.Translator.Lara.AccessKeyID = strings.TrimSpace(value)
		}
	}
	c.Translator.Lara.AccessKeySecret = strings.TrimSpace(c.Translator.Lara.AccessKeySecret)
	if c.Translator.Lara.AccessKeySecret == "" {
		if value, ok := os.LookupEnv("LARA_API_SECRET"); ok {
			c.Translator.Lara.AccessKeySecret = strings.TrimSpace(value)
		}
	}
	c.Translator.Lara.BaseURL = strings.TrimSpace(c.Translator.Lara.BaseURL)
	if c.Translator.Lara.BaseURL == "" {
		c.Translator.Lara.BaseURL = defaultLaraBaseURL
	}
}

func (c *Config) normalizeSynthesis() {
	c.Synthesis.Binary = strings.TrimSpace(c.Synthesis.Binary)
	if c.Synthesis.Binary == "" {
		c.Synthesis.Binary = defaultSynthesisBinary
	}
	c.Synthesis.FemaleVoice = strings.TrimSpace(c.Synthesis.FemaleVoice)
	if c.Synthesis.FemaleVoice == "" {
		c.Synthesis.FemaleVoice = defaultFemaleVoice
	}
	c.Synthesis.MaleVoice = strings.TrimSpace(c.Synthesis.MaleVoice)
	if c.Synthesis.MaleVoice == "" {
		c.Synthesis.MaleVoice = defaultMaleVoice
	}
	if c.Synthesis.RetryAttempts <= 0 {
		c.Synthesis.RetryAttempts = defaultRetryAttempts
	}
	if c.Synthesis.RetryDelaySeconds <= 0 {
		c.Synthesis.RetryDelaySeconds = defaultRetryDelaySeconds
	}
	if c.Synthesis.MinClipBytes <= 0 {
		c.Synthesis.MinClipBytes = defaultMinClipBytes
	}
}

func (c *Config) normalizeOutput() {
	c.Output.FFmpegBinary = strings.TrimSpace(c.Output.FFmpegBinary)
	if c.Output.FFmpegBinary == "" {
		c.Output.FFmpegBinary = defaultFFmpegBinary
	}
	c.Output.FFprobeBinary = strings.TrimSpace(c.Output.FFprobeBinary)
	if c.Output.FFprobeBinary == "" {
		c.Output.FFprobeBinary = defaultFFprobeBinary
	}
	if c.Output.VideoWidth <= 0 {
		c.Output.VideoWidth = defaultVideoWidth
	}
	if c.Output.VideoHeight <= 0 {
		c.Output.VideoHeight = defaultVideoHeight
	}
	if c.Output.VideoFramerate <= 0 {
		c.Output.VideoFramerate = defaultVideoFramerate
	}
	c.Output.AudioBitrate = strings.TrimSpace(c.Output.AudioBitrate)
	if c.Output.AudioBitrate == "" {
		c.Output.AudioBitrate = defaultAudioBitrate
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
