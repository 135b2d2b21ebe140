package config

const (
	defaultOutputDir         = "~/lingopipe"
	defaultCacheDir          = "~/.local/share/lingopipe/cache"
	defaultLogDir            = "~/.local/share/lingopipe/logs"
	defaultScratchDir        = "~/.local/share/lingopipe/scratch"
	defaultTranscriberBinary = "whisper"
	defaultTranscriberModel  = "medium"
	defaultSourceLanguage    = "en"
	defaultTranslator        = "g"
	defaultTargetLanguage    = "ru"
	defaultOpenAIModel       = "gpt-3.5-turbo"
	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultDeepLBaseURL      = "https://api-free.deepl.com/v2"
	defaultLaraBaseURL       = "https://api.laratranslate.com"
	defaultSynthesisBinary   = "edge-tts"
	defaultFemaleVoice       = "ru-RU-SvetlanaNeural"
	defaultMaleVoice         = "ru-RU-DmitryNeural"
	defaultRetryAttempts     = 3
	defaultRetryDelaySeconds = 1
	defaultMinClipBytes      = 1024
	defaultFFmpegBinary      = "ffmpeg"
	defaultFFprobeBinary     = "ffprobe"
	defaultVideoWidth        = 1280
	defaultVideoHeight       = 720
	defaultVideoFramerate    = 2
	defaultAudioBitrate      = "192k"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			CacheDir:   defaultCacheDir,
			LogDir:     defaultLogDir,
			ScratchDir: defaultScratchDir,
		},
		Transcriber: Transcriber{
			Binary:   defaultTranscriberBinary,
			Model:    defaultTranscriberModel,
			Language: defaultSourceLanguage,
		},
		Translator: Translator{
			Default:        defaultTranslator,
			TargetLanguage: defaultTargetLanguage,
			OpenAI: OpenAI{
				Model:   defaultOpenAIModel,
				BaseURL: defaultOpenAIBaseURL,
			},
			DeepL: DeepL{
				BaseURL: defaultDeepLBaseURL,
			},
			Lara: Lara{
				BaseURL: defaultLaraBaseURL,
			},
		},
		Synthesis: Synthesis{
			Binary:            defaultSynthesisBinary,
			FemaleVoice:       defaultFemaleVoice,
			MaleVoice:         defaultMaleVoice,
			RetryAttempts:     defaultRetryAttempts,
			RetryDelaySeconds: defaultRetryDelaySeconds,
			MinClipBytes:      defaultMinClipBytes,
		},
		Output: Output{
			FFmpegBinary:   defaultFFmpegBinary,
			FFprobeBinary:  defaultFFprobeBinary,
			VideoWidth:     defaultVideoWidth,
			VideoHeight:    defaultVideoHeight,
			VideoFramerate: defaultVideoFramerate,
			AudioBitrate:   defaultAudioBitrate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
