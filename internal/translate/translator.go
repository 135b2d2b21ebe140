// Package translate provides the translation capability and its provider
// backends.
//
// A Translator turns one source-language sentence into the target language.
// Providers are interchangeable and selected once per run by a single-letter
// code: g (OpenAI), d (DeepL), l (Lara), n (none). The none provider returns
// empty text, which is a valid no-op choice, not a failure; providers signal
// failure through the error return.
package translate

import (
	"context"
	"fmt"

	"lingopipe/internal/config"
)

// Translator converts source-language text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// New builds the provider selected by code using the configured credentials.
func New(cfg config.Translator, code string) (Translator, error) {
	switch code {
	case "g":
		return newOpenAI(cfg)
	case "d":
		return newDeepL(cfg)
	case "l":
		return newLara(cfg)
	case "n":
		return noop{}, nil
	default:
		return nil, fmt.Errorf("unknown translator %q (expected g, d, l, or n)", code)
	}
}

// Suffix returns the artifact-name suffix for a translator code. Unknown
// codes fall back to "hf", matching historical output names.
func Suffix(code string) string {
	switch code {
	case "g":
		return "gpt"
	case "d":
		return "deepl"
	case "l":
		return "lara"
	case "n":
		return "en"
	default:
		return "hf"
	}
}

// noop is the "no translation" provider: empty target text, never an error.
type noop struct{}

func (noop) Translate(context.Context, string) (string, error) {
	return "", nil
}
