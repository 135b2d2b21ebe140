// Package lexicon defines the token and sentence model shared by every
// pipeline stage, the run tokenizer that splits recognized text into typed
// tokens, and the sentence segmenter.
package lexicon

import "unicode"

// Kind classifies a token by its character content.
type Kind string

const (
	KindWord   Kind = "word"
	KindNumber Kind = "number"
	KindSymbol Kind = "symbol"
)

// Span is a half-open audio interval in seconds.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Token is the smallest classified text fragment with an audio timestamp
// span. Tokens are immutable once created.
type Token struct {
	ID   int    `json:"id"`
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	Span Span   `json:"audio"`
}

// Classify returns the kind for a token text: all digits is a number, all
// alphabetic is a word, anything else is a symbol.
func Classify(text string) Kind {
	if text == "" {
		return KindSymbol
	}
	digits, letters := true, true
	for _, r := range text {
		if !unicode.IsDigit(r) {
			digits = false
		}
		if !unicode.IsLetter(r) {
			letters = false
		}
	}
	switch {
	case digits:
		return KindNumber
	case letters:
		return KindWord
	default:
		return KindSymbol
	}
}

// Tokenize splits text into maximal digit runs, maximal alphabetic runs, and
// single non-alphanumeric non-space characters. Each run becomes one Token
// carrying the given span. IDs are assigned starting at nextID; the id after
// the last assigned one is returned so callers can thread the counter across
// calls.
func Tokenize(text string, nextID int, span Span) ([]Token, int) {
	var tokens []Token
	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			tokens = append(tokens, Token{ID: nextID, Kind: KindNumber, Text: string(runes[i:j]), Span: span})
			nextID++
			i = j
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			tokens = append(tokens, Token{ID: nextID, Kind: KindWord, Text: string(runes[i:j]), Span: span})
			nextID++
			i = j
		case unicode.IsSpace(r):
			i++
		default:
			tokens = append(tokens, Token{ID: nextID, Kind: KindSymbol, Text: string(r), Span: span})
			nextID++
			i++
		}
	}
	return tokens, nextID
}
