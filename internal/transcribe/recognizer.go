package transcribe

import (
	"context"
	"strings"

	"lingopipe/internal/lexicon"
)

// Word is a recognized word with its audio offsets in seconds.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Segment is one recognizer segment containing timestamped words.
type Segment struct {
	Words []Word `json:"words"`
}

// Result is the recognizer payload for a whole file.
type Result struct {
	Segments []Segment `json:"segments"`
}

// Recognizer converts an audio file into timestamped words.
type Recognizer interface {
	Transcribe(ctx context.Context, audioPath string) (Result, error)
}

// BuildTokens flattens a recognizer result into the global token sequence.
// Words are trimmed and empty ones dropped; each remaining word is split
// into typed tokens that inherit the word's span. IDs increase from 1 across
// the whole file regardless of word boundaries.
func BuildTokens(result Result) []lexicon.Token {
	var units []lexicon.Token
	nextID := 1
	for _, segment := range result.Segments {
		for _, word := range segment.Words {
			raw := strings.TrimSpace(word.Word)
			if raw == "" {
				continue
			}
			var tokens []lexicon.Token
			tokens, nextID = lexicon.Tokenize(raw, nextID, lexicon.Span{Start: word.Start, End: word.End})
			units = append(units, tokens...)
		}
	}
	return units
}
