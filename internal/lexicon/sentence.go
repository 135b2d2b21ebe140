package lexicon

import "strings"

// Sentence groups a punctuation-delimited run of tokens with its translation
// and synthesized audio. Source fields are set by Segment; target fields are
// filled in by the translation stage.
type Sentence struct {
	ID          int     `json:"id"`
	SourceText  string  `json:"source_text"`
	Units       []Token `json:"units"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	TargetText  string  `json:"target_text"`
	TargetAudio string  `json:"target_audio,omitempty"`
	TargetUnits []Token `json:"target_units"`
}

// terminators are the symbol tokens that close a sentence.
const terminators = ".?!"

// Segment groups tokens into sentences. A symbol token whose text is one of
// ".", "?" or "!" closes the current sentence; any trailing tokens form a
// final sentence without terminal punctuation. The sentences partition the
// input exactly: no token is dropped, duplicated, or reordered.
//
// Punctuation-closed sentences are reconstructed with the symbol-aware join
// (symbols attach to the preceding token, other tokens get a single leading
// space). The trailing sentence uses a plain space join. The mismatch is kept
// deliberately: reconstructed text is part of the persisted cache payload,
// and changing either rule would make fresh entries diverge from entries
// cached by earlier versions over the same bytes.
func Segment(units []Token) []Sentence {
	var sentences []Sentence
	var buffer []Token
	id := 1

	for _, unit := range units {
		buffer = append(buffer, unit)
		if unit.Kind == KindSymbol && strings.Contains(terminators, unit.Text) {
			sentences = append(sentences, closeSentence(id, buffer, joinUnits(buffer)))
			buffer = nil
			id++
		}
	}
	if len(buffer) > 0 {
		texts := make([]string, len(buffer))
		for i, unit := range buffer {
			texts[i] = unit.Text
		}
		sentences = append(sentences, closeSentence(id, buffer, strings.TrimSpace(strings.Join(texts, " "))))
	}
	return sentences
}

func closeSentence(id int, buffer []Token, text string) Sentence {
	units := make([]Token, len(buffer))
	copy(units, buffer)
	return Sentence{
		ID:         id,
		SourceText: text,
		Units:      units,
		Start:      units[0].Span.Start,
		End:        units[len(units)-1].Span.End,
	}
}

// joinUnits rebuilds sentence text from tokens: symbols concatenate directly,
// words and numbers are preceded by a single space, and the result is
// trimmed.
func joinUnits(units []Token) string {
	var b strings.Builder
	for _, unit := range units {
		if unit.Kind == KindSymbol {
			b.WriteString(unit.Text)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(unit.Text)
	}
	return strings.TrimSpace(b.String())
}
