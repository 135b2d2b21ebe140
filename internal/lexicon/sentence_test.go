package lexicon_test

import (
	"testing"

	"lingopipe/internal/lexicon"
)

func wordTokens(t *testing.T, words []string, spans []lexicon.Span) []lexicon.Token {
	t.Helper()
	if len(words) != len(spans) {
		t.Fatalf("fixture mismatch: %d words, %d spans", len(words), len(spans))
	}
	var tokens []lexicon.Token
	next := 1
	for i, w := range words {
		split, n := lexicon.Tokenize(w, next, spans[i])
		tokens = append(tokens, split...)
		next = n
	}
	return tokens
}

func TestSegmentHelloWorld(t *testing.T) {
	words := []string{"Hello", "world.", "How", "are", "you?"}
	spans := []lexicon.Span{
		{Start: 0.0, End: 0.4},
		{Start: 0.5, End: 0.9},
		{Start: 1.5, End: 1.7},
		{Start: 1.8, End: 2.0},
		{Start: 2.1, End: 2.4},
	}
	sentences := lexicon.Segment(wordTokens(t, words, spans))

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	first, second := sentences[0], sentences[1]
	if first.SourceText != "Hello world." {
		t.Errorf("first sentence text = %q", first.SourceText)
	}
	if second.SourceText != "How are you?" {
		t.Errorf("second sentence text = %q", second.SourceText)
	}
	if got := first.Units[len(first.Units)-1].Text; got != "." {
		t.Errorf("first sentence ends with %q, want %q", got, ".")
	}
	if got := second.Units[len(second.Units)-1].Text; got != "?" {
		t.Errorf("second sentence ends with %q, want %q", got, "?")
	}
	if first.Start != 0.0 || first.End != 0.9 {
		t.Errorf("first sentence span = [%v, %v]", first.Start, first.End)
	}
	if second.Start != 1.5 || second.End != 2.4 {
		t.Errorf("second sentence span = [%v, %v]", second.Start, second.End)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("sentence ids = %d, %d", first.ID, second.ID)
	}
}

func TestSegmentPartitionsTokens(t *testing.T) {
	words := []string{"One.", "Two", "and", "three!", "tail", "tokens"}
	spans := make([]lexicon.Span, len(words))
	for i := range spans {
		spans[i] = lexicon.Span{Start: float64(i), End: float64(i) + 0.5}
	}
	tokens := wordTokens(t, words, spans)
	sentences := lexicon.Segment(tokens)

	var joined []lexicon.Token
	for _, s := range sentences {
		joined = append(joined, s.Units...)
	}
	if len(joined) != len(tokens) {
		t.Fatalf("partition lost tokens: %d vs %d", len(joined), len(tokens))
	}
	for i := range tokens {
		if joined[i] != tokens[i] {
			t.Fatalf("token %d reordered: %#v vs %#v", i, joined[i], tokens[i])
		}
	}

	prev := 0
	for _, s := range sentences {
		if s.ID != prev+1 {
			t.Fatalf("sentence ids not contiguous: got %d after %d", s.ID, prev)
		}
		prev = s.ID
	}
}

func TestSegmentTrailingSentenceUsesPlainJoin(t *testing.T) {
	// The trailing buffer has no terminal punctuation and is joined with
	// plain spaces, so an embedded comma picks up a leading space unlike the
	// punctuation-closed join.
	words := []string{"wait", ",", "there"}
	spans := []lexicon.Span{{End: 0.1}, {Start: 0.1, End: 0.2}, {Start: 0.2, End: 0.3}}
	sentences := lexicon.Segment(wordTokens(t, words, spans))
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if sentences[0].SourceText != "wait , there" {
		t.Fatalf("trailing join = %q, want %q", sentences[0].SourceText, "wait , there")
	}
}

func TestSegmentSymbolAwareJoin(t *testing.T) {
	words := []string{"wait", ",", "there", "now."}
	spans := []lexicon.Span{{End: 0.1}, {Start: 0.1, End: 0.2}, {Start: 0.2, End: 0.3}, {Start: 0.3, End: 0.5}}
	sentences := lexicon.Segment(wordTokens(t, words, spans))
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if sentences[0].SourceText != "wait, there now." {
		t.Fatalf("symbol-aware join = %q, want %q", sentences[0].SourceText, "wait, there now.")
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	if got := lexicon.Segment(nil); len(got) != 0 {
		t.Fatalf("expected no sentences, got %#v", got)
	}
}
