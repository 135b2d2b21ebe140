package transcribe_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lingopipe/internal/config"
	"lingopipe/internal/lexicon"
	"lingopipe/internal/transcribe"
)

func TestBuildTokensSplitsWordsAndSharesSpans(t *testing.T) {
	result := transcribe.Result{Segments: []transcribe.Segment{{
		Words: []transcribe.Word{
			{Word: " Hello", Start: 0.0, End: 0.4},
			{Word: "world.", Start: 0.5, End: 0.9},
			{Word: "   ", Start: 1.0, End: 1.1},
			{Word: "42%", Start: 1.2, End: 1.5},
		},
	}}}

	units := transcribe.BuildTokens(result)
	wantTexts := []string{"Hello", "world", ".", "42", "%"}
	if len(units) != len(wantTexts) {
		t.Fatalf("got %d tokens, want %d: %#v", len(units), len(wantTexts), units)
	}
	for i, want := range wantTexts {
		if units[i].Text != want {
			t.Errorf("token %d text = %q, want %q", i, units[i].Text, want)
		}
		if units[i].ID != i+1 {
			t.Errorf("token %d id = %d, want %d", i, units[i].ID, i+1)
		}
	}
	// Tokens split from the same word share its span.
	if units[1].Span != units[2].Span {
		t.Errorf("tokens from %q have differing spans: %+v vs %+v", "world.", units[1].Span, units[2].Span)
	}
	if units[3].Kind != lexicon.KindNumber || units[4].Kind != lexicon.KindSymbol {
		t.Errorf("unexpected kinds: %q %q", units[3].Kind, units[4].Kind)
	}
}

func TestBuildTokensEmptyResult(t *testing.T) {
	if units := transcribe.BuildTokens(transcribe.Result{}); len(units) != 0 {
		t.Fatalf("expected no tokens, got %#v", units)
	}
}

func TestCLITranscribeReadsJSONOutput(t *testing.T) {
	workDir := t.TempDir()
	cli := transcribe.NewCLI(config.Transcriber{Binary: "whisper", Model: "medium", Language: "en"}, workDir)

	want := transcribe.Result{Segments: []transcribe.Segment{{
		Words: []transcribe.Word{{Word: "Hello", Start: 0, End: 0.4}},
	}}}

	var gotArgs []string
	cli.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		gotArgs = append([]string{name}, args...)
		payload, err := json.Marshal(want)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(workDir, "clip.json"), payload, 0o644)
	})

	result, err := cli.Transcribe(context.Background(), "/media/clip.mp3")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if len(result.Segments) != 1 || len(result.Segments[0].Words) != 1 {
		t.Fatalf("unexpected result: %#v", result)
	}
	if gotArgs[0] != "whisper" || gotArgs[1] != "/media/clip.mp3" {
		t.Fatalf("unexpected command: %v", gotArgs)
	}
	joined := ""
	for _, a := range gotArgs {
		joined += a + " "
	}
	for _, want := range []string{"--word_timestamps", "--output_format", "json", "--model", "medium"} {
		found := false
		for _, a := range gotArgs {
			if a == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing arg %q in %q", want, joined)
		}
	}
}

func TestCLITranscribeFailsWhenRecognizerUnavailable(t *testing.T) {
	cli := transcribe.NewCLI(config.Transcriber{Binary: "definitely-not-installed"}, t.TempDir())
	cli.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return os.ErrNotExist
	})
	if _, err := cli.Transcribe(context.Background(), "/media/clip.mp3"); err == nil {
		t.Fatal("expected error when recognizer is unavailable")
	}
}
