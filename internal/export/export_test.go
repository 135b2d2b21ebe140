package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lingopipe/internal/config"
	"lingopipe/internal/lexicon"
	"lingopipe/internal/logging"
	"lingopipe/internal/timeline"
)

func testExporter(t *testing.T) (*Exporter, *[][]string) {
	t.Helper()
	cfg := config.Default().Output
	var calls [][]string
	exp := New(cfg, t.TempDir(), logging.NewNop())
	exp.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, append([]string{name}, args...))
		return nil, nil
	})
	return exp, &calls
}

func samplePlan() timeline.Plan {
	return timeline.Plan{
		Segments: []timeline.Segment{
			{Kind: timeline.SegmentSource, SourceStartMS: 500, SourceEndMS: 1500, DurationMS: 1000, FadeIn: true, FadeOut: true},
			{Kind: timeline.SegmentSilence, DurationMS: 10},
			{Kind: timeline.SegmentClip, Path: "/scratch/s1.mp3", DurationMS: 700, FadeIn: true},
		},
		Events: []timeline.Event{
			{StartMS: 0, EndMS: 1000, Text: "Hello world.", Track: timeline.TrackTop},
			{StartMS: 1010, EndMS: 1710, Text: "Привет, мир.", Track: timeline.TrackTop},
		},
		TotalMS: 1710,
	}
}

func TestArtifactPaths(t *testing.T) {
	paths := ArtifactPaths("/out", "/media/lecture one.mp3", "gpt")
	if paths.Audio != "/out/lecture one_bilingual_gpt.mp3" {
		t.Errorf("audio path = %q", paths.Audio)
	}
	if paths.Subtitles != "/out/lecture one_bilingual_gpt.srt" {
		t.Errorf("subtitles path = %q", paths.Subtitles)
	}
	if paths.Video != "/out/lecture one_bilingual_gpt.mp4" {
		t.Errorf("video path = %q", paths.Video)
	}
	if paths.Units != "/out/lecture one_semantic_units_gpt.json" {
		t.Errorf("units path = %q", paths.Units)
	}
	if paths.Sentences != "/out/lecture one_bilingual_objects_gpt.json" {
		t.Errorf("sentences path = %q", paths.Sentences)
	}
}

func TestFilterScript(t *testing.T) {
	plan := samplePlan()
	script := filterScript(plan, map[string]int{"/scratch/s1.mp3": 1})

	for _, want := range []string{
		"[0:a]atrim=start=0.500:end=1.500,asetpts=PTS-STARTPTS,afade=t=in:d=0.010,afade=t=out:st=0.990:d=0.010",
		"anullsrc=r=24000:cl=mono,atrim=end=0.010",
		"[1:a]asetpts=PTS-STARTPTS,afade=t=in:d=0.010",
		"[seg0][seg1][seg2]concat=n=3:v=0:a=1[out]",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("missing %q in script:\n%s", want, script)
		}
	}
}

func TestAudioInvokesFFmpeg(t *testing.T) {
	exp, calls := testExporter(t)
	out := filepath.Join(t.TempDir(), "out.mp3")
	if err := exp.Audio(context.Background(), samplePlan(), "/media/in.mp3", out); err != nil {
		t.Fatalf("Audio: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one ffmpeg call, got %d", len(*calls))
	}
	args := strings.Join((*calls)[0], " ")
	if !strings.HasPrefix(args, "ffmpeg ") {
		t.Errorf("unexpected binary in %q", args)
	}
	for _, want := range []string{"-i /media/in.mp3", "-i /scratch/s1.mp3", "-filter_complex_script", "-map [out]", "-b:a 192k", out} {
		if !strings.Contains(args, want) {
			t.Errorf("missing %q in args: %s", want, args)
		}
	}
	// The filter script should have been written to scratch.
	if _, err := os.Stat(filepath.Join(exp.scratch, "assembly.ffscript")); err != nil {
		t.Errorf("filter script not written: %v", err)
	}
}

func TestAudioEmptyPlan(t *testing.T) {
	exp, _ := testExporter(t)
	if err := exp.Audio(context.Background(), timeline.Plan{}, "in.mp3", "out.mp3"); err == nil {
		t.Fatal("expected error for empty plan")
	}
}

func TestVideoInvokesFFmpeg(t *testing.T) {
	exp, calls := testExporter(t)
	out := filepath.Join(t.TempDir(), "out.mp4")
	if err := exp.Video(context.Background(), samplePlan().Events, "/out/audio.mp3", out); err != nil {
		t.Fatalf("Video: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one ffmpeg call, got %d", len(*calls))
	}
	args := strings.Join((*calls)[0], " ")
	for _, want := range []string{"-loop 1", "-framerate 2", "-tune stillimage", "-c:a aac", "-shortest", "ass="} {
		if !strings.Contains(args, want) {
			t.Errorf("missing %q in args: %s", want, args)
		}
	}
	// Background and subtitle intermediates land in scratch.
	if _, err := os.Stat(filepath.Join(exp.scratch, "background.png")); err != nil {
		t.Errorf("background not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(exp.scratch, "events.ass")); err != nil {
		t.Errorf("ass file not written: %v", err)
	}
}

func TestWriteTranscriptCarriesFullStructure(t *testing.T) {
	sentences := []lexicon.Sentence{{
		ID:         1,
		SourceText: "Hello world.",
		TargetText: "Привет, мир.",
		Units: []lexicon.Token{
			{ID: 1, Kind: lexicon.KindWord, Text: "Hello", Span: lexicon.Span{Start: 0.5, End: 0.9}},
			{ID: 2, Kind: lexicon.KindWord, Text: "world", Span: lexicon.Span{Start: 0.9, End: 1.5}},
			{ID: 3, Kind: lexicon.KindSymbol, Text: ".", Span: lexicon.Span{Start: 0.9, End: 1.5}},
		},
		Start: 0.5,
		End:   1.5,
	}}

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteTranscript(path, sentences); err != nil {
		t.Fatalf("WriteTranscript: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// The dump is the whole sentence structure, not just the display text.
	var decoded []lexicon.Sentence
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("transcript should decode as sentences: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ID != 1 {
		t.Fatalf("unexpected decoded transcript: %+v", decoded)
	}
	if decoded[0].Start != 0.5 || decoded[0].End != 1.5 {
		t.Errorf("transcript lost the sentence span: %+v", decoded[0])
	}
	if len(decoded[0].Units) != 3 {
		t.Errorf("transcript lost the token list: %+v", decoded[0].Units)
	}
	if decoded[0].SourceText != "Hello world." || decoded[0].TargetText != "Привет, мир." {
		t.Errorf("transcript lost the texts: %+v", decoded[0])
	}
}

func TestWriteJSONDumps(t *testing.T) {
	dir := t.TempDir()
	units := []lexicon.Token{
		{ID: 1, Kind: lexicon.KindWord, Text: "Hello", Span: lexicon.Span{Start: 0.5, End: 0.9}},
	}
	unitsPath := filepath.Join(dir, "units.json")
	if err := WriteUnits(unitsPath, units); err != nil {
		t.Fatalf("WriteUnits: %v", err)
	}
	data, err := os.ReadFile(unitsPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded []lexicon.Token
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Text != "Hello" {
		t.Errorf("round trip mismatch: %+v", decoded)
	}

	sentences := []lexicon.Sentence{{ID: 1, SourceText: "Hello.", TargetText: "Привет."}}
	sentencesPath := filepath.Join(dir, "sentences.json")
	if err := WriteSentences(sentencesPath, sentences); err != nil {
		t.Fatalf("WriteSentences: %v", err)
	}
	if _, err := os.Stat(sentencesPath); err != nil {
		t.Errorf("sentences dump missing: %v", err)
	}
}
