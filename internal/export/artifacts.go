package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lingopipe/internal/lexicon"
)

// Artifacts holds the output paths for one run, all derived from the input
// file's base name and the translator suffix.
type Artifacts struct {
	Audio      string
	Subtitles  string
	Video      string
	Transcript string
	Units      string
	Sentences  string
}

// ArtifactPaths derives the artifact set for an input file. suffix names the
// translator that produced the target text, so outputs from different
// translators sit side by side without clobbering each other.
func ArtifactPaths(outputDir, inputPath, suffix string) Artifacts {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	bilingual := filepath.Join(outputDir, fmt.Sprintf("%s_bilingual_%s", base, suffix))
	return Artifacts{
		Audio:      bilingual + ".mp3",
		Subtitles:  bilingual + ".srt",
		Video:      bilingual + ".mp4",
		Transcript: bilingual + ".txt",
		Units:      filepath.Join(outputDir, fmt.Sprintf("%s_semantic_units_%s.json", base, suffix)),
		Sentences:  filepath.Join(outputDir, fmt.Sprintf("%s_bilingual_objects_%s.json", base, suffix)),
	}
}

// WriteTranscript dumps the complete sentence structure as indented text:
// ids, spans, token lists, and both texts. It renders the same structure as
// the JSON artifact so the dump sitting next to the media files is
// self-contained.
func WriteTranscript(path string, sentences []lexicon.Sentence) error {
	return writeJSON(path, sentences, "write transcript")
}

// WriteUnits dumps the token list as indented JSON.
func WriteUnits(path string, units []lexicon.Token) error {
	return writeJSON(path, units, "write units")
}

// WriteSentences dumps the sentence list as indented JSON.
func WriteSentences(path string, sentences []lexicon.Sentence) error {
	return writeJSON(path, sentences, "write sentences")
}

func writeJSON(path string, value any, op string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
