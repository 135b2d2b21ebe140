package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"lingopipe/internal/lexicon"
	"lingopipe/internal/logging"
	"lingopipe/internal/retry"
)

// silenceClipMS is the stand-in clip length for sentences that have nothing
// to speak.
const silenceClipMS = 10

// enrich fills in target text, synthesized audio, and target tokens for
// every sentence, in place. Translation failures abort the run; synthesis
// failures leave the sentence text-only once the retries are exhausted.
func (r *Runner) enrich(ctx context.Context, logger *slog.Logger, sentences []lexicon.Sentence, req Request, voiceName, scratch string) error {
	if !req.Mode.RequiresTranslation() {
		return nil
	}
	translator, err := r.newTranslator(req.Translator)
	if err != nil {
		return err
	}

	total := len(sentences)
	for i := range sentences {
		s := &sentences[i]
		r.observe(StageEnrich, fmt.Sprintf("sentence %d/%d", i+1, total))

		if punctuationOnly(s.Units) {
			// Nothing to translate or speak; mirror the text so the
			// subtitle line still appears.
			s.TargetText = s.SourceText
			s.TargetUnits = []lexicon.Token{}
			if req.Mode.RequiresTargetAudio() {
				clip := clipPath(scratch, s.ID)
				if err := r.silence(ctx, clip, silenceClipMS*time.Millisecond); err != nil {
					return err
				}
				s.TargetAudio = clip
			}
			continue
		}

		text, err := translator.Translate(ctx, s.SourceText)
		if err != nil {
			return fmt.Errorf("translate sentence %d: %w", s.ID, err)
		}
		s.TargetText = text

		if req.Mode.RequiresTargetAudio() {
			clip := clipPath(scratch, s.ID)
			err := retry.Do(ctx, r.cfg.Synthesis.RetryAttempts, r.cfg.Synthesis.RetryDelay(), func(ctx context.Context) error {
				return r.synthesizer.Synthesize(ctx, text, voiceName, clip)
			})
			if err != nil {
				// The sentence keeps its text but contributes no audio;
				// the assembler handles the zero-duration span.
				logger.Warn("synthesis failed, keeping text only",
					slog.Int(logging.FieldSentenceID, s.ID),
					logging.Error(err))
				s.TargetUnits = []lexicon.Token{}
				continue
			}
			s.TargetAudio = clip
		}

		s.TargetUnits = r.targetUnits(ctx, text, s.TargetAudio)
	}
	return nil
}

// targetUnits tokenizes the translation and spreads the measured clip
// duration evenly across the tokens. Word-level timing is not available for
// synthesized speech, so an even split is the best estimate.
func (r *Runner) targetUnits(ctx context.Context, text, clipPath string) []lexicon.Token {
	units, _ := lexicon.Tokenize(text, 1, lexicon.Span{})
	if len(units) == 0 || clipPath == "" {
		return units
	}
	durMS := r.probeMS(ctx, clipPath)
	if durMS <= 0 {
		return units
	}
	share := float64(durMS) / 1000 / float64(len(units))
	for i := range units {
		units[i].Span = lexicon.Span{
			Start: float64(i) * share,
			End:   float64(i+1) * share,
		}
	}
	return units
}

func punctuationOnly(units []lexicon.Token) bool {
	for _, u := range units {
		if u.Kind != lexicon.KindSymbol {
			return false
		}
	}
	return len(units) > 0
}

func clipPath(scratch string, sentenceID int) string {
	return filepath.Join(scratch, fmt.Sprintf("sentence_%d.mp3", sentenceID))
}
