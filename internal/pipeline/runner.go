package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"lingopipe/internal/cache"
	"lingopipe/internal/config"
	"lingopipe/internal/export"
	"lingopipe/internal/fingerprint"
	"lingopipe/internal/lexicon"
	"lingopipe/internal/logging"
	"lingopipe/internal/media"
	"lingopipe/internal/subtitles"
	"lingopipe/internal/synthesize"
	"lingopipe/internal/timeline"
	"lingopipe/internal/transcribe"
	"lingopipe/internal/translate"
)

// Request describes one pipeline run.
type Request struct {
	AudioPath  string
	Translator string
	Mode       timeline.Mode
	Voice      string
	// OutputDir overrides the configured output directory when set.
	OutputDir string
}

// Result reports what a run produced and which cache tiers it hit.
type Result struct {
	Artifacts      export.Artifacts
	Sentences      int
	ContentCached  bool
	SettingsCached bool
	Duration       time.Duration
}

// Runner executes pipeline runs. The collaborator factories exist so tests
// can substitute fakes without touching external binaries or services.
type Runner struct {
	cfg      *config.Config
	store    *cache.Store
	logger   *slog.Logger
	observer Observer

	newRecognizer func(workDir string) transcribe.Recognizer
	newTranslator func(code string) (translate.Translator, error)
	synthesizer   synthesize.Synthesizer
	silence       func(ctx context.Context, outPath string, d time.Duration) error
	probeMS       func(ctx context.Context, path string) int
	newExporter   func(scratchDir string) *export.Exporter
}

func New(cfg *config.Config, store *cache.Store, logger *slog.Logger) *Runner {
	r := &Runner{cfg: cfg, store: store, logger: logger}
	r.newRecognizer = func(workDir string) transcribe.Recognizer {
		return transcribe.NewCLI(cfg.Transcriber, workDir)
	}
	r.newTranslator = func(code string) (translate.Translator, error) {
		return translate.New(cfg.Translator, code)
	}
	r.synthesizer = synthesize.NewCLI(cfg.Synthesis)
	r.silence = func(ctx context.Context, outPath string, d time.Duration) error {
		return synthesize.Silence(ctx, cfg.Output.FFmpegBinary, outPath, d)
	}
	r.probeMS = func(ctx context.Context, path string) int {
		d, err := media.Duration(ctx, cfg.Output.FFprobeBinary, path)
		if err != nil {
			return 0
		}
		return int(d.Milliseconds())
	}
	r.newExporter = func(scratchDir string) *export.Exporter {
		return export.New(cfg.Output, scratchDir, logger)
	}
	return r
}

// WithObserver registers a progress observer.
func (r *Runner) WithObserver(fn Observer) *Runner {
	r.observer = fn
	return r
}

// Run executes the full pipeline for one input file.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()

	if req.AudioPath == "" {
		return nil, errors.New("no input file given")
	}
	if _, err := os.Stat(req.AudioPath); err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}
	voiceName, err := synthesize.VoiceFor(r.cfg.Synthesis, req.Voice)
	if err != nil {
		return nil, err
	}
	if req.Mode.RequiresTargetAudio() && voiceName == "" {
		voiceName = r.cfg.Synthesis.FemaleVoice
	}
	if _, err := r.newTranslator(req.Translator); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.logger.With(logging.FieldRunID, runID)
	logger.Info("starting run",
		slog.String("input", req.AudioPath),
		slog.String("translator", req.Translator),
		slog.String("mode", req.Mode.String()),
		slog.String("voice", req.Voice))

	r.observe(StageHash, "fingerprinting input")
	dataHash, fullHash, err := fingerprint.HashFile(req.AudioPath, req.Translator, req.Mode.ID(), req.Voice)
	if err != nil {
		return nil, err
	}

	scratch := filepath.Join(r.cfg.Paths.ScratchDir, runID)
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			logger.Warn("failed to remove scratch dir", logging.Error(err))
		}
	}()

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = r.cfg.Paths.OutputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	result := &Result{}

	tokens, err := r.contentLayer(ctx, logger, req, scratch, dataHash, result)
	if err != nil {
		return nil, err
	}

	sentences, err := r.settingsLayer(ctx, logger, req, scratch, dataHash, fullHash, voiceName, tokens, result)
	if err != nil {
		return nil, err
	}
	result.Sentences = len(sentences)

	r.observe(StageAssemble, "assembling timeline")
	plan := timeline.Assemble(sentences, req.Mode, func(path string) int {
		return r.probeMS(ctx, path)
	}, func(done, total int) {
		r.observe(StageAssemble, fmt.Sprintf("sentence %d/%d", done, total))
	})

	r.observe(StageExport, "writing artifacts")
	paths := export.ArtifactPaths(outputDir, req.AudioPath, translate.Suffix(req.Translator))
	exp := r.newExporter(scratch)
	if err := exp.Audio(ctx, plan, req.AudioPath, paths.Audio); err != nil {
		return nil, err
	}
	if err := subtitles.WriteSRT(paths.Subtitles, plan.Events); err != nil {
		return nil, err
	}
	if err := exp.Video(ctx, plan.Events, paths.Audio, paths.Video); err != nil {
		return nil, err
	}
	if err := export.WriteTranscript(paths.Transcript, sentences); err != nil {
		return nil, err
	}
	if err := export.WriteUnits(paths.Units, tokens); err != nil {
		return nil, err
	}
	if err := export.WriteSentences(paths.Sentences, sentences); err != nil {
		return nil, err
	}
	result.Artifacts = paths
	result.Duration = time.Since(started)

	logger.Info("run complete",
		slog.Int("sentences", result.Sentences),
		slog.Bool("content_cached", result.ContentCached),
		slog.Bool("settings_cached", result.SettingsCached),
		slog.Duration("duration", result.Duration))
	return result, nil
}

// contentLayer returns the token list for the input, transcribing only on a
// cache miss. Concurrent runs over the same input are serialized through the
// store lock; losing the insert race is handled by re-reading the winner's
// entry.
func (r *Runner) contentLayer(ctx context.Context, logger *slog.Logger, req Request, scratch, dataHash string, result *Result) ([]lexicon.Token, error) {
	tokens, ok, err := r.store.GetTokens(ctx, dataHash)
	if err != nil {
		return nil, err
	}
	if ok {
		result.ContentCached = true
		logger.Info("content cache hit", slog.Int("tokens", len(tokens)))
		return tokens, nil
	}

	r.observe(StageTranscribe, "transcribing audio")
	recognized, err := r.newRecognizer(scratch).Transcribe(ctx, req.AudioPath)
	if err != nil {
		return nil, err
	}
	tokens = transcribe.BuildTokens(recognized)
	if len(tokens) == 0 {
		return nil, errors.New("no speech recognized in input")
	}

	unlock, err := r.store.Lock(ctx)
	if err != nil {
		return nil, err
	}
	err = r.store.PutTokens(ctx, dataHash, tokens)
	unlock()
	if errors.Is(err, cache.ErrDuplicateKey) {
		// Another run transcribed the same input first; use its entry.
		tokens, _, err = r.store.GetTokens(ctx, dataHash)
	}
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// settingsLayer returns the enriched sentence list for this setting
// combination, segmenting and enriching only on a cache miss.
func (r *Runner) settingsLayer(ctx context.Context, logger *slog.Logger, req Request, scratch, dataHash, fullHash, voiceName string, tokens []lexicon.Token, result *Result) ([]lexicon.Sentence, error) {
	sentences, ok, err := r.store.GetSentences(ctx, fullHash)
	if err != nil {
		return nil, err
	}
	if ok {
		result.SettingsCached = true
		logger.Info("settings cache hit", slog.Int("sentences", len(sentences)))
		return sentences, nil
	}

	r.observe(StageSegment, "segmenting tokens")
	sentences = lexicon.Segment(tokens)
	if len(sentences) == 0 {
		return nil, errors.New("no sentences found in input")
	}

	if err := r.enrich(ctx, logger, sentences, req, voiceName, scratch); err != nil {
		return nil, err
	}

	unlock, err := r.store.Lock(ctx)
	if err != nil {
		return nil, err
	}
	err = r.store.PutSentences(ctx, fullHash, dataHash, sentences)
	unlock()
	if errors.Is(err, cache.ErrDuplicateKey) {
		sentences, _, err = r.store.GetSentences(ctx, fullHash)
	}
	if err != nil {
		return nil, err
	}
	return sentences, nil
}
