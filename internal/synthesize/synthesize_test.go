package synthesize_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lingopipe/internal/config"
	"lingopipe/internal/synthesize"
)

func synthConfig() config.Synthesis {
	cfg := config.Default().Synthesis
	return cfg
}

func TestSynthesizeValidatesOutputSize(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "clip.mp3")

	cli := synthesize.NewCLI(synthConfig())
	cli.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return os.WriteFile(outPath, bytes.Repeat([]byte{0x01}, 4096), 0o644)
	})
	if err := cli.Synthesize(context.Background(), "Привет", "ru-RU-SvetlanaNeural", outPath); err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
}

func TestSynthesizeRejectsTinyOutput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "clip.mp3")

	cli := synthesize.NewCLI(synthConfig())
	cli.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		// Clean exit but stub output, as the tool produces on transient
		// service errors.
		return os.WriteFile(outPath, []byte("tiny"), 0o644)
	})
	if err := cli.Synthesize(context.Background(), "Привет", "voice", outPath); err == nil {
		t.Fatal("expected error for undersized output")
	}
}

func TestSynthesizeRejectsMissingOutput(t *testing.T) {
	cli := synthesize.NewCLI(synthConfig())
	cli.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return nil
	})
	if err := cli.Synthesize(context.Background(), "Привет", "voice", filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("expected error for missing output")
	}
}

func TestSynthesizePropagatesCommandFailure(t *testing.T) {
	cli := synthesize.NewCLI(synthConfig())
	sentinel := errors.New("network down")
	cli.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return sentinel
	})
	err := cli.Synthesize(context.Background(), "Привет", "voice", filepath.Join(t.TempDir(), "clip.mp3"))
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped command error, got %v", err)
	}
}

func TestVoiceFor(t *testing.T) {
	cfg := synthConfig()
	if voice, err := synthesize.VoiceFor(cfg, "f"); err != nil || voice != cfg.FemaleVoice {
		t.Fatalf("VoiceFor(f) = %q, %v", voice, err)
	}
	if voice, err := synthesize.VoiceFor(cfg, "m"); err != nil || voice != cfg.MaleVoice {
		t.Fatalf("VoiceFor(m) = %q, %v", voice, err)
	}
	if voice, err := synthesize.VoiceFor(cfg, ""); err != nil || voice != "" {
		t.Fatalf("VoiceFor(empty) = %q, %v", voice, err)
	}
	if _, err := synthesize.VoiceFor(cfg, "x"); err == nil {
		t.Fatal("expected error for unknown selector")
	}
}
