// Package synthesize provides the target-language speech capability.
//
// The Synthesizer contract wraps an external text-to-speech tool; the CLI
// implementation drives edge-tts. Synthesis is the one pipeline stage allowed
// to fail softly: callers retry a bounded number of times and then fall back
// to a silent, text-only sentence.
package synthesize

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"lingopipe/internal/config"
)

// Synthesizer renders text as speech into an audio file at outPath.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice, outPath string) error
}

// CLI invokes the configured edge-tts compatible binary.
type CLI struct {
	cfg           config.Synthesis
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewCLI creates a synthesizer around the configured binary.
func NewCLI(cfg config.Synthesis) *CLI {
	return &CLI{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (c *CLI) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	c.commandRunner = runner
}

// Synthesize writes a speech clip for text to outPath. An output that is
// missing or at or below the configured minimum size counts as a failed
// attempt: the tool sometimes exits cleanly after writing a stub file.
func (c *CLI) Synthesize(ctx context.Context, text, voice, outPath string) error {
	args := []string{
		"--text", text,
		"--voice", voice,
		"--write-media", outPath,
	}
	if err := c.run(ctx, c.cfg.Binary, args...); err != nil {
		return fmt.Errorf("synthesize speech: %w", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return fmt.Errorf("synthesize speech: no output written: %w", err)
	}
	if info.Size() <= c.cfg.MinClipBytes {
		return fmt.Errorf("synthesize speech: output %d bytes, need more than %d", info.Size(), c.cfg.MinClipBytes)
	}
	return nil
}

func (c *CLI) run(ctx context.Context, name string, args ...string) error {
	if c.commandRunner != nil {
		return c.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// VoiceFor maps a voice selector to the configured voice id: f is the female
// voice, m the male voice, and an empty selector means no synthesis voice.
func VoiceFor(cfg config.Synthesis, selector string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "f":
		return cfg.FemaleVoice, nil
	case "m":
		return cfg.MaleVoice, nil
	case "":
		return "", nil
	default:
		return "", fmt.Errorf("unknown voice %q (expected f, m, or empty)", selector)
	}
}
