package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"lingopipe/internal/config"
)

// CLI invokes an external whisper-compatible command that writes word-level
// timestamps as JSON.
type CLI struct {
	cfg           config.Transcriber
	workDir       string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewCLI creates a recognizer around the configured whisper binary. JSON
// output is written into workDir, typically the run's scratch directory.
func NewCLI(cfg config.Transcriber, workDir string) *CLI {
	return &CLI{cfg: cfg, workDir: workDir}
}

// WithCommandRunner sets a custom command runner (for testing).
func (c *CLI) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	c.commandRunner = runner
}

// Transcribe runs the recognizer over audioPath and decodes its JSON output.
// A missing or unrunnable binary is a fatal error: transcription has no
// degraded mode.
func (c *CLI) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	args := []string{
		audioPath,
		"--model", c.cfg.Model,
		"--language", c.cfg.Language,
		"--word_timestamps", "True",
		"--output_format", "json",
		"--output_dir", c.workDir,
	}
	if err := c.run(ctx, c.cfg.Binary, args...); err != nil {
		return Result{}, fmt.Errorf("speech recognition unavailable: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	payloadPath := filepath.Join(c.workDir, base+".json")
	data, err := os.ReadFile(payloadPath)
	if err != nil {
		return Result{}, fmt.Errorf("read transcription output: %w", err)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, fmt.Errorf("parse transcription json: %w", err)
	}
	return result, nil
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
