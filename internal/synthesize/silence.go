package synthesize

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Silence writes a silent audio clip of the given duration to outPath using
// ffmpeg's anullsrc source. Punctuation-only sentences carry a short silence
// in place of speech so the timeline math stays uniform.
func Silence(ctx context.Context, ffmpegBinary, outPath string, duration time.Duration) error {
	binary := strings.TrimSpace(ffmpegBinary)
	if binary == "" {
		binary = "ffmpeg"
	}
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "lavfi",
		"-i", "anullsrc=r=24000:cl=mono",
		"-t", fmt.Sprintf("%.3f", duration.Seconds()),
		outPath,
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg silence: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
