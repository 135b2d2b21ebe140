package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"lingopipe/internal/config"
	"lingopipe/internal/timeline"
)

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stderr.Bytes(), fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return stderr.Bytes(), nil
}

// Exporter renders plans to files. Scratch holds intermediate files (filter
// scripts, ASS subtitles, the video background) and is owned by the caller.
type Exporter struct {
	cfg     config.Output
	scratch string
	logger  *slog.Logger
	run     commandRunner
}

func New(cfg config.Output, scratchDir string, logger *slog.Logger) *Exporter {
	return &Exporter{cfg: cfg, scratch: scratchDir, logger: logger, run: defaultRunner}
}

// WithCommandRunner replaces process execution in tests.
func (e *Exporter) WithCommandRunner(run func(ctx context.Context, name string, args ...string) ([]byte, error)) *Exporter {
	e.run = run
	return e
}

// Audio renders the plan's segment list into a single MP3 at outPath.
// sourcePath is the original recording that source spans are cut from.
func (e *Exporter) Audio(ctx context.Context, plan timeline.Plan, sourcePath, outPath string) error {
	if len(plan.Segments) == 0 {
		return fmt.Errorf("render audio: empty plan")
	}

	inputs := []string{sourcePath}
	clipInput := make(map[string]int)
	for _, seg := range plan.Segments {
		if seg.Kind != timeline.SegmentClip {
			continue
		}
		if _, ok := clipInput[seg.Path]; !ok {
			clipInput[seg.Path] = len(inputs)
			inputs = append(inputs, seg.Path)
		}
	}

	script := filterScript(plan, clipInput)
	scriptPath := filepath.Join(e.scratch, "assembly.ffscript")
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		return fmt.Errorf("write filter script: %w", err)
	}

	args := []string{"-y", "-hide_banner", "-loglevel", "error"}
	for _, in := range inputs {
		args = append(args, "-i", in)
	}
	args = append(args,
		"-filter_complex_script", scriptPath,
		"-map", "[out]",
		"-b:a", e.cfg.AudioBitrate,
		outPath,
	)

	e.logger.Debug("rendering bilingual audio",
		slog.Int("segments", len(plan.Segments)),
		slog.Int("clip_inputs", len(clipInput)),
		slog.Int("total_ms", plan.TotalMS))

	if _, err := e.run(ctx, e.cfg.FFmpegBinary, args...); err != nil {
		return fmt.Errorf("render audio: %w", err)
	}
	return nil
}

// filterScript builds the ffmpeg filter graph for a plan. Every segment
// becomes a labeled chain normalized to 24kHz mono, then all chains concat
// into [out]. fadeSec hides splice clicks on cut edges.
func filterScript(plan timeline.Plan, clipInput map[string]int) string {
	const (
		fadeSec = float64(timeline.FadeMS) / 1000
		norm    = "aformat=sample_rates=24000:channel_layouts=mono"
	)

	var b strings.Builder
	labels := make([]string, 0, len(plan.Segments))
	for i, seg := range plan.Segments {
		label := fmt.Sprintf("seg%d", i)
		labels = append(labels, label)
		switch seg.Kind {
		case timeline.SegmentSource:
			start := float64(seg.SourceStartMS) / 1000
			end := float64(seg.SourceEndMS) / 1000
			fmt.Fprintf(&b, "[0:a]atrim=start=%.3f:end=%.3f,asetpts=PTS-STARTPTS", start, end)
			if seg.FadeIn {
				fmt.Fprintf(&b, ",afade=t=in:d=%.3f", fadeSec)
			}
			if seg.FadeOut {
				outStart := float64(seg.DurationMS)/1000 - fadeSec
				if outStart < 0 {
					outStart = 0
				}
				fmt.Fprintf(&b, ",afade=t=out:st=%.3f:d=%.3f", outStart, fadeSec)
			}
			fmt.Fprintf(&b, ",%s[%s];\n", norm, label)
		case timeline.SegmentClip:
			fmt.Fprintf(&b, "[%d:a]asetpts=PTS-STARTPTS", clipInput[seg.Path])
			if seg.FadeIn {
				fmt.Fprintf(&b, ",afade=t=in:d=%.3f", fadeSec)
			}
			fmt.Fprintf(&b, ",%s[%s];\n", norm, label)
		case timeline.SegmentSilence:
			fmt.Fprintf(&b, "anullsrc=r=24000:cl=mono,atrim=end=%.3f,asetpts=PTS-STARTPTS[%s];\n",
				float64(seg.DurationMS)/1000, label)
		}
	}
	for _, label := range labels {
		fmt.Fprintf(&b, "[%s]", label)
	}
	fmt.Fprintf(&b, "concat=n=%d:v=0:a=1[out]\n", len(labels))
	return b.String()
}
