package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"lingopipe/internal/subtitles"
	"lingopipe/internal/timeline"
)

// Video renders a still-frame MP4: a black background at the configured
// resolution, the rendered audio track, and the events burned in as ASS
// subtitles.
func (e *Exporter) Video(ctx context.Context, events []timeline.Event, audioPath, outPath string) error {
	bgPath := filepath.Join(e.scratch, "background.png")
	if err := writeBackground(bgPath, e.cfg.VideoWidth, e.cfg.VideoHeight); err != nil {
		return fmt.Errorf("render video: %w", err)
	}
	assPath := filepath.Join(e.scratch, "events.ass")
	if err := subtitles.WriteASS(assPath, events, e.cfg.VideoWidth, e.cfg.VideoHeight); err != nil {
		return fmt.Errorf("render video: %w", err)
	}

	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-loop", "1",
		"-framerate", strconv.Itoa(e.cfg.VideoFramerate),
		"-i", bgPath,
		"-i", audioPath,
		"-vf", "ass=" + assPath,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", e.cfg.AudioBitrate,
		"-shortest",
		outPath,
	}
	if _, err := e.run(ctx, e.cfg.FFmpegBinary, args...); err != nil {
		return fmt.Errorf("render video: %w", err)
	}
	return nil
}

func writeBackground(path string, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	black := color.RGBA{A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, black)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write background: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write background: %w", err)
	}
	return f.Close()
}
