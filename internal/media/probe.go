// Package media inspects media files through ffprobe.
package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type probeFormat struct {
	Duration string `json:"duration"`
}

type probePayload struct {
	Format probeFormat `json:"format"`
}

// Duration returns the container duration of the media file at path.
func Duration(ctx context.Context, binary, path string) (time.Duration, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return 0, errors.New("ffprobe duration: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var payload probePayload
	if err := json.Unmarshal(output, &payload); err != nil {
		return 0, fmt.Errorf("ffprobe parse: %w", err)
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(payload.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe parse duration %q: %w", payload.Format.Duration, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
