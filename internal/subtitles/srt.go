package subtitles

import (
	"fmt"
	"os"
	"strings"

	"lingopipe/internal/timeline"
)

// WriteSRT writes events as numbered SRT cues in plan order. Top-track
// events get an {\an8} override so they render at the top of the frame in
// players that honor it.
func WriteSRT(path string, events []timeline.Event) error {
	var b strings.Builder
	for i, ev := range events {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(ev.StartMS), srtTimestamp(ev.EndMS))
		text := ev.Text
		if ev.Track == timeline.TrackTop {
			text = `{\an8}` + text
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// srtTimestamp formats milliseconds as HH:MM:SS,mmm.
func srtTimestamp(ms int) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3600000
	m := ms / 60000 % 60
	s := ms / 1000 % 60
	frac := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, frac)
}
