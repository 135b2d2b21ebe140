package subtitles

import (
	"fmt"
	"os"
	"strings"

	"lingopipe/internal/timeline"
)

const assHeader = `[Script Info]
ScriptType: v4.00+
PlayResX: %d
PlayResY: %d
WrapStyle: 0

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, OutlineColour, BackColour, Bold, Outline, Shadow, Alignment, MarginL, MarginR, MarginV
Style: Top,Arial,22,&H00FFFFFF,&H00000000,&H64000000,-1,1,0,8,20,20,20
Style: Bottom,Arial,22,&H00FFFFFF,&H00000000,&H64000000,-1,1,0,2,20,20,20

[Events]
Format: Layer, Start, End, Style, Text
`

// WriteASS writes events as ASS dialogue lines using a Top and a Bottom
// style, sized for the given video frame.
func WriteASS(path string, events []timeline.Event, width, height int) error {
	var b strings.Builder
	fmt.Fprintf(&b, assHeader, width, height)
	for _, ev := range events {
		style := "Bottom"
		if ev.Track == timeline.TrackTop {
			style = "Top"
		}
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,%s,%s\n",
			assTimestamp(ev.StartMS), assTimestamp(ev.EndMS), style, escapeASS(ev.Text))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write ass: %w", err)
	}
	return nil
}

// assTimestamp formats milliseconds as H:MM:SS.cc (centisecond precision).
func assTimestamp(ms int) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3600000
	m := ms / 60000 % 60
	s := ms / 1000 % 60
	cs := ms % 1000 / 10
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

// escapeASS keeps event text on a single dialogue line.
func escapeASS(text string) string {
	text = strings.ReplaceAll(text, "\n", `\N`)
	return text
}
