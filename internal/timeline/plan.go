package timeline

// SegmentKind identifies what a plan segment contributes to the output audio.
type SegmentKind int

const (
	// SegmentSource is a span cut from the original recording.
	SegmentSource SegmentKind = iota
	// SegmentClip is a synthesized target-language clip spliced in whole.
	SegmentClip
	// SegmentSilence is generated silence of a fixed duration.
	SegmentSilence
)

// Track places a subtitle event at the top or bottom of the frame.
type Track int

const (
	TrackTop Track = iota
	TrackBottom
)

// Event is one subtitle cue on the output clock.
type Event struct {
	StartMS int
	EndMS   int
	Text    string
	Track   Track
}

// Segment is one contiguous piece of the output audio. Which fields are
// meaningful depends on Kind: source spans carry SourceStartMS/SourceEndMS
// into the original recording, clips carry Path, and all kinds carry
// DurationMS on the output clock.
type Segment struct {
	Kind SegmentKind

	SourceStartMS int
	SourceEndMS   int

	Path string

	DurationMS int

	FadeIn  bool
	FadeOut bool
}

// Plan is the full assembly: audio segments in playback order plus subtitle
// events on the same clock. TotalMS is the sum of segment durations.
type Plan struct {
	Segments []Segment
	Events   []Event
	TotalMS  int
}
