// Package timeline assembles the bilingual output: a plan of audio segments
// and a parallel subtitle event list on a shared millisecond clock.
package timeline

import "fmt"

// Mode selects one of the five subtitle layout policies. The numeric
// identifier is stable: it participates in the settings cache key, so the
// mapping must never change for existing values.
type Mode int

const (
	// ModeSourceOnly plays source audio with source-text subtitles.
	ModeSourceOnly Mode = iota
	// ModeSequential plays source audio, a pause, then target audio, each
	// with its own subtitle event.
	ModeSequential
	// ModeSimultaneous plays source then target audio under a pair of
	// subtitle events (source on top, target on bottom) that both span the
	// whole source+target stretch.
	ModeSimultaneous
	// ModeSourceAudioSubs plays source audio only, subtitled with the
	// target text.
	ModeSourceAudioSubs
	// ModeTargetEmphasis plays source then target audio under a single
	// target-text event spanning both. No source-text event is emitted in
	// this mode; it deliberately keeps the target language in focus.
	ModeTargetEmphasis
)

var modeNames = map[Mode]string{
	ModeSourceOnly:      "source-only",
	ModeSequential:      "sequential-bilingual",
	ModeSimultaneous:    "simultaneous-bilingual",
	ModeSourceAudioSubs: "source-audio-bilingual-subs",
	ModeTargetEmphasis:  "target-emphasis-bilingual",
}

// ParseMode accepts a mode's numeric identifier ("0".."4") or its name.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "0", "source-only":
		return ModeSourceOnly, nil
	case "1", "sequential-bilingual":
		return ModeSequential, nil
	case "2", "simultaneous-bilingual":
		return ModeSimultaneous, nil
	case "3", "source-audio-bilingual-subs":
		return ModeSourceAudioSubs, nil
	case "4", "target-emphasis-bilingual":
		return ModeTargetEmphasis, nil
	default:
		return 0, fmt.Errorf("unknown subtitle mode %q", value)
	}
}

// ID returns the stable numeric identifier used in cache keys.
func (m Mode) ID() string {
	return fmt.Sprintf("%d", int(m))
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// RequiresTargetAudio reports whether the mode splices synthesized
// target-language audio into the output.
func (m Mode) RequiresTargetAudio() bool {
	switch m {
	case ModeSequential, ModeSimultaneous, ModeTargetEmphasis:
		return true
	default:
		return false
	}
}

// RequiresTranslation reports whether the mode needs target text at all.
func (m Mode) RequiresTranslation() bool {
	return m != ModeSourceOnly
}
