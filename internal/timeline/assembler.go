package timeline

import (
	"lingopipe/internal/lexicon"
)

// GapMS is the fixed pause inserted between source and target audio in the
// bilingual modes.
const GapMS = 10

// FadeMS is applied to the edges of spliced source spans and to the start of
// target clips to hide splice clicks.
const FadeMS = 10

// ClipProbe reports the duration of a synthesized clip in milliseconds. It
// returns 0 when the clip cannot be read, which degrades that sentence to a
// zero-length target span instead of failing the assembly.
type ClipProbe func(path string) int

// Assemble walks sentences in order and builds the output plan for the given
// mode. Sentence Start/End are seconds on the source recording; the plan's
// clock is milliseconds from the start of the output. onSentence, when
// non-nil, is called after each sentence is placed so long inputs can report
// progress.
//
// Between consecutive sentences a third of the source-side gap is kept, with
// a 10ms floor, so long pauses in the original shrink but sentences never
// run together.
func Assemble(sentences []lexicon.Sentence, mode Mode, probe ClipProbe, onSentence func(done, total int)) Plan {
	var plan Plan
	cursor := 0

	appendSeg := func(seg Segment) {
		plan.Segments = append(plan.Segments, seg)
		cursor += seg.DurationMS
	}
	appendSilence := func(ms int) {
		appendSeg(Segment{Kind: SegmentSilence, DurationMS: ms})
	}
	clipDuration := func(s lexicon.Sentence) int {
		if s.TargetAudio == "" {
			return 0
		}
		return probe(s.TargetAudio)
	}

	for idx, s := range sentences {
		srcStart := int(s.Start * 1000)
		srcEnd := int(s.End * 1000)
		srcDur := srcEnd - srcStart
		srcPos := cursor

		appendSeg(Segment{
			Kind:          SegmentSource,
			SourceStartMS: srcStart,
			SourceEndMS:   srcEnd,
			DurationMS:    srcDur,
			FadeIn:        true,
			FadeOut:       true,
		})

		if mode == ModeSourceOnly || mode == ModeSequential {
			plan.Events = append(plan.Events, Event{
				StartMS: srcPos,
				EndMS:   srcPos + srcDur,
				Text:    s.SourceText,
				Track:   TrackTop,
			})
		}

		if mode != ModeSourceOnly {
			appendSilence(GapMS)

			switch mode {
			case ModeSequential:
				tgtPos := cursor
				tgtDur := clipDuration(s)
				if tgtDur > 0 {
					appendSeg(Segment{
						Kind:       SegmentClip,
						Path:       s.TargetAudio,
						DurationMS: tgtDur,
						FadeIn:     true,
					})
				}
				plan.Events = append(plan.Events, Event{
					StartMS: tgtPos,
					EndMS:   tgtPos + tgtDur,
					Text:    s.TargetText,
					Track:   TrackTop,
				})

			case ModeTargetEmphasis:
				tgtDur := clipDuration(s)
				if tgtDur > 0 {
					appendSeg(Segment{
						Kind:       SegmentClip,
						Path:       s.TargetAudio,
						DurationMS: tgtDur,
						FadeIn:     true,
					})
				}
				plan.Events = append(plan.Events, Event{
					StartMS: srcPos,
					EndMS:   cursor,
					Text:    s.TargetText,
					Track:   TrackTop,
				})

			case ModeSimultaneous:
				appendSilence(GapMS)
				tgtDur := clipDuration(s)
				if tgtDur > 0 {
					appendSeg(Segment{
						Kind:       SegmentClip,
						Path:       s.TargetAudio,
						DurationMS: tgtDur,
						FadeIn:     true,
					})
				}
				plan.Events = append(plan.Events,
					Event{StartMS: srcPos, EndMS: cursor, Text: s.SourceText, Track: TrackTop},
					Event{StartMS: srcPos, EndMS: cursor, Text: s.TargetText, Track: TrackBottom},
				)

			case ModeSourceAudioSubs:
				plan.Events = append(plan.Events, Event{
					StartMS: srcPos,
					EndMS:   srcPos + srcDur,
					Text:    s.TargetText,
					Track:   TrackTop,
				})
			}
		}

		if idx < len(sentences)-1 {
			gap := int((sentences[idx+1].Start - s.End) * 1000)
			pause := gap / 3
			if pause < GapMS {
				pause = GapMS
			}
			appendSilence(pause)
		}

		if onSentence != nil {
			onSentence(idx+1, len(sentences))
		}
	}

	plan.TotalMS = cursor
	return plan
}
