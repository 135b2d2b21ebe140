package pipeline

// Stage identifies a phase of a run for progress reporting and logging.
type Stage int

const (
	StageHash Stage = iota
	StageTranscribe
	StageSegment
	StageEnrich
	StageAssemble
	StageExport
	stageCount
)

func (s Stage) String() string {
	switch s {
	case StageHash:
		return "hash"
	case StageTranscribe:
		return "transcribe"
	case StageSegment:
		return "segment"
	case StageEnrich:
		return "enrich"
	case StageAssemble:
		return "assemble"
	case StageExport:
		return "export"
	default:
		return "unknown"
	}
}

// Progress is one progress report. Step counts stages from 1 to Total;
// Message carries a short human-readable note, including per-sentence
// counts during enrichment.
type Progress struct {
	Stage   Stage
	Step    int
	Total   int
	Message string
}

// Observer receives progress reports during Run. It is called from the
// running goroutine and must not block for long.
type Observer func(Progress)

func (r *Runner) observe(stage Stage, message string) {
	if r.observer == nil {
		return
	}
	r.observer(Progress{
		Stage:   stage,
		Step:    int(stage) + 1,
		Total:   int(stageCount),
		Message: message,
	})
}
