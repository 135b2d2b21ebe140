// Package export renders an assembled timeline plan into the final
// artifacts: the spliced bilingual audio file, subtitle files, a burned-in
// subtitle video, a plain-text transcript, and the JSON dumps of the token
// and sentence structures.
//
// All media rendering shells out to ffmpeg. The audio plan is expressed as
// an ffmpeg filter graph written to a script file in the scratch directory,
// which keeps long runs clear of argument length limits.
package export
